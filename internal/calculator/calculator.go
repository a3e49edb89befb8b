// Package calculator computes boiler fuel consumption from a complete set of
// inputs, consulting a density oracle for the mass conversion.
package calculator

import (
	"github.com/iwvelando/boiler-fuel/pkg/combustion"
	"github.com/iwvelando/boiler-fuel/pkg/density"
	"github.com/iwvelando/boiler-fuel/pkg/fuels"
	"github.com/iwvelando/boiler-fuel/pkg/mathutil"
	"go.uber.org/zap"
)

// Pending notes reported while an input is still unset.
const (
	PendingCapacity = "boiler capacity not specified"
	PendingHours    = "annual operating hours not specified"
)

// LookupFailureNote accompanies every density lookup failure shown to a user.
const LookupFailureNote = "Density calculation failed. The mixture descriptor or the conditions may not be valid."

// Inputs is everything one calculation needs. It is passed by value and
// never modified.
type Inputs struct {
	Fuel      fuels.Profile
	Boiler    combustion.BoilerSpec
	Operation combustion.OperatingParameters
	Reference density.Condition
	// Operating is optional; nil skips the operating density lookup.
	Operating *density.Condition
}

// Result holds the outputs of one calculation. Pointer fields are nil when
// the value could not be determined.
type Result struct {
	KcalPerHour      float64
	Kilowatts        float64
	HourlyVolume     float64 // Nm³/h (at the reference condition)
	AnnualVolume     float64
	EnergyEquivalent float64 // kWh per m³

	ReferenceDensity *float64
	OperatingDensity *float64
	HourlyMass       *float64 // kg/h
	AnnualMass       *float64 // kg/yr
	OperatingVolume  *float64 // actual m³/h at the operating condition

	ReferenceError error
	OperatingError error
	Pending        []string
}

// Failed reports whether any density lookup failed.
func (r Result) Failed() bool {
	return r.ReferenceError != nil || r.OperatingError != nil
}

// Calculate runs the formula chain. Density lookup failures never abort the
// calculation: the reference and operating lookups are evaluated
// independently and only the fields that depend on a failed lookup are left
// absent.
func Calculate(logger *zap.Logger, oracle density.Oracle, in Inputs) Result {
	if logger == nil {
		logger = zap.NewNop()
	}

	var res Result
	res.KcalPerHour, res.Kilowatts = combustion.NormalizeCapacity(in.Boiler.Capacity, in.Boiler.Unit)
	res.HourlyVolume = combustion.VolumetricConsumption(res.KcalPerHour, in.Fuel.LowerHeatingValue, in.Operation.Efficiency)
	res.AnnualVolume = combustion.AnnualConsumption(res.HourlyVolume, in.Operation.AnnualHours)
	res.EnergyEquivalent = combustion.EnergyEquivalent(in.Fuel.LowerHeatingValue)

	if res.KcalPerHour <= 0 {
		res.Pending = append(res.Pending, PendingCapacity)
	} else if in.Operation.AnnualHours <= 0 {
		res.Pending = append(res.Pending, PendingHours)
	}

	if rho, err := density.Lookup(oracle, in.Reference, in.Fuel.Mixture); err != nil {
		res.ReferenceError = err
		logger.Warn("reference density lookup failed",
			zap.String("op", "calculator.Calculate"),
			zap.String("mixture", in.Fuel.Mixture),
			zap.Stringer("condition", in.Reference),
			zap.Error(err),
		)
	} else {
		res.ReferenceDensity = mathutil.Float(rho)
	}

	if in.Operating != nil {
		if rho, err := density.Lookup(oracle, *in.Operating, in.Fuel.Mixture); err != nil {
			res.OperatingError = err
			logger.Warn("operating density lookup failed",
				zap.String("op", "calculator.Calculate"),
				zap.String("mixture", in.Fuel.Mixture),
				zap.Stringer("condition", *in.Operating),
				zap.Error(err),
			)
		} else {
			res.OperatingDensity = mathutil.Float(rho)
		}
	}

	res.HourlyMass = combustion.MassConsumption(res.HourlyVolume, res.ReferenceDensity)
	res.AnnualMass = combustion.AnnualMass(res.HourlyMass, in.Operation.AnnualHours)
	res.OperatingVolume = combustion.OperatingVolume(res.HourlyMass, res.OperatingDensity)

	logger.Debug("calculation complete",
		zap.String("op", "calculator.Calculate"),
		zap.String("fuel", in.Fuel.ID),
		zap.Float64("kcalPerHour", res.KcalPerHour),
		zap.Float64("hourlyVolume", res.HourlyVolume),
		zap.Float64("annualVolume", res.AnnualVolume),
		zap.Bool("massAvailable", res.HourlyMass != nil),
	)

	return res
}
