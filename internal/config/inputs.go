package config

import (
	"fmt"
	"math"

	"github.com/iwvelando/boiler-fuel/internal/calculator"
	"github.com/iwvelando/boiler-fuel/pkg/combustion"
	"github.com/iwvelando/boiler-fuel/pkg/constants"
	"github.com/iwvelando/boiler-fuel/pkg/density"
	"github.com/iwvelando/boiler-fuel/pkg/fuels"
	"github.com/iwvelando/boiler-fuel/pkg/mathutil"
	"github.com/iwvelando/boiler-fuel/pkg/validation"
)

// ToInputs validates the configuration and converts it to calculator inputs.
// Out of bounds values are returned as *validation.OutOfBoundsError.
func (c *Configuration) ToInputs() (calculator.Inputs, error) {
	var in calculator.Inputs

	if c.Fuel.LHV != 0 {
		if err := validation.ValidateLHV(c.Fuel.LHV); err != nil {
			return in, err
		}
	}
	profile, err := fuels.Resolve(c.Fuel.Preset, c.Fuel.LHV, c.Fuel.Mixture)
	if err != nil {
		return in, err
	}

	if err := validation.ValidateCapacity(c.Boiler.Capacity); err != nil {
		return in, err
	}
	unit, err := combustion.ParseCapacityUnit(c.Boiler.Unit)
	if err != nil {
		return in, err
	}

	if err := validation.ValidateEfficiency(c.Operation.Efficiency); err != nil {
		return in, err
	}
	if err := validation.ValidateHours(c.Operation.AnnualHours); err != nil {
		return in, err
	}

	reference, err := density.ParseReference(c.Reference)
	if err != nil {
		return in, err
	}

	in = calculator.Inputs{
		Fuel:   profile,
		Boiler: combustion.BoilerSpec{Capacity: c.Boiler.Capacity, Unit: unit},
		Operation: combustion.OperatingParameters{
			Efficiency:  mathutil.PercentToFraction(c.Operation.Efficiency),
			AnnualHours: c.Operation.AnnualHours,
		},
		Reference: reference,
	}

	if c.Operating.Enabled {
		if err := validation.ValidateTemperature("operating temperature", c.Operating.Temperature); err != nil {
			return in, err
		}
		if err := validation.ValidatePressure("operating pressure", c.Operating.Pressure); err != nil {
			return in, err
		}
		in.Operating = &density.Condition{
			Name:         "operating",
			TemperatureC: c.Operating.Temperature,
			PressureBar:  c.Operating.Pressure,
		}
	}

	return in, nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings for values that are accepted but probably unintended.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if c.Boiler.Capacity == 0 {
		warnings = append(warnings, "Boiler capacity is not set; consumption will be reported as zero")
	}

	if c.Operation.Efficiency == constants.MaxEfficiencyPercent {
		warnings = append(warnings, "Efficiency of 100% ignores flue gas and radiation losses")
	}

	if c.Operation.AnnualHours == 0 {
		warnings = append(warnings, "Annual operating hours are zero; annual consumption will not be reported")
	}

	if c.Fuel.LHV > 0 {
		if preset, err := fuels.Lookup(c.Fuel.Preset); err == nil {
			deviation := math.Abs(c.Fuel.LHV-preset.LowerHeatingValue) / preset.LowerHeatingValue
			if deviation > 0.25 {
				warnings = append(warnings, fmt.Sprintf("Heating value override %.0f kcal/Nm³ differs from the %s preset (%.0f kcal/Nm³) by more than 25%%",
					c.Fuel.LHV, preset.ID, preset.LowerHeatingValue))
			}
		}
	}

	if c.Operating.Enabled && c.Operating.Pressure > 100 {
		warnings = append(warnings, fmt.Sprintf("Operating pressure of %g bar is outside the usual range for gas supply lines", c.Operating.Pressure))
	}

	return warnings
}
