package output

import (
	"github.com/iwvelando/boiler-fuel/internal/calculator"
	"github.com/iwvelando/boiler-fuel/pkg/density"
	"github.com/iwvelando/boiler-fuel/pkg/mathutil"
)

// Report is the serializable view of one calculation. Absent values are
// nil and omitted from JSON.
type Report struct {
	Fuel              string             `json:"fuel"`
	FuelName          string             `json:"fuelName"`
	Mixture           string             `json:"mixture"`
	LowerHeatingValue float64            `json:"lowerHeatingValue"`
	EnergyEquivalent  float64            `json:"energyEquivalent"`
	KcalPerHour       float64            `json:"kcalPerHour"`
	Kilowatts         float64            `json:"kilowatts"`
	EfficiencyPercent float64            `json:"efficiencyPercent"`
	AnnualHours       float64            `json:"annualHours"`
	VolumeUnit        string             `json:"volumeUnit"`
	HourlyVolume      float64            `json:"hourlyVolume"`
	AnnualVolume      float64            `json:"annualVolume"`
	Reference         density.Condition  `json:"reference"`
	Operating         *density.Condition `json:"operating,omitempty"`
	ReferenceDensity  *float64           `json:"referenceDensity,omitempty"`
	OperatingDensity  *float64           `json:"operatingDensity,omitempty"`
	HourlyMass        *float64           `json:"hourlyMass,omitempty"`
	AnnualMass        *float64           `json:"annualMass,omitempty"`
	OperatingVolume   *float64           `json:"operatingVolume,omitempty"`
	Errors            []string           `json:"errors,omitempty"`
	Notes             []string           `json:"notes,omitempty"`
}

// NewReport combines calculator inputs and results into a Report.
func NewReport(in calculator.Inputs, res calculator.Result) Report {
	report := Report{
		Fuel:              in.Fuel.ID,
		FuelName:          in.Fuel.Name,
		Mixture:           in.Fuel.Mixture,
		LowerHeatingValue: in.Fuel.LowerHeatingValue,
		EnergyEquivalent:  res.EnergyEquivalent,
		KcalPerHour:       res.KcalPerHour,
		Kilowatts:         res.Kilowatts,
		EfficiencyPercent: mathutil.RoundTo(mathutil.FractionToPercent(in.Operation.Efficiency), 6),
		AnnualHours:       in.Operation.AnnualHours,
		VolumeUnit:        VolumeUnit(in.Reference),
		HourlyVolume:      res.HourlyVolume,
		AnnualVolume:      res.AnnualVolume,
		Reference:         in.Reference,
		Operating:         in.Operating,
		ReferenceDensity:  res.ReferenceDensity,
		OperatingDensity:  res.OperatingDensity,
		HourlyMass:        res.HourlyMass,
		AnnualMass:        res.AnnualMass,
		OperatingVolume:   res.OperatingVolume,
		Notes:             append([]string(nil), res.Pending...),
	}

	for _, err := range []error{res.ReferenceError, res.OperatingError} {
		if err != nil {
			report.Errors = append(report.Errors, err.Error())
		}
	}

	return report
}

// VolumeUnit names the volume unit of the reference condition.
func VolumeUnit(ref density.Condition) string {
	if ref.Name != "" {
		return ref.Name
	}
	return "m³"
}
