package validation

import (
	"fmt"
	"math"

	"github.com/iwvelando/boiler-fuel/pkg/constants"
	"github.com/iwvelando/boiler-fuel/pkg/mathutil"
)

// OutOfBoundsError reports an input outside its documented range. Such
// inputs are refused before they reach the calculator.
type OutOfBoundsError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *OutOfBoundsError) Error() string {
	switch {
	case math.IsInf(e.Max, 1):
		return fmt.Sprintf("%s must be at least %g, got %g", e.Field, e.Min, e.Value)
	default:
		return fmt.Sprintf("%s must be between %g and %g, got %g", e.Field, e.Min, e.Max, e.Value)
	}
}

func checkRange(field string, value, min, max float64) error {
	if math.IsNaN(value) || value < min || value > max {
		return &OutOfBoundsError{Field: field, Value: value, Min: min, Max: max}
	}
	return nil
}

// ValidateCapacity rejects negative boiler capacities. Zero is allowed and
// means the capacity has not been entered yet.
func ValidateCapacity(capacity float64) error {
	return checkRange("capacity", capacity, 0, math.Inf(1))
}

// ValidateEfficiency checks an efficiency given in percent.
func ValidateEfficiency(percent float64) error {
	return checkRange("efficiency", percent, constants.MinEfficiencyPercent, constants.MaxEfficiencyPercent)
}

// ValidateHours checks the annual operating hours.
func ValidateHours(hours float64) error {
	return checkRange("annual hours", hours, 0, constants.HoursPerYear)
}

// ValidateLHV checks a lower heating value override in kcal/Nm³.
func ValidateLHV(lhv float64) error {
	return checkRange("lower heating value", lhv, constants.MinLowerHeatingValue, math.Inf(1))
}

// ValidatePressure checks an absolute pressure in bar.
func ValidatePressure(field string, bar float64) error {
	if !mathutil.IsPositive(bar) {
		return &OutOfBoundsError{Field: field, Value: bar, Min: 0, Max: math.Inf(1)}
	}
	return nil
}

// ValidateTemperature checks a temperature in °C is above absolute zero.
func ValidateTemperature(field string, celsius float64) error {
	if !mathutil.IsFinite(celsius) || celsius <= -constants.CelsiusOffset {
		return &OutOfBoundsError{Field: field, Value: celsius, Min: -constants.CelsiusOffset, Max: math.Inf(1)}
	}
	return nil
}
