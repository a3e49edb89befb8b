// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/boiler-fuel/pkg/constants"
)

// RoundTo rounds a value to the given number of decimal places.
func RoundTo(val float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(val*scale) / scale
}

// IsFinite reports whether val is neither NaN nor infinite.
func IsFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}

// IsPositive reports whether val is a finite number greater than zero.
func IsPositive(val float64) bool {
	return IsFinite(val) && val > 0
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// PercentToFraction converts a percentage (e.g. 90) to a fraction (0.9).
func PercentToFraction(percent float64) float64 {
	return percent / constants.PercentageMultiplier
}

// FractionToPercent converts a fraction (e.g. 0.9) to a percentage (90).
func FractionToPercent(fraction float64) float64 {
	return fraction * constants.PercentageMultiplier
}

// Float returns a pointer to a copy of val. Used for optional results.
func Float(val float64) *float64 {
	return &val
}
