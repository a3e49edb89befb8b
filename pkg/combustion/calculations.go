// Package combustion provides the fuel consumption formula chain: capacity
// normalization, volumetric and annual consumption, and mass conversion.
package combustion

import (
	"fmt"
	"strings"

	"github.com/iwvelando/boiler-fuel/pkg/constants"
	"github.com/iwvelando/boiler-fuel/pkg/mathutil"
)

// CapacityUnit is the unit a boiler capacity is expressed in.
type CapacityUnit string

const (
	// KcalPerHour is kilocalories per hour.
	KcalPerHour CapacityUnit = "kcal/h"
	// Kilowatt is kW.
	Kilowatt CapacityUnit = "kW"
)

// ParseCapacityUnit accepts "kcal/h" or "kW" (case-insensitive).
func ParseCapacityUnit(s string) (CapacityUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "kcal/h", "kcalh", "kcal":
		return KcalPerHour, nil
	case "kw":
		return Kilowatt, nil
	default:
		return "", fmt.Errorf("unsupported capacity unit %q, expected %s or %s", s, KcalPerHour, Kilowatt)
	}
}

// BoilerSpec holds the boiler capacity as entered by the user.
type BoilerSpec struct {
	Capacity float64
	Unit     CapacityUnit
}

// OperatingParameters holds efficiency as a fraction in (0, 1] and the
// annual operating time in hours.
type OperatingParameters struct {
	Efficiency  float64
	AnnualHours float64
}

// NormalizeCapacity returns the capacity in both kcal/h and kW. A capacity
// that is zero or negative is treated as not yet specified and yields zeros.
func NormalizeCapacity(capacity float64, unit CapacityUnit) (kcalPerHour, kilowatts float64) {
	if capacity <= 0 {
		return 0, 0
	}
	if unit == Kilowatt {
		return capacity * constants.KcalPerHourPerKW, capacity
	}
	return capacity, capacity / constants.KcalPerHourPerKW
}

// VolumetricConsumption returns the hourly fuel volume (Nm³/h):
// kcalPerHour / (lhv * efficiency). No division happens while the capacity
// is unset or the divisor is not positive.
func VolumetricConsumption(kcalPerHour, lhv, efficiency float64) float64 {
	if kcalPerHour <= 0 {
		return 0
	}
	divisor := lhv * efficiency
	if divisor <= 0 {
		return 0
	}
	return kcalPerHour / divisor
}

// AnnualConsumption returns hourly * hours, or zero if either is not positive.
func AnnualConsumption(hourly, hours float64) float64 {
	if hourly <= 0 || hours <= 0 {
		return 0
	}
	return hourly * hours
}

// MassConsumption converts an hourly volume to kg/h using the reference
// density. The result is nil unless hourly > 0 and a density is present.
func MassConsumption(hourly float64, density *float64) *float64 {
	if hourly <= 0 || density == nil {
		return nil
	}
	return mathutil.Float(hourly * *density)
}

// AnnualMass returns the yearly fuel mass, nil when the hourly mass is absent.
func AnnualMass(hourlyMass *float64, hours float64) *float64 {
	if hourlyMass == nil || hours <= 0 {
		return nil
	}
	return mathutil.Float(*hourlyMass * hours)
}

// OperatingVolume converts a mass flow back to actual m³/h at the operating
// condition. Nil unless both operands are present and the density is positive.
func OperatingVolume(hourlyMass, operatingDensity *float64) *float64 {
	if hourlyMass == nil || operatingDensity == nil || *operatingDensity <= 0 {
		return nil
	}
	return mathutil.Float(*hourlyMass / *operatingDensity)
}

// EnergyEquivalent returns the energy content of one normal cubic meter in kWh.
func EnergyEquivalent(lhv float64) float64 {
	return lhv / constants.KcalPerKWh
}
