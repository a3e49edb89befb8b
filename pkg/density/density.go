// Package density converts engineering units to the property oracle's SI
// inputs and turns oracle failures into lookup errors that callers can
// recover from.
package density

import (
	"fmt"
	"strings"

	"github.com/iwvelando/boiler-fuel/pkg/constants"
)

// Oracle evaluates a thermodynamic property given two state inputs and a
// fluid or mixture descriptor, all in SI units.
type Oracle interface {
	PropsSI(output, name1 string, value1 float64, name2 string, value2 float64, descriptor string) (float64, error)
}

// Condition is a temperature (°C) and absolute pressure (bar) pair.
type Condition struct {
	Name         string  `json:"name,omitempty" yaml:"name,omitempty"`
	TemperatureC float64 `json:"temperature" yaml:"temperature"`
	PressureBar  float64 `json:"pressure" yaml:"pressure"`
}

// Reference condition presets.
var (
	// Normal is the Nm³ reference: 0 °C, 1.01325 bar.
	Normal = Condition{Name: "Nm³", TemperatureC: 0, PressureBar: constants.AtmosphericPressureBar}
	// Standard is the Sm³ reference: 15 °C, 1.01325 bar.
	Standard = Condition{Name: "Sm³", TemperatureC: 15, PressureBar: constants.AtmosphericPressureBar}
)

// ParseReference maps a reference name to its preset.
func ParseReference(name string) (Condition, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "normal", "nm3", "nm³":
		return Normal, nil
	case "standard", "sm3", "sm³":
		return Standard, nil
	default:
		return Condition{}, fmt.Errorf("unknown reference condition %q, expected normal or standard", name)
	}
}

// Kelvin returns the absolute temperature.
func (c Condition) Kelvin() float64 {
	return c.TemperatureC + constants.CelsiusOffset
}

// Pascal returns the absolute pressure in Pa.
func (c Condition) Pascal() float64 {
	return c.PressureBar * constants.PascalPerBar
}

func (c Condition) String() string {
	if c.Name != "" {
		return fmt.Sprintf("%s (%g °C, %g bar abs)", c.Name, c.TemperatureC, c.PressureBar)
	}
	return fmt.Sprintf("%g °C, %g bar abs", c.TemperatureC, c.PressureBar)
}

// LookupError reports that the oracle rejected a descriptor or condition.
type LookupError struct {
	Condition Condition
	Mixture   string
	Err       error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("density lookup at %s failed: %v", e.Condition, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// Lookup returns the mass density (kg/m³) of mixture at cond.
func Lookup(oracle Oracle, cond Condition, mixture string) (float64, error) {
	if oracle == nil {
		return 0, &LookupError{Condition: cond, Mixture: mixture, Err: fmt.Errorf("no density oracle configured")}
	}
	rho, err := oracle.PropsSI("D", "T", cond.Kelvin(), "P", cond.Pascal(), mixture)
	if err != nil {
		return 0, &LookupError{Condition: cond, Mixture: mixture, Err: err}
	}
	if rho <= 0 {
		return 0, &LookupError{Condition: cond, Mixture: mixture, Err: fmt.Errorf("oracle returned non-positive density %g", rho)}
	}
	return rho, nil
}

// AirDensity looks up the density of air at cond. It doubles as a quick
// check that the oracle is working.
func AirDensity(oracle Oracle, cond Condition) (float64, error) {
	return Lookup(oracle, cond, "HEOS::Air")
}
