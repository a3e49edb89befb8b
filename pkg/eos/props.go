// Package eos implements a real-gas property oracle for fuel gases and their
// mixtures based on the Peng-Robinson equation of state.
package eos

import (
	"strings"

	"github.com/iwvelando/boiler-fuel/pkg/mathutil"
)

// Engine evaluates thermodynamic properties for fluid descriptors. The zero
// value is ready to use.
type Engine struct{}

// New returns an Engine.
func New() *Engine {
	return &Engine{}
}

// PropsSI returns the requested output property for the state defined by
// two inputs, in SI units. Supported outputs are D/Dmass (kg/m³), Dmolar
// (mol/m³), Z and M/molar_mass (kg/mol). The inputs must be T (K) and P (Pa)
// in either order.
func (e *Engine) PropsSI(output, name1 string, value1 float64, name2 string, value2 float64, descriptor string) (float64, error) {
	mix, err := ParseDescriptor(descriptor)
	if err != nil {
		return 0, err
	}

	key := strings.ToLower(strings.TrimSpace(output))
	if key == "m" || key == "molar_mass" || key == "molarmass" {
		return mix.MolarMass(), nil
	}

	temperature, pressure, err := temperaturePressure(descriptor, name1, value1, name2, value2)
	if err != nil {
		return 0, err
	}
	if err := checkState(mix, temperature, pressure); err != nil {
		return 0, err
	}

	z, ok := compressibility(mix, temperature, pressure)
	if !ok {
		return 0, newError(ErrNoSolution, mix.Descriptor, "no physical root at T=%g K, P=%g Pa", temperature, pressure)
	}
	molarDensity := pressure / (z * GasConstant * temperature)

	switch key {
	case "d", "dmass":
		return molarDensity * mix.MolarMass(), nil
	case "dmolar":
		return molarDensity, nil
	case "z":
		return z, nil
	default:
		return 0, newError(ErrUnsupportedInput, mix.Descriptor, "output %q is not supported", output)
	}
}

func temperaturePressure(descriptor, name1 string, value1 float64, name2 string, value2 float64) (temperature, pressure float64, err error) {
	n1 := strings.ToUpper(strings.TrimSpace(name1))
	n2 := strings.ToUpper(strings.TrimSpace(name2))
	switch {
	case n1 == "T" && n2 == "P":
		return value1, value2, nil
	case n1 == "P" && n2 == "T":
		return value2, value1, nil
	default:
		return 0, 0, newError(ErrUnsupportedInput, descriptor, "input pair (%s, %s) is not supported, use T and P", name1, name2)
	}
}

func checkState(mix Mixture, temperature, pressure float64) error {
	if !mathutil.IsPositive(temperature) {
		return newError(ErrOutOfRange, mix.Descriptor, "temperature %g K must be a positive number", temperature)
	}
	if !mathutil.IsPositive(pressure) {
		return newError(ErrOutOfRange, mix.Descriptor, "pressure %g Pa must be a positive number", pressure)
	}
	tmin, tmax := mix.TemperatureRange()
	if temperature < tmin || temperature > tmax {
		return newError(ErrOutOfRange, mix.Descriptor, "temperature %g K must be in range [%g, %g] K", temperature, tmin, tmax)
	}
	if pressure > MaxPressure {
		return newError(ErrOutOfRange, mix.Descriptor, "pressure %g Pa exceeds %g Pa", pressure, MaxPressure)
	}
	return nil
}
