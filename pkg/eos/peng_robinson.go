package eos

import (
	"math"
	"sort"
)

// GasConstant is the molar gas constant, J/(mol·K).
const GasConstant = 8.314462618

// Peng-Robinson coefficients.
const (
	prOmegaA = 0.45723553
	prOmegaB = 0.07779607
)

// attraction returns a(T) and b for a pure fluid.
func attraction(f Fluid, temperature float64) (a, b float64) {
	omega := f.Omega
	kappa := 0.37464 + 1.54226*omega - 0.26992*omega*omega
	if omega > 0.49 {
		kappa = 0.379642 + 1.48503*omega - 0.164423*omega*omega + 0.016666*omega*omega*omega
	}
	alphaRoot := 1 + kappa*(1-math.Sqrt(temperature/f.Tc))
	a = prOmegaA * GasConstant * GasConstant * f.Tc * f.Tc / f.Pc * alphaRoot * alphaRoot
	b = prOmegaB * GasConstant * f.Tc / f.Pc
	return a, b
}

// mixtureParameters applies van der Waals one-fluid mixing with zero binary
// interaction parameters.
func mixtureParameters(m Mixture, temperature float64) (a, b float64) {
	as := make([]float64, len(m.Components))
	for i, c := range m.Components {
		ai, bi := attraction(c.Fluid, temperature)
		as[i] = ai
		b += c.Fraction * bi
	}
	for i, ci := range m.Components {
		for j, cj := range m.Components {
			a += ci.Fraction * cj.Fraction * math.Sqrt(as[i]*as[j])
		}
	}
	return a, b
}

// compressibility returns the compressibility factor of the stable phase.
// When the cubic has both a liquid-like and a vapor-like root above B, the
// root with the lower fugacity coefficient (lower Gibbs energy) wins.
func compressibility(m Mixture, temperature, pressure float64) (float64, bool) {
	a, b := mixtureParameters(m, temperature)
	rt := GasConstant * temperature
	A := a * pressure / (rt * rt)
	B := b * pressure / rt

	c2 := -(1 - B)
	c1 := A - 3*B*B - 2*B
	c0 := -(A*B - B*B - B*B*B)

	var physical []float64
	for _, root := range cubicRoots(c2, c1, c0) {
		z := polish(root, c2, c1, c0)
		if z > B && !math.IsNaN(z) && !math.IsInf(z, 0) {
			physical = append(physical, z)
		}
	}
	if len(physical) == 0 {
		return 0, false
	}
	sort.Float64s(physical)

	vapor := physical[len(physical)-1]
	liquid := physical[0]
	if liquid < vapor && lnFugacityCoefficient(liquid, A, B) < lnFugacityCoefficient(vapor, A, B) {
		return liquid, true
	}
	return vapor, true
}

// lnFugacityCoefficient is ln φ of the Peng-Robinson fluid at compressibility z.
func lnFugacityCoefficient(z, A, B float64) float64 {
	sqrt2 := math.Sqrt2
	return z - 1 - math.Log(z-B) -
		A/(2*sqrt2*B)*math.Log((z+(1+sqrt2)*B)/(z+(1-sqrt2)*B))
}

// cubicRoots returns the real roots of z³ + c2 z² + c1 z + c0.
func cubicRoots(c2, c1, c0 float64) []float64 {
	shift := c2 / 3
	p := c1 - c2*c2/3
	q := 2*c2*c2*c2/27 - c2*c1/3 + c0
	disc := q*q/4 + p*p*p/27

	if disc > 0 {
		s := math.Sqrt(disc)
		y := math.Cbrt(-q/2+s) + math.Cbrt(-q/2-s)
		return []float64{y - shift}
	}
	if p == 0 {
		return []float64{math.Cbrt(-q) - shift}
	}

	r := 2 * math.Sqrt(-p/3)
	arg := 3 * q / (2 * p) * math.Sqrt(-3/p)
	arg = math.Max(-1, math.Min(1, arg))
	phi := math.Acos(arg) / 3
	roots := make([]float64, 3)
	for k := 0; k < 3; k++ {
		roots[k] = r*math.Cos(phi-2*math.Pi*float64(k)/3) - shift
	}
	return roots
}

// polish refines a root with a few Newton steps.
func polish(z, c2, c1, c0 float64) float64 {
	for i := 0; i < 3; i++ {
		f := ((z+c2)*z+c1)*z + c0
		df := (3*z+2*c2)*z + c1
		if df == 0 {
			break
		}
		z -= f / df
	}
	return z
}
