package eos

import (
	"math"
	"strconv"
	"strings"

	"github.com/iwvelando/boiler-fuel/pkg/mathutil"
)

// Backend names accepted in descriptors. Both are evaluated with Peng-Robinson.
const (
	BackendHEOS = "HEOS"
	BackendPR   = "PR"
)

const fractionTolerance = 1e-4

// Component is one fluid of a mixture with its mole fraction.
type Component struct {
	Fluid    Fluid
	Fraction float64
}

// Mixture is a parsed fluid descriptor.
type Mixture struct {
	Descriptor string
	Backend    string
	Components []Component
}

// MolarMass returns the mole-fraction weighted molar mass in kg/mol.
func (m Mixture) MolarMass() float64 {
	var total float64
	for _, c := range m.Components {
		total += c.Fraction * c.Fluid.MolarMass
	}
	return total
}

// TemperatureRange returns the temperature range valid for every component.
func (m Mixture) TemperatureRange() (tmin, tmax float64) {
	tmax = math.Inf(1)
	for _, c := range m.Components {
		tmin = math.Max(tmin, c.Fluid.Tmin)
		tmax = math.Min(tmax, c.Fluid.Tmax)
	}
	return tmin, tmax
}

// ParseDescriptor parses "[BACKEND::]Name[x]&Name[x]..." or a bare pure
// fluid name. Mole fractions must sum to one; they are renormalized exactly
// after the tolerance check.
func ParseDescriptor(descriptor string) (Mixture, error) {
	raw := strings.TrimSpace(descriptor)
	if raw == "" {
		return Mixture{}, newError(ErrSyntax, descriptor, "empty descriptor")
	}

	mix := Mixture{Descriptor: raw, Backend: BackendHEOS}
	body := raw
	if idx := strings.Index(raw, "::"); idx >= 0 {
		backend := strings.ToUpper(strings.TrimSpace(raw[:idx]))
		body = raw[idx+2:]
		if backend == "" {
			return Mixture{}, newError(ErrSyntax, raw, "empty backend before '::'")
		}
		if strings.Contains(body, "::") {
			return Mixture{}, newError(ErrSyntax, raw, "more than one '::' separator")
		}
		switch backend {
		case BackendHEOS, BackendPR:
			mix.Backend = backend
		default:
			return Mixture{}, newError(ErrUnsupportedBackend, raw, "backend %q is not available, use %s or %s", backend, BackendHEOS, BackendPR)
		}
	}

	parts := strings.Split(body, "&")
	withFraction := 0
	seen := make(map[string]struct{}, len(parts))
	for _, part := range parts {
		name, fraction, hasFraction, err := parseComponent(raw, part)
		if err != nil {
			return Mixture{}, err
		}
		fluid, ok := LookupFluid(name)
		if !ok {
			return Mixture{}, newError(ErrUnknownFluid, raw, "component %q is not known", name)
		}
		if _, dup := seen[fluid.Name]; dup {
			return Mixture{}, newError(ErrComposition, raw, "component %s listed more than once", fluid.Name)
		}
		seen[fluid.Name] = struct{}{}
		if hasFraction {
			withFraction++
		}
		mix.Components = append(mix.Components, Component{Fluid: fluid, Fraction: fraction})
	}

	switch {
	case len(mix.Components) == 1 && withFraction == 0:
		mix.Components[0].Fraction = 1
	case withFraction != len(mix.Components):
		return Mixture{}, newError(ErrSyntax, raw, "every mixture component needs a mole fraction in brackets")
	}

	var sum float64
	for _, c := range mix.Components {
		sum += c.Fraction
	}
	if !mathutil.WithinTolerance(sum, 1, fractionTolerance) {
		return Mixture{}, newError(ErrComposition, raw, "mole fractions sum to %g, expected 1", sum)
	}
	// Zero-fraction components are accepted and dropped.
	present := mix.Components[:0]
	for _, c := range mix.Components {
		if c.Fraction == 0 {
			continue
		}
		c.Fraction /= sum
		present = append(present, c)
	}
	mix.Components = present

	return mix, nil
}

func parseComponent(descriptor, part string) (name string, fraction float64, hasFraction bool, err error) {
	part = strings.TrimSpace(part)
	if part == "" {
		return "", 0, false, newError(ErrSyntax, descriptor, "empty component")
	}

	open := strings.Index(part, "[")
	if open < 0 {
		if strings.Contains(part, "]") {
			return "", 0, false, newError(ErrSyntax, descriptor, "unbalanced bracket in %q", part)
		}
		return part, 0, false, nil
	}
	if !strings.HasSuffix(part, "]") || strings.Count(part, "[") != 1 || strings.Count(part, "]") != 1 {
		return "", 0, false, newError(ErrSyntax, descriptor, "unbalanced bracket in %q", part)
	}

	name = strings.TrimSpace(part[:open])
	if name == "" {
		return "", 0, false, newError(ErrSyntax, descriptor, "missing component name in %q", part)
	}
	value := strings.TrimSpace(part[open+1 : len(part)-1])
	fraction, perr := strconv.ParseFloat(value, 64)
	if perr != nil {
		return "", 0, false, newError(ErrSyntax, descriptor, "mole fraction %q of %s is not a number", value, name)
	}
	if math.IsNaN(fraction) || fraction < 0 || fraction > 1 {
		return "", 0, false, newError(ErrComposition, descriptor, "mole fraction %g of %s must be in [0, 1]", fraction, name)
	}
	return name, fraction, true, nil
}
