package eos

import (
	"errors"
	"math"
	"testing"
)

func TestParseDescriptor(t *testing.T) {
	tests := []struct {
		name         string
		descriptor   string
		expectErr    error
		expectCount  int
		expectBack   string
		expectMolarM float64
	}{
		{
			name:         "Natural gas preset",
			descriptor:   "HEOS::Methane[0.95]&Ethane[0.05]",
			expectCount:  2,
			expectBack:   BackendHEOS,
			expectMolarM: 0.95*0.0160428 + 0.05*0.03006904,
		},
		{
			name:         "LPG preset",
			descriptor:   "HEOS::Propane[0.60]&n-Butane[0.40]",
			expectCount:  2,
			expectBack:   BackendHEOS,
			expectMolarM: 0.6*0.04409562 + 0.4*0.0581222,
		},
		{
			name:         "Bare pure fluid",
			descriptor:   "Methane",
			expectCount:  1,
			expectBack:   BackendHEOS,
			expectMolarM: 0.0160428,
		},
		{
			name:         "PR backend with aliases",
			descriptor:   "pr::CH4[0.9]&N2[0.05]&co2[0.05]",
			expectCount:  3,
			expectBack:   BackendPR,
			expectMolarM: 0.9*0.0160428 + 0.05*0.02801348 + 0.05*0.0440098,
		},
		{name: "Empty", descriptor: "  ", expectErr: ErrSyntax},
		{name: "Fractions do not sum to one", descriptor: "HEOS::Methane[0.95]&Ethane[0.10]", expectErr: ErrComposition},
		{name: "Unknown component", descriptor: "HEOS::Methan[1.0]", expectErr: ErrUnknownFluid},
		{name: "Unsupported backend", descriptor: "REFPROP::Methane", expectErr: ErrUnsupportedBackend},
		{name: "Unbalanced bracket", descriptor: "HEOS::Methane[0.5&Ethane[0.5]", expectErr: ErrSyntax},
		{name: "Missing fractions", descriptor: "Methane&Ethane", expectErr: ErrSyntax},
		{name: "Non-numeric fraction", descriptor: "Methane[abc]", expectErr: ErrSyntax},
		{
			name:         "Zero fraction component dropped",
			descriptor:   "HEOS::Methane[0]&Ethane[1]",
			expectCount:  1,
			expectBack:   BackendHEOS,
			expectMolarM: 0.03006904,
		},
		{name: "Negative fraction", descriptor: "Methane[-0.1]&Ethane[1.1]", expectErr: ErrComposition},
		{name: "All fractions zero", descriptor: "Methane[0]&Ethane[0]", expectErr: ErrComposition},
		{name: "Duplicate component", descriptor: "Methane[0.5]&CH4[0.5]", expectErr: ErrComposition},
		{name: "Empty backend", descriptor: "::Methane", expectErr: ErrSyntax},
		{name: "Dangling ampersand", descriptor: "Methane[1.0]&", expectErr: ErrSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mix, err := ParseDescriptor(tt.descriptor)
			if tt.expectErr != nil {
				if !errors.Is(err, tt.expectErr) {
					t.Fatalf("ParseDescriptor(%q) error = %v, expected %v", tt.descriptor, err, tt.expectErr)
				}
				var eosErr *Error
				if !errors.As(err, &eosErr) {
					t.Fatalf("expected *Error, got %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDescriptor(%q) error = %v", tt.descriptor, err)
			}
			if len(mix.Components) != tt.expectCount {
				t.Errorf("components = %d, expected %d", len(mix.Components), tt.expectCount)
			}
			if mix.Backend != tt.expectBack {
				t.Errorf("backend = %s, expected %s", mix.Backend, tt.expectBack)
			}
			if math.Abs(mix.MolarMass()-tt.expectMolarM) > 1e-9 {
				t.Errorf("MolarMass() = %v, expected %v", mix.MolarMass(), tt.expectMolarM)
			}
		})
	}
}

func TestParseDescriptorRenormalizes(t *testing.T) {
	mix, err := ParseDescriptor("Methane[0.50004]&Ethane[0.5]")
	if err != nil {
		t.Fatalf("ParseDescriptor() error = %v", err)
	}
	var sum float64
	for _, c := range mix.Components {
		sum += c.Fraction
	}
	if math.Abs(sum-1) > 1e-12 {
		t.Errorf("fractions sum to %v after normalization", sum)
	}
}

func TestTemperatureRange(t *testing.T) {
	mix, err := ParseDescriptor("Propane[0.6]&n-Butane[0.4]")
	if err != nil {
		t.Fatalf("ParseDescriptor() error = %v", err)
	}
	tmin, tmax := mix.TemperatureRange()
	if tmin != 134.895 {
		t.Errorf("tmin = %v, expected n-butane triple point", tmin)
	}
	if tmax != 575 {
		t.Errorf("tmax = %v, expected 575", tmax)
	}
}

func TestLookupFluid(t *testing.T) {
	for _, name := range []string{"Methane", "METHANE", " ch4 ", "n-Butane", "butane", "Air"} {
		if _, ok := LookupFluid(name); !ok {
			t.Errorf("LookupFluid(%q) not found", name)
		}
	}
	if _, ok := LookupFluid("Unobtainium"); ok {
		t.Error("LookupFluid found an unknown fluid")
	}
	if names := FluidNames(); len(names) != len(fluids) {
		t.Errorf("FluidNames() returned %d names, expected %d", len(names), len(fluids))
	}
}
