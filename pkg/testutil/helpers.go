// Package testutil provides common utility functions for testing.
package testutil

import (
	"math"
)

type failure struct {
	kelvin float64
	err    error
}

// StubOracle is a density oracle returning a fixed density, with optional
// failures at specific temperatures.
type StubOracle struct {
	Density  float64
	failures []failure
	calls    int
}

// NewStubOracle returns an oracle that always answers rho.
func NewStubOracle(rho float64) *StubOracle {
	return &StubOracle{Density: rho}
}

// FailAt makes lookups at the given absolute temperature return err.
func (s *StubOracle) FailAt(kelvin float64, err error) {
	s.failures = append(s.failures, failure{kelvin: kelvin, err: err})
}

// Calls returns how many lookups were made.
func (s *StubOracle) Calls() int {
	return s.calls
}

// PropsSI implements density.Oracle. The temperature is taken from whichever
// input is named "T".
func (s *StubOracle) PropsSI(output, name1 string, value1 float64, name2 string, value2 float64, descriptor string) (float64, error) {
	s.calls++
	kelvin := value1
	if name2 == "T" {
		kelvin = value2
	}
	for _, f := range s.failures {
		if math.Abs(f.kelvin-kelvin) < 1e-6 {
			return 0, f.err
		}
	}
	return s.Density, nil
}
