package mathutil

import (
	"math"
	"testing"
)

func TestRoundTo(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		decimals int
		expected float64
	}{
		{"Two decimals round up", 0.13468, 2, 0.13},
		{"Four decimals", 0.717987, 4, 0.718},
		{"Zero decimals", 404.04, 0, 404},
		{"Negative value", -1.235, 2, -1.24},
		{"Zero", 0, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RoundTo(tt.input, tt.decimals)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("RoundTo(%v, %d) = %v, expected %v", tt.input, tt.decimals, result, tt.expected)
			}
		})
	}
}

func TestIsPositive(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected bool
	}{
		{"Positive", 1000, true},
		{"Tiny positive", 1e-12, true},
		{"Zero", 0, false},
		{"Negative", -1, false},
		{"NaN", math.NaN(), false},
		{"Positive infinity", math.Inf(1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := IsPositive(tt.input); result != tt.expected {
				t.Errorf("IsPositive(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestWithinTolerance(t *testing.T) {
	tests := []struct {
		name      string
		val1      float64
		val2      float64
		tolerance float64
		expected  bool
	}{
		{"Exactly equal", 1.0, 1.0, 0.001, true},
		{"Within tolerance", 0.1347, 0.13468, 0.001, true},
		{"Outside tolerance", 999.3, 1000, 0.5, false},
		{"Zero tolerance unequal", 1.0, 1.0001, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := WithinTolerance(tt.val1, tt.val2, tt.tolerance); result != tt.expected {
				t.Errorf("WithinTolerance(%v, %v, %v) = %v, expected %v", tt.val1, tt.val2, tt.tolerance, result, tt.expected)
			}
		})
	}
}

func TestPercentConversions(t *testing.T) {
	if got := PercentToFraction(90); math.Abs(got-0.9) > 1e-12 {
		t.Errorf("PercentToFraction(90) = %v, expected 0.9", got)
	}
	if got := FractionToPercent(0.75); math.Abs(got-75) > 1e-12 {
		t.Errorf("FractionToPercent(0.75) = %v, expected 75", got)
	}
}

func TestFloat(t *testing.T) {
	v := 3.5
	p := Float(v)
	v = 4
	if *p != 3.5 {
		t.Errorf("Float() pointer changed with source, got %v", *p)
	}
}
