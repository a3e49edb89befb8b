package format

import "testing"

func TestNumber(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		decimals int
		expected string
	}{
		{"Annual volume", 404040.4, 0, "404,040"},
		{"Hourly volume", 0.13468, 2, "0.13"},
		{"Density", 0.749481, 4, "0.7495"},
		{"Capacity kcal/h", 1000000, 0, "1,000,000"},
		{"Capacity kW", 1162.7907, 2, "1,162.79"},
		{"Negative", -1234.5, 1, "-1,234.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Number(tt.value, tt.decimals); got != tt.expected {
				t.Errorf("Number(%v, %d) = %q, expected %q", tt.value, tt.decimals, got, tt.expected)
			}
		})
	}
}

func TestOptional(t *testing.T) {
	if got := Optional(nil, 2); got != NotAvailable {
		t.Errorf("Optional(nil) = %q, expected %q", got, NotAvailable)
	}
	v := 2.2783
	if got := Optional(&v, 2); got != "2.28" {
		t.Errorf("Optional(2.2783) = %q, expected 2.28", got)
	}
}

func TestPlain(t *testing.T) {
	if got := Plain(404040.4, 1); got != "404040.4" {
		t.Errorf("Plain() = %q, expected 404040.4", got)
	}
}
