package component

import (
	"math"
	"testing"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		quantity Quantity
		want     float64
		ok       bool
	}{
		{"1k", QuantityResistance, 1e3, true},
		{"4.7K", QuantityResistance, 4.7e3, true},
		{"2M", QuantityResistance, 2e6, true},
		{"2M", QuantityGeneral, 2e-3, true},
		{"10u", QuantityGeneral, 10e-6, true},
		{"100n", QuantityGeneral, 100e-9, true},
		{"22p", QuantityGeneral, 22e-12, true},
		{"5V", QuantityGeneral, 5, true},
		{"1.5A", QuantityGeneral, 1.5, true},
		{"330", QuantityResistance, 330, true},
		{"-3.3", QuantityGeneral, -3.3, true},
		{"1e3", QuantityGeneral, 1000, true},
		{"5 V", QuantityGeneral, 5, true},

		// Opaque values: consumers pass these through untouched.
		{"1kHz", QuantityGeneral, 0, false},
		{"abc", QuantityGeneral, 0, false},
		{"", QuantityGeneral, 0, false},
		{"5%", QuantityGeneral, 0, false},
		{"1k2", QuantityResistance, 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseValue(tt.input, tt.quantity)
		if ok != tt.ok {
			t.Errorf("ParseValue(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			continue
		}
		if ok && math.Abs(got-tt.want) > math.Abs(tt.want)*1e-12 {
			t.Errorf("ParseValue(%q) = %g, want %g", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeValue(t *testing.T) {
	tests := []struct {
		input    string
		quantity Quantity
		want     string
	}{
		{"1k", QuantityResistance, "1000"},
		{"5V", QuantityGeneral, "5"},
		{"2M", QuantityGeneral, "0.002"},
		// Unparseable input is returned unchanged, never an error.
		{"1kHz", QuantityGeneral, "1kHz"},
		{"whatever", QuantityGeneral, "whatever"},
	}

	for _, tt := range tests {
		if got := NormalizeValue(tt.input, tt.quantity); got != tt.want {
			t.Errorf("NormalizeValue(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
