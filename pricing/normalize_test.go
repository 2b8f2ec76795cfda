package pricing

import (
	"encoding/json"
	"testing"
)

func TestNormalizeString(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"₹1,299.00", 1299.00},
		{"₹1,299", 1299},
		{"₹74,999", 74999},
		{"Rs. 2,450.50", 2450.50},
		{"1299", 1299},
		{"", 0},
		{"price unavailable", 0},
		{"₹", 0},
		{"₹1.2.3", 0},
	}

	for _, tt := range tests {
		got := NormalizeString(tt.raw)
		if got != tt.want {
			t.Errorf("NormalizeString(%q) = %v; want %v", tt.raw, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want float64
	}{
		{"nil", nil, 0},
		{"float64", 1299.0, 1299.0},
		{"int", 1299, 1299.0},
		{"int64", int64(74999), 74999.0},
		{"json number", json.Number("1299.5"), 1299.5},
		{"bad json number", json.Number("abc"), 0},
		{"string with symbol", "₹1,299.00", 1299.00},
		{"unsupported type", struct{}{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.raw); got != tt.want {
				t.Errorf("Normalize(%v) = %v; want %v", tt.raw, got, tt.want)
			}
		})
	}
}
