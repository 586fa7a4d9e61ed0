package rot

import (
	"math"
	"testing"
)

func TestCoerceShift(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want int
	}{
		{"zero", 0, 0},
		{"positive", 13, 13},
		{"negative", -1, -1},
		{"fractional", 13.9, 13},
		{"negative fractional", -13.9, -13},
		{"below one", 0.5, 0},
		{"nan", math.NaN(), 0},
		{"positive infinity", math.Inf(1), 0},
		{"negative infinity", math.Inf(-1), 0},
		{"beyond int range", 1e300, 0},
		{"beyond negative int range", -1e300, 0},
		// float64(MaxInt) rounds up past the int range; float64(MinInt)
		// is exact and admitted.
		{"max int", math.MaxInt, 0},
		{"min int", math.MinInt, math.MinInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if have, want := CoerceShift(tt.v), tt.want; have != want {
				t.Fatalf("Coerced %v to %d, expected %d", tt.v, have, want)
			}
		})
	}
}

func TestNormalizeShift(t *testing.T) {
	tests := []struct {
		name          string
		shift, length int
		want          int
	}{
		{"identity", 13, 26, 13},
		{"zero", 0, 26, 0},
		{"full wrap", 26, 26, 0},
		{"above length", 27, 26, 1},
		{"negative", -1, 26, 25},
		{"negative wrap", -27, 26, 25},
		{"negative full", -26, 26, 0},
		{"small modulus", 47, 10, 7},
		{"zero length", 5, 0, 0},
		{"negative length", 5, -3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if have, want := NormalizeShift(tt.shift, tt.length), tt.want; have != want {
				t.Fatalf("Normalized %d mod %d to %d, expected %d", tt.shift, tt.length, have, want)
			}
		})
	}
}
