package rt

import (
	"math"
	"testing"
)

func TestApproxEq(t *testing.T) {
	tests := []struct {
		name    string
		a, b    float64
		eps     float64
		want    bool
	}{
		{"equal", 1.0, 1.0, Epsilon, true},
		{"within", 1.0, 1.00005, Epsilon, true},
		{"near boundary", 1.0, 1.00009, Epsilon, true},
		{"outside", 1.0, 1.001, Epsilon, false},
		{"negative", -2.5, -2.50001, Epsilon, true},
		{"sign flip", 0.00001, -0.00001, Epsilon, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApproxEq(tt.a, tt.b, tt.eps); got != tt.want {
				t.Errorf("ApproxEq(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.eps, got, tt.want)
			}
		})
	}
}

func TestRelEq(t *testing.T) {
	tests := []struct {
		name   string
		a, b   float64
		maxRel float64
		want   bool
	}{
		{"equal", 1e9, 1e9, 1e-9, true},
		{"large scale within", 1e9, 1e9 + 1, 1e-8, true},
		{"large scale outside", 1e9, 1e9 + 100, 1e-8, false},
		{"small scale", 1e-9, 1.0000001e-9, 1e-6, true},
		{"zero vs tiny", 0, 1e-12, 1e-6, false}, // relative comparison breaks down at zero
		{"both zero", 0, 0, 1e-6, true},
		{"inf same sign", math.Inf(1), math.Inf(1), 1e-6, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RelEq(tt.a, tt.b, tt.maxRel); got != tt.want {
				t.Errorf("RelEq(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.maxRel, got, tt.want)
			}
		})
	}
}

func TestULPEq(t *testing.T) {
	next := math.Nextafter(1.0, 2.0)
	next4 := 1.0
	for i := 0; i < 4; i++ {
		next4 = math.Nextafter(next4, 2.0)
	}

	tests := []struct {
		name    string
		a, b    float64
		maxULPs uint64
		want    bool
	}{
		{"equal", 1.0, 1.0, 0, true},
		{"adjacent", 1.0, next, 1, true},
		{"adjacent zero budget", 1.0, next, 0, false},
		{"four apart", 1.0, next4, 4, true},
		{"four apart small budget", 1.0, next4, 3, false},
		{"signed zeros", 0.0, math.Copysign(0, -1), 0, true},
		{"opposite signs", 1.0, -1.0, 1 << 40, false},
		{"nan", math.NaN(), math.NaN(), 1 << 40, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ULPEq(tt.a, tt.b, tt.maxULPs); got != tt.want {
				t.Errorf("ULPEq(%v, %v, %d) = %v, want %v", tt.a, tt.b, tt.maxULPs, got, tt.want)
			}
		})
	}
}
