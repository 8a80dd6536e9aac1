package unitinterval

import (
	"math"
	"math/rand/v2"
	"testing"
)

// fixedSource returns the same value on every call.
type fixedSource uint64

func (s fixedSource) Uint64() uint64 {
	return uint64(s)
}

func TestMantissa(t *testing.T) {
	if got := mantissa[float32](); got != 24 {
		t.Errorf("mantissa[float32]() = %v, want 24", got)
	}
	if got := mantissa[float64](); got != 53 {
		t.Errorf("mantissa[float64]() = %v, want 53", got)
	}
	type ratio float32
	if got := mantissa[ratio](); got != 24 {
		t.Errorf("mantissa[ratio]() = %v, want 24", got)
	}
}

func TestRand(t *testing.T) {
	t.Run("float32", func(t *testing.T) {
		tests := []struct {
			src  fixedSource
			want float32
		}{
			{1, 0},
			{1 << 63, 0.5},
			{math.MaxUint64, 1},
		}
		for _, tt := range tests {
			got := Rand[float32](tt.src)
			if got.Get() != tt.want {
				t.Errorf("Rand[float32](%#x) = %v, want %v", uint64(tt.src), got, tt.want)
			}
		}
	})

	t.Run("float64", func(t *testing.T) {
		tests := []struct {
			src  fixedSource
			want float64
		}{
			{1, 0},
			{1 << 63, 0.5},
			{math.MaxUint64, 1},
		}
		for _, tt := range tests {
			got := Rand[float64](tt.src)
			if got.Get() != tt.want {
				t.Errorf("Rand[float64](%#x) = %v, want %v", uint64(tt.src), got, tt.want)
			}
		}
	})
}

func TestSampler_Range(t *testing.T) {
	s32 := NewSampler[float32](rand.NewPCG(1, 2))
	s64 := NewSampler[float64](rand.NewPCG(3, 4))
	for i := 0; i < 10000; i++ {
		if u := s32.Next(); !inRange(u.Get()) {
			t.Fatalf("Sampler[float32].Next() = %v, out of range", u)
		}
		if u := s64.Next(); !inRange(u.Get()) {
			t.Fatalf("Sampler[float64].Next() = %v, out of range", u)
		}
	}
}

func TestSampler_Mean(t *testing.T) {
	const n = 100000
	s := NewSampler[float64](rand.NewPCG(5, 6))
	var sum float64
	for i := 0; i < n; i++ {
		sum += s.Next().Get()
	}
	// Standard error of the mean of U(0, 1) is 1/sqrt(12n), about 0.0009.
	if mean := sum / n; math.Abs(mean-0.5) > 0.01 {
		t.Errorf("mean of %v samples = %v, want 0.5", n, mean)
	}
}

// TestSampler_ReachesOne checks that 1 is an actual result, not just an
// allowed one. Each float32 draw is 1 with probability 1/(2^24+1), so the
// budget below misses with probability about e^-16.
func TestSampler_ReachesOne(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping long-running sampling test in short mode")
	}
	const budget = 1 << 28
	s := NewSampler[float32](rand.NewPCG(rand.Uint64(), rand.Uint64()))
	for i := 0; i < budget; i++ {
		if s.Next().IsOne() {
			return
		}
	}
	t.Errorf("Sampler[float32] did not produce 1 in %v draws", budget)
}
