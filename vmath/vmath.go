package vmath

import "math"

const (
	// HalfPi is a quarter turn in radians
	HalfPi = math.Pi / 2
	// TwoPi is a full turn in radians
	TwoPi = 2 * math.Pi

	// Epsilon is the magnitude below which a vector is treated as degenerate
	Epsilon = 1e-9
)

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ApproxEqual reports whether a and b differ by at most tol
func ApproxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// --- Randomness ---

// Rand is the random source consumed by spawn and fragmentation logic
// Injected explicitly so tests can supply a deterministic sequence
type Rand interface {
	// Float64 returns a value in [0, 1)
	Float64() float64
	// Intn returns a value in [0, n); 0 when n <= 0
	Intn(n int) int
}

// FastRand is a xorshift64 generator, not safe for concurrent use
type FastRand struct {
	state uint64
}

var _ Rand = (*FastRand)(nil)

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 uses the top 53 bits for a uniform mantissa
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Uniform returns a value in [lo, hi)
func Uniform(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// RandomAngle returns a rotation in [0, 2π)
func RandomAngle(r Rand) float64 {
	return r.Float64() * TwoPi
}

// UnitVector returns a uniformly oriented vector of length 1
func UnitVector(r Rand) Vec2 {
	s, c := math.Sincos(RandomAngle(r))
	return Vec2{X: c, Y: s}
}
