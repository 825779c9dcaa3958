// Package datagen produces deterministic synthetic key streams for the
// benchmark driver and tests.
package datagen

import "math"

// XorShift64Star is a xorshift64* generator. It satisfies the math/rand/v2
// Source interface, so it can also drive reproducible skip list leveling.
type XorShift64Star struct {
	state uint64
}

// NewXorShift64Star returns a generator seeded with seed. A zero seed is
// replaced, since xorshift has an all-zero fixed point.
func NewXorShift64Star(seed uint64) *XorShift64Star {
	if seed == 0 {
		seed = 1
	}
	return &XorShift64Star{state: seed}
}

// Uint64 returns the next 64 random bits.
func (x *XorShift64Star) Uint64() uint64 {
	s := x.state
	s ^= s >> 12
	s ^= s << 25
	s ^= s >> 27
	x.state = s
	return s * 0x2545F4914F6CDD1D
}

// Float64 returns a uniform value in [0,1).
func (x *XorShift64Star) Float64() float64 {
	return float64(x.Uint64()>>11) * (1.0 / (1 << 53))
}

// IntN returns a uniform value in [0,n).
func (x *XorShift64Star) IntN(n int) int {
	if n <= 1 {
		return 0
	}
	return int(x.Uint64() % uint64(n))
}

// Uniform draws keys uniformly from [0,n).
type Uniform struct {
	n   int
	rng *XorShift64Star
}

func NewUniform(n int, seed uint64) *Uniform {
	return &Uniform{n: n, rng: NewXorShift64Star(seed)}
}

func (u *Uniform) Next() int {
	return u.rng.IntN(u.n)
}

// Zipf draws keys in [0,n) with weights 1/(i+b)^a, shuffled so that the hot
// keys are not clustered at the low end of the key space.
type Zipf struct {
	n   int
	cdf []float64
	rng *XorShift64Star
}

func NewZipf(n int, a, b float64, seed uint64) *Zipf {
	rng := NewXorShift64Star(seed)
	weights := make([]float64, n)
	var sum float64
	for i := 1; i <= n; i++ {
		weights[i-1] = 1.0 / math.Pow(float64(i)+b, a)
		sum += weights[i-1]
	}
	for i := range weights {
		weights[i] /= sum
	}
	// Fisher-Yates shuffle of the weights.
	for i := n - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		weights[i], weights[j] = weights[j], weights[i]
	}
	cdf := make([]float64, n)
	acc := 0.0
	for i, w := range weights {
		acc += w
		cdf[i] = acc
	}
	return &Zipf{n: n, cdf: cdf, rng: rng}
}

// Next returns the next key via binary search over the CDF.
func (z *Zipf) Next() int {
	r := z.rng.Float64()
	lo, hi := 0, z.n-1
	for lo < hi {
		mid := (lo + hi) / 2
		if z.cdf[mid] < r {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
