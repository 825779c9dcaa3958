package jrsl

import (
	"cmp"
	"math"
	randv2 "math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

// stubSource replays a fixed sequence of words, repeating the last one.
type stubSource struct {
	values []uint64
	idx    int
}

func (s *stubSource) Uint64() uint64 {
	if len(s.values) == 0 {
		return 0
	}
	if s.idx >= len(s.values) {
		return s.values[len(s.values)-1]
	}
	v := s.values[s.idx]
	s.idx++
	return v
}

func TestRandomLevelDeterministicWithStubSource(t *testing.T) {
	// With p = 0.5 a single word decides the height: one plus its count of
	// trailing zero bits, capped at the maximum level.
	src := &stubSource{values: []uint64{
		0b1,    // level 1
		0b100,  // level 3
		0b1000, // level 4
		0,      // all zeros, capped
	}}
	list, err := New[int, int](cmp.Compare[int],
		WithMaxLevel(8), WithRandSource(src))
	require.NoError(t, err)

	require.Equal(t, 1, list.randomLevel())
	require.Equal(t, 3, list.randomLevel())
	require.Equal(t, 4, list.randomLevel())
	require.Equal(t, 8, list.randomLevel())
}

func TestRandomLevelGenericProbabilityPath(t *testing.T) {
	const one = ^uint64(0) // maps to ~1.0, never promotes

	src := &stubSource{values: []uint64{0, 0, one}}
	list, err := New[int, int](cmp.Compare[int],
		WithProbability(0.25), WithMaxLevel(16), WithRandSource(src))
	require.NoError(t, err)

	// Two promoting draws then a non-promoting one.
	require.Equal(t, 3, list.randomLevel())

	// All-promoting draws stop at the cap.
	src = &stubSource{values: []uint64{0}}
	list, err = New[int, int](cmp.Compare[int],
		WithProbability(0.25), WithMaxLevel(5), WithRandSource(src))
	require.NoError(t, err)
	require.Equal(t, 5, list.randomLevel())
}

func TestRandomLevelDistribution(t *testing.T) {
	for _, p := range []float64{0.5, 0.25} {
		list, err := New[int, int](cmp.Compare[int],
			WithProbability(p),
			WithRandSource(randv2.NewPCG(0x123456789abcdef, 42)))
		require.NoError(t, err)

		numSamples := 1_000_000
		counts := make(map[int]int)
		for range numSamples {
			counts[list.randomLevel()]++
		}

		// Check that the distribution is roughly geometric: the node count
		// at level i+1 should be about p times the count at level i. The
		// promoted count follows a Binomial(count1, p) distribution, so the
		// ratio has mean p and variance p(1-p)/count1; tolerate five
		// standard deviations to avoid spurious failures once the samples
		// thin out at the higher levels.
		for i := 1; i < list.maxLevel; i++ {
			count1 := counts[i]
			if count1 == 0 {
				continue
			}
			ratio := float64(counts[i+1]) / float64(count1)
			tolerance := 5 * math.Sqrt(p*(1-p)/float64(count1))
			if math.Abs(ratio-p) > tolerance {
				t.Errorf("p=%v: expected ratio between level %d and %d around %.2f ± %.4f, got %.2f",
					p, i, i+1, p, tolerance, ratio)
			}
		}
	}
}
