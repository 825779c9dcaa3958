package jrsl

import "math/bits"

// float64Unit converts the top 53 bits of a Uint64 into [0,1).
const float64Unit = 1.0 / (1 << 53)

// randomLevel draws a tower height: starting at 1, promote with independent
// probability p per step, capped at maxLevel. For the common p = 0.5 case a
// single draw suffices, since the count of trailing zero bits of a uniform
// word is geometrically distributed.
func (sl *SkipList[K, V]) randomLevel() int {
	if sl.maxLevel <= 1 {
		return 1
	}

	if sl.probability == 0.5 {
		zeros := bits.TrailingZeros64(sl.src.Uint64())
		if zeros > sl.maxLevel-1 {
			zeros = sl.maxLevel - 1
		}
		return 1 + zeros
	}

	level := 1
	for level < sl.maxLevel {
		if float64(sl.src.Uint64()>>11)*float64Unit >= sl.probability {
			break
		}
		level++
	}
	return level
}
