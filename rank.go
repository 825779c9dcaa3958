package jrsl

// nodeAt returns the node holding the element with the given 0-based rank,
// or nil when rank is out of range. The descent accumulates spans and only
// advances while doing so does not overshoot the target position.
func (sl *SkipList[K, V]) nodeAt(rank int) *node[K, V] {
	if rank < 0 || rank >= sl.length {
		return nil
	}
	target := rank + 1 // spans sum to 1-based positions
	traversed := 0
	x := sl.head
	for i := sl.level - 1; i >= 0; i-- {
		for x.tower[i].to != nil && traversed+x.tower[i].span <= target {
			traversed += x.tower[i].span
			x = x.tower[i].to
		}
		if traversed == target {
			return x
		}
	}
	return nil
}

// KeyAt returns the key with the given 0-based rank in ascending order. The
// boolean is false when rank is outside [0, Len()).
func (sl *SkipList[K, V]) KeyAt(rank int) (K, bool) {
	if n := sl.nodeAt(rank); n != nil {
		return n.key, true
	}
	var zero K
	return zero, false
}

// ValueAt returns the value stored at the given 0-based rank.
func (sl *SkipList[K, V]) ValueAt(rank int) (V, bool) {
	if n := sl.nodeAt(rank); n != nil {
		return n.value, true
	}
	var zero V
	return zero, false
}

// Rank returns the 0-based position of key among all stored keys, the
// inverse of KeyAt. The boolean is false when the key is absent.
func (sl *SkipList[K, V]) Rank(key K) (int, bool) {
	traversed := 0
	x := sl.head
	for i := sl.level - 1; i >= 0; i-- {
		for x.tower[i].to != nil && sl.cmp(x.tower[i].to.key, key) <= 0 {
			traversed += x.tower[i].span
			x = x.tower[i].to
		}
		if x != sl.head && sl.cmp(x.key, key) == 0 {
			return traversed - 1, true
		}
	}
	return 0, false
}
