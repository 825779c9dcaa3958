package jrsl

// findPath descends from the top level toward key, recording in update the
// last node visited at each level before dropping down, and in rank the
// number of level-0 positions traversed up to update[i]. It returns the
// first level-0 node not before key, or nil at the end of the list.
//
// update and rank must have maxLevel slots; entries above the current level
// are filled with the sentinel and rank 0 so callers can splice new top
// levels without special cases.
func (sl *SkipList[K, V]) findPath(key K, update []*node[K, V], rank []int) *node[K, V] {
	x := sl.head
	for i := sl.level - 1; i >= 0; i-- {
		if i == sl.level-1 {
			rank[i] = 0
		} else {
			rank[i] = rank[i+1]
		}
		for x.tower[i].to != nil && sl.cmp(x.tower[i].to.key, key) < 0 {
			rank[i] += x.tower[i].span
			x = x.tower[i].to
		}
		update[i] = x
	}
	for i := sl.level; i < sl.maxLevel; i++ {
		update[i] = sl.head
		rank[i] = 0
	}
	return x.tower[0].to
}

// Insert stores value under key. If the key already exists its value is
// replaced in place and no new node is created: with a finalizer configured
// the old value is finalized and the zero value returned, otherwise the old
// value is returned. The boolean reports whether a replacement happened.
func (sl *SkipList[K, V]) Insert(key K, value V) (V, bool) {
	update := make([]*node[K, V], sl.maxLevel)
	rank := make([]int, sl.maxLevel)
	var zero V

	next := sl.findPath(key, update, rank)
	if next != nil && sl.cmp(next.key, key) == 0 {
		old := next.value
		next.value = value
		if sl.finalize != nil {
			sl.finalize(old)
			return zero, true
		}
		return old, true
	}

	level := sl.randomLevel()
	if level > sl.level {
		for i := sl.level; i < level; i++ {
			// A fresh top level spans the whole list until the splice
			// below carves out the new node's position.
			sl.head.tower[i].span = sl.length
		}
		sl.level = level
	}

	n := newNode(key, value, level)
	for i := 0; i < level; i++ {
		n.tower[i].to = update[i].tower[i].to
		update[i].tower[i].to = n

		n.tower[i].span = update[i].tower[i].span - (rank[0] - rank[i])
		update[i].tower[i].span = rank[0] - rank[i] + 1
	}
	// Levels above the new tower gained one downstream position.
	for i := level; i < sl.level; i++ {
		update[i].tower[i].span++
	}

	sl.length++
	return zero, false
}

// Remove unlinks key from every level it occupies. It returns the removed
// value, or the zero value when a finalizer consumed it or when the key was
// absent. Removing an absent key is an idempotent no-op: the boolean is
// false and the list is untouched.
func (sl *SkipList[K, V]) Remove(key K) (V, bool) {
	update := make([]*node[K, V], sl.maxLevel)
	rank := make([]int, sl.maxLevel)
	var zero V

	next := sl.findPath(key, update, rank)
	if next == nil || sl.cmp(next.key, key) != 0 {
		return zero, false
	}

	for i := 0; i < sl.level; i++ {
		if update[i].tower[i].to == next {
			update[i].tower[i].span += next.tower[i].span - 1
			update[i].tower[i].to = next.tower[i].to
		} else {
			update[i].tower[i].span--
		}
	}
	for sl.level > 1 && sl.head.tower[sl.level-1].to == nil {
		sl.head.tower[sl.level-1].span = 0
		sl.level--
	}
	sl.length--

	old := next.value
	if sl.finalize != nil {
		sl.finalize(old)
		return zero, true
	}
	return old, true
}
