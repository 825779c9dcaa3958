package jrsl

// Iterator provides a forward-only view over the list in ascending key
// order. It starts positioned before the first element; the list must not
// be mutated while an iterator is in use.
type Iterator[K, V any] struct {
	sl      *SkipList[K, V]
	current *node[K, V]
	valid   bool
}

// Iterator returns a new iterator positioned before the first element.
func (sl *SkipList[K, V]) Iterator() *Iterator[K, V] {
	return &Iterator[K, V]{sl: sl}
}

// Next advances the iterator and reports whether it landed on an element.
// The first call moves onto the first element.
func (it *Iterator[K, V]) Next() bool {
	if it == nil || it.sl == nil {
		return false
	}
	start := it.current
	if !it.valid {
		start = it.sl.head
	}
	next := start.tower[0].to
	if next == nil {
		it.current = nil
		it.valid = false
		return false
	}
	it.current = next
	it.valid = true
	return true
}

// Valid reports whether the iterator currently points at an element.
func (it *Iterator[K, V]) Valid() bool {
	return it != nil && it.valid
}

// Key returns the key at the iterator's current position. It should only be
// called when Valid reports true.
func (it *Iterator[K, V]) Key() K {
	var zero K
	if !it.Valid() {
		return zero
	}
	return it.current.key
}

// Value returns the value at the iterator's current position. It should
// only be called when Valid reports true.
func (it *Iterator[K, V]) Value() V {
	var zero V
	if !it.Valid() {
		return zero
	}
	return it.current.value
}
