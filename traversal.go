package jrsl

// ForEach walks level 0 in ascending key order, invoking fn for each
// element until fn returns false or the list is exhausted. fn must not
// mutate the list; mutation during traversal is not supported.
func (sl *SkipList[K, V]) ForEach(fn func(key K, value V) bool) {
	for x := sl.head.tower[0].to; x != nil; x = x.tower[0].to {
		if !fn(x.key, x.value) {
			return
		}
	}
}

// Keys returns all keys in ascending order.
func (sl *SkipList[K, V]) Keys() []K {
	keys := make([]K, 0, sl.length)
	for x := sl.head.tower[0].to; x != nil; x = x.tower[0].to {
		keys = append(keys, x.key)
	}
	return keys
}
