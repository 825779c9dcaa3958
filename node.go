package jrsl

// link is one forward edge of a node's tower. span counts the level-0
// positions the edge skips: following span level-0 steps from the edge's
// origin lands exactly on its destination.
type link[K, V any] struct {
	to   *node[K, V]
	span int
}

// node holds one key/value pair and its tower of forward links.
type node[K, V any] struct {
	key   K
	value V
	tower []link[K, V]
}

func newNode[K, V any](key K, value V, level int) *node[K, V] {
	return &node[K, V]{
		key:   key,
		value: value,
		tower: make([]link[K, V], level),
	}
}

// newSentinel returns the head node. It carries no key or value, owns one
// forward slot per possible level, and is never visible to callers.
func newSentinel[K, V any](maxLevel int) *node[K, V] {
	return &node[K, V]{tower: make([]link[K, V], maxLevel)}
}
