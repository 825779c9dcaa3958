// Package jrsl implements an indexable skip list: a comparator-ordered
// associative container with O(log n) insert, remove, exact-key search and
// rank (order statistics) access. Every forward edge carries a span counting
// the level-0 positions it skips, which is what makes rank queries cheap.
//
// The list is single-threaded by design. Callers that share a list across
// goroutines must serialize mutations themselves.
package jrsl

import (
	"errors"
	"math"
	randv2 "math/rand/v2"
)

const (
	// DefaultMaxLevel bounds tower height when no sizing hint is given.
	DefaultMaxLevel = 32
	// DefaultProbability is the per-level promotion probability.
	DefaultProbability = 0.5
)

// ErrInvalidConfig is returned by New when the promotion probability is not
// in the open interval (0,1) or the maximum level is below 1.
var ErrInvalidConfig = errors.New("jrsl: probability must be in (0,1) and max level at least 1")

// Comparator defines a total order over keys. It returns a negative number
// if a < b, zero if a == b and a positive number if a > b. The comparator
// must stay consistent for the lifetime of the list, and callers must not
// mutate a key they have already inserted.
type Comparator[K any] func(a, b K) int

type settings struct {
	probability float64
	maxLevel    int
	source      randv2.Source
}

// Option adjusts list construction.
type Option func(*settings)

// WithProbability sets the per-level promotion probability.
func WithProbability(p float64) Option {
	return func(s *settings) { s.probability = p }
}

// WithMaxLevel caps tower height. RecommendedMaxLevel derives a sensible cap
// from the expected element count.
func WithMaxLevel(n int) Option {
	return func(s *settings) { s.maxLevel = n }
}

// WithRandSource replaces the level-selection randomness, e.g. with a fixed
// sequence for reproducible tests.
func WithRandSource(src randv2.Source) Option {
	return func(s *settings) { s.source = src }
}

// SkipList is a comparator-ordered, span-indexed skip list. The zero value
// is not usable; construct with New or NewWithFinalizer.
type SkipList[K, V any] struct {
	cmp         Comparator[K]
	finalize    func(V)
	probability float64
	maxLevel    int
	level       int // highest populated level, at least 1
	length      int
	head        *node[K, V]
	src         randv2.Source
}

// New returns an empty list ordered by cmp. Discarded values are handed back
// to the caller on replace and remove.
func New[K, V any](cmp Comparator[K], opts ...Option) (*SkipList[K, V], error) {
	return NewWithFinalizer[K, V](cmp, nil, opts...)
}

// NewWithFinalizer returns an empty list that invokes finalize exactly once
// on every value it discards: the previous value on replace, the removed
// value on Remove, and each stored value on Clear. When a finalizer is set,
// Insert and Remove return the zero value in its place; the finalizer is the
// sole owner of discarded values. A nil finalize behaves like New.
func NewWithFinalizer[K, V any](cmp Comparator[K], finalize func(V), opts ...Option) (*SkipList[K, V], error) {
	s := settings{
		probability: DefaultProbability,
		maxLevel:    DefaultMaxLevel,
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.probability <= 0 || s.probability >= 1 || s.maxLevel < 1 {
		return nil, ErrInvalidConfig
	}
	if s.source == nil {
		s.source = randv2.NewPCG(randv2.Uint64(), randv2.Uint64())
	}
	return &SkipList[K, V]{
		cmp:         cmp,
		finalize:    finalize,
		probability: s.probability,
		maxLevel:    s.maxLevel,
		level:       1,
		head:        newSentinel[K, V](s.maxLevel),
		src:         s.source,
	}, nil
}

// RecommendedMaxLevel returns the smallest level cap at which the expected
// number of nodes promoted that high, given expectedSize elements and
// promotion probability p, drops to one or below. It is advisory: a list
// that outgrows the estimate degrades toward linear search but stays
// correct.
func RecommendedMaxLevel(expectedSize int, p float64) int {
	if expectedSize < 2 || p <= 0 || p >= 1 {
		return 1
	}
	level := int(math.Ceil(math.Log(float64(expectedSize)) / math.Log(1/p)))
	if level < 1 {
		return 1
	}
	return level
}

// Get returns the value stored under key. The boolean is false when the key
// is absent. The returned value is a view; the list still owns it.
func (sl *SkipList[K, V]) Get(key K) (V, bool) {
	x := sl.head
	for i := sl.level - 1; i >= 0; i-- {
		for x.tower[i].to != nil && sl.cmp(x.tower[i].to.key, key) < 0 {
			x = x.tower[i].to
		}
	}
	if next := x.tower[0].to; next != nil && sl.cmp(next.key, key) == 0 {
		return next.value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present.
func (sl *SkipList[K, V]) Contains(key K) bool {
	_, ok := sl.Get(key)
	return ok
}

// Len returns the number of stored elements.
func (sl *SkipList[K, V]) Len() int {
	return sl.length
}

// Level returns the highest currently populated level.
func (sl *SkipList[K, V]) Level() int {
	return sl.level
}

// MaxLevel returns the tower height cap the list was built with.
func (sl *SkipList[K, V]) MaxLevel() int {
	return sl.maxLevel
}

// Clear discards every element, invoking the finalizer on each stored value
// if one is configured, and resets the list to its empty state.
func (sl *SkipList[K, V]) Clear() {
	if sl.finalize != nil {
		for x := sl.head.tower[0].to; x != nil; x = x.tower[0].to {
			sl.finalize(x.value)
		}
	}
	for i := range sl.head.tower {
		sl.head.tower[i] = link[K, V]{}
	}
	sl.level = 1
	sl.length = 0
}
