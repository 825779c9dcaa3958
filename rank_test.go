package jrsl

import (
	"cmp"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyAtMatchesEnumeration(t *testing.T) {
	list := newIntList(t)
	rng := rand.New(rand.NewSource(23))

	keys := rng.Perm(300)
	for _, k := range keys {
		list.Insert(k, "v")
	}

	sorted := append([]int(nil), keys...)
	sort.Ints(sorted)

	enumerated := list.Keys()
	require.Equal(t, sorted, enumerated)

	for i, want := range enumerated {
		got, ok := list.KeyAt(i)
		require.True(t, ok)
		require.Equal(t, want, got, "KeyAt(%d) must match the enumeration", i)
	}

	_, ok := list.KeyAt(list.Len())
	assert.False(t, ok)
	_, ok = list.KeyAt(-1)
	assert.False(t, ok)
}

func TestValueAt(t *testing.T) {
	list, err := New[int, int](cmp.Compare[int])
	require.NoError(t, err)

	for _, k := range []int{30, 10, 20} {
		list.Insert(k, k*10)
	}

	for i, want := range []int{100, 200, 300} {
		got, ok := list.ValueAt(i)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok := list.ValueAt(3)
	assert.False(t, ok)
}

func TestRankIsInverseOfKeyAt(t *testing.T) {
	list := newIntList(t)
	rng := rand.New(rand.NewSource(31))

	for _, k := range rng.Perm(500) {
		list.Insert(k*3, "v") // gaps between keys
	}

	for i := 0; i < list.Len(); i++ {
		k, ok := list.KeyAt(i)
		require.True(t, ok)
		r, ok := list.Rank(k)
		require.True(t, ok)
		require.Equal(t, i, r)
	}

	_, ok := list.Rank(1) // falls in a gap
	assert.False(t, ok)
	_, ok = list.Rank(-5)
	assert.False(t, ok)
}

func TestSpansSurviveMixedMutation(t *testing.T) {
	list := newIntList(t)
	rng := rand.New(rand.NewSource(37))

	present := make(map[int]struct{})
	for i := 0; i < 5000; i++ {
		k := rng.Intn(400)
		switch rng.Intn(3) {
		case 0, 1:
			list.Insert(k, "v")
			present[k] = struct{}{}
		case 2:
			_, removed := list.Remove(k)
			_, had := present[k]
			require.Equal(t, had, removed)
			delete(present, k)
		}
	}

	require.Equal(t, len(present), list.Len())
	checkInvariants(t, list)

	for i := 0; i < list.Len(); i++ {
		k, ok := list.KeyAt(i)
		require.True(t, ok)
		_, had := present[k]
		require.True(t, had)
	}
}
