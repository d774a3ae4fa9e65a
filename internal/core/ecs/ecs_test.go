package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blip struct{ n int }

func TestEntityPoolGenerations(t *testing.T) {
	p := NewEntityPool()
	a := p.Create()
	require.False(t, a.IsZero())
	require.True(t, p.Alive(a))

	require.True(t, p.Destroy(a))
	assert.False(t, p.Alive(a))
	assert.False(t, p.Destroy(a), "double destroy is rejected")

	b := p.Create()
	assert.Equal(t, a.Index(), b.Index(), "index is recycled")
	assert.NotEqual(t, a.Generation(), b.Generation())
	assert.False(t, p.Alive(a), "stale handle stays dead after reuse")
	assert.True(t, p.Alive(b))
	assert.Equal(t, 1, p.Live())
	assert.False(t, p.Alive(0))
}

func TestEntityPoolReset(t *testing.T) {
	p := NewEntityPool()
	a, b := p.Create(), p.Create()
	p.Reset()
	assert.False(t, p.Alive(a))
	assert.False(t, p.Alive(b))
	assert.Zero(t, p.Live())
	c := p.Create()
	assert.True(t, p.Alive(c))
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, b, c)
}

func TestStoreKeepsInsertionOrderAcrossCompact(t *testing.T) {
	w := NewWorld()
	s := NewStore[blip]()
	w.Registry().Register(s)

	ids := make([]EntityID, 5)
	for i := range ids {
		ids[i] = w.CreateEntity()
		s.Add(ids[i], &blip{n: i})
	}

	var seen []int
	s.Each(func(id EntityID, b *blip) {
		seen = append(seen, b.n)
		if b.n == 1 {
			// later entries removed mid-scan
			w.Destroy(ids[2])
			w.Destroy(ids[3])
		}
	})
	assert.Equal(t, []int{0, 1, 4}, seen, "removed entries are skipped in the same scan")
	assert.Equal(t, 3, s.Len())

	w.Compact()
	assert.Equal(t, []EntityID{ids[0], ids[1], ids[4]}, s.IDs())
	got, ok := s.Get(ids[4])
	require.True(t, ok)
	assert.Equal(t, 4, got.n)
	assert.False(t, w.Alive(ids[2]))
}

func TestStoreFindFirstAndReverse(t *testing.T) {
	s := NewStore[blip]()
	p := NewEntityPool()
	for i := 0; i < 3; i++ {
		s.Add(p.Create(), &blip{n: i})
	}
	_, first, ok := s.First()
	require.True(t, ok)
	assert.Equal(t, 0, first.n)

	_, found, ok := s.Find(func(b *blip) bool { return b.n == 2 })
	require.True(t, ok)
	assert.Equal(t, 2, found.n)

	var rev []int
	s.EachReverse(func(_ EntityID, b *blip) { rev = append(rev, b.n) })
	assert.Equal(t, []int{2, 1, 0}, rev)
}

func TestStoreClearReleases(t *testing.T) {
	w := NewWorld()
	s := NewStore[blip]()
	w.Registry().Register(s)
	a := w.CreateEntity()
	s.Add(a, &blip{})

	w.Release(s.Clear())
	assert.Zero(t, s.Len())
	assert.False(t, w.Alive(a))
	assert.False(t, w.Destroy(a))
}

func TestStoreScanStops(t *testing.T) {
	s := NewStore[blip]()
	p := NewEntityPool()
	for i := 0; i < 5; i++ {
		s.Add(p.Create(), &blip{n: i})
	}
	var fwd, rev []int
	s.Scan(func(_ EntityID, b *blip) bool {
		fwd = append(fwd, b.n)
		return b.n < 2
	})
	s.ScanReverse(func(_ EntityID, b *blip) bool {
		rev = append(rev, b.n)
		return b.n > 3
	})
	assert.Equal(t, []int{0, 1, 2}, fwd)
	assert.Equal(t, []int{4, 3}, rev)
}
