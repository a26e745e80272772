package collision

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTableCollisions(t *testing.T) {
	tbl := NewTable()
	for _, v := range []uint64{9, 3, 3, 7, 9, 9, 1, 3, 5} {
		tbl.Add(v)
	}

	require.Equal(t, uint64(9), tbl.Total())
	require.Equal(t, 5, tbl.Len())
	require.Equal(t, uint32(3), tbl.Count(9))
	require.Equal(t, uint32(0), tbl.Count(42))

	// one entry per recurring value, sorted
	require.Equal(t, []Collision{{Seed: 3, Count: 3}, {Seed: 9, Count: 3}}, tbl.Collisions())
}

func TestTableNoCollisions(t *testing.T) {
	tbl := NewTable()
	for v := uint64(0); v < 100; v++ {
		tbl.Add(v)
	}
	require.NotNil(t, tbl.Collisions())
	require.Empty(t, tbl.Collisions())
}

func TestTableCollisionsMatchCounts(t *testing.T) {
	tbl := NewTable()
	for i := uint64(0); i < 10_000; i++ {
		tbl.Add(i * i % 997)
	}

	reported := map[uint64]bool{}
	for _, c := range tbl.Collisions() {
		require.False(t, reported[c.Seed], "value %d reported twice", c.Seed)
		reported[c.Seed] = true
		require.GreaterOrEqual(t, c.Count, uint32(2))
		require.Equal(t, tbl.Count(c.Seed), c.Count)
	}
	for v := uint64(0); v < 997; v++ {
		require.Equal(t, tbl.Count(v) >= 2, reported[v], "value %d", v)
	}
}

func TestTableMerge(t *testing.T) {
	a := NewTable()
	a.Add(1)
	a.Add(2)
	b := NewTable()
	b.Add(2)
	b.Add(3)

	a.Merge(b)
	require.Equal(t, uint64(4), a.Total())
	require.Equal(t, 3, a.Len())
	require.Equal(t, []Collision{{Seed: 2, Count: 2}}, a.Collisions())
}
