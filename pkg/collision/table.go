// Package collision counts seeds over a sweep and reports the values that
// occur more than once.
package collision

import "sort"

// Collision is a seed value observed more than once.
type Collision struct {
	Seed  uint64 `json:"seed"`
	Count uint32 `json:"count"`
}

// Table is a frequency table of seed values.
type Table struct {
	counts map[uint64]uint32
	total  uint64
}

func NewTable() *Table {
	return NewTableWithSize(0)
}

// NewTableWithSize preallocates room for n distinct values.
func NewTableWithSize(n int) *Table {
	return &Table{counts: make(map[uint64]uint32, n)}
}

func (t *Table) Add(seed uint64) {
	t.counts[seed]++
	t.total++
}

func (t *Table) Count(seed uint64) uint32 {
	return t.counts[seed]
}

// Len is the number of distinct values.
func (t *Table) Len() int {
	return len(t.counts)
}

// Total is the number of values added.
func (t *Table) Total() uint64 {
	return t.total
}

// Merge adds every count of o into t.
func (t *Table) Merge(o *Table) {
	for s, c := range o.counts {
		t.counts[s] += c
	}
	t.total += o.total
}

// Collisions returns one entry per value counted at least twice, sorted by
// seed.
func (t *Table) Collisions() []Collision {
	out := make([]Collision, 0)
	for s, c := range t.counts {
		if c > 1 {
			out = append(out, Collision{Seed: s, Count: c})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Seed < out[j].Seed
	})
	return out
}
