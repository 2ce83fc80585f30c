package sorting

import (
	"iter"
	"slices"
)

// Snapshot is one frame of sort progress. Values is never shared with the
// engine's working buffer or with any other snapshot.
type Snapshot struct {
	Values   []int `json:"values"`
	Boundary int   `json:"boundary"`
	Active   []int `json:"active"`
}

// IsActive reports whether index i is highlighted.
func (s Snapshot) IsActive(i int) bool {
	return slices.Contains(s.Active, i)
}

// IsSorted reports whether index i lies inside the settled prefix.
func (s Snapshot) IsSorted(i int) bool {
	return i <= s.Boundary
}

// Engine produces the snapshots of a single run. Once Next has returned
// false the engine stays exhausted.
type Engine interface {
	Kind() Kind
	Len() int
	HasNext() bool
	Next() (Snapshot, bool)
}

// Collect drains e into a slice.
func Collect(e Engine) []Snapshot {
	var out []Snapshot
	for e.HasNext() {
		snap, ok := e.Next()
		if !ok {
			break
		}
		out = append(out, snap)
	}
	return out
}

// All exposes the remaining snapshots of e as a sequence.
func All(e Engine) iter.Seq[Snapshot] {
	return func(yield func(Snapshot) bool) {
		for e.HasNext() {
			snap, ok := e.Next()
			if !ok || !yield(snap) {
				return
			}
		}
	}
}

// base holds the working buffer and exhaustion flag shared by every engine.
type base struct {
	buf  []int
	done bool
}

func newBase(data []int) base {
	buf := make([]int, len(data))
	copy(buf, data)
	return base{buf: buf}
}

func (b *base) Len() int { return len(b.buf) }

func (b *base) HasNext() bool { return !b.done }

func (b *base) snap(boundary int, active ...int) Snapshot {
	return frame(slices.Clone(b.buf), boundary, active)
}

// final emits the fully sorted frame and marks the engine exhausted.
func (b *base) final() Snapshot {
	b.done = true
	return b.snap(len(b.buf) - 1)
}

func frame(values []int, boundary int, active []int) Snapshot {
	set := make([]int, 0, len(active))
	for _, idx := range active {
		if !slices.Contains(set, idx) {
			set = append(set, idx)
		}
	}
	return Snapshot{Values: values, Boundary: boundary, Active: set}
}
