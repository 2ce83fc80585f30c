package sorting

import "slices"

type insertionPhase int

const (
	insertionPick insertionPhase = iota
	insertionShift
)

// InsertionSort grows a sorted prefix by inserting arr[i] into [0, i).
// While shifting it shows the key at its candidate slot before the key is
// committed to the working buffer.
type InsertionSort struct {
	base
	phase insertionPhase
	i, j  int
	key   int
}

func NewInsertionSort(data []int) *InsertionSort {
	return &InsertionSort{base: newBase(data), i: 1}
}

func (s *InsertionSort) Kind() Kind { return Insertion }

func (s *InsertionSort) Next() (Snapshot, bool) {
	if s.done {
		return Snapshot{}, false
	}
	arr := s.buf
	switch s.phase {
	case insertionPick:
		if s.i >= len(arr) {
			return s.final(), true
		}
		s.key = arr[s.i]
		s.j = s.i - 1
		s.phase = insertionShift
		return s.snap(s.i-1, s.i), true
	case insertionShift:
		if s.j >= 0 && arr[s.j] > s.key {
			arr[s.j+1] = arr[s.j]
			display := slices.Clone(arr)
			display[s.j] = s.key
			snap := frame(display, s.i-1, []int{s.j, s.j + 1})
			s.j--
			return snap, true
		}
		at := s.j + 1
		arr[at] = s.key
		snap := s.snap(s.i, at)
		s.i++
		s.phase = insertionPick
		return snap, true
	}
	return Snapshot{}, false
}
