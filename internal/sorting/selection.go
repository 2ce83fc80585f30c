package sorting

type selectionPhase int

const (
	selectionStart selectionPhase = iota
	selectionScan
	selectionCheck
)

// SelectionSort fills position i with the minimum of the unsorted remainder.
type SelectionSort struct {
	base
	phase  selectionPhase
	i, j   int
	minIdx int
}

func NewSelectionSort(data []int) *SelectionSort {
	return &SelectionSort{base: newBase(data)}
}

func (s *SelectionSort) Kind() Kind { return Selection }

func (s *SelectionSort) Next() (Snapshot, bool) {
	if s.done {
		return Snapshot{}, false
	}
	arr, n := s.buf, len(s.buf)
	for {
		switch s.phase {
		case selectionStart:
			if s.i >= n {
				return s.final(), true
			}
			s.minIdx = s.i
			s.j = s.i + 1
			s.phase = selectionScan
			return s.snap(s.i-1, s.minIdx), true
		case selectionScan:
			if s.j < n {
				s.phase = selectionCheck
				return s.snap(s.i-1, s.minIdx, s.j), true
			}
			i, m := s.i, s.minIdx
			arr[i], arr[m] = arr[m], arr[i]
			s.i++
			s.phase = selectionStart
			return s.snap(i, i, m), true
		case selectionCheck:
			j := s.j
			s.j++
			s.phase = selectionScan
			if arr[j] < arr[s.minIdx] {
				s.minIdx = j
				return s.snap(s.i-1, s.minIdx), true
			}
		}
	}
}
