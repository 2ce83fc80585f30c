package sorting

type bubblePhase int

const (
	bubbleCompare bubblePhase = iota
	bubbleSwap
)

// BubbleSort compares adjacent pairs over n passes. The boundary reported
// during pass i is n-i-1, one past the start of the already fixed suffix.
type BubbleSort struct {
	base
	phase bubblePhase
	i, j  int
}

func NewBubbleSort(data []int) *BubbleSort {
	return &BubbleSort{base: newBase(data)}
}

func (s *BubbleSort) Kind() Kind { return Bubble }

func (s *BubbleSort) Next() (Snapshot, bool) {
	if s.done {
		return Snapshot{}, false
	}
	arr, n := s.buf, len(s.buf)
	for {
		switch s.phase {
		case bubbleCompare:
			if s.i >= n {
				return s.final(), true
			}
			if s.j >= n-s.i-1 {
				s.i++
				s.j = 0
				continue
			}
			s.phase = bubbleSwap
			return s.snap(n-s.i-1, s.j, s.j+1), true
		case bubbleSwap:
			j := s.j
			s.j++
			s.phase = bubbleCompare
			if arr[j] > arr[j+1] {
				arr[j], arr[j+1] = arr[j+1], arr[j]
				return s.snap(n-s.i-1, j, j+1), true
			}
		}
	}
}
