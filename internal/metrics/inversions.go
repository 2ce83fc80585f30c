package metrics

import "github.com/san-kum/sortviz/internal/sorting"

// Inversions reports the number of out-of-order pairs in the latest frame.
// It reaches zero exactly when the frame is sorted.
type Inversions struct {
	name    string
	current int
}

func NewInversions() *Inversions {
	return &Inversions{name: "inversions"}
}

func (m *Inversions) Name() string { return m.name }

func (m *Inversions) Observe(s sorting.Snapshot) {
	m.current = Count(s.Values)
}

func (m *Inversions) Value() float64 { return float64(m.current) }

func (m *Inversions) Reset() { m.current = 0 }

// Count returns the number of pairs i < j with values[i] > values[j].
func Count(values []int) int {
	n := 0
	for i := range values {
		for j := i + 1; j < len(values); j++ {
			if values[i] > values[j] {
				n++
			}
		}
	}
	return n
}
