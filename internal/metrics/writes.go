package metrics

import "github.com/san-kum/sortviz/internal/sorting"

// Writes counts array positions whose displayed value changed from one
// frame to the next.
type Writes struct {
	name  string
	prev  []int
	total int
}

func NewWrites() *Writes {
	return &Writes{name: "writes"}
}

func (w *Writes) Name() string { return w.name }

func (w *Writes) Observe(s sorting.Snapshot) {
	if w.prev != nil && len(w.prev) == len(s.Values) {
		for i, v := range s.Values {
			if v != w.prev[i] {
				w.total++
			}
		}
	}
	w.prev = append(w.prev[:0], s.Values...)
	if w.prev == nil {
		w.prev = []int{}
	}
}

func (w *Writes) Value() float64 { return float64(w.total) }

func (w *Writes) Reset() {
	w.prev = nil
	w.total = 0
}
