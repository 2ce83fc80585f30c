package metrics

import "github.com/san-kum/sortviz/internal/sorting"

// Metric accumulates a value over the snapshots of one run.
type Metric interface {
	Name() string
	Observe(s sorting.Snapshot)
	Value() float64
	Reset()
}

// Default returns the metrics shown for every run, in display order.
func Default() []Metric {
	return []Metric{
		NewSteps(),
		NewPairs(),
		NewWrites(),
		NewInversions(),
	}
}
