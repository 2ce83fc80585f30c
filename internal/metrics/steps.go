package metrics

import "github.com/san-kum/sortviz/internal/sorting"

type Steps struct {
	name  string
	count int
}

func NewSteps() *Steps {
	return &Steps{name: "steps"}
}

func (s *Steps) Name() string { return s.name }

func (s *Steps) Observe(sorting.Snapshot) { s.count++ }

func (s *Steps) Value() float64 { return float64(s.count) }

func (s *Steps) Reset() { s.count = 0 }

// Pairs counts frames that highlight two positions: a compare, an insertion
// shift or a swap. It is not a count of element comparisons.
type Pairs struct {
	name  string
	count int
}

func NewPairs() *Pairs {
	return &Pairs{name: "pairs"}
}

func (c *Pairs) Name() string { return c.name }

func (c *Pairs) Observe(s sorting.Snapshot) {
	if len(s.Active) == 2 {
		c.count++
	}
}

func (c *Pairs) Value() float64 { return float64(c.count) }

func (c *Pairs) Reset() { c.count = 0 }
