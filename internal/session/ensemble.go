package session

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/sorting"
)

// InputFunc produces the input for one ensemble member.
type InputFunc func(seed int64) ([]int, error)

// Ensemble traces one algorithm over inputs drawn from consecutive seeds.
// Each member runs in its own goroutine with its own metrics.
type Ensemble struct {
	kind      sorting.Kind
	numRuns   int
	seedStart int64
	input     InputFunc
	log       logrus.FieldLogger
}

func NewEnsemble(kind sorting.Kind, numRuns int, seedStart int64, input InputFunc, log logrus.FieldLogger) *Ensemble {
	return &Ensemble{kind: kind, numRuns: numRuns, seedStart: seedStart, input: input, log: log}
}

func (e *Ensemble) Run(ctx context.Context) ([]*Result, error) {
	if e.numRuns < 0 {
		return nil, fmt.Errorf("%w: %d runs", ErrInvalidRuns, e.numRuns)
	}
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			data, err := e.input(e.seedStart + int64(idx))
			if err != nil {
				errs[idx] = err
				return
			}
			s := New(Config{Kind: e.kind, Data: data}, e.log)
			if err := s.Setup(metrics.Default()); err != nil {
				errs[idx] = err
				return
			}
			results[idx], errs[idx] = s.Run(ctx)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}

// Summary is the mean of each final metric across an ensemble.
type Summary struct {
	Kind  sorting.Kind
	Runs  int
	Means map[string]float64
}

// Names returns the metric names in stable order.
func (s Summary) Names() []string {
	names := make([]string, 0, len(s.Means))
	for name := range s.Means {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Summarize(kind sorting.Kind, results []*Result) Summary {
	sum := Summary{Kind: kind, Runs: len(results), Means: map[string]float64{}}
	if len(results) == 0 {
		return sum
	}
	for _, r := range results {
		for name, v := range r.Metrics {
			sum.Means[name] += v
		}
	}
	for name := range sum.Means {
		sum.Means[name] /= float64(len(results))
	}
	return sum
}
