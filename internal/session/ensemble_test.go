package session

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/san-kum/sortviz/internal/input"
	"github.com/san-kum/sortviz/internal/logging"
	"github.com/san-kum/sortviz/internal/sorting"
)

func randomInput(seed int64) ([]int, error) {
	return input.Random(rand.New(rand.NewSource(seed)), 8, 1, 50), nil
}

func TestEnsembleRun(t *testing.T) {
	e := NewEnsemble(sorting.Selection, 6, 100, randomInput, logging.Discard())
	results, err := e.Run(context.Background())
	if err != nil {
		t.Fatalf("ensemble failed: %v", err)
	}
	if len(results) != 6 {
		t.Fatalf("got %d results, want 6", len(results))
	}
	for i, r := range results {
		want, _ := randomInput(100 + int64(i))
		for j := range want {
			if r.Input[j] != want[j] {
				t.Fatalf("run %d input %v, want %v", i, r.Input, want)
			}
		}
		if r.Metrics["inversions"] != 0 {
			t.Errorf("run %d ended with %v inversions", i, r.Metrics["inversions"])
		}
	}
}

func TestEnsembleInputError(t *testing.T) {
	boom := errors.New("boom")
	e := NewEnsemble(sorting.Bubble, 3, 0, func(int64) ([]int, error) { return nil, boom }, logging.Discard())
	if _, err := e.Run(context.Background()); !errors.Is(err, boom) {
		t.Errorf("expected input error, got %v", err)
	}
}

func TestSummarize(t *testing.T) {
	results := []*Result{
		{Metrics: map[string]float64{"steps": 4, "writes": 2}},
		{Metrics: map[string]float64{"steps": 6, "writes": 0}},
	}
	s := Summarize(sorting.Bubble, results)
	if s.Runs != 2 || s.Means["steps"] != 5 || s.Means["writes"] != 1 {
		t.Errorf("unexpected summary %+v", s)
	}
	if names := s.Names(); len(names) != 2 || names[0] != "steps" {
		t.Errorf("names = %v", names)
	}
	if empty := Summarize(sorting.Bubble, nil); len(empty.Means) != 0 {
		t.Errorf("empty summary %+v", empty)
	}
}

func TestEnsembleNegativeRuns(t *testing.T) {
	e := NewEnsemble(sorting.Bubble, -1, 0, randomInput, logging.Discard())
	if _, err := e.Run(context.Background()); !errors.Is(err, ErrInvalidRuns) {
		t.Errorf("expected ErrInvalidRuns, got %v", err)
	}
}

func TestEnsembleZeroRuns(t *testing.T) {
	results, err := NewEnsemble(sorting.Bubble, 0, 0, randomInput, logging.Discard()).Run(context.Background())
	if err != nil || len(results) != 0 {
		t.Errorf("got %v, %v; want no results", results, err)
	}
}
