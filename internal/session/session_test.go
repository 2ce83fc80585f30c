package session

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/san-kum/sortviz/internal/logging"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/sorting"
)

func TestRun(t *testing.T) {
	s := New(Config{Kind: sorting.Bubble, Data: []int{2, 1}}, logging.Discard())
	if err := s.Setup(metrics.Default()); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	result, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(result.Snapshots) != 3 {
		t.Fatalf("expected 3 snapshots, got %d", len(result.Snapshots))
	}
	final, ok := result.Final()
	if !ok || !reflect.DeepEqual(final.Values, []int{1, 2}) {
		t.Errorf("unexpected final snapshot %+v", final)
	}
	if result.Metrics["steps"] != 3 || result.Metrics["inversions"] != 0 {
		t.Errorf("unexpected metrics %v", result.Metrics)
	}
	if got := result.Series["inversions"]; !reflect.DeepEqual(got, []float64{1, 0, 0}) {
		t.Errorf("inversion series = %v", got)
	}
}

func TestRun_NotSetup(t *testing.T) {
	s := New(Config{Kind: sorting.Bubble}, logging.Discard())
	if _, err := s.Run(context.Background()); !errors.Is(err, ErrNotSetup) {
		t.Errorf("expected ErrNotSetup, got %v", err)
	}
}

func TestSetup_UnknownKind(t *testing.T) {
	s := New(Config{Kind: sorting.Kind(9)}, logging.Discard())
	if err := s.Setup(nil); !errors.Is(err, sorting.ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}
}

func TestRun_Canceled(t *testing.T) {
	s := New(Config{Kind: sorting.Selection, Data: []int{5, 4, 3, 2, 1}}, logging.Discard())
	if err := s.Setup(metrics.Default()); err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := s.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(result.Snapshots) != 0 {
		t.Errorf("expected no snapshots after cancel, got %d", len(result.Snapshots))
	}
}

func TestRun_DoesNotAliasInput(t *testing.T) {
	data := []int{3, 1, 2}
	s := New(Config{Kind: sorting.Insertion, Data: data}, logging.Discard())
	s.Setup(nil)
	result, _ := s.Run(context.Background())
	result.Input[0] = 100
	if data[0] != 3 {
		t.Error("result input aliases caller data")
	}
}
