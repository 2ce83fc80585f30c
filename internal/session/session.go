// Package session drives a sort engine to completion without a display,
// recording every snapshot and the metric values after each step.
package session

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/sorting"
)

var (
	ErrNotSetup    = errors.New("session: not set up")
	ErrInvalidRuns = errors.New("session: invalid ensemble size")
)

type Config struct {
	Kind sorting.Kind
	Data []int
}

type Result struct {
	Kind      sorting.Kind
	Input     []int
	Snapshots []sorting.Snapshot
	// Metrics holds final values, Series the value after every snapshot.
	Metrics map[string]float64
	Series  map[string][]float64
}

// Final returns the last snapshot, or false for an empty result.
func (r *Result) Final() (sorting.Snapshot, bool) {
	if len(r.Snapshots) == 0 {
		return sorting.Snapshot{}, false
	}
	return r.Snapshots[len(r.Snapshots)-1], true
}

type Session struct {
	cfg     Config
	engine  sorting.Engine
	metrics []metrics.Metric
	log     logrus.FieldLogger
}

func New(cfg Config, log logrus.FieldLogger) *Session {
	return &Session{cfg: cfg, log: log}
}

func (s *Session) Setup(ms []metrics.Metric) error {
	engine, err := sorting.New(s.cfg.Kind, s.cfg.Data)
	if err != nil {
		return fmt.Errorf("setup: %w", err)
	}
	s.engine = engine
	s.metrics = ms
	return nil
}

// Run consumes the engine. Cancellation is checked before every snapshot;
// on cancel the partial result is returned with the context error.
func (s *Session) Run(ctx context.Context) (*Result, error) {
	if s.engine == nil {
		return nil, ErrNotSetup
	}

	result := &Result{
		Kind:    s.cfg.Kind,
		Input:   slices.Clone(s.cfg.Data),
		Metrics: make(map[string]float64, len(s.metrics)),
		Series:  make(map[string][]float64, len(s.metrics)),
	}
	for _, m := range s.metrics {
		m.Reset()
	}

	log := s.log.WithFields(logrus.Fields{"algorithm": s.cfg.Kind.Slug(), "n": len(s.cfg.Data)})
	log.Debug("session started")

	for s.engine.HasNext() {
		if err := ctx.Err(); err != nil {
			log.WithField("steps", len(result.Snapshots)).Warn("session canceled")
			s.collect(result)
			return result, err
		}
		snap, ok := s.engine.Next()
		if !ok {
			break
		}
		result.Snapshots = append(result.Snapshots, snap)
		for _, m := range s.metrics {
			m.Observe(snap)
			result.Series[m.Name()] = append(result.Series[m.Name()], m.Value())
		}
	}
	s.collect(result)

	log.WithField("steps", len(result.Snapshots)).Debug("session finished")
	return result, nil
}

func (s *Session) collect(r *Result) {
	for _, m := range s.metrics {
		r.Metrics[m.Name()] = m.Value()
	}
}
