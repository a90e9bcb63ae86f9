package service

import (
	"context"
	"time"

	"softronix/internal/store"
)

// SimulatorService drives the jitter tick: every interval it drifts each
// device's reported telemetry by a small delta from the telemetry source.
// Ticks never emit alerts and never touch status or active flags.
type SimulatorService struct {
	store  *store.Store
	source store.TelemetrySource
}

// NewSimulatorService returns a simulator reading from src.
func NewSimulatorService(st *store.Store, src store.TelemetrySource) *SimulatorService {
	return &SimulatorService{store: st, source: src}
}

// Run ticks at the given interval until ctx is canceled. Each tick is a
// single synchronous pass over the device collection, so ticks cannot
// overlap.
func (s *SimulatorService) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.store.ApplyJitter(s.source)
		}
	}
}
