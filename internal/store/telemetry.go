package store

import (
	"math/rand"
	"sync"
	"time"
)

// TelemetrySource yields the raw random samples the jitter tick turns into
// telemetry deltas. Tests inject deterministic sequences instead of asserting
// on randomness.
type TelemetrySource interface {
	// Sample returns a value uniform in [0, 1).
	Sample() float64
}

// RandomTelemetry is the production source, a seeded math/rand generator
// behind a mutex so the simulator and tests can share one instance.
type RandomTelemetry struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomTelemetry returns a source seeded from the wall clock.
func NewRandomTelemetry() *RandomTelemetry {
	return &RandomTelemetry{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (r *RandomTelemetry) Sample() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64()
}
