package service

import (
	"softronix/internal/store"
)

// MonitoringService exposes the read side of the store for live consumers:
// a consistent snapshot plus change notification for push transports.
type MonitoringService struct {
	store *store.Store
}

func NewMonitoringService(st *store.Store) *MonitoringService {
	return &MonitoringService{store: st}
}

// Snapshot returns a consistent copy of all five collections.
func (s *MonitoringService) Snapshot() store.Snapshot {
	return s.store.Snapshot()
}

// Subscribe registers fn to run after every completed store command. The
// returned function removes the subscription; callers must do so before
// tearing down, or the store keeps pushing into dead consumers.
func (s *MonitoringService) Subscribe(fn func()) func() {
	return s.store.Subscribe(fn)
}
