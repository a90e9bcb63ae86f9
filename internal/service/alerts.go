package service

import (
	"softronix/internal/models"
	"softronix/internal/store"
)

type AlertService struct {
	store *store.Store
}

func NewAlertService(st *store.Store) *AlertService {
	return &AlertService{store: st}
}

// List returns the alert feed, newest first.
func (s *AlertService) List() []models.Alert {
	return s.store.Alerts()
}

// Dismiss removes the alert permanently.
func (s *AlertService) Dismiss(id string) {
	s.store.DismissAlert(id)
}

// Acknowledge marks the alert read without removing it.
func (s *AlertService) Acknowledge(id string) {
	s.store.AcknowledgeAlert(id)
}
