package service

import (
	"errors"
	"strings"

	"softronix/internal/models"
	"softronix/internal/store"
)

var (
	errInvalidIntegrationType   = errors.New("invalid integration type: must be cloud, protocol, messaging, database, security, or api")
	errInvalidIntegrationStatus = errors.New("invalid integration status: must be connected, disconnected, or error")
	errIntegrationNameRequired  = errors.New("integration name is required")
)

var integrationTypes = map[string]bool{
	models.IntegrationCloud:     true,
	models.IntegrationProtocol:  true,
	models.IntegrationMessaging: true,
	models.IntegrationDatabase:  true,
	models.IntegrationSecurity:  true,
	models.IntegrationAPI:       true,
}

var integrationStatuses = map[string]bool{
	models.IntegrationConnected:    true,
	models.IntegrationDisconnected: true,
	models.IntegrationError:        true,
}

type IntegrationService struct {
	store *store.Store
}

func NewIntegrationService(st *store.Store) *IntegrationService {
	return &IntegrationService{store: st}
}

func (s *IntegrationService) List() []models.Integration {
	return s.store.Integrations()
}

// Add validates the enum fields and appends the integration. An empty status
// defaults to disconnected until a test marks it connected.
func (s *IntegrationService) Add(p models.IntegrationParams) (models.Integration, error) {
	if strings.TrimSpace(p.Name) == "" {
		return models.Integration{}, errIntegrationNameRequired
	}
	if !integrationTypes[p.Type] {
		return models.Integration{}, errInvalidIntegrationType
	}
	if p.Status == "" {
		p.Status = models.IntegrationDisconnected
	}
	if !integrationStatuses[p.Status] {
		return models.Integration{}, errInvalidIntegrationStatus
	}
	return s.store.AddIntegration(p), nil
}

// Test marks the integration connected and refreshes its sync timestamp. No
// endpoint is probed.
func (s *IntegrationService) Test(id string) {
	s.store.TestIntegration(id)
}

func (s *IntegrationService) Remove(id string) {
	s.store.RemoveIntegration(id)
}
