package service

import (
	"errors"
	"strings"

	"softronix/internal/models"
	"softronix/internal/store"
)

var errInvalidRule = errors.New("invalid rule: name, condition and action are required")

type AutomationService struct {
	store *store.Store
}

func NewAutomationService(st *store.Store) *AutomationService {
	return &AutomationService{store: st}
}

func (s *AutomationService) List() []models.AutomationRule {
	return s.store.AutomationRules()
}

// Add validates and appends a new rule. The trigger counter starts at zero.
func (s *AutomationService) Add(p models.RuleParams) (models.AutomationRule, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" || strings.TrimSpace(p.Condition) == "" || strings.TrimSpace(p.Action) == "" {
		return models.AutomationRule{}, errInvalidRule
	}
	return s.store.AddAutomationRule(p), nil
}

func (s *AutomationService) Toggle(id string) {
	s.store.ToggleAutomationRule(id)
}

func (s *AutomationService) Delete(id string) {
	s.store.DeleteAutomationRule(id)
}
