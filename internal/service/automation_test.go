package service

import (
	"testing"

	"softronix/internal/models"
	"softronix/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutomationService_Add(t *testing.T) {
	tests := []struct {
		name    string
		params  models.RuleParams
		wantErr bool
	}{
		{
			name:   "valid rule",
			params: models.RuleParams{Name: "Night Mode", Condition: "Time > 22:00", Action: "Dim lights", IsActive: true},
		},
		{
			name:    "missing name",
			params:  models.RuleParams{Condition: "c", Action: "a"},
			wantErr: true,
		},
		{
			name:    "whitespace-only condition",
			params:  models.RuleParams{Name: "n", Condition: "   ", Action: "a"},
			wantErr: true,
		},
		{
			name:    "missing action",
			params:  models.RuleParams{Name: "n", Condition: "c"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAutomationService(store.New())

			rule, err := svc.Add(tt.params)
			if tt.wantErr {
				assert.ErrorIs(t, err, errInvalidRule)
				assert.Len(t, svc.List(), 3, "invalid rules must not reach the store")
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, rule.ID)
			assert.Zero(t, rule.TriggerCount)
			assert.Len(t, svc.List(), 4)
		})
	}
}
