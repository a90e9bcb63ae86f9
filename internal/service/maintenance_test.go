package service

import (
	"testing"
	"time"

	"softronix/internal/models"
	"softronix/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaintenanceService_Schedule(t *testing.T) {
	date := time.Now().UTC().Add(72 * time.Hour)

	tests := []struct {
		name    string
		params  models.TaskParams
		wantErr error
	}{
		{
			name:   "valid task",
			params: models.TaskParams{DeviceID: "1", Type: "Filter Replacement", ScheduledDate: date, Priority: models.SeverityHigh, Status: models.TaskPending},
		},
		{
			name:    "missing device id",
			params:  models.TaskParams{Type: "t", Priority: models.SeverityLow},
			wantErr: errInvalidTask,
		},
		{
			name:    "missing type",
			params:  models.TaskParams{DeviceID: "1", Priority: models.SeverityLow},
			wantErr: errInvalidTask,
		},
		{
			name:    "bogus priority",
			params:  models.TaskParams{DeviceID: "1", Type: "t", Priority: "urgent"},
			wantErr: errInvalidTaskPriority,
		},
		{
			name:    "bogus status",
			params:  models.TaskParams{DeviceID: "1", Type: "t", Priority: models.SeverityLow, Status: "paused"},
			wantErr: errInvalidTaskStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMaintenanceService(store.New())

			task, err := svc.Schedule(tt.params)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, task.ID)
		})
	}
}

func TestMaintenanceService_ScheduleFillsDefaults(t *testing.T) {
	svc := NewMaintenanceService(store.New())

	task, err := svc.Schedule(models.TaskParams{
		DeviceID:      "2",
		Type:          "Lens Cleaning",
		ScheduledDate: time.Now().UTC(),
		Priority:      models.SeverityMedium,
	})
	require.NoError(t, err)
	assert.Equal(t, models.TaskPending, task.Status, "empty status defaults to pending")
	assert.Equal(t, "Security Camera - Entrance", task.DeviceName, "device name resolved from the inventory")
}

func TestMaintenanceService_Complete(t *testing.T) {
	st := store.New()
	svc := NewMaintenanceService(st)

	svc.Complete("1")

	for _, task := range svc.List() {
		if task.ID == "1" {
			assert.Equal(t, models.TaskCompleted, task.Status)
		}
	}
}
