package service

import (
	"errors"
	"strings"

	"softronix/internal/models"
	"softronix/internal/store"
)

var (
	errInvalidTask         = errors.New("invalid task: device id and type are required")
	errInvalidTaskPriority = errors.New("invalid task priority: must be low, medium, or high")
	errInvalidTaskStatus   = errors.New("invalid task status: must be pending, in-progress, or completed")
)

var taskPriorities = map[string]bool{
	models.SeverityLow:    true,
	models.SeverityMedium: true,
	models.SeverityHigh:   true,
}

var taskStatuses = map[string]bool{
	models.TaskPending:    true,
	models.TaskInProgress: true,
	models.TaskCompleted:  true,
}

type MaintenanceService struct {
	store *store.Store
}

func NewMaintenanceService(st *store.Store) *MaintenanceService {
	return &MaintenanceService{store: st}
}

func (s *MaintenanceService) List() []models.MaintenanceTask {
	return s.store.MaintenanceTasks()
}

// Schedule validates and appends a new task. An empty status defaults to
// pending. The device name snapshot is resolved from the store when the
// caller didn't provide one.
func (s *MaintenanceService) Schedule(p models.TaskParams) (models.MaintenanceTask, error) {
	if strings.TrimSpace(p.DeviceID) == "" || strings.TrimSpace(p.Type) == "" {
		return models.MaintenanceTask{}, errInvalidTask
	}
	if !taskPriorities[p.Priority] {
		return models.MaintenanceTask{}, errInvalidTaskPriority
	}
	if p.Status == "" {
		p.Status = models.TaskPending
	}
	if !taskStatuses[p.Status] {
		return models.MaintenanceTask{}, errInvalidTaskStatus
	}
	if p.DeviceName == "" {
		if d, ok := s.store.Device(p.DeviceID); ok {
			p.DeviceName = d.Name
		}
	}
	return s.store.ScheduleMaintenance(p), nil
}

// Complete marks the task completed and pushes the owning device's
// maintenance window 90 days out.
func (s *MaintenanceService) Complete(id string) {
	s.store.CompleteMaintenance(id)
}
