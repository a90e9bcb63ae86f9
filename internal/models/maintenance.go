package models

import "time"

// Maintenance task statuses.
const (
	TaskPending    = "pending"
	TaskInProgress = "in-progress"
	TaskCompleted  = "completed"
)

// MaintenanceTask is a scheduled service action on a device. DeviceName is a
// snapshot, like Alert.DeviceName.
type MaintenanceTask struct {
	ID                string    `json:"id"`
	DeviceID          string    `json:"device_id"`
	DeviceName        string    `json:"device_name"`
	Type              string    `json:"type"`
	ScheduledDate     time.Time `json:"scheduled_date"`
	Priority          string    `json:"priority"` // low | medium | high
	Status            string    `json:"status"`   // pending | in-progress | completed
	AssignedTo        string    `json:"assigned_to,omitempty"`
	EstimatedDuration int       `json:"estimated_duration"` // minutes
}

// TaskParams is the caller-supplied part of a new maintenance task.
type TaskParams struct {
	DeviceID          string    `json:"device_id"`
	DeviceName        string    `json:"device_name"`
	Type              string    `json:"type"`
	ScheduledDate     time.Time `json:"scheduled_date"`
	Priority          string    `json:"priority"`
	Status            string    `json:"status"`
	AssignedTo        string    `json:"assigned_to,omitempty"`
	EstimatedDuration int       `json:"estimated_duration"`
}
