package models

import "time"

// Alert types.
const (
	AlertWarning = "warning"
	AlertError   = "error"
	AlertInfo    = "info"
)

// Alert severities.
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// Alert is a single dashboard notification. DeviceName is a snapshot taken at
// emission time; it does not track later device renames. System-generated
// alerts use a pseudo device id ("system") with a subsystem name.
type Alert struct {
	ID           string    `json:"id"`
	DeviceID     string    `json:"device_id"`
	DeviceName   string    `json:"device_name"`
	Type         string    `json:"type"` // warning | error | info
	Message      string    `json:"message"`
	Timestamp    time.Time `json:"timestamp"`
	Severity     string    `json:"severity"` // low | medium | high
	Acknowledged bool      `json:"acknowledged"`
}
