package models

import "time"

// Device types.
const (
	DeviceThermostat = "thermostat"
	DeviceCamera     = "camera"
	DeviceLock       = "lock"
	DeviceSensor     = "sensor"
	DeviceLighting   = "lighting"
)

// Device statuses.
const (
	StatusOnline      = "online"
	StatusOffline     = "offline"
	StatusMaintenance = "maintenance"
)

// Device is a managed IoT device. Telemetry fields are pointers because not
// every device reports them; the jitter tick only drifts fields that are set.
type Device struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Type            string     `json:"type"`   // thermostat | camera | lock | sensor | lighting
	Status          string     `json:"status"` // online | offline | maintenance
	IsActive        bool       `json:"is_active"`
	Temperature     *float64   `json:"temperature,omitempty"` // °C
	Humidity        *float64   `json:"humidity,omitempty"`    // %
	Uptime          float64    `json:"uptime"`                // %
	Location        string     `json:"location"`
	LastMaintenance *time.Time `json:"last_maintenance,omitempty"`
	NextMaintenance *time.Time `json:"next_maintenance,omitempty"`
	FirmwareVersion string     `json:"firmware_version,omitempty"`
	BatteryLevel    *float64   `json:"battery_level,omitempty"` // %
}

// DeviceConfig carries the configurable subset of Device fields. Nil fields
// are left untouched (shallow merge).
type DeviceConfig struct {
	Name            *string  `json:"name,omitempty"`
	Location        *string  `json:"location,omitempty"`
	FirmwareVersion *string  `json:"firmware_version,omitempty"`
	Temperature     *float64 `json:"temperature,omitempty"`
	Humidity        *float64 `json:"humidity,omitempty"`
}
