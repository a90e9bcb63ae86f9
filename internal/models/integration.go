package models

import "time"

// Integration types.
const (
	IntegrationCloud     = "cloud"
	IntegrationProtocol  = "protocol"
	IntegrationMessaging = "messaging"
	IntegrationDatabase  = "database"
	IntegrationSecurity  = "security"
	IntegrationAPI       = "api"
)

// Integration statuses.
const (
	IntegrationConnected    = "connected"
	IntegrationDisconnected = "disconnected"
	IntegrationError        = "error"
)

// IntegrationMetrics is an optional usage sub-record.
type IntegrationMetrics struct {
	MessagesPerHour int     `json:"messages_per_hour"`
	ErrorRate       float64 `json:"error_rate"`
}

// IntegrationHealth is an optional health sub-record.
type IntegrationHealth struct {
	Score     int       `json:"score"` // 0..100
	LastCheck time.Time `json:"last_check"`
}

// Integration is a configured third-party connection.
type Integration struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	Type             string              `json:"type"`   // cloud | protocol | messaging | database | security | api
	Status           string              `json:"status"` // connected | disconnected | error
	LastSync         time.Time           `json:"last_sync"`
	ConnectionString string              `json:"connection_string,omitempty"`
	APIKey           string              `json:"api_key,omitempty"`
	Metrics          *IntegrationMetrics `json:"metrics,omitempty"`
	Health           *IntegrationHealth  `json:"health,omitempty"`
}

// IntegrationParams is the caller-supplied part of a new integration; the
// store assigns the id and the initial sync timestamp.
type IntegrationParams struct {
	Name             string `json:"name"`
	Type             string `json:"type"`
	Status           string `json:"status"`
	ConnectionString string `json:"connection_string,omitempty"`
	APIKey           string `json:"api_key,omitempty"`
}
