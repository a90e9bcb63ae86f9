package service

import (
	"context"
	"time"

	"softronix/internal/logger"
	"softronix/internal/models"
	"softronix/internal/repository"
	"softronix/internal/store"
)

type Authorization interface {
	SignUp(email, password, name string) (models.User, error)
	SignIn(email, password string) (string, models.User, error)
	ParseToken(accessToken string) (string, error)
	CurrentUser(userID string) (models.User, error)
}

// Devices exposes the device inventory and its two commands.
type Devices interface {
	List() []models.Device
	Get(id string) (models.Device, bool)
	Toggle(id string)
	Configure(id string, cfg models.DeviceConfig) error
}

// Automation manages stored automation rules. Conditions and actions are free
// text; nothing evaluates them.
type Automation interface {
	List() []models.AutomationRule
	Add(p models.RuleParams) (models.AutomationRule, error)
	Toggle(id string)
	Delete(id string)
}

// Integrations manages third-party connection records.
type Integrations interface {
	List() []models.Integration
	Add(p models.IntegrationParams) (models.Integration, error)
	Test(id string)
	Remove(id string)
}

// Alerts exposes the notification feed.
type Alerts interface {
	List() []models.Alert
	Dismiss(id string)
	Acknowledge(id string)
}

// Maintenance manages scheduled service tasks.
type Maintenance interface {
	List() []models.MaintenanceTask
	Schedule(p models.TaskParams) (models.MaintenanceTask, error)
	Complete(id string)
}

// DataManager covers export/import and the full reset.
type DataManager interface {
	Export(kind string) (ExportFile, error)
	ExportChart(chartType string, data any) (ExportFile, error)
	Import(payload map[string]any)
	ClearAll()
}

// SettingsManager persists the settings form.
type SettingsManager interface {
	Load() (models.Settings, error)
	Save(s models.Settings) error
}

// Monitoring is the read side for live consumers (WebSocket push): a
// consistent snapshot of all collections plus change notification.
type Monitoring interface {
	Snapshot() store.Snapshot
	Subscribe(fn func()) func()
}

// Simulator runs the background jitter loop over device telemetry.
// Stop via context cancellation in main() for graceful shutdown.
type Simulator interface {
	Run(ctx context.Context, tick time.Duration)
}

// Service aggregates all sub-services. Fields are named rather than embedded
// because several sub-services share method names (List).
type Service struct {
	Devices       Devices
	Automation    Automation
	Integrations  Integrations
	Alerts        Alerts
	Maintenance   Maintenance
	Data          DataManager
	Settings      SettingsManager
	Monitoring    Monitoring
	Simulator     Simulator
	Authorization Authorization
}

// NewService wires the in-memory store and the repository layer into concrete
// services.
func NewService(st *store.Store, repos *repository.Repository, log *logger.Logger, signingKey string) *Service {
	return &Service{
		Devices:       NewDeviceService(st),
		Automation:    NewAutomationService(st),
		Integrations:  NewIntegrationService(st),
		Alerts:        NewAlertService(st),
		Maintenance:   NewMaintenanceService(st),
		Data:          NewDataService(st, log),
		Settings:      NewSettingsService(repos.Settings),
		Monitoring:    NewMonitoringService(st),
		Simulator:     NewSimulatorService(st, store.NewRandomTelemetry()),
		Authorization: NewAuthService(repos.Accounts, log, signingKey),
	}
}
