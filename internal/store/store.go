package store

import (
	"fmt"
	"sync"
	"time"

	"softronix/internal/models"

	"github.com/google/uuid"
)

// Pseudo device ids used on alerts that are not tied to a physical device.
const (
	systemDeviceID   = "system"
	automationSystem = "Automation System"
	integrationSys   = "Integration System"
	dataManagement   = "Data Management"
)

// Store is the single in-memory source of truth for the five dashboard
// collections. All mutation goes through the command methods below; every
// command that changes visible state appends exactly one synthetic alert
// describing the change, except DismissAlert/AcknowledgeAlert and the jitter
// tick. Commands invoked with an unknown id are silent no-ops.
//
// Mutation is serialized by the store mutex; subscribers are notified exactly
// once per completed command, after the new state is visible.
type Store struct {
	mu           sync.RWMutex
	devices      []models.Device
	alerts       []models.Alert
	rules        []models.AutomationRule
	integrations []models.Integration
	tasks        []models.MaintenanceTask

	subMu   sync.Mutex
	subs    map[int]func()
	nextSub int

	now func() time.Time
}

// New returns a store seeded with the default dashboard data set.
func New() *Store {
	s := &Store{
		now:  func() time.Time { return time.Now().UTC() },
		subs: make(map[int]func()),
	}
	now := s.now()
	s.devices = seedDevices(now)
	s.alerts = seedAlerts(now)
	s.rules = seedAutomationRules(now)
	s.integrations = seedIntegrations(now)
	s.tasks = seedMaintenanceTasks(now)
	return s
}

// Subscribe registers fn to run after every completed command. The returned
// function removes the subscription.
func (s *Store) Subscribe(fn func()) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()
	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

// notify runs all subscribers once. Called after the store lock is released
// so subscribers may read the store.
func (s *Store) notify() {
	s.subMu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// emit appends a synthetic alert. Caller must hold the write lock. The id,
// timestamp and acknowledged flag are owned by the store; newest alerts go
// first, matching the order the dashboard renders them in.
func (s *Store) emit(a models.Alert) {
	a.ID = uuid.NewString()
	a.Timestamp = s.now()
	a.Acknowledged = false
	s.alerts = append([]models.Alert{a}, s.alerts...)
}

// ---- Queries ----

// Devices returns a copy of the device collection in insertion order.
func (s *Store) Devices() []models.Device {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Device, len(s.devices))
	copy(out, s.devices)
	return out
}

// Device returns the device with the given id, if present.
func (s *Store) Device(id string) (models.Device, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.devices {
		if d.ID == id {
			return d, true
		}
	}
	return models.Device{}, false
}

// Alerts returns a copy of the alert collection, newest first.
func (s *Store) Alerts() []models.Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Alert, len(s.alerts))
	copy(out, s.alerts)
	return out
}

// AutomationRules returns a copy of the rule collection in insertion order.
func (s *Store) AutomationRules() []models.AutomationRule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.AutomationRule, len(s.rules))
	copy(out, s.rules)
	return out
}

// Integrations returns a copy of the integration collection.
func (s *Store) Integrations() []models.Integration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Integration, len(s.integrations))
	copy(out, s.integrations)
	return out
}

// MaintenanceTasks returns a copy of the task collection.
func (s *Store) MaintenanceTasks() []models.MaintenanceTask {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.MaintenanceTask, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Snapshot is a point-in-time view of all five collections. The JSON keys are
// the export file contract; don't rename them.
type Snapshot struct {
	Devices          []models.Device          `json:"devices"`
	Alerts           []models.Alert           `json:"alerts"`
	AutomationRules  []models.AutomationRule  `json:"automationRules"`
	Integrations     []models.Integration     `json:"integrations"`
	MaintenanceTasks []models.MaintenanceTask `json:"maintenanceTasks"`
}

// Snapshot returns a consistent copy of all collections.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := Snapshot{
		Devices:          make([]models.Device, len(s.devices)),
		Alerts:           make([]models.Alert, len(s.alerts)),
		AutomationRules:  make([]models.AutomationRule, len(s.rules)),
		Integrations:     make([]models.Integration, len(s.integrations)),
		MaintenanceTasks: make([]models.MaintenanceTask, len(s.tasks)),
	}
	copy(snap.Devices, s.devices)
	copy(snap.Alerts, s.alerts)
	copy(snap.AutomationRules, s.rules)
	copy(snap.Integrations, s.integrations)
	copy(snap.MaintenanceTasks, s.tasks)
	return snap
}

// ---- Device commands ----

// ToggleDevice flips the active flag and the online/offline status of the
// device. Devices under maintenance are not toggled. Unknown ids are no-ops.
func (s *Store) ToggleDevice(id string) {
	s.mu.Lock()
	d := s.findDevice(id)
	if d == nil || d.Status == models.StatusMaintenance {
		s.mu.Unlock()
		return
	}
	verb := "started"
	if d.IsActive {
		verb = "stopped"
	}
	d.IsActive = !d.IsActive
	if d.IsActive {
		d.Status = models.StatusOnline
	} else {
		d.Status = models.StatusOffline
	}
	s.emit(models.Alert{
		DeviceID:   d.ID,
		DeviceName: d.Name,
		Type:       models.AlertInfo,
		Severity:   models.SeverityLow,
		Message:    fmt.Sprintf("Device %q %s by admin", d.Name, verb),
	})
	s.mu.Unlock()
	s.notify()
}

// ConfigureDevice shallow-merges the non-nil config fields into the device.
func (s *Store) ConfigureDevice(id string, cfg models.DeviceConfig) {
	s.mu.Lock()
	d := s.findDevice(id)
	if d == nil {
		s.mu.Unlock()
		return
	}
	if cfg.Name != nil {
		d.Name = *cfg.Name
	}
	if cfg.Location != nil {
		d.Location = *cfg.Location
	}
	if cfg.FirmwareVersion != nil {
		d.FirmwareVersion = *cfg.FirmwareVersion
	}
	if cfg.Temperature != nil {
		v := *cfg.Temperature
		d.Temperature = &v
	}
	if cfg.Humidity != nil {
		v := *cfg.Humidity
		d.Humidity = &v
	}
	s.emit(models.Alert{
		DeviceID:   d.ID,
		DeviceName: d.Name,
		Type:       models.AlertInfo,
		Severity:   models.SeverityLow,
		Message:    "Device configuration updated",
	})
	s.mu.Unlock()
	s.notify()
}

// ---- Automation commands ----

// AddAutomationRule appends a new rule with a fresh id and a zero trigger
// counter, and returns it.
func (s *Store) AddAutomationRule(p models.RuleParams) models.AutomationRule {
	rule := models.AutomationRule{
		ID:           uuid.NewString(),
		Name:         p.Name,
		Condition:    p.Condition,
		Action:       p.Action,
		IsActive:     p.IsActive,
		TriggerCount: 0,
	}
	s.mu.Lock()
	s.rules = append(s.rules, rule)
	s.emit(models.Alert{
		DeviceID:   systemDeviceID,
		DeviceName: automationSystem,
		Type:       models.AlertInfo,
		Severity:   models.SeverityLow,
		Message:    fmt.Sprintf("New automation rule %q created", rule.Name),
	})
	s.mu.Unlock()
	s.notify()
	return rule
}

// ToggleAutomationRule flips the rule's active flag. The alert wording maps
// the pre-toggle value: a rule that was active reads "disabled" and vice
// versa, which describes the state after the flip.
func (s *Store) ToggleAutomationRule(id string) {
	s.mu.Lock()
	r := s.findRule(id)
	if r == nil {
		s.mu.Unlock()
		return
	}
	word := "enabled"
	if r.IsActive {
		word = "disabled"
	}
	r.IsActive = !r.IsActive
	s.emit(models.Alert{
		DeviceID:   systemDeviceID,
		DeviceName: automationSystem,
		Type:       models.AlertInfo,
		Severity:   models.SeverityLow,
		Message:    fmt.Sprintf("Automation rule %q %s", r.Name, word),
	})
	s.mu.Unlock()
	s.notify()
}

// DeleteAutomationRule removes the rule.
func (s *Store) DeleteAutomationRule(id string) {
	s.mu.Lock()
	idx := -1
	for i := range s.rules {
		if s.rules[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	name := s.rules[idx].Name
	s.rules = append(s.rules[:idx], s.rules[idx+1:]...)
	s.emit(models.Alert{
		DeviceID:   systemDeviceID,
		DeviceName: automationSystem,
		Type:       models.AlertWarning,
		Severity:   models.SeverityMedium,
		Message:    fmt.Sprintf("Automation rule %q deleted", name),
	})
	s.mu.Unlock()
	s.notify()
}

// ---- Integration commands ----

// TestIntegration forces the integration to connected and refreshes its sync
// timestamp. No endpoint is actually probed.
func (s *Store) TestIntegration(id string) {
	s.mu.Lock()
	in := s.findIntegration(id)
	if in == nil {
		s.mu.Unlock()
		return
	}
	now := s.now()
	in.Status = models.IntegrationConnected
	in.LastSync = now
	if in.Health != nil {
		in.Health.LastCheck = now
	}
	s.emit(models.Alert{
		DeviceID:   systemDeviceID,
		DeviceName: integrationSys,
		Type:       models.AlertInfo,
		Severity:   models.SeverityLow,
		Message:    fmt.Sprintf("%s connection test successful", in.Name),
	})
	s.mu.Unlock()
	s.notify()
}

// AddIntegration appends a new integration with a fresh id and LastSync=now,
// and returns it.
func (s *Store) AddIntegration(p models.IntegrationParams) models.Integration {
	in := models.Integration{
		ID:               uuid.NewString(),
		Name:             p.Name,
		Type:             p.Type,
		Status:           p.Status,
		LastSync:         s.now(),
		ConnectionString: p.ConnectionString,
		APIKey:           p.APIKey,
	}
	s.mu.Lock()
	s.integrations = append(s.integrations, in)
	s.emit(models.Alert{
		DeviceID:   systemDeviceID,
		DeviceName: integrationSys,
		Type:       models.AlertInfo,
		Severity:   models.SeverityLow,
		Message:    fmt.Sprintf("New integration %q added", in.Name),
	})
	s.mu.Unlock()
	s.notify()
	return in
}

// RemoveIntegration removes the integration.
func (s *Store) RemoveIntegration(id string) {
	s.mu.Lock()
	idx := -1
	for i := range s.integrations {
		if s.integrations[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	name := s.integrations[idx].Name
	s.integrations = append(s.integrations[:idx], s.integrations[idx+1:]...)
	s.emit(models.Alert{
		DeviceID:   systemDeviceID,
		DeviceName: integrationSys,
		Type:       models.AlertWarning,
		Severity:   models.SeverityMedium,
		Message:    fmt.Sprintf("Integration %q removed", name),
	})
	s.mu.Unlock()
	s.notify()
}

// ---- Alert commands ----

// DismissAlert removes the alert permanently. No alert is emitted for
// operations on the alert collection itself.
func (s *Store) DismissAlert(id string) {
	s.mu.Lock()
	idx := -1
	for i := range s.alerts {
		if s.alerts[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.alerts = append(s.alerts[:idx], s.alerts[idx+1:]...)
	s.mu.Unlock()
	s.notify()
}

// AcknowledgeAlert marks the alert acknowledged, leaving it in place.
func (s *Store) AcknowledgeAlert(id string) {
	s.mu.Lock()
	found := false
	for i := range s.alerts {
		if s.alerts[i].ID == id {
			s.alerts[i].Acknowledged = true
			found = true
			break
		}
	}
	s.mu.Unlock()
	if found {
		s.notify()
	}
}

// ---- Maintenance commands ----

// ScheduleMaintenance appends a new task and returns it. The status comes
// from the caller (commonly "pending").
func (s *Store) ScheduleMaintenance(p models.TaskParams) models.MaintenanceTask {
	task := models.MaintenanceTask{
		ID:                uuid.NewString(),
		DeviceID:          p.DeviceID,
		DeviceName:        p.DeviceName,
		Type:              p.Type,
		ScheduledDate:     p.ScheduledDate,
		Priority:          p.Priority,
		Status:            p.Status,
		AssignedTo:        p.AssignedTo,
		EstimatedDuration: p.EstimatedDuration,
	}
	s.mu.Lock()
	s.tasks = append(s.tasks, task)
	s.emit(models.Alert{
		DeviceID:   task.DeviceID,
		DeviceName: task.DeviceName,
		Type:       models.AlertInfo,
		Severity:   models.SeverityLow,
		Message:    fmt.Sprintf("Maintenance scheduled: %s", task.Type),
	})
	s.mu.Unlock()
	s.notify()
	return task
}

// CompleteMaintenance marks the task completed. If the owning device exists,
// its last maintenance is set to now and the next one 90 days out.
func (s *Store) CompleteMaintenance(id string) {
	s.mu.Lock()
	var task *models.MaintenanceTask
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			task = &s.tasks[i]
			break
		}
	}
	if task == nil {
		s.mu.Unlock()
		return
	}
	now := s.now()
	task.Status = models.TaskCompleted
	if d := s.findDevice(task.DeviceID); d != nil {
		last := now
		next := now.Add(90 * 24 * time.Hour)
		d.LastMaintenance = &last
		d.NextMaintenance = &next
	}
	s.emit(models.Alert{
		DeviceID:   task.DeviceID,
		DeviceName: task.DeviceName,
		Type:       models.AlertInfo,
		Severity:   models.SeverityLow,
		Message:    fmt.Sprintf("Maintenance completed: %s", task.Type),
	})
	s.mu.Unlock()
	s.notify()
}

// ---- Data commands ----

// RecordExport emits the confirmation alert for an export. The export itself
// is a pure read (Snapshot); store state is otherwise untouched.
func (s *Store) RecordExport(kind string) {
	s.mu.Lock()
	s.emit(models.Alert{
		DeviceID:   systemDeviceID,
		DeviceName: dataManagement,
		Type:       models.AlertInfo,
		Severity:   models.SeverityLow,
		Message:    fmt.Sprintf("%s data exported successfully", kind),
	})
	s.mu.Unlock()
	s.notify()
}

// RecordImport emits the confirmation alert for an import. Nothing is merged
// into the collections; the payload is acknowledged regardless of validity.
func (s *Store) RecordImport() {
	s.mu.Lock()
	s.emit(models.Alert{
		DeviceID:   systemDeviceID,
		DeviceName: dataManagement,
		Type:       models.AlertInfo,
		Severity:   models.SeverityLow,
		Message:    "Data imported successfully",
	})
	s.mu.Unlock()
	s.notify()
}

// ClearAll restores devices to the seed set and empties alerts, automation
// rules and maintenance tasks. Integrations are deliberately left untouched.
// The alert list is replaced with a single high-severity warning.
func (s *Store) ClearAll() {
	s.mu.Lock()
	now := s.now()
	s.devices = seedDevices(now)
	s.rules = nil
	s.tasks = nil
	s.alerts = nil
	s.emit(models.Alert{
		DeviceID:   systemDeviceID,
		DeviceName: dataManagement,
		Type:       models.AlertWarning,
		Severity:   models.SeverityHigh,
		Message:    "All data cleared and reset to defaults",
	})
	s.mu.Unlock()
	s.notify()
}

// ---- Jitter tick ----

// ApplyJitter drifts the telemetry of every device by small deltas drawn from
// src. Only fields a device actually reports are touched; uptime and battery
// are clamped to [0, 100]. Status and active flags never change and no alert
// is emitted.
func (s *Store) ApplyJitter(src TelemetrySource) {
	s.mu.Lock()
	for i := range s.devices {
		d := &s.devices[i]
		if d.Temperature != nil {
			v := *d.Temperature + (src.Sample()-0.5)*2
			d.Temperature = &v
		}
		if d.Humidity != nil {
			v := *d.Humidity + (src.Sample()-0.5)*5
			d.Humidity = &v
		}
		d.Uptime = clampPercent(d.Uptime + (src.Sample()-0.1)*0.5)
		if d.BatteryLevel != nil {
			v := clampPercent(*d.BatteryLevel + (src.Sample()-0.5)*2)
			d.BatteryLevel = &v
		}
	}
	s.mu.Unlock()
	s.notify()
}

// ---- helpers ----

func (s *Store) findDevice(id string) *models.Device {
	for i := range s.devices {
		if s.devices[i].ID == id {
			return &s.devices[i]
		}
	}
	return nil
}

func (s *Store) findRule(id string) *models.AutomationRule {
	for i := range s.rules {
		if s.rules[i].ID == id {
			return &s.rules[i]
		}
	}
	return nil
}

func (s *Store) findIntegration(id string) *models.Integration {
	for i := range s.integrations {
		if s.integrations[i].ID == id {
			return &s.integrations[i]
		}
	}
	return nil
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
