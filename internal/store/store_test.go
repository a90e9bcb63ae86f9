package store

import (
	"testing"
	"time"

	"softronix/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedTelemetry always returns the same sample, making jitter deterministic.
type fixedTelemetry struct{ v float64 }

func (f fixedTelemetry) Sample() float64 { return f.v }

func newTestStore(t *testing.T) (*Store, time.Time) {
	t.Helper()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	s := New()
	s.now = func() time.Time { return now }
	return s, now
}

func TestNew_Seeds(t *testing.T) {
	s, _ := newTestStore(t)

	assert.Len(t, s.Devices(), 5)
	assert.Len(t, s.Alerts(), 4)
	assert.Len(t, s.AutomationRules(), 3)
	assert.Len(t, s.Integrations(), 4)
	assert.Len(t, s.MaintenanceTasks(), 3)

	d, ok := s.Device("3")
	require.True(t, ok)
	assert.Equal(t, models.StatusOffline, d.Status)
	assert.False(t, d.IsActive)
}

func TestToggleDevice_Involution(t *testing.T) {
	s, _ := newTestStore(t)

	s.ToggleDevice("3")
	d, ok := s.Device("3")
	require.True(t, ok)
	assert.True(t, d.IsActive)
	assert.Equal(t, models.StatusOnline, d.Status)

	alerts := s.Alerts()
	require.Len(t, alerts, 5)
	newest := alerts[0]
	assert.Equal(t, `Device "Smart Lock - Conference Room" started by admin`, newest.Message)
	assert.Equal(t, "3", newest.DeviceID)
	assert.Equal(t, models.AlertInfo, newest.Type)
	assert.Equal(t, models.SeverityLow, newest.Severity)
	assert.False(t, newest.Acknowledged)
	assert.NotEmpty(t, newest.ID)

	s.ToggleDevice("3")
	d, _ = s.Device("3")
	assert.False(t, d.IsActive)
	assert.Equal(t, models.StatusOffline, d.Status)
	assert.Equal(t, `Device "Smart Lock - Conference Room" stopped by admin`, s.Alerts()[0].Message)
}

func TestToggleDevice_MaintenanceSuppressed(t *testing.T) {
	s, _ := newTestStore(t)

	before, ok := s.Device("4")
	require.True(t, ok)
	require.Equal(t, models.StatusMaintenance, before.Status)

	s.ToggleDevice("4")

	after, _ := s.Device("4")
	assert.Equal(t, before.IsActive, after.IsActive)
	assert.Equal(t, models.StatusMaintenance, after.Status)
	assert.Len(t, s.Alerts(), 4, "suppressed toggle must not emit an alert")
}

func TestToggleDevice_UnknownIDIsNoOp(t *testing.T) {
	s, _ := newTestStore(t)

	notified := 0
	defer s.Subscribe(func() { notified++ })()

	s.ToggleDevice("nope")

	assert.Len(t, s.Alerts(), 4)
	assert.Zero(t, notified)
}

func TestConfigureDevice_ShallowMerge(t *testing.T) {
	s, _ := newTestStore(t)

	name := "Thermostat - Renamed"
	temp := 19.5
	s.ConfigureDevice("1", models.DeviceConfig{Name: &name, Temperature: &temp})

	d, ok := s.Device("1")
	require.True(t, ok)
	assert.Equal(t, "Thermostat - Renamed", d.Name)
	require.NotNil(t, d.Temperature)
	assert.Equal(t, 19.5, *d.Temperature)
	// untouched fields keep their seed values
	assert.Equal(t, "Office Building A", d.Location)
	require.NotNil(t, d.Humidity)
	assert.Equal(t, float64(45), *d.Humidity)

	assert.Equal(t, "Device configuration updated", s.Alerts()[0].Message)
}

func TestAutomationRuleLifecycle(t *testing.T) {
	s, _ := newTestStore(t)

	rule := s.AddAutomationRule(models.RuleParams{
		Name:      "Night Mode",
		Condition: "Time > 22:00",
		Action:    "Dim all lights",
		IsActive:  true,
	})
	assert.NotEmpty(t, rule.ID)
	assert.Zero(t, rule.TriggerCount)
	assert.Len(t, s.AutomationRules(), 4)
	assert.Equal(t, `New automation rule "Night Mode" created`, s.Alerts()[0].Message)

	// toggling an active rule reads "disabled": the wording maps the
	// pre-toggle value onto the post-toggle state
	s.ToggleAutomationRule(rule.ID)
	assert.Equal(t, `Automation rule "Night Mode" disabled`, s.Alerts()[0].Message)
	for _, r := range s.AutomationRules() {
		if r.ID == rule.ID {
			assert.False(t, r.IsActive)
		}
	}

	s.ToggleAutomationRule(rule.ID)
	assert.Equal(t, `Automation rule "Night Mode" enabled`, s.Alerts()[0].Message)

	s.DeleteAutomationRule(rule.ID)
	assert.Len(t, s.AutomationRules(), 3)
	del := s.Alerts()[0]
	assert.Equal(t, `Automation rule "Night Mode" deleted`, del.Message)
	assert.Equal(t, models.AlertWarning, del.Type)
	assert.Equal(t, models.SeverityMedium, del.Severity)
}

func TestTestIntegration_ForcesConnected(t *testing.T) {
	s, now := newTestStore(t)

	s.TestIntegration("4") // seeded in error status

	var in models.Integration
	for _, i := range s.Integrations() {
		if i.ID == "4" {
			in = i
		}
	}
	assert.Equal(t, models.IntegrationConnected, in.Status)
	assert.True(t, in.LastSync.Equal(now))
	assert.Equal(t, "LoRaWAN Gateway connection test successful", s.Alerts()[0].Message)
}

func TestIntegrationAddRemove(t *testing.T) {
	s, now := newTestStore(t)

	in := s.AddIntegration(models.IntegrationParams{
		Name:             "Kafka Bridge",
		Type:             models.IntegrationMessaging,
		Status:           models.IntegrationDisconnected,
		ConnectionString: "kafka://broker:9092",
	})
	assert.NotEmpty(t, in.ID)
	assert.True(t, in.LastSync.Equal(now))
	assert.Len(t, s.Integrations(), 5)
	assert.Equal(t, `New integration "Kafka Bridge" added`, s.Alerts()[0].Message)

	s.RemoveIntegration(in.ID)
	assert.Len(t, s.Integrations(), 4)
	rm := s.Alerts()[0]
	assert.Equal(t, `Integration "Kafka Bridge" removed`, rm.Message)
	assert.Equal(t, models.AlertWarning, rm.Type)
}

func TestDismissAndAcknowledgeAlert(t *testing.T) {
	s, _ := newTestStore(t)

	s.DismissAlert("2")
	alerts := s.Alerts()
	assert.Len(t, alerts, 3, "dismiss removes without emitting a replacement")
	for _, a := range alerts {
		assert.NotEqual(t, "2", a.ID)
	}

	s.AcknowledgeAlert("1")
	for _, a := range s.Alerts() {
		if a.ID == "1" {
			assert.True(t, a.Acknowledged)
		}
	}
	assert.Len(t, s.Alerts(), 3, "acknowledge leaves the alert in place")
}

func TestScheduleAndCompleteMaintenance(t *testing.T) {
	s, now := newTestStore(t)

	task := s.ScheduleMaintenance(models.TaskParams{
		DeviceID:          "5",
		DeviceName:        "Smart Lighting - Warehouse",
		Type:              "Ballast Inspection",
		ScheduledDate:     now.Add(5 * day),
		Priority:          models.SeverityMedium,
		Status:            models.TaskPending,
		AssignedTo:        "John Smith",
		EstimatedDuration: 20,
	})
	assert.NotEmpty(t, task.ID)
	assert.Len(t, s.MaintenanceTasks(), 4)
	assert.Equal(t, "Maintenance scheduled: Ballast Inspection", s.Alerts()[0].Message)

	s.CompleteMaintenance(task.ID)
	var got models.MaintenanceTask
	for _, tk := range s.MaintenanceTasks() {
		if tk.ID == task.ID {
			got = tk
		}
	}
	assert.Equal(t, models.TaskCompleted, got.Status)
	assert.Equal(t, "Maintenance completed: Ballast Inspection", s.Alerts()[0].Message)

	d, ok := s.Device("5")
	require.True(t, ok)
	require.NotNil(t, d.LastMaintenance)
	require.NotNil(t, d.NextMaintenance)
	assert.True(t, d.LastMaintenance.Equal(now))
	assert.True(t, d.NextMaintenance.Equal(now.Add(90*day)))
}

func TestCompleteMaintenance_SeededFilterReplacement(t *testing.T) {
	s, now := newTestStore(t)

	s.CompleteMaintenance("1")

	assert.Equal(t, "Maintenance completed: Filter Replacement", s.Alerts()[0].Message)
	d, _ := s.Device("1")
	require.NotNil(t, d.NextMaintenance)
	assert.True(t, d.NextMaintenance.Equal(now.Add(90*day)))
}

func TestRecordExportAndImport(t *testing.T) {
	s, _ := newTestStore(t)

	s.RecordExport("devices")
	assert.Equal(t, "devices data exported successfully", s.Alerts()[0].Message)

	s.RecordImport()
	assert.Equal(t, "Data imported successfully", s.Alerts()[0].Message)
	assert.Equal(t, "Data Management", s.Alerts()[0].DeviceName)
}

func TestClearAll(t *testing.T) {
	s, _ := newTestStore(t)

	// dirty the state first
	s.ToggleDevice("3")
	s.AddAutomationRule(models.RuleParams{Name: "Temp", Condition: "c", Action: "a"})
	s.AddIntegration(models.IntegrationParams{Name: "Extra", Type: models.IntegrationCloud, Status: models.IntegrationConnected})

	s.ClearAll()

	devices := s.Devices()
	require.Len(t, devices, 5)
	d, _ := s.Device("3")
	assert.False(t, d.IsActive, "devices reset to the seed set")
	assert.Equal(t, models.StatusOffline, d.Status)

	assert.Empty(t, s.AutomationRules())
	assert.Empty(t, s.MaintenanceTasks())
	assert.Len(t, s.Integrations(), 5, "integrations survive the reset")

	alerts := s.Alerts()
	require.Len(t, alerts, 1, "alert list is replaced, not prepended to")
	assert.Equal(t, "All data cleared and reset to defaults", alerts[0].Message)
	assert.Equal(t, models.AlertWarning, alerts[0].Type)
	assert.Equal(t, models.SeverityHigh, alerts[0].Severity)
}

func TestApplyJitter(t *testing.T) {
	s, _ := newTestStore(t)

	// a sample of exactly 0.5 leaves temperature, humidity and battery alone
	// and drifts uptime by +0.2
	s.ApplyJitter(fixedTelemetry{v: 0.5})

	d, _ := s.Device("1")
	require.NotNil(t, d.Temperature)
	assert.InDelta(t, 22.5, *d.Temperature, 1e-9)
	require.NotNil(t, d.Humidity)
	assert.InDelta(t, 45, *d.Humidity, 1e-9)
	require.NotNil(t, d.BatteryLevel)
	assert.InDelta(t, 85, *d.BatteryLevel, 1e-9)
	assert.InDelta(t, 98.7, d.Uptime, 1e-9)

	assert.Len(t, s.Alerts(), 4, "jitter never emits alerts")
	assert.Equal(t, models.StatusOffline, mustDevice(t, s, "3").Status, "jitter never flips status")
}

func TestApplyJitter_ClampsToPercentRange(t *testing.T) {
	s, _ := newTestStore(t)

	s.mu.Lock()
	d := s.findDevice("3")
	d.Uptime = 99.9
	v := 99.8
	d.BatteryLevel = &v
	s.mu.Unlock()

	s.ApplyJitter(fixedTelemetry{v: 1.0})

	got := mustDevice(t, s, "3")
	assert.Equal(t, float64(100), got.Uptime)
	require.NotNil(t, got.BatteryLevel)
	assert.Equal(t, float64(100), *got.BatteryLevel)

	s.mu.Lock()
	d = s.findDevice("3")
	d.Uptime = 0.1
	low := 0.3
	d.BatteryLevel = &low
	s.mu.Unlock()

	s.ApplyJitter(fixedTelemetry{v: 0.0})

	got = mustDevice(t, s, "3")
	assert.Equal(t, float64(0), got.Uptime)
	require.NotNil(t, got.BatteryLevel)
	assert.Equal(t, float64(0), *got.BatteryLevel)
}

func TestEveryCommandEmitsOneAlert(t *testing.T) {
	s, now := newTestStore(t)

	commands := []struct {
		name string
		run  func()
	}{
		{"toggle device", func() { s.ToggleDevice("1") }},
		{"configure device", func() { s.ConfigureDevice("1", models.DeviceConfig{}) }},
		{"add rule", func() { s.AddAutomationRule(models.RuleParams{Name: "r"}) }},
		{"toggle rule", func() { s.ToggleAutomationRule("1") }},
		{"delete rule", func() { s.DeleteAutomationRule("1") }},
		{"test integration", func() { s.TestIntegration("1") }},
		{"add integration", func() { s.AddIntegration(models.IntegrationParams{Name: "i"}) }},
		{"remove integration", func() { s.RemoveIntegration("1") }},
		{"schedule maintenance", func() { s.ScheduleMaintenance(models.TaskParams{DeviceID: "1", Type: "t", ScheduledDate: now}) }},
		{"complete maintenance", func() { s.CompleteMaintenance("2") }},
		{"record export", func() { s.RecordExport("all") }},
		{"record import", func() { s.RecordImport() }},
	}

	for _, cmd := range commands {
		before := len(s.Alerts())
		cmd.run()
		assert.Equal(t, before+1, len(s.Alerts()), "command %q must emit exactly one alert", cmd.name)
	}
}

func TestSubscribe_OncePerCommand(t *testing.T) {
	s, _ := newTestStore(t)

	count := 0
	unsubscribe := s.Subscribe(func() { count++ })

	s.ToggleDevice("1")
	assert.Equal(t, 1, count)

	s.AddAutomationRule(models.RuleParams{Name: "r"})
	assert.Equal(t, 2, count)

	s.DismissAlert("does-not-exist")
	assert.Equal(t, 2, count, "no-op commands do not notify")

	s.ApplyJitter(fixedTelemetry{v: 0.5})
	assert.Equal(t, 3, count, "jitter ticks notify so live views refresh")

	unsubscribe()
	s.ToggleDevice("1")
	assert.Equal(t, 3, count)
}

func TestSnapshot_IsConsistentCopy(t *testing.T) {
	s, _ := newTestStore(t)

	snap := s.Snapshot()
	require.Len(t, snap.Devices, 5)

	snap.Devices[0].Name = "mutated"
	d, _ := s.Device(snap.Devices[0].ID)
	assert.NotEqual(t, "mutated", d.Name, "snapshot must not alias store state")
}

func mustDevice(t *testing.T, s *Store, id string) models.Device {
	t.Helper()
	d, ok := s.Device(id)
	require.True(t, ok)
	return d
}
