package service

import (
	"encoding/json"
	"testing"
	"time"

	"softronix/internal/logger"
	"softronix/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDataService(t *testing.T) (*DataService, *store.Store) {
	t.Helper()
	st := store.New()
	svc := NewDataService(st, logger.Get(logger.ErrorLevel))
	svc.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }
	return svc, st
}

func TestDataService_ExportSingleCollection(t *testing.T) {
	svc, st := newTestDataService(t)

	file, err := svc.Export("devices")
	require.NoError(t, err)

	assert.Equal(t, "softronix-devices-2024-06-01.json", file.Filename)

	var devices []map[string]any
	require.NoError(t, json.Unmarshal(file.Payload, &devices))
	assert.Len(t, devices, 5)

	assert.Equal(t, "devices data exported successfully", st.Alerts()[0].Message)
}

func TestDataService_ExportUnknownKindFallsBackToAll(t *testing.T) {
	svc, st := newTestDataService(t)

	file, err := svc.Export("bogus")
	require.NoError(t, err)

	assert.Equal(t, "softronix-all-2024-06-01.json", file.Filename)

	var snap map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(file.Payload, &snap))
	for _, key := range []string{"devices", "alerts", "automationRules", "integrations", "maintenanceTasks"} {
		assert.Contains(t, snap, key)
	}

	assert.Equal(t, "all data exported successfully", st.Alerts()[0].Message)
}

func TestDataService_ExportChart(t *testing.T) {
	svc, st := newTestDataService(t)

	file, err := svc.ExportChart("temperature", []map[string]any{{"t": 22.5}})
	require.NoError(t, err)

	assert.Equal(t, "temperature-data-2024-06-01.json", file.Filename)

	var envelope map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(file.Payload, &envelope))
	assert.Contains(t, envelope, "type")
	assert.Contains(t, envelope, "timestamp")
	assert.Contains(t, envelope, "data")

	assert.Equal(t, "temperature data exported successfully", st.Alerts()[0].Message)
}

func TestDataService_ImportAcknowledgesWithoutMerging(t *testing.T) {
	svc, st := newTestDataService(t)
	before := st.Snapshot()

	svc.Import(map[string]any{"devices": []any{map[string]any{"id": "999"}}})

	assert.Len(t, st.Devices(), len(before.Devices), "import never merges payload data")
	assert.Equal(t, "Data imported successfully", st.Alerts()[0].Message)
}

func TestDataService_ClearAll(t *testing.T) {
	svc, st := newTestDataService(t)

	svc.ClearAll()

	alerts := st.Alerts()
	require.Len(t, alerts, 1)
	assert.Equal(t, "All data cleared and reset to defaults", alerts[0].Message)
	assert.Empty(t, st.AutomationRules())
	assert.Len(t, st.Integrations(), 4)
}
