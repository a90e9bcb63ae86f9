package service

import (
	"encoding/json"
	"fmt"
	"time"

	"softronix/internal/logger"
	"softronix/internal/store"
)

// exportPrefix names the downloadable artifacts: softronix-<kind>-<date>.json.
const exportPrefix = "softronix"

// ExportFile is a downloadable JSON artifact.
type ExportFile struct {
	Filename string
	Payload  []byte
}

// DataService covers export, import and the full reset. Export is a pure read
// of the store plus a confirmation alert; import acknowledges any payload
// without merging it (the dashboard never had a real import path).
type DataService struct {
	store *store.Store
	log   *logger.Logger
	now   func() time.Time
}

func NewDataService(st *store.Store, log *logger.Logger) *DataService {
	return &DataService{
		store: st,
		log:   log,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Export serializes the requested collection, or all five for "all" and any
// unknown kind. Store state is not mutated beyond the confirmation alert.
func (s *DataService) Export(kind string) (ExportFile, error) {
	snap := s.store.Snapshot()

	var data any
	switch kind {
	case "devices":
		data = snap.Devices
	case "alerts":
		data = snap.Alerts
	case "automation":
		data = snap.AutomationRules
	case "integrations":
		data = snap.Integrations
	case "maintenance":
		data = snap.MaintenanceTasks
	default:
		kind = "all"
		data = snap
	}

	payload, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return ExportFile{}, fmt.Errorf("marshal %s export: %w", kind, err)
	}

	s.store.RecordExport(kind)
	return ExportFile{
		Filename: fmt.Sprintf("%s-%s-%s.json", exportPrefix, kind, s.now().Format("2006-01-02")),
		Payload:  payload,
	}, nil
}

// ExportChart wraps chart data in the {type, timestamp, data} envelope used
// by the visualization exports.
func (s *DataService) ExportChart(chartType string, data any) (ExportFile, error) {
	now := s.now()
	payload, err := json.MarshalIndent(map[string]any{
		"type":      chartType,
		"timestamp": now.Format(time.RFC3339),
		"data":      data,
	}, "", "  ")
	if err != nil {
		return ExportFile{}, fmt.Errorf("marshal chart export %q: %w", chartType, err)
	}

	s.store.RecordExport(chartType)
	return ExportFile{
		Filename: fmt.Sprintf("%s-data-%s.json", chartType, now.Format("2006-01-02")),
		Payload:  payload,
	}, nil
}

// Import logs and acknowledges the payload. Nothing is validated or merged
// into the collections; the confirmation alert fires regardless.
func (s *DataService) Import(payload map[string]any) {
	if s.log != nil {
		s.log.Infow("data_import_received", "keys", len(payload))
	}
	s.store.RecordImport()
}

// ClearAll resets devices to the seed set and empties alerts, rules and
// tasks. Integrations survive the reset.
func (s *DataService) ClearAll() {
	s.store.ClearAll()
}
