package service

import (
	"errors"

	"softronix/internal/models"
	"softronix/internal/store"
)

var errBadTelemetryRange = errors.New("invalid config: humidity and temperature must be within sensor range")

// DeviceService fronts the store's device collection. Toggle and unknown ids
// follow the store's silent no-op policy; Configure validates the tagged
// config record at the command boundary before merging.
type DeviceService struct {
	store *store.Store
}

func NewDeviceService(st *store.Store) *DeviceService {
	return &DeviceService{store: st}
}

func (s *DeviceService) List() []models.Device {
	return s.store.Devices()
}

func (s *DeviceService) Get(id string) (models.Device, bool) {
	return s.store.Device(id)
}

// Toggle flips the device's active flag and online/offline status.
func (s *DeviceService) Toggle(id string) {
	s.store.ToggleDevice(id)
}

// Configure shallow-merges cfg into the device after validating ranges.
// Sensor limits mirror what the dashboard form accepts.
func (s *DeviceService) Configure(id string, cfg models.DeviceConfig) error {
	if cfg.Temperature != nil && (*cfg.Temperature < -40 || *cfg.Temperature > 125) {
		return errBadTelemetryRange
	}
	if cfg.Humidity != nil && (*cfg.Humidity < 0 || *cfg.Humidity > 100) {
		return errBadTelemetryRange
	}
	s.store.ConfigureDevice(id, cfg)
	return nil
}
