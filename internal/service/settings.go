package service

import (
	"encoding/json"
	"fmt"

	"softronix/internal/models"
	"softronix/internal/repository"
)

type SettingsService struct {
	repo repository.Settings
}

func NewSettingsService(repo repository.Settings) *SettingsService {
	return &SettingsService{repo: repo}
}

// defaultSettings is what a fresh installation sees before the first save.
func defaultSettings() models.Settings {
	return models.Settings{
		Profile: models.ProfileSettings{Company: "SoftronixTech", Timezone: "UTC-5"},
		Notifications: models.NotificationSettings{
			EmailAlerts:          true,
			PushNotifications:    true,
			MaintenanceReminders: true,
		},
		Security:   models.SecuritySettings{SessionTimeoutMin: "30", APIAccess: true},
		Appearance: models.AppearanceSettings{Theme: "dark", Language: "en", DateFormat: "MM/DD/YYYY"},
		System:     models.SystemSettings{DataRetentionDays: "90", AutoBackup: true},
	}
}

// Load returns the persisted settings, or the defaults if none were saved.
func (s *SettingsService) Load() (models.Settings, error) {
	raw, ok, err := s.repo.Load()
	if err != nil {
		return models.Settings{}, err
	}
	if !ok {
		return defaultSettings(), nil
	}
	var out models.Settings
	if err := json.Unmarshal(raw, &out); err != nil {
		return models.Settings{}, fmt.Errorf("decode stored settings: %w", err)
	}
	return out, nil
}

// Save persists the whole form under the fixed key.
func (s *SettingsService) Save(in models.Settings) error {
	raw, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	return s.repo.Save(raw)
}
