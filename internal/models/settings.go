package models

// Settings is the dashboard settings form, persisted whole under a single
// fixed key. There is no schema versioning; unknown fields are dropped on
// round-trip.
type Settings struct {
	Profile       ProfileSettings      `json:"profile"`
	Notifications NotificationSettings `json:"notifications"`
	Security      SecuritySettings     `json:"security"`
	Appearance    AppearanceSettings   `json:"appearance"`
	System        SystemSettings       `json:"system"`
}

type ProfileSettings struct {
	Company  string `json:"company"`
	Timezone string `json:"timezone"`
}

type NotificationSettings struct {
	EmailAlerts          bool `json:"email_alerts"`
	PushNotifications    bool `json:"push_notifications"`
	SMSAlerts            bool `json:"sms_alerts"`
	MaintenanceReminders bool `json:"maintenance_reminders"`
}

type SecuritySettings struct {
	TwoFactorAuth     bool   `json:"two_factor_auth"`
	SessionTimeoutMin string `json:"session_timeout"`
	APIAccess         bool   `json:"api_access"`
}

type AppearanceSettings struct {
	Theme      string `json:"theme"`
	Language   string `json:"language"`
	DateFormat string `json:"date_format"`
}

type SystemSettings struct {
	DataRetentionDays string `json:"data_retention"`
	AutoBackup        bool   `json:"auto_backup"`
	DebugMode         bool   `json:"debug_mode"`
}
