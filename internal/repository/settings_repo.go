package repository

import (
	"database/sql"
	"errors"
	"fmt"
)

// settingsKey is the fixed key the serialized settings form lives under.
// There is no schema versioning; the payload is opaque JSON.
const settingsKey = "dashboard-settings"

type SettingsSQLite struct {
	db *sql.DB
}

func NewSettingsSQLite(db *sql.DB) *SettingsSQLite {
	return &SettingsSQLite{db: db}
}

var _ Settings = (*SettingsSQLite)(nil)

const (
	selectSettingSQL = `SELECT value FROM settings WHERE key = ?`
	upsertSettingSQL = `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value=excluded.value
	`
)

// Load returns the stored payload; the bool reports whether one exists.
func (r *SettingsSQLite) Load() ([]byte, bool, error) {
	var raw []byte
	err := r.db.QueryRow(selectSettingSQL, settingsKey).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("select setting %q: %w", settingsKey, err)
	}
	return raw, true, nil
}

// Save stores the payload, replacing any previous value.
func (r *SettingsSQLite) Save(raw []byte) error {
	if _, err := r.db.Exec(upsertSettingSQL, settingsKey, raw); err != nil {
		return fmt.Errorf("save setting %q: %w", settingsKey, err)
	}
	return nil
}
