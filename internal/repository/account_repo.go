package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"softronix/internal/models"
)

type AccountSQLite struct {
	db *sql.DB
}

func NewAccountSQLite(db *sql.DB) *AccountSQLite {
	return &AccountSQLite{db: db}
}

// Ensure implementation of Accounts interface at compile time.
var _ Accounts = (*AccountSQLite)(nil)

const (
	insertAccountSQL = `INSERT INTO accounts (id, email, name, password_hash) VALUES (?, ?, ?, ?)`
	selectAccountSQL = `SELECT id, email, name, password_hash FROM accounts WHERE email = ?`
	selectProfileSQL = `SELECT id, email, name, role, created_at FROM profiles WHERE id = ?`
	upsertProfileSQL = `
		INSERT INTO profiles (id, email, name, role, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			email=excluded.email,
			name=excluded.name,
			role=excluded.role
	`
)

// Create inserts a new credential record. Duplicate emails surface as an
// error from the unique index.
func (r *AccountSQLite) Create(a models.Account) error {
	if _, err := r.db.Exec(insertAccountSQL, a.ID, a.Email, a.Name, a.PasswordHash); err != nil {
		return fmt.Errorf("insert account %q: %w", a.Email, err)
	}
	return nil
}

// GetByEmail fetches an account by email. Returns (nil, nil) if not found.
func (r *AccountSQLite) GetByEmail(email string) (*models.Account, error) {
	var a models.Account
	err := r.db.QueryRow(selectAccountSQL, email).Scan(&a.ID, &a.Email, &a.Name, &a.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select account %q: %w", email, err)
	}
	return &a, nil
}

// GetProfile fetches the profile document for an account id. Returns
// (nil, nil) if no document exists yet.
func (r *AccountSQLite) GetProfile(id string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRow(selectProfileSQL, id).Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select profile %q: %w", id, err)
	}
	u.CreatedAt = u.CreatedAt.UTC()
	return &u, nil
}

// SaveProfile inserts or updates the profile document. CreatedAt is only
// meaningful on first insert; the upsert leaves it untouched on update.
func (r *AccountSQLite) SaveProfile(u models.User) error {
	if _, err := r.db.Exec(upsertProfileSQL, u.ID, u.Email, u.Name, u.Role, u.CreatedAt.UTC()); err != nil {
		return fmt.Errorf("save profile %q: %w", u.ID, err)
	}
	return nil
}
