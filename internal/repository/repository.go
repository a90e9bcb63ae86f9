package repository

import (
	"database/sql"

	"softronix/internal/models"
)

// Accounts is the identity-service boundary: credential records plus the
// profile document store keyed by account id.
type Accounts interface {
	Create(a models.Account) error
	GetByEmail(email string) (*models.Account, error)
	GetProfile(id string) (*models.User, error)
	SaveProfile(u models.User) error
}

// Settings persists the serialized settings form under a fixed key.
type Settings interface {
	Load() ([]byte, bool, error)
	Save(raw []byte) error
}

type Repository struct {
	Accounts Accounts
	Settings Settings
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Accounts: NewAccountSQLite(db),
		Settings: NewSettingsSQLite(db),
	}
}
