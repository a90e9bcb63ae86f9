package models

import "time"

// DefaultRole is merged into profiles that were created without one.
const DefaultRole = "user"

// User is the session-facing profile record.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// Account is the credential record behind a user. The profile document is
// stored separately so a profile fetch can fail without blocking sign-in.
type Account struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"` // don’t expose hash
}
