package domain

import (
	"time"
)

// User is a stored account. IDs are caller supplied and often equal the
// email address. Email uniqueness is intended but nothing enforces it;
// two users may share an email.
type User struct {
	ID        string
	Email     string
	IsActive  bool
	CreatedAt time.Time
}

func NewUser(id, email string) User {
	return User{
		ID:        id,
		Email:     email,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
}

// Deactivated returns a copy with the active flag cleared. Users are never
// deleted, only replaced under the same id.
func (u User) Deactivated() User {
	return User{
		ID:        u.ID,
		Email:     u.Email,
		IsActive:  false,
		CreatedAt: u.CreatedAt,
	}
}
