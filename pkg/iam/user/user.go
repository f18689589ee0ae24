package user

import (
	"slices"
	"time"

	"github.com/Abraxas-365/recruitboard/pkg/kernel"
)

// User is an operator allowed to sign in to the dashboard
type User struct {
	ID           kernel.UserID      `db:"id" json:"id"`
	Email        kernel.Email       `db:"email" json:"email"`
	DisplayName  kernel.DisplayName `db:"display_name" json:"display_name"`
	PhotoURL     *string            `db:"photo_url" json:"photo_url,omitempty"`
	PasswordHash string             `db:"password_hash" json:"-"`
	Scopes       []string           `db:"scopes" json:"scopes"`
	Active       bool               `db:"active" json:"active"`
	CreatedAt    time.Time          `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `db:"updated_at" json:"updated_at"`
}

// IsActive checks if the user may sign in
func (u *User) IsActive() bool {
	return u.Active
}

// HasAnyScope checks whether the user holds at least one of the given scopes
func (u *User) HasAnyScope(scopes ...string) bool {
	for _, s := range scopes {
		if slices.Contains(u.Scopes, s) {
			return true
		}
	}
	return false
}

// Name returns the display name, falling back to the email
func (u *User) Name() string {
	if u.DisplayName != "" {
		return string(u.DisplayName)
	}
	return string(u.Email)
}

// Profile is the public view of a signed-in user
type Profile struct {
	ID          kernel.UserID `json:"id"`
	DisplayName string        `json:"display_name"`
	Email       kernel.Email  `json:"email"`
	PhotoURL    *string       `json:"photo_url,omitempty"`
	Scopes      []string      `json:"scopes"`
}

// ToProfile strips credentials from the user
func (u *User) ToProfile() Profile {
	return Profile{
		ID:          u.ID,
		DisplayName: u.Name(),
		Email:       u.Email,
		PhotoURL:    u.PhotoURL,
		Scopes:      u.Scopes,
	}
}
