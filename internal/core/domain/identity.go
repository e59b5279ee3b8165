package domain

import (
	"errors"
	"time"
)

const (
	RoleArtisan = "artisan"
	RoleMentor  = "mentor"
)

var ErrIdentityNotFound = errors.New("identity not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidRole = errors.New("invalid role")
var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidRole reports whether role is one of the enumerated platform roles.
func ValidRole(role string) bool {
	return role == RoleArtisan || role == RoleMentor
}

// Identity models a registered platform participant. Role is fixed at
// sign-up; there is no edit path for it.
type Identity struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Location     string    `json:"location,omitempty"`
	Skills       []string  `json:"skills,omitempty"`
	Materials    []string  `json:"materials,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	Experience   string    `json:"experience,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
