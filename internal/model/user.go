package model

import "time"

// Role is the closed set of user roles. A role is fixed at creation
// and never changes for the lifetime of the account.
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RolePatient, RoleDoctor, RoleAdmin:
		return true
	}
	return false
}

// User is the identity record shared by all roles. Accounts seeded
// from fixtures carry an empty PasswordHash and authenticate against
// the fixture sentinel; accounts created through registration carry a
// bcrypt hash.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	Avatar       string    `json:"avatar,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Patient is a user with role=patient plus demographic details.
type Patient struct {
	User
	Phone          string   `json:"phone,omitempty"`
	DateOfBirth    string   `json:"date_of_birth,omitempty"`
	Gender         string   `json:"gender,omitempty"`
	Address        string   `json:"address,omitempty"`
	MedicalHistory []string `json:"medical_history,omitempty"`
}
