package user

import (
	"fmt"
	"time"
)

// Role is the closed set of account roles. It is fixed at signup and no
// operation changes it afterwards.
type Role string

const (
	// RoleUser is a subscriber account
	RoleUser Role = "user"
	// RoleTrainer is a content creator account
	RoleTrainer Role = "trainer"
)

// ParseRole converts a string into a Role, rejecting unknown values
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser:
		return RoleUser, nil
	case RoleTrainer:
		return RoleTrainer, nil
	default:
		return "", fmt.Errorf("unknown role: %q", s)
	}
}

// User represents an account in the system
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Not exposed in JSON
	Role         Role      `json:"role"`
	Bio          string    `json:"bio,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Public is the subset of a user safe to embed in other entities
// (plan listings, follow edges, trainer profiles).
type Public struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Bio   string `json:"bio,omitempty"`
}

// Public returns the public projection of the user
func (u *User) Public() Public {
	return Public{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Bio:   u.Bio,
	}
}
