package dto

import "github.com/fitplanhub/fitplanhub/internal/domain/user"

// SignupRequest represents a signup request. The role is fixed at signup.
type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=user trainer"`
	Bio      string `json:"bio,omitempty" validate:"max=1000"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserDTO represents a user in API responses
type UserDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Bio   string `json:"bio,omitempty"`
}

// AuthResponse represents an authentication response
type AuthResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// NewUserDTO maps a domain user into its response shape
func NewUserDTO(u *user.User) UserDTO {
	return UserDTO{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  string(u.Role),
		Bio:   u.Bio,
	}
}
