package user

import "context"

// Service defines the interface for user business logic
type Service interface {
	// Signup creates a new account with a hashed password
	Signup(ctx context.Context, name, email, password string, role Role, bio string) (*User, error)

	// Authenticate verifies credentials and returns the matching user
	Authenticate(ctx context.Context, email, password string) (*User, error)

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id int64) (*User, error)
}
