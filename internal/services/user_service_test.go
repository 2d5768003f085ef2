package services

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/fitplanhub/fitplanhub/internal/domain/user"
	"github.com/fitplanhub/fitplanhub/internal/pkg/errors"
	"github.com/fitplanhub/fitplanhub/internal/pkg/logger"
	"github.com/fitplanhub/fitplanhub/internal/testutil"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Format: "json"})
}

func TestUserService_Signup(t *testing.T) {
	mockRepo := testutil.NewMockUserRepository()
	service := NewUserService(mockRepo, bcrypt.MinCost, testLogger())
	ctx := context.Background()

	u, err := service.Signup(ctx, "Alice", "alice@example.com", "secret123", user.RoleTrainer, "Strength coach")
	if err != nil {
		t.Fatalf("Signup() error = %v", err)
	}

	if u.ID == 0 {
		t.Error("Signup() did not assign an ID")
	}
	if u.Role != user.RoleTrainer {
		t.Errorf("Signup() role = %v, want %v", u.Role, user.RoleTrainer)
	}
	if u.PasswordHash == "secret123" {
		t.Error("Signup() stored the plaintext password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret123")); err != nil {
		t.Errorf("Signup() stored hash does not match password: %v", err)
	}
}

func TestUserService_Signup_DuplicateEmail(t *testing.T) {
	mockRepo := testutil.NewMockUserRepository()
	service := NewUserService(mockRepo, bcrypt.MinCost, testLogger())
	ctx := context.Background()

	if _, err := service.Signup(ctx, "Alice", "alice@example.com", "secret123", user.RoleUser, ""); err != nil {
		t.Fatalf("first Signup() error = %v", err)
	}

	_, err := service.Signup(ctx, "Other Alice", "alice@example.com", "different", user.RoleTrainer, "")
	if !errors.IsConflict(err) {
		t.Errorf("second Signup() error = %v, want conflict", err)
	}
}

func TestUserService_Authenticate(t *testing.T) {
	mockRepo := testutil.NewMockUserRepository()
	service := NewUserService(mockRepo, bcrypt.MinCost, testLogger())
	ctx := context.Background()

	created, err := service.Signup(ctx, "Bob", "bob@example.com", "hunter22", user.RoleUser, "")
	if err != nil {
		t.Fatalf("Signup() error = %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  bool
	}{
		{
			name:     "valid credentials",
			email:    "bob@example.com",
			password: "hunter22",
			wantErr:  false,
		},
		{
			name:     "wrong password",
			email:    "bob@example.com",
			password: "wrong",
			wantErr:  true,
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "hunter22",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := service.Authenticate(ctx, tt.email, tt.password)

			if (err != nil) != tt.wantErr {
				t.Errorf("Authenticate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if tt.wantErr {
				// Wrong password and unknown email must be indistinguishable
				appErr, ok := errors.As(err)
				if !ok || appErr.StatusCode != 401 {
					t.Errorf("Authenticate() error = %v, want 401", err)
				}
				if appErr.Message != "Invalid credentials" {
					t.Errorf("Authenticate() message = %q, want %q", appErr.Message, "Invalid credentials")
				}
				return
			}

			if u.ID != created.ID {
				t.Errorf("Authenticate() user ID = %d, want %d", u.ID, created.ID)
			}
		})
	}
}
