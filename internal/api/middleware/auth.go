package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/fitplanhub/fitplanhub/internal/auth"
	"github.com/fitplanhub/fitplanhub/internal/domain/user"
	"github.com/fitplanhub/fitplanhub/internal/pkg/errors"
	"github.com/fitplanhub/fitplanhub/internal/pkg/utils"
)

// ContextKey is a custom type for context keys
type ContextKey string

const (
	// UserIDKey is the context key for user ID
	UserIDKey ContextKey = "userID"
	// UserRoleKey is the context key for the user's role
	UserRoleKey ContextKey = "userRole"
)

func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

func withClaims(r *http.Request, claims *auth.Claims) *http.Request {
	ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
	ctx = context.WithValue(ctx, UserRoleKey, claims.Role)
	return r.WithContext(ctx)
}

// Auth returns a middleware that requires a valid bearer token
func Auth(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := bearerToken(r)
			if tokenStr == "" {
				utils.WriteError(w, errors.Unauthorized("No token provided"))
				return
			}

			claims, err := auth.ParseClaims(tokenStr, jwtSecret)
			if err != nil {
				utils.WriteError(w, errors.Unauthorized("Invalid token"))
				return
			}

			AddLogField(w, "user_id", claims.UserID)
			next.ServeHTTP(w, withClaims(r, claims))
		})
	}
}

// OptionalAuth is like Auth but never rejects the request: an absent or
// invalid credential yields an anonymous viewer.
func OptionalAuth(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if tokenStr := bearerToken(r); tokenStr != "" {
				if claims, err := auth.ParseClaims(tokenStr, jwtSecret); err == nil {
					AddLogField(w, "user_id", claims.UserID)
					r = withClaims(r, claims)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireRole returns a middleware that rejects authenticated callers whose
// role does not match. It must run after Auth.
func RequireRole(role user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, ok := GetUserRole(r)
			if !ok || got != role {
				utils.WriteError(w, errors.Forbidden("Access denied. "+roleTitle(role)+" role required."))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func roleTitle(role user.Role) string {
	s := string(role)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// GetUserID extracts the user ID from the request context
func GetUserID(r *http.Request) (int64, bool) {
	userID, ok := r.Context().Value(UserIDKey).(int64)
	return userID, ok
}

// GetUserRole extracts the user role from the request context
func GetUserRole(r *http.Request) (user.Role, bool) {
	role, ok := r.Context().Value(UserRoleKey).(user.Role)
	return role, ok
}
