package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/fitplanhub/fitplanhub/internal/domain/user"
)

// Claims is the verified identity a credential yields: who the caller is and
// which role they signed up with.
type Claims struct {
	UserID int64     `json:"userId"`
	Role   user.Role `json:"role"`
	jwt.RegisteredClaims
}

// MintToken signs an HS256 token carrying the user's identity
func MintToken(userID int64, role user.Role, secret string, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	})
	return token.SignedString([]byte(secret))
}

// ParseClaims verifies a token and returns its claims. The role is re-checked
// against the closed enum so a forged or stale value never reaches a handler.
func ParseClaims(tokenStr, secret string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	c, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	if _, err := user.ParseRole(string(c.Role)); err != nil {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return c, nil
}
