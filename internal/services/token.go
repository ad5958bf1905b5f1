package services

import (
	"fmt"
	"time"

	"jobboard-api/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the token payload: principal id (subject), role tag and the
// fixed, non-renewable expiry. There is no refresh mechanism and no
// revocation list; a token stays valid until it expires.
type Claims struct {
	Role models.Role `json:"role"`
	jwt.RegisteredClaims
}

// generateToken issues a signed HS256 token for the given principal.
func generateToken(principalID uuid.UUID, role models.Role, secret string, expiration time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principalID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}
