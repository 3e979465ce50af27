// Package auth issues and verifies the signed tokens carried inside the
// persisted session pointer. A token bounds a session's lifetime and lets
// the application detect a tampered or expired session slot.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dcastano/finanzapp/internal/shared"
)

// Claims extends the registered JWT claims with the owning user id.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

// GenerateToken signs an HS256 token for userID valid for validityDuration.
func GenerateToken(userID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUserIDFromToken verifies tokenString and returns the embedded user id.
// Expired or otherwise invalid tokens yield shared.ErrInvalidToken.
func GetUserIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return "", shared.ErrInvalidToken
	}

	if !token.Valid {
		return "", shared.ErrInvalidToken
	}

	return claims.UserID, nil
}
