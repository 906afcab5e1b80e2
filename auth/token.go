// token.go - JWT issuance and verification

package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library
	"github.com/google/uuid"

	"go-pollution-backend/apperrors"
)

// TokenTTL is how long an issued token stays valid.
const TokenTTL = 24 * time.Hour

// GenerateToken signs a token carrying the user id, expiring after TokenTTL.
func GenerateToken(secret string, userID uuid.UUID) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  userID.String(),
		"exp": time.Now().Add(TokenTTL).Unix(),
	})
	return token.SignedString([]byte(secret))
}

// ParseToken verifies a signed token and returns the user id it references.
// Malformed, expired, or wrongly-signed tokens yield an authentication error.
func ParseToken(secret, tokenStr string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil // Provide secret key for validation
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid { // Invalid signature or expired
		return uuid.Nil, apperrors.Authentication("Invalid authentication.")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, apperrors.Authentication("Invalid authentication.")
	}
	idStr, ok := claims["id"].(string)
	if !ok {
		return uuid.Nil, apperrors.Authentication("Invalid authentication.")
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, apperrors.Authentication("Invalid authentication.")
	}
	return id, nil
}
