package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// GenerateToken issues a signed HS256 bearer token for the given user.
// The secret is passed explicitly; nothing here reads ambient state.
func GenerateToken(userID uint64, secret []byte, lifetime time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userID,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(lifetime).Unix(),
	})

	return token.SignedString(secret)
}

// ParseToken verifies a bearer token and returns the user ID it carries.
func ParseToken(tokenString string, secret []byte) (uint64, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}

	// Numeric claims decode as float64 when the token was JSON-encoded.
	id, ok := claims["userId"].(float64)
	if !ok || id < 0 {
		return 0, ErrInvalidToken
	}

	return uint64(id), nil
}
