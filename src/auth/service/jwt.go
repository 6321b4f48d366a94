package auth_service

import (
	"errors"
	"time"

	"github.com/Altaway/wabridge-server/src/config/env"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// GenerateToken signs a JWT carrying the user id as subject. Tokens expire
// after env.JwtExpiry.
func GenerateToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(env.JwtExpiry)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(env.JwtSecret))
}

// ParseToken validates a signed token and returns the user id it carries.
// Only HMAC signatures are accepted.
func ParseToken(tokenString string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(env.JwtSecret), nil
		},
	)
	if err != nil {
		return uuid.Nil, err
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return uuid.Nil, errors.New("invalid token claims")
	}

	return uuid.Parse(claims.Subject)
}
