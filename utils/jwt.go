package utils

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every way an unsubscribe token can be rejected:
// bad signature, wrong algorithm, expired, or missing claims.
var ErrInvalidToken = errors.New("invalid token")

const unsubscribeSubject = "unsubscribe"

// GenerateUnsubscribeToken signs an unsubscribe link token for email.
// A zero ttl issues a token that never expires.
func GenerateUnsubscribeToken(secret, email string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"sub":   unsubscribeSubject,
		"iat":   time.Now().Unix(),
	}
	if ttl > 0 {
		claims["exp"] = time.Now().Add(ttl).Unix()
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyUnsubscribeToken checks the token and returns the email it was
// issued for.
func VerifyUnsubscribeToken(secret, token string) (string, error) {
	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !parsedToken.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	if sub, _ := claims["sub"].(string); sub != unsubscribeSubject {
		return "", ErrInvalidToken
	}
	email, _ := claims["email"].(string)
	if strings.TrimSpace(email) == "" {
		return "", ErrInvalidToken
	}
	return email, nil
}
