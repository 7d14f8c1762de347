package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Codec signs session ids into cookie-safe tokens and validates them back.
type Codec struct {
	secretKey []byte
	ttl       time.Duration
}

// NewCodec creates a new Codec
func NewCodec(secretKey string, ttl time.Duration) *Codec {
	return &Codec{secretKey: []byte(secretKey), ttl: ttl}
}

// TTL is the lifetime stamped on every encoded token.
func (sc *Codec) TTL() time.Duration {
	return sc.ttl
}

// Encode signs the session id with a fresh expiry.
func (sc *Codec) Encode(sessionID string) (string, error) {
	now := time.Now()
	claims := &jwt.RegisteredClaims{
		ID:        sessionID,
		ExpiresAt: jwt.NewNumericDate(now.Add(sc.ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(sc.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign session: %w", err)
	}
	return tokenString, nil
}

// Decode validates the token signature and expiry and returns the session id.
func (sc *Codec) Decode(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return sc.secretKey, nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to parse session: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.ID == "" {
		return "", fmt.Errorf("invalid session")
	}
	return claims.ID, nil
}
