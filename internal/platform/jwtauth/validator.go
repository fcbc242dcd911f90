// Package jwtauth validates bearer tokens issued by the external
// authentication subsystem. The core only needs the subject claim to
// identify the voter; issuing tokens is out of scope.
package jwtauth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Veselin15/FactNode/internal/platform/middleware"
	id "github.com/Veselin15/FactNode/pkg/domain"
)

// Validator checks HMAC-signed tokens against the shared signing key.
type Validator struct {
	signingKey []byte
}

// New constructs a Validator for the given signing key.
func New(signingKey string) *Validator {
	return &Validator{signingKey: []byte(signingKey)}
}

// ValidateToken parses and verifies the token and extracts the user ID
// from the subject claim.
func (v *Validator) ValidateToken(tokenString string) (*middleware.JWTClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.signingKey, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return nil, fmt.Errorf("token subject: %w", err)
	}
	userID, err := id.ParseUserID(subject)
	if err != nil {
		return nil, fmt.Errorf("token subject is not a user id: %w", err)
	}

	return &middleware.JWTClaims{UserID: userID}, nil
}

// Sign issues a token for a user. Used by tests and local tooling; the
// production issuer lives in the auth subsystem.
func (v *Validator) Sign(userID id.UserID) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID.String(),
	})
	return token.SignedString(v.signingKey)
}
