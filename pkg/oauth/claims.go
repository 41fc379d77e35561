package oauth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// IDTokenClaims holds the identity claims shown to a user after login.
type IDTokenClaims struct {
	jwt.RegisteredClaims

	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

// ParseIDTokenClaims extracts claims from an ID token WITHOUT checking its
// signature or any time-based claim. The result is for display only and must
// not be used to make an authorization decision.
func ParseIDTokenClaims(idToken string) (*IDTokenClaims, error) {
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())

	claims := &IDTokenClaims{}
	if _, _, err := parser.ParseUnverified(idToken, claims); err != nil {
		return nil, fmt.Errorf("failed to parse id_token: %w", err)
	}

	return claims, nil
}
