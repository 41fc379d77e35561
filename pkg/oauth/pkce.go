package oauth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"golang.org/x/oauth2"
)

const (
	// PKCEMethodS256 is the only challenge method this client generates.
	PKCEMethodS256 = "S256"

	// RFC 7636 section 4.1 bounds on the code verifier length.
	MinVerifierLength = 43
	MaxVerifierLength = 128

	// stateBytes is the number of random bytes for the OAuth state parameter.
	stateBytes = 32
)

// PKCEPair is a PKCE code verifier with its derived challenge.
// The verifier stays with the caller until the code exchange; only the
// challenge and method go to the authorization endpoint.
type PKCEPair struct {
	Verifier  string
	Challenge string
	Method    string
}

// GeneratePKCE generates a new S256 PKCE pair. The verifier is 32 random
// bytes, base64url encoded to 43 characters.
func GeneratePKCE() PKCEPair {
	verifier := oauth2.GenerateVerifier()

	return PKCEPair{
		Verifier:  verifier,
		Challenge: ChallengeFromVerifier(verifier),
		Method:    PKCEMethodS256,
	}
}

// ChallengeFromVerifier returns base64url(SHA-256(verifier)) without padding.
func ChallengeFromVerifier(verifier string) string {
	return oauth2.S256ChallengeFromVerifier(verifier)
}

// ValidateVerifier checks a caller supplied code verifier against RFC 7636
// section 4.1: 43 to 128 characters from [A-Za-z0-9-._~].
func ValidateVerifier(verifier string) error {
	if len(verifier) < MinVerifierLength || len(verifier) > MaxVerifierLength {
		return fmt.Errorf("code verifier must be %d to %d characters, got %d",
			MinVerifierLength, MaxVerifierLength, len(verifier))
	}

	for i := 0; i < len(verifier); i++ {
		if !isUnreserved(verifier[i]) {
			return fmt.Errorf("code verifier contains %q at position %d, only A-Z a-z 0-9 - . _ ~ are allowed",
				verifier[i], i)
		}
	}
	return nil
}

func isUnreserved(c byte) bool {
	switch {
	case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '.', c == '_', c == '~':
		return true
	}
	return false
}

// GenerateState returns a random base64url state value for CSRF protection.
func GenerateState() (string, error) {
	b := make([]byte, stateBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate state: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}
