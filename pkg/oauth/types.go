package oauth

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// Token is a typed view of a token endpoint response. The transport returns
// the response as a generic JSON object; TokenFromResult decodes it without
// validating anything.
type Token struct {
	// AccessToken is the bearer token used for authorization.
	AccessToken string `json:"access_token"`

	// TokenType is typically "Bearer".
	TokenType string `json:"token_type,omitempty"`

	// RefreshToken is used to obtain new access tokens (optional).
	RefreshToken string `json:"refresh_token,omitempty"`

	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int64 `json:"expires_in,omitempty"`

	// Scope is the granted scope(s), space-separated.
	Scope string `json:"scope,omitempty"`

	// IDToken is the OIDC ID token, present when openid was requested.
	IDToken string `json:"id_token,omitempty"`
}

// TokenFromResult decodes a token endpoint response object.
func TokenFromResult(result map[string]any) (*Token, error) {
	var t Token
	if err := decodeResult(result, &t); err != nil {
		return nil, fmt.Errorf("failed to decode token response: %w", err)
	}
	return &t, nil
}

// Scopes returns the granted scope as a slice.
func (t *Token) Scopes() []string {
	if t.Scope == "" {
		return nil
	}
	return strings.Fields(t.Scope)
}

// ExpiresAt returns the expiry relative to now, or the zero time when the
// response carried no lifetime.
func (t *Token) ExpiresAt(now time.Time) time.Time {
	if t.ExpiresIn <= 0 {
		return time.Time{}
	}
	return now.Add(time.Duration(t.ExpiresIn) * time.Second)
}

// ToOAuth2Token converts the Token for use with golang.org/x/oauth2 based
// HTTP clients.
func (t *Token) ToOAuth2Token(now time.Time) *oauth2.Token {
	token := &oauth2.Token{
		AccessToken:  t.AccessToken,
		TokenType:    t.TokenType,
		RefreshToken: t.RefreshToken,
		Expiry:       t.ExpiresAt(now),
	}

	if t.IDToken != "" {
		token = token.WithExtra(map[string]interface{}{
			"id_token": t.IDToken,
		})
	}

	return token
}

// Metadata is the provider's OpenID Connect discovery document.
type Metadata struct {
	Issuer                            string   `json:"issuer"`
	AuthorizationEndpoint             string   `json:"authorization_endpoint"`
	TokenEndpoint                     string   `json:"token_endpoint"`
	UserinfoEndpoint                  string   `json:"userinfo_endpoint,omitempty"`
	JwksURI                           string   `json:"jwks_uri,omitempty"`
	ScopesSupported                   []string `json:"scopes_supported,omitempty"`
	ResponseTypesSupported            []string `json:"response_types_supported,omitempty"`
	GrantTypesSupported               []string `json:"grant_types_supported,omitempty"`
	TokenEndpointAuthMethodsSupported []string `json:"token_endpoint_auth_methods_supported,omitempty"`
	CodeChallengeMethodsSupported     []string `json:"code_challenge_methods_supported,omitempty"`
}

// MetadataFromResult decodes a discovery response object.
func MetadataFromResult(result map[string]any) (*Metadata, error) {
	var m Metadata
	if err := decodeResult(result, &m); err != nil {
		return nil, fmt.Errorf("failed to decode discovery document: %w", err)
	}
	return &m, nil
}

// SupportsPKCE returns true if the provider advertises S256, or advertises
// no methods at all.
func (m *Metadata) SupportsPKCE() bool {
	for _, method := range m.CodeChallengeMethodsSupported {
		if method == PKCEMethodS256 {
			return true
		}
	}
	return len(m.CodeChallengeMethodsSupported) == 0
}

func decodeResult(result map[string]any, v any) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}
