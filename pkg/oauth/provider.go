package oauth

import "strings"

const (
	// AuthorizePath is the authorization endpoint path, relative to the base URL.
	AuthorizePath = "/oauth/authorize"

	// TokenPath is the token endpoint path, relative to the base URL.
	TokenPath = "/oauth/token"
)

// ProviderConfig identifies the identity provider and the registered client.
// It is a value type with unexported fields, so a ProviderConfig cannot change
// after NewProviderConfig returns.
type ProviderConfig struct {
	baseURL      string
	clientID     string
	clientSecret string
	hasSecret    bool
}

// ProviderOption configures a ProviderConfig.
type ProviderOption func(*ProviderConfig)

// WithClientSecret sets the client secret. Confidential clients send it in
// every token request; public clients omit this option and rely on PKCE.
func WithClientSecret(secret string) ProviderOption {
	return func(c *ProviderConfig) {
		c.clientSecret = secret
		c.hasSecret = true
	}
}

// NewProviderConfig creates a ProviderConfig. Trailing slashes are stripped
// from baseURL so endpoint paths can be appended directly.
func NewProviderConfig(baseURL, clientID string, opts ...ProviderOption) ProviderConfig {
	c := ProviderConfig{
		baseURL:  strings.TrimRight(baseURL, "/"),
		clientID: clientID,
	}

	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// BaseURL returns the provider base URL without a trailing slash.
func (c ProviderConfig) BaseURL() string {
	return c.baseURL
}

// ClientID returns the OAuth client identifier.
func (c ProviderConfig) ClientID() string {
	return c.clientID
}

// ClientSecret returns the client secret and whether one was configured.
// An empty secret that was explicitly configured reports ok == true.
func (c ProviderConfig) ClientSecret() (secret string, ok bool) {
	return c.clientSecret, c.hasSecret
}

// Endpoint joins path onto the base URL.
func (c ProviderConfig) Endpoint(path string) string {
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

// AuthorizeEndpoint returns the absolute authorization endpoint URL.
func (c ProviderConfig) AuthorizeEndpoint() string {
	return c.Endpoint(AuthorizePath)
}

// TokenEndpoint returns the absolute token endpoint URL.
func (c ProviderConfig) TokenEndpoint() string {
	return c.Endpoint(TokenPath)
}

// String implements fmt.Stringer without exposing the client secret.
func (c ProviderConfig) String() string {
	secret := "none"
	if c.hasSecret {
		secret = "[REDACTED]"
	}
	return "ProviderConfig{baseURL: " + c.baseURL + ", clientID: " + c.clientID + ", clientSecret: " + secret + "}"
}
