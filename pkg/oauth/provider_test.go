package oauth

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewProviderConfig(t *testing.T) {
	t.Run("trims trailing slashes", func(t *testing.T) {
		cfg := NewProviderConfig("https://auth.example.com//", "client")
		assert.Equal(t, "https://auth.example.com", cfg.BaseURL())
		assert.Equal(t, "https://auth.example.com/oauth/authorize", cfg.AuthorizeEndpoint())
		assert.Equal(t, "https://auth.example.com/oauth/token", cfg.TokenEndpoint())
	})

	t.Run("no secret by default", func(t *testing.T) {
		cfg := NewProviderConfig("https://auth.example.com", "client")
		_, ok := cfg.ClientSecret()
		assert.False(t, ok)
		assert.Equal(t, "client", cfg.ClientID())
	})

	t.Run("records secret", func(t *testing.T) {
		cfg := NewProviderConfig("https://auth.example.com", "client", WithClientSecret("s3"))
		secret, ok := cfg.ClientSecret()
		assert.True(t, ok)
		assert.Equal(t, "s3", secret)
	})
}

func TestProviderConfig_Endpoint(t *testing.T) {
	cfg := NewProviderConfig("https://auth.example.com", "client")

	assert.Equal(t, "https://auth.example.com/api/user", cfg.Endpoint("/api/user"))
	assert.Equal(t, "https://auth.example.com/api/user", cfg.Endpoint("api/user"))
	assert.Equal(t, "https://auth.example.com", cfg.Endpoint(""))
}

func TestProviderConfig_StringHidesSecret(t *testing.T) {
	cfg := NewProviderConfig("https://auth.example.com", "client", WithClientSecret("top-secret"))

	assert.NotContains(t, fmt.Sprint(cfg), "top-secret")
	assert.Contains(t, fmt.Sprint(cfg), "[REDACTED]")
}

func TestHeaders(t *testing.T) {
	bearer := BearerHeader("tok")
	assert.Len(t, bearer, 1)
	assert.Equal(t, "Bearer tok", bearer.Get("Authorization"))

	apiKey := APIKeyHeader("key")
	assert.Len(t, apiKey, 1)
	assert.Equal(t, "key", apiKey.Get("X-API-Key"))
	assert.Empty(t, apiKey.Get("Authorization"))
}
