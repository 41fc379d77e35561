package uwayauth

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/carlostmj/uway-auth/pkg/oauth"
	"github.com/carlostmj/uway-auth/pkg/transport"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordedRequest is what the fake provider saw.
type recordedRequest struct {
	Method string
	Path   string
	Header http.Header
	Form   url.Values
	Body   string
}

// fakeProvider serves canned JSON per path and records every request.
type fakeProvider struct {
	*httptest.Server

	mu       sync.Mutex
	requests []recordedRequest
}

func newFakeProvider(t *testing.T) *fakeProvider {
	t.Helper()
	p := &fakeProvider{}
	p.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		form, _ := url.ParseQuery(string(body))

		p.mu.Lock()
		p.requests = append(p.requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Header: r.Header.Clone(),
			Form:   form,
			Body:   string(body),
		})
		p.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/oauth/token":
			if form.Get("code") == "used-code" {
				w.WriteHeader(http.StatusBadRequest)
				_ = json.NewEncoder(w).Encode(map[string]string{
					"error":             "invalid_grant",
					"error_description": "The authorization code has already been used.",
				})
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]any{
				"access_token": "at-" + form.Get("grant_type"),
				"token_type":   "Bearer",
				"expires_in":   3600,
			})
		case UserProfilePath:
			if r.Header.Get("Authorization") == "" && r.Header.Get("X-API-Key") == "" {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = io.WriteString(w, `{"message":"Unauthenticated."}`)
				return
			}
			_, _ = io.WriteString(w, `{"id":7,"name":"Ana"}`)
		case UserInfoPath, AppsMePath, AppsScopesPath, OpenIDConfigurationPath, JWKSPath:
			_ = json.NewEncoder(w).Encode(map[string]string{"path": r.URL.Path})
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, "<html>not found</html>")
		}
	}))
	t.Cleanup(p.Close)
	return p
}

func (p *fakeProvider) last(t *testing.T) recordedRequest {
	t.Helper()
	p.mu.Lock()
	defer p.mu.Unlock()
	require.NotEmpty(t, p.requests)
	return p.requests[len(p.requests)-1]
}

func newTestClient(t *testing.T, p *fakeProvider, opts ...oauth.ProviderOption) *Client {
	t.Helper()
	cfg := oauth.NewProviderConfig(p.URL+"/", "client-1", opts...)
	c, err := New(cfg, WithHTTPClient(p.Client()))
	require.NoError(t, err)
	return c
}

func TestNew(t *testing.T) {
	t.Run("requires base URL", func(t *testing.T) {
		_, err := New(oauth.NewProviderConfig("", "client"))
		var cfgErr *transport.ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.Contains(t, err.Error(), "base URL is required")
	})

	t.Run("requires client ID", func(t *testing.T) {
		_, err := New(oauth.NewProviderConfig("https://auth.example.com", ""))
		var cfgErr *transport.ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
	})

	t.Run("rejects nil HTTP client", func(t *testing.T) {
		_, err := New(oauth.NewProviderConfig("https://auth.example.com", "c"), WithHTTPClient(nil))
		var cfgErr *transport.ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
	})

	t.Run("keeps config", func(t *testing.T) {
		cfg := oauth.NewProviderConfig("https://auth.example.com", "c")
		c, err := New(cfg)
		require.NoError(t, err)
		assert.Equal(t, cfg, c.Config())
		assert.Equal(t,
			oauth.BuildAuthorizationURL(cfg, oauth.AuthorizationRequest{State: "s"}),
			c.AuthorizationURL(oauth.AuthorizationRequest{State: "s"}))
	})
}

func TestClient_TokenGrants(t *testing.T) {
	p := newFakeProvider(t)
	c := newTestClient(t, p, oauth.WithClientSecret("s3cret"))
	ctx := context.Background()

	t.Run("authorization code", func(t *testing.T) {
		result, err := c.ExchangeAuthorizationCode(ctx, "code-1", "https://app/cb", "verifier-1")
		require.NoError(t, err)
		assert.Equal(t, "at-authorization_code", result["access_token"])

		req := p.last(t)
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "/oauth/token", req.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", req.Header.Get("Content-Type"))
		assert.Equal(t, "application/json", req.Header.Get("Accept"))
		assert.Equal(t, "code-1", req.Form.Get("code"))
		assert.Equal(t, "verifier-1", req.Form.Get("code_verifier"))
		assert.Equal(t, "s3cret", req.Form.Get("client_secret"))
		assert.Equal(t,
			"grant_type=authorization_code&client_id=client-1&redirect_uri=https%3A%2F%2Fapp%2Fcb&code=code-1&client_secret=s3cret&code_verifier=verifier-1",
			req.Body)
	})

	t.Run("refresh token", func(t *testing.T) {
		result, err := c.RefreshTokens(ctx, "rt-1", []string{"openid", "email"})
		require.NoError(t, err)
		assert.Equal(t, "at-refresh_token", result["access_token"])

		req := p.last(t)
		assert.Equal(t, "rt-1", req.Form.Get("refresh_token"))
		assert.Equal(t, "openid email", req.Form.Get("scope"))
		assert.Contains(t, req.Body, "scope=openid%20email")
	})

	t.Run("client credentials", func(t *testing.T) {
		result, err := c.ExchangeClientCredentials(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, "at-client_credentials", result["access_token"])

		req := p.last(t)
		_, hasScope := req.Form["scope"]
		assert.False(t, hasScope)
	})

	t.Run("provider error is an APIError", func(t *testing.T) {
		_, err := c.ExchangeAuthorizationCode(ctx, "used-code", "https://app/cb", "")
		var apiErr *transport.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Equal(t, "The authorization code has already been used.", apiErr.Message)
	})
}

func TestClient_GetEndpoints(t *testing.T) {
	p := newFakeProvider(t)
	c := newTestClient(t, p)
	ctx := context.Background()

	tests := []struct {
		name       string
		call       func() (transport.Result, error)
		path       string
		authHeader string
		apiKey     string
	}{
		{name: "userinfo", call: func() (transport.Result, error) { return c.FetchUserInfo(ctx, "tok") }, path: UserInfoPath, authHeader: "Bearer tok"},
		{name: "discovery", call: func() (transport.Result, error) { return c.FetchOpenIDConfiguration(ctx) }, path: OpenIDConfigurationPath},
		{name: "jwks", call: func() (transport.Result, error) { return c.FetchJWKS(ctx) }, path: JWKSPath},
		{name: "app info", call: func() (transport.Result, error) { return c.FetchAppInfo(ctx, "app-tok") }, path: AppsMePath, authHeader: "Bearer app-tok"},
		{name: "app scopes", call: func() (transport.Result, error) { return c.FetchAppScopes(ctx, "app-tok") }, path: AppsScopesPath, authHeader: "Bearer app-tok"},
		{name: "profile with token", call: func() (transport.Result, error) { return c.FetchProfileWithAccessToken(ctx, "tok") }, path: UserProfilePath, authHeader: "Bearer tok"},
		{name: "profile with api key", call: func() (transport.Result, error) { return c.FetchProfileWithAPIKey(ctx, "key-1") }, path: UserProfilePath, apiKey: "key-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tt.call()
			require.NoError(t, err)
			require.NotNil(t, result)

			req := p.last(t)
			assert.Equal(t, http.MethodGet, req.Method)
			assert.Equal(t, tt.path, req.Path)
			assert.Equal(t, "application/json", req.Header.Get("Accept"))
			assert.Empty(t, req.Header.Get("Content-Type"))
			assert.Equal(t, tt.authHeader, req.Header.Get("Authorization"))
			assert.Equal(t, tt.apiKey, req.Header.Get("X-API-Key"))
			assert.Empty(t, req.Body)
		})
	}
}

func TestClient_LogsWithoutSecrets(t *testing.T) {
	p := newFakeProvider(t)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := oauth.NewProviderConfig(p.URL, "client-1", oauth.WithClientSecret("very-secret"))
	c, err := New(cfg, WithHTTPClient(p.Client()), WithLogger(logger))
	require.NoError(t, err)

	_, err = c.ExchangeClientCredentials(context.Background(), []string{"apps:read"})
	require.NoError(t, err)
	_, err = c.FetchProfileWithAPIKey(context.Background(), "api-key-value")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Token request succeeded")
	assert.Contains(t, out, "grant_type=client_credentials")
	assert.Contains(t, out, "GET request succeeded")
	assert.NotContains(t, out, "very-secret")
	assert.NotContains(t, out, "api-key-value")
}

func TestClient_ErrorsPassThrough(t *testing.T) {
	p := newFakeProvider(t)
	c := newTestClient(t, p)
	ctx := context.Background()

	t.Run("invalid response", func(t *testing.T) {
		_, err := c.getJSON(ctx, "/missing", nil)
		var invalid *transport.InvalidResponseError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, http.StatusNotFound, invalid.StatusCode)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		_, err := c.getJSON(ctx, UserProfilePath, nil)
		assert.True(t, transport.IsStatus(err, http.StatusUnauthorized))
		assert.EqualError(t, err, "UWAY Auth returned HTTP 401: Unauthenticated.")
	})
}

func TestClient_RedirectKeepsCredentialsOnProvider(t *testing.T) {
	var mu sync.Mutex
	var leaked []string
	other := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		leaked = append(leaked, r.Header.Get("X-API-Key"))
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"from":"other-host"}`)
	}))
	defer other.Close()

	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, other.URL+r.URL.Path, http.StatusFound)
	}))
	defer provider.Close()

	c, err := New(oauth.NewProviderConfig(provider.URL, "client-1"))
	require.NoError(t, err)

	result, err := c.FetchProfileWithAPIKey(context.Background(), "secret-key")
	assert.Nil(t, result)

	var invalid *transport.InvalidResponseError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, http.StatusFound, invalid.StatusCode)

	mu.Lock()
	defer mu.Unlock()
	assert.Empty(t, leaked)
}
