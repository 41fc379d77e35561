package cmd

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/stretchr/testify/require"
)

const (
	testClientID    = "cli-app"
	testSecret      = "s3cret"
	testAccessToken = "good-token"
	testAPIKey      = "key-1"
)

// testProvider is a minimal UWAY Auth stand-in.
type testProvider struct {
	*httptest.Server

	mu    sync.Mutex
	forms []url.Values
}

func newTestProvider(t *testing.T) *testProvider {
	t.Helper()

	idToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "42",
		"iss":   "https://auth.example.com",
		"aud":   testClientID,
		"email": "ana@example.com",
		"name":  "Ana",
		"exp":   time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC).Unix(),
	}).SignedString([]byte("test-key"))
	require.NoError(t, err)

	jwks := testJWKS(t)

	p := &testProvider{}
	mux := http.NewServeMux()

	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		p.mu.Lock()
		p.forms = append(p.forms, r.PostForm)
		p.mu.Unlock()

		switch r.PostForm.Get("grant_type") {
		case "authorization_code":
			if r.PostForm.Get("code") != "good-code" {
				writeJSON(w, http.StatusBadRequest, map[string]any{
					"error":             "invalid_grant",
					"error_description": "The authorization code is invalid.",
				})
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{
				"access_token":  testAccessToken,
				"token_type":    "Bearer",
				"expires_in":    3600,
				"refresh_token": "refresh-1",
				"id_token":      idToken,
			})
		case "refresh_token":
			writeJSON(w, http.StatusOK, map[string]any{
				"access_token": "new-access",
				"token_type":   "Bearer",
				"expires_in":   3600,
			})
		case "client_credentials":
			if r.PostForm.Get("client_secret") != testSecret {
				writeJSON(w, http.StatusUnauthorized, map[string]any{
					"error":   "invalid_client",
					"message": "Client authentication failed",
				})
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{
				"access_token": "client-token",
				"token_type":   "Bearer",
				"expires_in":   600,
			})
		default:
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "unsupported_grant_type"})
		}
	})

	bearerOnly := func(body map[string]any) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer "+testAccessToken {
				writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "Unauthenticated."})
				return
			}
			writeJSON(w, http.StatusOK, body)
		}
	}

	mux.HandleFunc("/oauth/userinfo", bearerOnly(map[string]any{"sub": "42", "email": "ana@example.com"}))
	mux.HandleFunc("/api/apps/me", bearerOnly(map[string]any{"client_id": testClientID, "name": "Command line"}))
	mux.HandleFunc("/api/apps/me/scopes", bearerOnly(map[string]any{"scopes": []string{"openid", "profile"}}))

	mux.HandleFunc("/api/user", func(w http.ResponseWriter, r *http.Request) {
		viaKey := r.Header.Get("X-API-Key") == testAPIKey
		viaToken := r.Header.Get("Authorization") == "Bearer "+testAccessToken
		if !viaKey && !viaToken {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "Unauthenticated."})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"id": 42, "name": "Ana", "via_api_key": viaKey})
	})

	mux.HandleFunc("/.well-known/openid-configuration", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"issuer":                           "https://auth.example.com",
			"authorization_endpoint":           "https://auth.example.com/oauth/authorize",
			"token_endpoint":                   "https://auth.example.com/oauth/token",
			"code_challenge_methods_supported": []string{"S256"},
		})
	})

	mux.HandleFunc("/.well-known/jwks.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(jwks)
	})

	p.Server = httptest.NewServer(mux)
	t.Cleanup(p.Close)
	return p
}

func (p *testProvider) lastForm() url.Values {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.forms) == 0 {
		return nil
	}
	return p.forms[len(p.forms)-1]
}

func testJWKS(t *testing.T) []byte {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	pub, err := jwk.FromRaw(&key.PublicKey)
	require.NoError(t, err)
	require.NoError(t, pub.Set(jwk.KeyIDKey, "key-1"))
	require.NoError(t, pub.Set(jwk.AlgorithmKey, jwa.RS256))
	require.NoError(t, pub.Set(jwk.KeyUsageKey, "sig"))

	set := jwk.NewSet()
	require.NoError(t, set.AddKey(pub))

	raw, err := json.Marshal(set)
	require.NoError(t, err)
	return raw
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// runCLI executes a fresh command tree with no config file. Only stdout is
// returned; logs go to a discarded buffer.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "absent.yaml")}, args...))

	err := root.Execute()
	return out.String(), err
}

// providerArgs are the global flags pointing at p.
func providerArgs(p *testProvider, extra ...string) []string {
	return append([]string{"--base-url", p.URL, "--client-id", testClientID}, extra...)
}
