// Package oauth builds the protocol artifacts exchanged with the UWAY Auth
// identity provider: authorization URLs, token endpoint payloads, PKCE pairs
// and authorization headers.
//
// Everything in this package is pure. Nothing here performs network I/O, so
// the functions are safe for concurrent use and, with the exception of
// GeneratePKCE and GenerateState, deterministic.
//
// # Core Components
//
//   - ProviderConfig: immutable base URL and client credentials
//   - BuildAuthorizationURL: Authorization Code redirect URL (RFC 6749 §4.1.1)
//   - Build*Request: token endpoint payloads per grant type
//   - GeneratePKCE: S256 verifier/challenge pair (RFC 7636)
//   - BearerHeader / APIKeyHeader: request authentication headers
//
// All query and form values are percent-encoded per RFC 3986, so a space is
// always sent as %20 and never as '+'.
//
// # Usage
//
//	cfg := oauth.NewProviderConfig("https://auth.example.com", "my-client",
//		oauth.WithClientSecret("s3cret"))
//
//	pkce := oauth.GeneratePKCE()
//
//	authURL := oauth.BuildAuthorizationURL(cfg, oauth.AuthorizationRequest{
//		RedirectURI: "https://app.example.com/callback",
//		Scopes:      []string{"openid", "profile"},
//		State:       state,
//	}.WithPKCE(pkce))
//
//	// later, in the callback handler
//	payload := oauth.BuildAuthorizationCodeRequest(cfg, code, redirectURI, pkce.Verifier)
//
// The payload is handed to the transport package, which posts it to
// cfg.TokenEndpoint().
package oauth
