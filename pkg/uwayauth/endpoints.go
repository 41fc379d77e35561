package uwayauth

import (
	"context"

	"github.com/carlostmj/uway-auth/pkg/oauth"
	"github.com/carlostmj/uway-auth/pkg/transport"
)

// ExchangeAuthorizationCode trades an authorization code for tokens.
// codeVerifier is the PKCE verifier kept since the authorization redirect,
// or empty when PKCE was not used.
func (c *Client) ExchangeAuthorizationCode(ctx context.Context, code, redirectURI, codeVerifier string) (transport.Result, error) {
	return c.postToken(ctx, oauth.BuildAuthorizationCodeRequest(c.config, code, redirectURI, codeVerifier))
}

// RefreshTokens obtains a new token set from a refresh token. Pass no
// scopes to keep the originally granted ones.
func (c *Client) RefreshTokens(ctx context.Context, refreshToken string, scopes []string) (transport.Result, error) {
	return c.postToken(ctx, oauth.BuildRefreshTokenRequest(c.config, refreshToken, scopes))
}

// ExchangeClientCredentials obtains an app access token for server-to-server
// calls.
func (c *Client) ExchangeClientCredentials(ctx context.Context, scopes []string) (transport.Result, error) {
	return c.postToken(ctx, oauth.BuildClientCredentialsRequest(c.config, scopes))
}

// FetchUserInfo returns the OIDC userinfo claims for an access token.
func (c *Client) FetchUserInfo(ctx context.Context, accessToken string) (transport.Result, error) {
	return c.getJSON(ctx, UserInfoPath, oauth.BearerHeader(accessToken))
}

// FetchOpenIDConfiguration returns the discovery document.
func (c *Client) FetchOpenIDConfiguration(ctx context.Context) (transport.Result, error) {
	return c.getJSON(ctx, OpenIDConfigurationPath, nil)
}

// FetchJWKS returns the public key set used to sign tokens.
func (c *Client) FetchJWKS(ctx context.Context) (transport.Result, error) {
	return c.getJSON(ctx, JWKSPath, nil)
}

// FetchAppInfo returns the app behind a client_credentials token.
func (c *Client) FetchAppInfo(ctx context.Context, accessToken string) (transport.Result, error) {
	return c.getJSON(ctx, AppsMePath, oauth.BearerHeader(accessToken))
}

// FetchAppScopes returns the scopes granted to the app behind a
// client_credentials token.
func (c *Client) FetchAppScopes(ctx context.Context, accessToken string) (transport.Result, error) {
	return c.getJSON(ctx, AppsScopesPath, oauth.BearerHeader(accessToken))
}

// FetchProfileWithAccessToken returns the user profile for a user token.
func (c *Client) FetchProfileWithAccessToken(ctx context.Context, accessToken string) (transport.Result, error) {
	return c.getJSON(ctx, UserProfilePath, oauth.BearerHeader(accessToken))
}

// FetchProfileWithAPIKey returns the user profile for a personal API key.
func (c *Client) FetchProfileWithAPIKey(ctx context.Context, apiKey string) (transport.Result, error) {
	return c.getJSON(ctx, UserProfilePath, oauth.APIKeyHeader(apiKey))
}
