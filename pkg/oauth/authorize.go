package oauth

import "strings"

// Parameter names used on the authorization and token endpoints.
const (
	ParamResponseType        = "response_type"
	ParamClientID            = "client_id"
	ParamClientSecret        = "client_secret"
	ParamRedirectURI         = "redirect_uri"
	ParamScope               = "scope"
	ParamState               = "state"
	ParamCode                = "code"
	ParamCodeChallenge       = "code_challenge"
	ParamCodeChallengeMethod = "code_challenge_method"
	ParamCodeVerifier        = "code_verifier"
	ParamGrantType           = "grant_type"
	ParamRefreshToken        = "refresh_token"
)

// ResponseTypeCode is the only response_type this client requests.
const ResponseTypeCode = "code"

// AuthorizationRequest holds the caller-supplied parts of an Authorization
// Code redirect.
type AuthorizationRequest struct {
	// RedirectURI must match one registered for the client.
	RedirectURI string

	// Scopes are space-joined in the given order.
	Scopes []string

	// State is echoed back on the callback and must be checked by the caller.
	State string

	// CodeChallenge is the PKCE challenge. Empty means no PKCE.
	CodeChallenge string

	// CodeChallengeMethod defaults to S256 when empty.
	CodeChallengeMethod string
}

// WithPKCE returns a copy of r carrying the challenge and method of pair.
func (r AuthorizationRequest) WithPKCE(pair PKCEPair) AuthorizationRequest {
	r.CodeChallenge = pair.Challenge
	r.CodeChallengeMethod = pair.Method
	return r
}

// BuildAuthorizationURL constructs the URL the user agent is redirected to.
//
// The query always carries response_type, client_id, redirect_uri, scope and
// state, in that order. The scope parameter is present even when Scopes is
// empty. code_challenge and code_challenge_method are appended together, and
// only when a challenge was supplied.
func BuildAuthorizationURL(cfg ProviderConfig, req AuthorizationRequest) string {
	var q params
	q.set(ParamResponseType, ResponseTypeCode)
	q.set(ParamClientID, cfg.ClientID())
	q.set(ParamRedirectURI, req.RedirectURI)
	q.set(ParamScope, JoinScopes(req.Scopes))
	q.set(ParamState, req.State)

	if req.CodeChallenge != "" {
		method := req.CodeChallengeMethod
		if method == "" {
			method = PKCEMethodS256
		}
		q.set(ParamCodeChallenge, req.CodeChallenge)
		q.set(ParamCodeChallengeMethod, method)
	}

	return cfg.AuthorizeEndpoint() + "?" + q.encode()
}

// JoinScopes joins scopes with a single space, keeping order and duplicates.
func JoinScopes(scopes []string) string {
	return strings.Join(scopes, " ")
}
