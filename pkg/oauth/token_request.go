package oauth

// Grant types supported by the token endpoint.
const (
	GrantTypeAuthorizationCode = "authorization_code"
	GrantTypeRefreshToken      = "refresh_token"
	GrantTypeClientCredentials = "client_credentials"
)

// BuildAuthorizationCodeRequest builds the payload that exchanges an
// authorization code for tokens.
//
// client_secret is added when cfg has one. code_verifier is added when
// codeVerifier is non-empty.
func BuildAuthorizationCodeRequest(cfg ProviderConfig, code, redirectURI, codeVerifier string) TokenRequest {
	var p params
	p.set(ParamGrantType, GrantTypeAuthorizationCode)
	p.set(ParamClientID, cfg.ClientID())
	p.set(ParamRedirectURI, redirectURI)
	p.set(ParamCode, code)
	addClientSecret(&p, cfg)

	if codeVerifier != "" {
		p.set(ParamCodeVerifier, codeVerifier)
	}

	return TokenRequest{params: p}
}

// BuildRefreshTokenRequest builds the payload that trades a refresh token
// for a new token set. scope is sent only when scopes is non-empty.
func BuildRefreshTokenRequest(cfg ProviderConfig, refreshToken string, scopes []string) TokenRequest {
	var p params
	p.set(ParamGrantType, GrantTypeRefreshToken)
	p.set(ParamRefreshToken, refreshToken)
	p.set(ParamClientID, cfg.ClientID())
	addClientSecret(&p, cfg)
	addScopes(&p, scopes)

	return TokenRequest{params: p}
}

// BuildClientCredentialsRequest builds the payload for a server-to-server
// client_credentials grant. scope is sent only when scopes is non-empty.
func BuildClientCredentialsRequest(cfg ProviderConfig, scopes []string) TokenRequest {
	var p params
	p.set(ParamGrantType, GrantTypeClientCredentials)
	p.set(ParamClientID, cfg.ClientID())
	addClientSecret(&p, cfg)
	addScopes(&p, scopes)

	return TokenRequest{params: p}
}

func addClientSecret(p *params, cfg ProviderConfig) {
	if secret, ok := cfg.ClientSecret(); ok {
		p.set(ParamClientSecret, secret)
	}
}

func addScopes(p *params, scopes []string) {
	if len(scopes) > 0 {
		p.set(ParamScope, JoinScopes(scopes))
	}
}
