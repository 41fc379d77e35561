// Package uwayauth is the UWAY Auth SDK entry point. It binds a
// ProviderConfig to a transport and exposes one method per provider endpoint.
//
//	cfg := oauth.NewProviderConfig("https://auth.example.com", clientID,
//		oauth.WithClientSecret(clientSecret))
//
//	client, err := uwayauth.New(cfg, uwayauth.WithTimeout(10*time.Second))
//	if err != nil {
//		return err
//	}
//
//	tokens, err := client.ExchangeAuthorizationCode(ctx, code, redirectURI, verifier)
//	var apiErr *transport.APIError
//	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusBadRequest {
//		// the code was already used or has expired
//	}
//
// Methods return the provider's JSON object unchanged. oauth.TokenFromResult
// and oauth.MetadataFromResult give typed views when needed.
package uwayauth
