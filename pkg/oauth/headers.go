package oauth

import "net/http"

// APIKeyHeaderName is the header UWAY Auth reads personal API keys from.
const APIKeyHeaderName = "X-API-Key"

// BearerHeader returns the Authorization header for an access token.
func BearerHeader(accessToken string) http.Header {
	h := make(http.Header, 1)
	h.Set("Authorization", "Bearer "+accessToken)
	return h
}

// APIKeyHeader returns the header authenticating a request with an API key.
// It is an alternative to BearerHeader; a request carries one or the other.
func APIKeyHeader(apiKey string) http.Header {
	h := make(http.Header, 1)
	h.Set(APIKeyHeaderName, apiKey)
	return h
}
