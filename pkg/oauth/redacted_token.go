package oauth

// RedactedToken wraps a credential (access token, refresh token, API key or
// client secret) so it prints as "[REDACTED]" through fmt and slog, %#v
// included.
//
//	token := oauth.NewRedactedToken("secret-token-value")
//	logger.Debug("refreshing", "refresh_token", token) // refresh_token=[REDACTED]
//	header := oauth.BearerHeader(token.Value())
type RedactedToken struct {
	value string
}

// NewRedactedToken creates a new RedactedToken wrapping the given value.
func NewRedactedToken(value string) RedactedToken {
	return RedactedToken{value: value}
}

// Value returns the actual token value. Never log the result.
func (t RedactedToken) Value() string {
	return t.value
}

// String implements fmt.Stringer.
func (t RedactedToken) String() string {
	return "[REDACTED]"
}

// GoString implements fmt.GoStringer for %#v.
func (t RedactedToken) GoString() string {
	return "oauth.RedactedToken{[REDACTED]}"
}
