package config

import "github.com/carlostmj/uway-auth/pkg/transport"

const (
	// DefaultRedirectURI matches the loopback redirect registered for CLI apps.
	DefaultRedirectURI = "http://127.0.0.1:8765/callback"

	OutputTable = "table"
	OutputJSON  = "json"
)

// GetDefaultConfig returns the configuration used when no file exists.
func GetDefaultConfig() Config {
	return Config{
		RedirectURI: DefaultRedirectURI,
		Scopes:      []string{"openid", "profile", "email"},
		Timeout:     transport.DefaultTimeout,
		LogLevel:    "info",
		Output:      OutputTable,
	}
}
