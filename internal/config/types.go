package config

import (
	"time"

	"github.com/carlostmj/uway-auth/pkg/oauth"
)

// Config is the configuration of the uway-auth command line tool.
type Config struct {
	BaseURL      string        `yaml:"baseUrl"`
	ClientID     string        `yaml:"clientId"`
	ClientSecret *string       `yaml:"clientSecret,omitempty"` // nil for public clients
	RedirectURI  string        `yaml:"redirectUri,omitempty"`  // default for authorize and token code
	Scopes       []string      `yaml:"scopes,omitempty"`       // default scopes for authorize
	Timeout      time.Duration `yaml:"timeout,omitempty"`
	LogLevel     string        `yaml:"logLevel,omitempty"`
	Output       string        `yaml:"output,omitempty"` // table or json
}

// ProviderConfig converts the file settings into the immutable provider
// configuration used by the SDK.
func (c Config) ProviderConfig() oauth.ProviderConfig {
	var opts []oauth.ProviderOption
	if c.ClientSecret != nil {
		opts = append(opts, oauth.WithClientSecret(*c.ClientSecret))
	}
	return oauth.NewProviderConfig(c.BaseURL, c.ClientID, opts...)
}
