package config

import (
	"net/url"

	"github.com/carlostmj/uway-auth/pkg/logging"
)

// Validate checks the settings needed to talk to the provider. It returns
// ValidationErrors listing every problem, or nil.
func (c Config) Validate() error {
	var errs ValidationErrors

	if c.BaseURL == "" {
		errs = append(errs, ConfigError{
			Field:      "baseUrl",
			Message:    "is required",
			Suggestion: "set baseUrl in the config file or pass --base-url",
		})
	} else if u, err := url.Parse(c.BaseURL); err != nil || u.Host == "" || (u.Scheme != "https" && u.Scheme != "http") {
		errs = append(errs, ConfigError{
			Field:      "baseUrl",
			Message:    "must be an absolute http(s) URL, got " + c.BaseURL,
			Suggestion: "use the provider origin, e.g. https://auth.example.com",
		})
	}

	if c.ClientID == "" {
		errs = append(errs, ConfigError{
			Field:      "clientId",
			Message:    "is required",
			Suggestion: "set clientId in the config file or pass --client-id",
		})
	}

	if c.Timeout <= 0 {
		errs = append(errs, ConfigError{
			Field:   "timeout",
			Message: "must be positive, got " + c.Timeout.String(),
		})
	}

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, ConfigError{
			Field:      "logLevel",
			Message:    err.Error(),
			Suggestion: "use one of debug, info, warn, error",
		})
	}

	if c.Output != OutputTable && c.Output != OutputJSON {
		errs = append(errs, ConfigError{
			Field:      "output",
			Message:    "unknown output format " + c.Output,
			Suggestion: "use table or json",
		})
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
