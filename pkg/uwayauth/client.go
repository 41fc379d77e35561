package uwayauth

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/carlostmj/uway-auth/pkg/oauth"
	"github.com/carlostmj/uway-auth/pkg/transport"
)

// Endpoint paths served by UWAY Auth, relative to the provider base URL.
const (
	UserInfoPath            = "/oauth/userinfo"
	OpenIDConfigurationPath = "/.well-known/openid-configuration"
	JWKSPath                = "/.well-known/jwks.json"
	UserProfilePath         = "/api/user"
	AppsMePath              = "/api/apps/me"
	AppsScopesPath          = "/api/apps/me/scopes"
)

// Client calls the UWAY Auth endpoints. Every method is a fixed path plus a
// payload or header from package oauth, executed through package transport.
type Client struct {
	config    oauth.ProviderConfig
	transport *transport.Client
	logger    *slog.Logger
}

type options struct {
	httpClient transport.Doer
	timeout    time.Duration
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*options)

// WithHTTPClient sets the HTTP client used for all requests.
func WithHTTPClient(httpClient transport.Doer) Option {
	return func(o *options) {
		o.httpClient = httpClient
	}
}

// WithTimeout sets the per-request time budget.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// New creates a Client for cfg. A missing base URL or client ID, or an
// unusable HTTP client, is reported as *transport.ConfigurationError.
func New(cfg oauth.ProviderConfig, opts ...Option) (*Client, error) {
	o := options{
		httpClient: transport.NewHTTPClient(),
		timeout:    transport.DefaultTimeout,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	if cfg.BaseURL() == "" {
		return nil, &transport.ConfigurationError{Reason: "base URL is required"}
	}
	if cfg.ClientID() == "" {
		return nil, &transport.ConfigurationError{Reason: "client ID is required"}
	}

	t, err := transport.New(
		transport.WithHTTPClient(o.httpClient),
		transport.WithTimeout(o.timeout),
	)
	if err != nil {
		return nil, err
	}

	return &Client{
		config:    cfg,
		transport: t,
		logger:    o.logger,
	}, nil
}

// Config returns the provider configuration the client was built with.
func (c *Client) Config() oauth.ProviderConfig {
	return c.config
}

// AuthorizationURL returns the URL to redirect the user to.
func (c *Client) AuthorizationURL(req oauth.AuthorizationRequest) string {
	return oauth.BuildAuthorizationURL(c.config, req)
}

// postToken posts payload to the token endpoint.
func (c *Client) postToken(ctx context.Context, payload oauth.TokenRequest) (transport.Result, error) {
	endpoint := c.config.TokenEndpoint()
	start := time.Now()

	result, err := c.transport.PostForm(ctx, endpoint, payload)
	c.logOutcome("Token request", endpoint, start, err, "grant_type", payload.GrantType())

	return result, err
}

// getJSON issues an authenticated or anonymous GET against path.
func (c *Client) getJSON(ctx context.Context, path string, header http.Header) (transport.Result, error) {
	endpoint := c.config.Endpoint(path)
	start := time.Now()

	result, err := c.transport.GetJSON(ctx, endpoint, header)
	c.logOutcome("GET request", endpoint, start, err)

	return result, err
}

func (c *Client) logOutcome(msg, endpoint string, start time.Time, err error, attrs ...any) {
	attrs = append(attrs,
		"endpoint", endpoint,
		"duration", time.Since(start))
	if err != nil {
		attrs = append(attrs, "error", err)
		c.logger.Debug(msg+" failed", attrs...)
		return
	}
	c.logger.Debug(msg+" succeeded", attrs...)
}
