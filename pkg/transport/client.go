package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultTimeout bounds a whole call: connect, transfer and body read.
	DefaultTimeout = 15 * time.Second

	acceptJSON      = "application/json"
	formContentType = "application/x-www-form-urlencoded"
)

// Result is a decoded top-level JSON object.
type Result = map[string]any

// Doer is the HTTP capability the transport needs. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Encoder produces an application/x-www-form-urlencoded body.
// oauth.TokenRequest satisfies it.
type Encoder interface {
	Encode() string
}

// Client executes requests and classifies their outcome. It holds no
// mutable state after New returns and is safe for concurrent use.
type Client struct {
	doer    Doer
	timeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP capability used to send requests.
func WithHTTPClient(doer Doer) Option {
	return func(c *Client) {
		c.doer = doer
	}
}

// WithTimeout sets the total time budget of a single call.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// NewHTTPClient returns the default HTTP capability. Redirects are not
// followed: a 3xx response is classified like any other, and credential
// headers are never replayed to the Location host.
func NewHTTPClient() *http.Client {
	return &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// New creates a Client. It returns a *ConfigurationError when the HTTP
// capability is missing or the timeout is not positive.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		doer:    NewHTTPClient(),
		timeout: DefaultTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	if isNilDoer(c.doer) {
		return nil, &ConfigurationError{Reason: "HTTP client is not available"}
	}
	if c.timeout <= 0 {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("timeout must be positive, got %s", c.timeout)}
	}

	return c, nil
}

// Timeout returns the per-call time budget.
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// Execute sends a request and decodes the JSON object it returns.
//
// header is copied onto the request, after which Accept is forced to
// application/json. Content-Type is set to application/x-www-form-urlencoded
// when body is non-nil and removed otherwise.
func (c *Client) Execute(ctx context.Context, method, url string, header http.Header, body []byte) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	for name, values := range header {
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}
	req.Header.Set("Accept", acceptJSON)
	if body != nil {
		req.Header.Set("Content-Type", formContentType)
	} else {
		req.Header.Del("Content-Type")
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	return classify(resp.StatusCode, raw)
}

// PostForm posts form to url as an RFC 3986 encoded form body.
func (c *Client) PostForm(ctx context.Context, url string, form Encoder) (Result, error) {
	return c.Execute(ctx, http.MethodPost, url, nil, []byte(form.Encode()))
}

// GetJSON issues a GET request with the given extra headers.
func (c *Client) GetJSON(ctx context.Context, url string, header http.Header) (Result, error) {
	return c.Execute(ctx, http.MethodGet, url, header, nil)
}

// classify decodes raw before looking at the status, so a non-JSON body is
// an InvalidResponseError for every status code.
func classify(statusCode int, raw []byte) (Result, error) {
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, &InvalidResponseError{StatusCode: statusCode, Err: err}
	}

	obj, ok := decoded.(map[string]any)
	if !ok {
		return nil, &InvalidResponseError{StatusCode: statusCode}
	}

	if statusCode >= http.StatusBadRequest {
		return nil, &APIError{StatusCode: statusCode, Message: errorMessage(obj)}
	}

	return obj, nil
}

// errorMessage picks "message", then "error_description", then the fallback.
// A field counts when present and not null; an empty string still wins.
func errorMessage(obj map[string]any) string {
	for _, key := range []string{"message", "error_description"} {
		v, ok := obj[key]
		if !ok || v == nil {
			continue
		}
		if s, ok := v.(string); ok {
			return s
		}
		if b, err := json.Marshal(v); err == nil {
			return string(b)
		}
	}
	return UnknownErrorMessage
}

func isNilDoer(d Doer) bool {
	if d == nil {
		return true
	}
	hc, ok := d.(*http.Client)
	return ok && hc == nil
}
