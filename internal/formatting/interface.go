// Package formatting renders provider responses for the command line.
//
// Two formats are supported: a go-pretty table for people and indented JSON
// for scripts. Both write to an io.Writer so commands can be tested without
// capturing stdout.
package formatting

import (
	"io"

	"github.com/carlostmj/uway-auth/pkg/oauth"
)

// OutputFormat represents the desired output format
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"  // JSON output
	FormatTable OutputFormat = "table" // Rich table output
)

// Options configures the formatter behavior
type Options struct {
	Format OutputFormat
	Quiet  bool // Suppress decorative elements
	Color  bool // Enable colored output
}

// Formatter renders command results.
type Formatter interface {
	// FormatData renders a decoded JSON value, usually a provider object.
	FormatData(w io.Writer, data interface{}) error

	// FormatKeys renders a JWKS summary.
	FormatKeys(w io.Writer, keys []oauth.KeyInfo) error

	GetOptions() Options
}

// New returns the formatter for options.Format. Unknown formats fall back to
// the table formatter.
func New(options Options) Formatter {
	switch options.Format {
	case FormatJSON:
		return NewJSONFormatter(options)
	default:
		return NewTableFormatter(options)
	}
}
