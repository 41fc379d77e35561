package formatting

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/carlostmj/uway-auth/pkg/oauth"
)

// JSONFormatter provides structured JSON output formatting
type JSONFormatter struct {
	options Options
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(options Options) Formatter {
	return &JSONFormatter{
		options: options,
	}
}

// FormatData writes data as indented JSON.
func (f *JSONFormatter) FormatData(w io.Writer, data interface{}) error {
	return f.write(w, data)
}

// FormatKeys writes the key list as a JSON array.
func (f *JSONFormatter) FormatKeys(w io.Writer, keys []oauth.KeyInfo) error {
	if keys == nil {
		keys = []oauth.KeyInfo{}
	}
	return f.write(w, keys)
}

// GetOptions returns the current formatter options
func (f *JSONFormatter) GetOptions() Options {
	return f.options
}

func (f *JSONFormatter) write(w io.Writer, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
