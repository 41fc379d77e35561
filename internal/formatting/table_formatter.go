package formatting

import (
	"fmt"
	"io"
	"sort"

	"github.com/carlostmj/uway-auth/pkg/oauth"
	pkgstrings "github.com/carlostmj/uway-auth/pkg/strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// TableFormatter provides rich table output formatting
type TableFormatter struct {
	options Options
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(options Options) Formatter {
	return &TableFormatter{
		options: options,
	}
}

// FormatData renders objects as KEY/VALUE tables with keys sorted, arrays as
// numbered lists, and anything else on a single line.
func (f *TableFormatter) FormatData(w io.Writer, data interface{}) error {
	switch d := data.(type) {
	case map[string]interface{}:
		return f.formatObjectData(w, d)
	case []interface{}:
		return f.formatArrayData(w, d)
	case string:
		_, err := fmt.Fprintln(w, d)
		return err
	default:
		_, err := fmt.Fprintf(w, "%v\n", d)
		return err
	}
}

// FormatKeys renders one row per JWKS key.
func (f *TableFormatter) FormatKeys(w io.Writer, keys []oauth.KeyInfo) error {
	if len(keys) == 0 {
		_, err := fmt.Fprint(w, f.formatEmptyMessage("No keys published"))
		return err
	}

	t := f.createTable()
	t.AppendHeader(table.Row{
		f.header("KID"),
		f.header("KTY"),
		f.header("ALG"),
		f.header("USE"),
	})
	for _, k := range keys {
		t.AppendRow(table.Row{k.KeyID, k.KeyType, dash(k.Algorithm), dash(k.Use)})
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// GetOptions returns the current formatter options
func (f *TableFormatter) GetOptions() Options {
	return f.options
}

// createTable creates a new table with standard styling
func (f *TableFormatter) createTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	return t
}

func (f *TableFormatter) header(s string) string {
	return f.colorize(text.FgHiCyan, s)
}

func (f *TableFormatter) colorize(c text.Color, s string) string {
	if !f.options.Color {
		return s
	}
	return c.Sprint(s)
}

// formatEmptyMessage formats empty result messages
func (f *TableFormatter) formatEmptyMessage(message string) string {
	return f.colorize(text.FgYellow, message) + "\n"
}

// formatObjectData formats object data as key-value pairs
func (f *TableFormatter) formatObjectData(w io.Writer, data map[string]interface{}) error {
	if len(data) == 0 {
		_, err := fmt.Fprint(w, f.formatEmptyMessage("Empty response"))
		return err
	}

	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	t := f.createTable()
	t.AppendHeader(table.Row{f.header("KEY"), f.header("VALUE")})
	for _, key := range keys {
		t.AppendRow(table.Row{
			f.colorize(text.FgHiCyan, key),
			pkgstrings.TruncateCell(ValueString(data[key]), pkgstrings.DefaultCellMaxLen),
		})
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// formatArrayData formats array data as a simple table
func (f *TableFormatter) formatArrayData(w io.Writer, data []interface{}) error {
	if len(data) == 0 {
		_, err := fmt.Fprint(w, f.formatEmptyMessage("No items found"))
		return err
	}

	for i, item := range data {
		if _, err := fmt.Fprintf(w, "  %d. %s\n", i+1, pkgstrings.TruncateCell(ValueString(item), pkgstrings.DefaultCellMaxLen)); err != nil {
			return err
		}
	}

	if f.options.Quiet {
		return nil
	}
	_, err := fmt.Fprintf(w, "\n%s %d %s\n",
		f.colorize(text.FgHiBlue, "Total:"),
		len(data),
		f.colorize(text.FgHiBlue, "items"))
	return err
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
