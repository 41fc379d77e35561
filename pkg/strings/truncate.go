// Package strings holds text helpers shared by the output code.
package strings

import (
	"strings"
)

// DefaultCellMaxLen is the widest value printed in a table cell.
const DefaultCellMaxLen = 100

// MinTruncateLen is the smallest maxLen TruncateCell honours; it leaves room
// for one character plus "...".
const MinTruncateLen = 4

// TruncateCell flattens s to a single line and cuts it to maxLen runes,
// marking the cut with "...". Runs of whitespace, including newlines in
// provider error descriptions, collapse to one space.
func TruncateCell(s string, maxLen int) string {
	if maxLen < MinTruncateLen {
		maxLen = MinTruncateLen
	}

	s = strings.Join(strings.Fields(s), " ")

	runes := []rune(s)
	if len(runes) > maxLen {
		return string(runes[:maxLen-3]) + "..."
	}
	return s
}
