// Package strings holds small text helpers shared by the output formatters.
package strings

import (
	"strings"
)

// DefaultCellMaxLen is the widest value a list table cell shows before it is shortened.
const DefaultCellMaxLen = 48

// MinTruncateLen is the smallest maxLen TruncateCell honors.
const MinTruncateLen = 4

// TruncateCell collapses all whitespace in s to single spaces and shortens the
// result to maxLen runes, ending it with "..." when something was cut.
// maxLen values below MinTruncateLen are raised to MinTruncateLen.
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
