// Package utils provides small string helpers shared across the processor.
package utils

import "strings"

// NormalizeWhitespace collapses runs of whitespace into single spaces and
// trims the ends. Scraped names and addresses often carry stray newlines.
func NormalizeWhitespace(str string) string {
	return strings.Join(strings.Fields(str), " ")
}

// Truncate shortens str to at most maxLength characters, appending an
// ellipsis when something was cut. Used to keep report rows on one line.
func Truncate(str string, maxLength int) string {
	if len(str) <= maxLength {
		return str
	}

	return str[:maxLength] + "..."
}
