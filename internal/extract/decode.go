// Package extract derives normalized sub-structures from raw scraper
// columns. Extractors are pure functions and deliberately tolerant: a
// missing or malformed sub-document yields the fallback value so one bad
// row never aborts a batch.
package extract

import "encoding/json"

// Decode parses raw as a JSON sub-document into T. It returns fallback when
// raw is empty, the literal string "null", or fails to parse. It never
// panics or returns an error; this is the seam that absorbs malformed rows.
func Decode[T any](raw string, fallback T) T {
	if raw == "" || raw == "null" {
		return fallback
	}

	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return fallback
	}

	return value
}
