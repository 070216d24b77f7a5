package extract

import "strings"

// ExtractEmails splits the raw emails column on commas, trims whitespace
// and drops empties. The scraper emits the column as plain comma-joined
// text, not JSON.
func ExtractEmails(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	emails := make([]string, 0, len(parts))

	for _, part := range parts {
		if email := strings.TrimSpace(part); email != "" {
			emails = append(emails, email)
		}
	}

	return emails
}
