// Package parser turns raw delimited scraper output into field-keyed records.
package parser

import "strings"

// RawRecord maps a column name from the header row to the raw text of one
// field. It exists only for the duration of a pipeline run.
type RawRecord map[string]string

// Get returns the raw value for a column, or "" when the column is absent.
func (r RawRecord) Get(column string) string {
	return r[column]
}

// Parse scans an entire CSV document and returns one RawRecord per data row,
// keyed by the header row. Quoting follows the scraper's output format: a
// quote toggles quoted state, a doubled quote inside a quoted region decodes
// to one literal quote, and delimiters and line breaks are only structural
// outside quoted regions. No other escape sequence is recognized. A quote
// that is never closed absorbs the rest of the document into the final
// field rather than failing the run.
func Parse(content string) []RawRecord {
	rows := scanRows(content)
	if len(rows) == 0 {
		return nil
	}

	headers := rows[0]
	records := make([]RawRecord, 0, len(rows)-1)

	for _, values := range rows[1:] {
		record := make(RawRecord, len(headers))

		for i, header := range headers {
			if i < len(values) {
				record[header] = values[i]
			} else {
				record[header] = ""
			}
		}

		records = append(records, record)
	}

	return records
}

// scanRows performs the character scan over the whole document. Rows are
// separated by line breaks outside quoted regions; blank lines are skipped.
func scanRows(content string) [][]string {
	var (
		rows     [][]string
		row      []string
		field    strings.Builder
		inQuotes bool
	)

	endRow := func() {
		row = append(row, field.String())
		field.Reset()

		if !isBlankRow(row) {
			rows = append(rows, row)
		}

		row = nil
	}

	for i := 0; i < len(content); i++ {
		c := content[i]

		switch {
		case c == '"':
			if inQuotes && i+1 < len(content) && content[i+1] == '"' {
				field.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == ',' && !inQuotes:
			row = append(row, field.String())
			field.Reset()
		case (c == '\n' || c == '\r') && !inQuotes:
			if c == '\r' && i+1 < len(content) && content[i+1] == '\n' {
				i++
			}

			endRow()
		default:
			field.WriteByte(c)
		}
	}

	// Flush the final row unless the document ended on a line break.
	if field.Len() > 0 || row != nil {
		endRow()
	}

	return rows
}

// isBlankRow reports whether a row came from a blank (or whitespace-only)
// line with no delimiters.
func isBlankRow(row []string) bool {
	return len(row) == 1 && strings.TrimSpace(row[0]) == ""
}
