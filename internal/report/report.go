// Package report models the operator-visible summary of one tier run.
package report

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"pharmadir/pkg/utils"
)

// maxNameWidth keeps invalid-record names on one report line.
const maxNameWidth = 48

// InvalidRecord is one rejected record with its rejection reasons.
type InvalidRecord struct {
	Name   string
	Errors []string
}

// Summary aggregates the counts of one pipeline run.
type Summary struct {
	ExistingCount  int
	RawCount       int
	ValidCount     int
	InvalidCount   int
	CombinedCount  int
	DuplicateCount int
	UniqueCount    int

	// Invalid is a bounded sample of the rejected records; InvalidCount
	// carries the full count.
	Invalid []InvalidRecord
}

// NetNew is the number of records the tier added relative to the prior
// corpus.
func (s *Summary) NetNew() int {
	return s.UniqueCount - s.ExistingCount
}

// Render returns the summary as an aligned two-column text table, followed
// by the invalid-record sample when there is one. Column alignment uses
// display width so wide characters in names don't skew the layout.
func (s *Summary) Render() string {
	rows := [][2]string{
		{"Existing corpus", fmt.Sprintf("%d", s.ExistingCount)},
		{"Raw records read", fmt.Sprintf("%d", s.RawCount)},
		{"Valid", fmt.Sprintf("%d", s.ValidCount)},
		{"Invalid", fmt.Sprintf("%d", s.InvalidCount)},
		{"Combined before dedup", fmt.Sprintf("%d", s.CombinedCount)},
		{"Duplicates removed", fmt.Sprintf("%d", s.DuplicateCount)},
		{"Unique total", fmt.Sprintf("%d", s.UniqueCount)},
		{"New records added", fmt.Sprintf("%d", s.NetNew())},
	}

	labelWidth := 0
	for _, row := range rows {
		if w := runewidth.StringWidth(row[0]); w > labelWidth {
			labelWidth = w
		}
	}

	var b strings.Builder

	for _, row := range rows {
		padding := strings.Repeat(" ", labelWidth-runewidth.StringWidth(row[0]))
		fmt.Fprintf(&b, "  %s%s  %s\n", row[0], padding, row[1])
	}

	if len(s.Invalid) > 0 {
		fmt.Fprintf(&b, "\n  Invalid records (showing %d of %d):\n",
			len(s.Invalid), s.InvalidCount)

		for _, rec := range s.Invalid {
			name := utils.Truncate(utils.NormalizeWhitespace(rec.Name), maxNameWidth)
			fmt.Fprintf(&b, "    - %s: %s\n", name, strings.Join(rec.Errors, ", "))
		}
	}

	return b.String()
}
