package report

import (
	"strings"
	"testing"
)

func TestSummary_NetNew(t *testing.T) {
	s := &Summary{ExistingCount: 100, UniqueCount: 130}

	if s.NetNew() != 30 {
		t.Errorf("Expected 30 net new records, got %d", s.NetNew())
	}
}

func TestSummary_Render(t *testing.T) {
	s := &Summary{
		ExistingCount:  2,
		RawCount:       3,
		ValidCount:     2,
		InvalidCount:   1,
		CombinedCount:  4,
		DuplicateCount: 1,
		UniqueCount:    3,
		Invalid: []InvalidRecord{
			{Name: "Ghost Pharmacy", Errors: []string{"latitude 30 outside bounds [27.6, 27.8]"}},
		},
	}

	out := s.Render()

	for _, want := range []string{
		"Raw records read",
		"Combined before dedup",
		"Duplicates removed",
		"New records added",
		"Invalid records (showing 1 of 1):",
		"Ghost Pharmacy: latitude 30 outside bounds",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Render output missing %q:\n%s", want, out)
		}
	}
}

func TestSummary_Render_AlignedColumns(t *testing.T) {
	s := &Summary{}

	lines := strings.Split(strings.TrimRight(s.Render(), "\n"), "\n")

	// Every count row ends with its value in the same column.
	col := strings.LastIndex(lines[0], " ")
	for _, line := range lines {
		if strings.LastIndex(line, " ") != col {
			t.Errorf("Misaligned row: %q", line)
		}
	}
}

func TestSummary_Render_NoInvalidSection(t *testing.T) {
	out := (&Summary{RawCount: 5, ValidCount: 5}).Render()

	if strings.Contains(out, "Invalid records") {
		t.Errorf("Should not render an invalid sample when there is none:\n%s", out)
	}
}

func TestSummary_Render_TruncatesLongNames(t *testing.T) {
	s := &Summary{
		InvalidCount: 1,
		Invalid: []InvalidRecord{
			{Name: strings.Repeat("Very Long Pharmacy Name ", 10), Errors: []string{"missing name"}},
		},
	}

	out := s.Render()

	if !strings.Contains(out, "...") {
		t.Errorf("Expected truncated name in:\n%s", out)
	}
}
