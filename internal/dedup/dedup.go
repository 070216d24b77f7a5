// Package dedup merges a newly processed tier into the accumulated corpus,
// keeping at most one record per identity key.
package dedup

import (
	"fmt"

	"pharmadir/internal/config"
	"pharmadir/internal/models"
)

// Options control the merge.
type Options struct {
	// Prefer decides which side of the merge wins a key collision:
	// config.PreferExisting processes the accumulated corpus first (earlier
	// tiers win), config.PreferIncoming reverses that.
	Prefer string

	// CoordinatePrecision is the number of fractional digits used for the
	// coordinate fallback key.
	CoordinatePrecision int
}

// DefaultOptions matches the shipped policy: earlier tiers win, 6-digit
// coordinate keys.
func DefaultOptions() Options {
	return Options{
		Prefer:              config.PreferExisting,
		CoordinatePrecision: 6,
	}
}

// Result is the outcome of one merge.
type Result struct {
	// Unique holds the first record seen per identity key, in encounter
	// order.
	Unique []*models.PharmacyRecord

	// DuplicateCount is how many records were dropped as duplicates.
	DuplicateCount int

	// DuplicateNames lists the display names of dropped records, for the
	// run report.
	DuplicateNames []string
}

// Merge combines the accumulated corpus with a tier's validated records.
// Records are processed in policy order and the first occurrence of each
// identity key wins; every later record sharing the key is dropped and
// counted. Output order is insertion order of first occurrence.
func Merge(existing, incoming []*models.PharmacyRecord, opts Options) Result {
	var ordered []*models.PharmacyRecord

	if opts.Prefer == config.PreferIncoming {
		ordered = append(ordered, incoming...)
		ordered = append(ordered, existing...)
	} else {
		ordered = append(ordered, existing...)
		ordered = append(ordered, incoming...)
	}

	seen := make(map[string]struct{}, len(ordered))
	result := Result{Unique: make([]*models.PharmacyRecord, 0, len(ordered))}

	for _, record := range ordered {
		keys := identityKeys(record, opts.CoordinatePrecision)

		dup := false

		for _, key := range keys {
			if _, ok := seen[key]; ok {
				dup = true

				break
			}
		}

		if dup {
			result.DuplicateCount++
			result.DuplicateNames = append(result.DuplicateNames, record.DisplayName())

			continue
		}

		for _, key := range keys {
			seen[key] = struct{}{}
		}

		result.Unique = append(result.Unique, record)
	}

	return result
}

// identityKeys returns every key a record occupies: its external place id
// when it carries one, plus its fixed-precision coordinate cell. A later
// record matching either key denotes the same pharmacy — corpus records
// have their metadata stripped, so a rescrape of a known location must
// still collide through its coordinates. Formatting the floats at a fixed
// precision guards against representation drift producing spurious
// distinct keys. The coordinate cell is a heuristic proxy for "same
// physical location": two distinct pharmacies closer than the precision
// allows will merge, and the same pharmacy recorded at different precision
// may not. That trade-off is a product decision, not a tuning knob.
func identityKeys(record *models.PharmacyRecord, precision int) []string {
	keys := make([]string, 0, 2)

	if id := record.PlaceID(); id != "" {
		keys = append(keys, "place:"+id)
	}

	keys = append(keys, fmt.Sprintf("%.*f,%.*f",
		precision, record.Location.Lat,
		precision, record.Location.Lng,
	))

	return keys
}
