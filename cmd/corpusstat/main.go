// Package main provides a corpus inspection command-line tool: record
// counts, per-flag breakdowns and a gallery audit.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"pharmadir/internal/corpus"
	"pharmadir/internal/models"
)

func main() {
	corpusFile := flag.String("corpus", "pharmacies.json", "Path to corpus JSON snapshot")
	nameFilter := flag.String("name", "", "Dump image fields of the first record whose name contains this substring")

	flag.Parse()

	records, err := corpus.Load(*corpusFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to load corpus: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\n📊 Corpus Record Count: %d pharmacies\n\n", len(records))

	printBreakdown(records)
	auditGallery(records)

	if *nameFilter != "" {
		dumpImages(records, *nameFilter)
	}
}

func printBreakdown(records []*models.PharmacyRecord) {
	var active, visible, pickup, delivery int

	var ratingSum float64

	var rated int

	for _, record := range records {
		if record.Status == "active" {
			active++
		}

		if record.IsVisible {
			visible++
		}

		if record.IsPickup {
			pickup++
		}

		if record.IsDelivery {
			delivery++
		}

		if record.AvgRatings > 0 {
			ratingSum += record.AvgRatings
			rated++
		}
	}

	fmt.Println("📈 Breakdown:")
	fmt.Printf("   Active: %d\n", active)
	fmt.Printf("   Visible: %d\n", visible)
	fmt.Printf("   With pickup: %d\n", pickup)
	fmt.Printf("   With delivery: %d\n", delivery)

	if rated > 0 {
		fmt.Printf("   Average rating: %.2f\n\n", ratingSum/float64(rated))
	} else {
		fmt.Printf("   Average rating: N/A\n\n")
	}
}

// auditGallery checks the corpus invariant that galleries never contain
// empty entries.
func auditGallery(records []*models.PharmacyRecord) {
	violations := 0

	for _, record := range records {
		for _, url := range record.Gallery {
			if strings.TrimSpace(url) == "" {
				violations++

				fmt.Printf("⚠️  Empty gallery entry: %s\n", record.DisplayName())

				break
			}
		}
	}

	if violations == 0 {
		fmt.Println("✅ Gallery audit: no empty entries")
	} else {
		fmt.Printf("⚠️  Gallery audit: %d record(s) with empty entries\n", violations)
	}
}

func dumpImages(records []*models.PharmacyRecord, filter string) {
	needle := strings.ToLower(filter)

	for _, record := range records {
		if !strings.Contains(strings.ToLower(record.DisplayName()), needle) {
			continue
		}

		fmt.Printf("\nPharmacy: %s\n", record.DisplayName())
		fmt.Printf("  Avatar:   %s\n", strOrNull(record.AvatarURL))
		fmt.Printf("  Cover:    %s\n", strOrNull(record.CoverImageURL))
		fmt.Printf("  Building: %s\n", strOrNull(record.BuildingImageURL))
		fmt.Printf("  Gallery:  %d image(s)\n", len(record.Gallery))

		for _, url := range record.Gallery {
			fmt.Printf("    - %s\n", url)
		}

		return
	}

	fmt.Printf("\nPharmacy matching %q not found\n", filter)
}

func strOrNull(s *string) string {
	if s == nil {
		return "null"
	}

	return *s
}
