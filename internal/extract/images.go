package extract

// imageEntry is one descriptor in the scraper's images column.
type imageEntry struct {
	Title string `json:"title"`
	Image string `json:"image"`
}

// Images is the normalized image set for one record. Avatar and Cover are
// both the first scraped image; Building is the second when present.
type Images struct {
	Avatar   *string
	Cover    *string
	Building *string
	Gallery  []string
}

// ExtractImages decodes the raw images column and picks the avatar, cover,
// building and gallery URLs. Empty URLs are dropped; gallery order follows
// the scrape order. Gallery is never nil.
func ExtractImages(raw string) Images {
	entries := Decode(raw, []imageEntry{})

	gallery := make([]string, 0, len(entries))

	for _, entry := range entries {
		if entry.Image != "" {
			gallery = append(gallery, entry.Image)
		}
	}

	images := Images{Gallery: gallery}

	if len(gallery) > 0 {
		images.Avatar = &gallery[0]
		images.Cover = &gallery[0]
	}

	if len(gallery) > 1 {
		images.Building = &gallery[1]
	}

	return images
}
