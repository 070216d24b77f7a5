// Package models defines the canonical pharmacy record and its sub-documents.
package models

// Location is a WGS84 coordinate pair. Lat or Lng may be NaN while a record
// is in flight through the pipeline, meaning the raw value did not parse as
// a number; the validator rejects such records before they are persisted.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Review is one user review carried through from the scraper. The JSON keys
// match the scraper's user_reviews payload so the corpus round-trips.
type Review struct {
	Name        string  `json:"Name"`
	When        string  `json:"When,omitempty"`
	Rating      float64 `json:"Rating"`
	Description string  `json:"Description"`
}

// Meta holds scrape-run metadata used only for deduplication. It is present
// while a tier is being processed and stripped before the corpus is written.
type Meta struct {
	PlaceID        *string `json:"placeId"`
	GoogleMapsLink *string `json:"googleMapsLink"`
	DataID         *string `json:"dataId"`
	Category       *string `json:"category"`
	Borough        *string `json:"borough"`
	City           *string `json:"city"`
	PostalCode     *string `json:"postalCode"`
}

// PharmacyRecord is one physical pharmacy location in its canonical shape.
// Optional text fields are pointers so the serialized corpus distinguishes
// "unknown" (null) from an empty string.
type PharmacyRecord struct {
	// Basic info
	Name    *string `json:"name"`
	Contact *string `json:"contact"`
	Email   *string `json:"email"`
	Address *string `json:"address"`

	// Images
	AvatarURL        *string `json:"avatarUrl"`
	CoverImageURL    *string `json:"coverImageUrl"`
	BuildingImageURL *string `json:"buildingImageUrl"`
	ThumbnailURL     *string `json:"thumbnailUrl"`

	// Details
	TagLine     *string `json:"tagLine"`
	Website     *string `json:"website"`
	Description *string `json:"description"`

	// Service flags
	IsPickup    bool `json:"isPickup"`
	IsDelivery  bool `json:"isDelivery"`
	IsAvailable bool `json:"isAvailable"`
	IsVisible   bool `json:"isVisible"`
	IsOfficial  bool `json:"isOfficial"`

	// Building info
	BuildingInformation *string `json:"buildingInformation"`
	FloorNo             *string `json:"floorNo"`
	PanoramaImageURL    *string `json:"panoramaImageUrl"`

	// Galleries
	Gallery    []string `json:"gallery"`
	WebGallery []string `json:"webGallery"`

	// Status
	HasOwnershipClaim bool   `json:"hasOwnershipClaim"`
	Status            string `json:"status"`

	// Hours and ratings
	WorkingDaysAndHours map[string][]string `json:"workingDaysAndHours"`
	AvgRatings          float64             `json:"avgRatings"`
	ReviewCount         int                 `json:"reviewCount"`
	ReviewsPerRating    map[string]int      `json:"reviewsPerRating"`

	// Hourly traffic data, day -> hour -> load percentage.
	PopularTimes map[string]map[int]int `json:"popularTimes"`

	// Reviews
	UserReviews []Review `json:"userReviews"`

	// Additional data
	PriceRange *string `json:"priceRange"`
	PlusCode   *string `json:"plusCode"`
	Timezone   *string `json:"timezone"`
	CID        *string `json:"cid"`

	Location Location `json:"location"`

	// Meta is nil once the record has been cleaned for output.
	Meta *Meta `json:"_meta,omitempty"`
}

// PlaceID returns the external place identifier, or "" when none is known.
func (p *PharmacyRecord) PlaceID() string {
	if p.Meta == nil || p.Meta.PlaceID == nil {
		return ""
	}

	return *p.Meta.PlaceID
}

// DisplayName returns the record's name for operator-facing output.
func (p *PharmacyRecord) DisplayName() string {
	if p.Name == nil || *p.Name == "" {
		return "Unknown"
	}

	return *p.Name
}
