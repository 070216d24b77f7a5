package normalizer

import (
	"math"
	"strconv"
	"strings"

	"pharmadir/internal/extract"
	"pharmadir/internal/models"
	"pharmadir/internal/parser"
)

// Transformer maps one raw scraper row to one canonical pharmacy record.
type Transformer struct{}

// NewTransformer creates a new transformer instance.
func NewTransformer() *Transformer {
	return &Transformer{}
}

// Transform builds a PharmacyRecord from a raw row. It is a pure mapping:
// absent text columns become nil, absent numerics become 0, and coordinates
// that fail to parse become NaN so the validator can reject them. Service
// and visibility flags start from their defaults (available and visible,
// not official) with pickup/delivery taken from the about column.
func (t *Transformer) Transform(raw parser.RawRecord) *models.PharmacyRecord {
	images := extract.ExtractImages(raw.Get("images"))
	services := extract.ExtractServices(raw.Get("about"))
	address := extract.ExtractAddress(raw.Get("complete_address"))
	emails := extract.ExtractEmails(raw.Get("emails"))
	descriptions := extract.ExtractDescriptions(raw.Get("descriptions"))

	return &models.PharmacyRecord{
		Name:    optString(raw.Get("title")),
		Contact: optString(raw.Get("phone")),
		Email:   firstString(emails),
		Address: optString(raw.Get("address")),

		AvatarURL:        images.Avatar,
		CoverImageURL:    images.Cover,
		BuildingImageURL: images.Building,
		ThumbnailURL:     optString(raw.Get("thumbnail")),

		Website:     optString(raw.Get("website")),
		Description: firstString(descriptions),

		IsPickup:    services.IsPickup,
		IsDelivery:  services.IsDelivery,
		IsAvailable: true,
		IsVisible:   true,
		IsOfficial:  false,

		BuildingInformation: optString(address.Street),

		Gallery:    images.Gallery,
		WebGallery: []string{},

		Status: "active",

		WorkingDaysAndHours: extract.ExtractHours(raw.Get("open_hours")),
		AvgRatings:          parseRating(raw.Get("review_rating")),
		ReviewCount:         parseCount(raw.Get("review_count")),
		ReviewsPerRating:    extract.ExtractReviewsPerRating(raw.Get("reviews_per_rating")),
		PopularTimes:        extract.ExtractPopularTimes(raw.Get("popular_times")),
		UserReviews:         extract.ExtractUserReviews(raw.Get("user_reviews")),

		PriceRange: optString(raw.Get("price_range")),
		PlusCode:   optString(raw.Get("plus_code")),
		Timezone:   optString(raw.Get("timezone")),
		CID:        optString(raw.Get("cid")),

		Location: models.Location{
			Lat: parseCoordinate(raw.Get("latitude")),
			Lng: parseCoordinate(raw.Get("longitude")),
		},

		Meta: &models.Meta{
			PlaceID:        optString(raw.Get("place_id")),
			GoogleMapsLink: optString(raw.Get("link")),
			DataID:         optString(raw.Get("data_id")),
			Category:       optString(raw.Get("category")),
			Borough:        optString(address.Borough),
			City:           optString(address.City),
			PostalCode:     optString(address.PostalCode),
		},
	}
}

// optString returns nil for "" so output distinguishes unknown from empty.
func optString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func firstString(values []string) *string {
	if len(values) == 0 {
		return nil
	}

	return &values[0]
}

// parseCoordinate parses a latitude/longitude column. Unparsable values
// become NaN, never 0, so they fail validation instead of landing on the
// equator.
func parseCoordinate(s string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}

	return value
}

func parseRating(s string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}

	return value
}

func parseCount(s string) int {
	value, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}

	return value
}
