package normalizer

import (
	"math"
	"testing"

	"pharmadir/internal/parser"
)

func TestNewTransformer(t *testing.T) {
	if NewTransformer() == nil {
		t.Fatal("NewTransformer returned nil")
	}
}

func TestTransformer_Transform(t *testing.T) {
	tr := NewTransformer()

	raw := parser.RawRecord{
		"title":              "Alpha Pharmacy",
		"phone":              "+977-1-5551234",
		"emails":             "info@alpha.example, billing@alpha.example",
		"address":            "Putali Sadak, Kathmandu",
		"website":            "https://alpha.example",
		"thumbnail":          "https://img.example/thumb.jpg",
		"images":             `[{"image": "https://img.example/1.jpg"}, {"image": "https://img.example/2.jpg"}]`,
		"about":              `[{"options": [{"name": "Pickup", "enabled": true}]}]`,
		"complete_address":   `{"street": "12 Putali Sadak", "borough": "Dillibazar", "city": "Kathmandu", "postal_code": "44600"}`,
		"descriptions":       `["Open since 1998", "Family owned"]`,
		"open_hours":         `{"Monday": ["9 am–8 pm"]}`,
		"review_rating":      "4.4",
		"review_count":       "120",
		"reviews_per_rating": `{"5": 80}`,
		"popular_times":      `{"Monday": {"9": 35}}`,
		"user_reviews":       `[{"Name": "Sita", "Rating": 5, "Description": "Great"}]`,
		"price_range":        "$$",
		"plus_code":          "PQ6H+3C Kathmandu",
		"timezone":           "Asia/Kathmandu",
		"cid":                "12345",
		"latitude":           "27.706512",
		"longitude":          "85.330421",
		"place_id":           "ChIJplace1",
		"link":               "https://maps.example/place1",
		"data_id":            "0x1:0x2",
		"category":           "Pharmacy",
	}

	rec := tr.Transform(raw)

	if rec.Name == nil || *rec.Name != "Alpha Pharmacy" {
		t.Errorf("Name not mapped: %v", rec.Name)
	}

	// First email wins.
	if rec.Email == nil || *rec.Email != "info@alpha.example" {
		t.Errorf("Expected first email, got %v", rec.Email)
	}

	// First description wins.
	if rec.Description == nil || *rec.Description != "Open since 1998" {
		t.Errorf("Expected first description, got %v", rec.Description)
	}

	if rec.AvatarURL == nil || *rec.AvatarURL != "https://img.example/1.jpg" {
		t.Errorf("AvatarURL not mapped: %v", rec.AvatarURL)
	}

	if rec.BuildingImageURL == nil || *rec.BuildingImageURL != "https://img.example/2.jpg" {
		t.Errorf("BuildingImageURL not mapped: %v", rec.BuildingImageURL)
	}

	if !rec.IsPickup {
		t.Error("Service extractor should have set IsPickup")
	}

	if rec.BuildingInformation == nil || *rec.BuildingInformation != "12 Putali Sadak" {
		t.Errorf("BuildingInformation should be the street, got %v", rec.BuildingInformation)
	}

	if rec.AvgRatings != 4.4 || rec.ReviewCount != 120 {
		t.Errorf("Ratings not mapped: %v / %v", rec.AvgRatings, rec.ReviewCount)
	}

	if rec.Location.Lat != 27.706512 || rec.Location.Lng != 85.330421 {
		t.Errorf("Location not mapped: %+v", rec.Location)
	}

	if rec.Meta == nil {
		t.Fatal("Meta should be populated during processing")
	}

	if rec.Meta.PlaceID == nil || *rec.Meta.PlaceID != "ChIJplace1" {
		t.Errorf("Meta.PlaceID not mapped: %v", rec.Meta.PlaceID)
	}

	if rec.Meta.Borough == nil || *rec.Meta.Borough != "Dillibazar" {
		t.Errorf("Meta.Borough should come from complete_address, got %v", rec.Meta.Borough)
	}
}

func TestTransformer_Defaults(t *testing.T) {
	tr := NewTransformer()

	rec := tr.Transform(parser.RawRecord{})

	// Absent text columns are nil, not "".
	if rec.Name != nil || rec.Contact != nil || rec.Email != nil || rec.Website != nil {
		t.Error("Absent text fields should be nil")
	}

	if !rec.IsAvailable || !rec.IsVisible {
		t.Error("Records default to available and visible")
	}

	if rec.IsOfficial || rec.IsPickup || rec.IsDelivery || rec.HasOwnershipClaim {
		t.Error("Official/pickup/delivery/ownership default to false")
	}

	if rec.Status != "active" {
		t.Errorf("Expected status 'active', got %q", rec.Status)
	}

	if rec.AvgRatings != 0 || rec.ReviewCount != 0 {
		t.Error("Numeric fields default to 0")
	}

	if rec.Gallery == nil || len(rec.Gallery) != 0 {
		t.Errorf("Gallery should be an empty non-nil slice, got %v", rec.Gallery)
	}

	if rec.WebGallery == nil || len(rec.WebGallery) != 0 {
		t.Errorf("WebGallery should be an empty non-nil slice, got %v", rec.WebGallery)
	}

	if rec.WorkingDaysAndHours == nil || rec.ReviewsPerRating == nil || rec.PopularTimes == nil {
		t.Error("Sub-document mappings should fall back to empty, not nil")
	}
}

func TestTransformer_UnparsableCoordinates(t *testing.T) {
	tr := NewTransformer()

	tests := []struct {
		name string
		raw  parser.RawRecord
	}{
		{"absent", parser.RawRecord{}},
		{"empty", parser.RawRecord{"latitude": "", "longitude": ""}},
		{"text", parser.RawRecord{"latitude": "north", "longitude": "east"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := tr.Transform(tt.raw)

			// Never silently 0: the validator must see the failure.
			if !math.IsNaN(rec.Location.Lat) || !math.IsNaN(rec.Location.Lng) {
				t.Errorf("Unparsable coordinates should be NaN, got %+v", rec.Location)
			}
		})
	}
}

func TestTransformer_BadNumericColumns(t *testing.T) {
	tr := NewTransformer()

	rec := tr.Transform(parser.RawRecord{
		"review_rating": "n/a",
		"review_count":  "many",
	})

	if rec.AvgRatings != 0 || rec.ReviewCount != 0 {
		t.Errorf("Unparsable ratings should default to 0, got %v / %v",
			rec.AvgRatings, rec.ReviewCount)
	}
}
