package extract

import "pharmadir/internal/models"

// ExtractHours decodes the open_hours column, a mapping from day name to
// the hour ranges the location is open.
func ExtractHours(raw string) map[string][]string {
	return Decode(raw, map[string][]string{})
}

// ExtractPopularTimes decodes the popular_times column, day -> hour ->
// load percentage.
func ExtractPopularTimes(raw string) map[string]map[int]int {
	return Decode(raw, map[string]map[int]int{})
}

// ExtractReviewsPerRating decodes the reviews_per_rating column, rating
// value ("1".."5") -> review count.
func ExtractReviewsPerRating(raw string) map[string]int {
	return Decode(raw, map[string]int{})
}

// ExtractUserReviews decodes the user_reviews column into typed review
// sub-records, preserving scrape order.
func ExtractUserReviews(raw string) []models.Review {
	return Decode(raw, []models.Review{})
}

// ExtractDescriptions decodes the descriptions column, an ordered list of
// free-text blurbs for the listing.
func ExtractDescriptions(raw string) []string {
	return Decode(raw, []string{})
}
