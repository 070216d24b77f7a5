package normalizer

import (
	"fmt"
	"math"

	"pharmadir/internal/config"
	"pharmadir/internal/models"
)

// Validation reasons for required fields. Coordinate bounds failures are
// built dynamically because they embed the offending value.
const (
	reasonMissingName        = "missing name"
	reasonInvalidCoordinates = "invalid coordinates"
)

// Validator checks required-field presence and geographic bounds.
type Validator struct {
	bounds config.Bounds
}

// NewValidator creates a validator for the configured bounding box.
func NewValidator(bounds config.Bounds) *Validator {
	return &Validator{bounds: bounds}
}

// Result is the outcome of validating one record. Errors holds every
// failed rule, not just the first.
type Result struct {
	Valid  bool
	Errors []string
}

// Validate checks one record against all rules. Rules are independent and
// accumulate; validation never aborts the run. Bounds are inclusive.
func (v *Validator) Validate(record *models.PharmacyRecord) Result {
	var errs []string

	if record.Name == nil || *record.Name == "" {
		errs = append(errs, reasonMissingName)
	}

	lat := record.Location.Lat
	lng := record.Location.Lng

	if math.IsNaN(lat) || math.IsNaN(lng) {
		errs = append(errs, reasonInvalidCoordinates)
	} else {
		if lat < v.bounds.Lat.Min || lat > v.bounds.Lat.Max {
			errs = append(errs, fmt.Sprintf("latitude %v outside bounds [%v, %v]",
				lat, v.bounds.Lat.Min, v.bounds.Lat.Max))
		}

		if lng < v.bounds.Lng.Min || lng > v.bounds.Lng.Max {
			errs = append(errs, fmt.Sprintf("longitude %v outside bounds [%v, %v]",
				lng, v.bounds.Lng.Min, v.bounds.Lng.Max))
		}
	}

	return Result{
		Valid:  len(errs) == 0,
		Errors: errs,
	}
}
