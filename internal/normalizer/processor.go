// Package normalizer turns raw scraper rows into validated canonical
// pharmacy records.
package normalizer

import (
	"pharmadir/internal/config"
	"pharmadir/internal/models"
	"pharmadir/internal/parser"
)

// Processor combines transformation and validation for one raw row.
type Processor struct {
	transformer *Transformer
	validator   *Validator
}

// NewProcessor creates a new processor instance for the configured bounds.
func NewProcessor(bounds config.Bounds) *Processor {
	return &Processor{
		transformer: NewTransformer(),
		validator:   NewValidator(bounds),
	}
}

// Process transforms a raw row and validates the result. Invalid records
// are data, not errors: the record is always returned together with its
// validation result so the caller can report the rejection reasons.
func (p *Processor) Process(raw parser.RawRecord) (*models.PharmacyRecord, Result) {
	record := p.transformer.Transform(raw)

	return record, p.validator.Validate(record)
}
