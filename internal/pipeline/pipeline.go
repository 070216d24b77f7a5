// Package pipeline orchestrates a full tier-ingestion run: read the raw
// tier file, parse, transform, validate, merge into the accumulated corpus
// and write the new snapshot.
package pipeline

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"pharmadir/internal/config"
	"pharmadir/internal/corpus"
	"pharmadir/internal/dedup"
	"pharmadir/internal/logger"
	"pharmadir/internal/models"
	"pharmadir/internal/normalizer"
	"pharmadir/internal/parser"
	"pharmadir/internal/report"
)

// ErrTierFileMissing indicates the raw tier file does not exist. This is
// the one per-run fatal condition besides a failed corpus write; the run
// stops before touching the corpus.
var ErrTierFileMissing = errors.New("tier file not found")

// Pipeline runs one tier through the full ingestion sequence. A run is a
// purely sequential batch job; each stage is a pure function over the
// previous stage's output.
type Pipeline struct {
	cfg       *config.Config
	log       *logger.Logger
	processor *normalizer.Processor
}

// New creates a pipeline for the given configuration.
func New(cfg *config.Config, log *logger.Logger) *Pipeline {
	return &Pipeline{
		cfg:       cfg,
		log:       log,
		processor: normalizer.NewProcessor(cfg.Processor.Bounds),
	}
}

// Run executes the pipeline and returns the run summary. With dryRun set
// everything executes except the final corpus write. Per-record problems
// (malformed sub-documents, failed validation, duplicates) never abort the
// run; they are counted and reported.
func (p *Pipeline) Run(dryRun bool) (*report.Summary, error) {
	in := p.cfg.Processor.Input

	data, err := os.ReadFile(in.TierFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrTierFileMissing, in.TierFile)
		}

		return nil, fmt.Errorf("failed to read tier file: %w", err)
	}

	existing, err := corpus.Load(in.CorpusFile)
	if err != nil {
		return nil, err
	}

	p.log.Info("loaded existing corpus", "records", len(existing), "path", in.CorpusFile)

	rawRecords := parser.Parse(string(data))
	p.log.Info("parsed tier file", "rows", len(rawRecords), "path", in.TierFile)

	valid, summary := p.processRecords(rawRecords)
	summary.ExistingCount = len(existing)
	summary.CombinedCount = len(existing) + len(valid)

	merged := dedup.Merge(existing, valid, dedup.Options{
		Prefer:              p.cfg.Processor.Dedup.Prefer,
		CoordinatePrecision: p.cfg.Processor.Dedup.CoordinatePrecision,
	})

	summary.DuplicateCount = merged.DuplicateCount
	summary.UniqueCount = len(merged.Unique)

	for _, name := range merged.DuplicateNames {
		p.log.Debug("dropped duplicate", "name", name)
	}

	if dryRun {
		p.log.Info("dry run, corpus not written")

		return summary, nil
	}

	writeOpts := corpus.WriteOptions{
		PrettyPrint:  p.cfg.Processor.Output.PrettyPrint,
		CreateBackup: p.cfg.Processor.Output.CreateBackup,
	}

	if err := corpus.Write(in.CorpusFile, merged.Unique, writeOpts); err != nil {
		return nil, err
	}

	p.log.Info("corpus written", "records", summary.UniqueCount, "path", in.CorpusFile)

	return summary, nil
}

// processRecords transforms and validates every raw row, splitting them
// into the valid set and a bounded invalid sample for the report.
func (p *Pipeline) processRecords(rawRecords []parser.RawRecord) ([]*models.PharmacyRecord, *report.Summary) {
	summary := &report.Summary{RawCount: len(rawRecords)}
	sampleLimit := p.cfg.Processor.Logging.InvalidSample

	var valid []*models.PharmacyRecord

	for _, raw := range rawRecords {
		record, result := p.processor.Process(raw)

		if result.Valid {
			valid = append(valid, record)

			continue
		}

		summary.InvalidCount++

		p.log.Debug("rejected record",
			"name", record.DisplayName(), "errors", result.Errors)

		if len(summary.Invalid) < sampleLimit {
			summary.Invalid = append(summary.Invalid, report.InvalidRecord{
				Name:   record.DisplayName(),
				Errors: result.Errors,
			})
		}
	}

	summary.ValidCount = len(valid)

	return valid, summary
}
