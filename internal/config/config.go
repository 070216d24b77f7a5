// Package config provides configuration management for the tier processor.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Deduplication policies. PreferExisting keeps the accumulated corpus's
// version of a duplicated record (earlier tiers win); PreferIncoming lets
// the newly scraped tier take precedence.
const (
	PreferExisting = "existing"
	PreferIncoming = "incoming"
)

// Configuration validation errors.
var (
	ErrMissingTierFile   = errors.New("input.tier_file is required")
	ErrMissingCorpusFile = errors.New("input.corpus_file is required")
	ErrMissingBounds     = errors.New("bounds.lat and bounds.lng are required")
	ErrInvalidBounds     = errors.New("bounds min cannot exceed max")
	ErrInvalidPolicy     = errors.New("dedup.prefer must be 'existing' or 'incoming'")
	ErrInvalidPrecision  = errors.New("dedup.coordinate_precision must be non-negative")
	ErrInvalidSampleSize = errors.New("logging.invalid_sample must be non-negative")
	ErrInvalidLogLevel   = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete processor configuration.
type Config struct {
	Processor ProcessorConfig `yaml:"processor"`
}

// ProcessorConfig contains the settings for one tier-ingestion run.
type ProcessorConfig struct {
	Input   InputConfig   `yaml:"input"`
	Bounds  Bounds        `yaml:"bounds"`
	Dedup   DedupConfig   `yaml:"dedup"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// InputConfig names the run's input artifacts.
type InputConfig struct {
	TierFile   string `yaml:"tier_file"`
	CorpusFile string `yaml:"corpus_file"`
}

// Bounds is the geographic bounding box for the serviced region. Bounds
// are inclusive on all four edges.
type Bounds struct {
	Lat Range `yaml:"lat"`
	Lng Range `yaml:"lng"`
}

// Range is an inclusive [Min, Max] interval.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// IsZero reports whether the range was left unset in the config file.
func (r Range) IsZero() bool {
	return r.Min == 0 && r.Max == 0
}

// DedupConfig controls the merge step.
type DedupConfig struct {
	Prefer              string `yaml:"prefer"`
	CoordinatePrecision int    `yaml:"coordinate_precision"`
}

// OutputConfig defines corpus write behavior.
type OutputConfig struct {
	PrettyPrint  bool `yaml:"pretty_print"`
	CreateBackup bool `yaml:"create_backup"`
}

// LoggingConfig defines logging and report behavior.
type LoggingConfig struct {
	Level         string `yaml:"level"`
	InvalidSample int    `yaml:"invalid_sample"`
}

// LoadConfig loads configuration from a YAML file, applies defaults and
// validates the result.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// applyDefaults fills in the optional knobs that have a sane default.
func (c *Config) applyDefaults() {
	if c.Processor.Dedup.Prefer == "" {
		c.Processor.Dedup.Prefer = PreferExisting
	}

	if c.Processor.Dedup.CoordinatePrecision == 0 {
		c.Processor.Dedup.CoordinatePrecision = 6
	}

	if c.Processor.Logging.Level == "" {
		c.Processor.Logging.Level = "info"
	}

	if c.Processor.Logging.InvalidSample == 0 {
		c.Processor.Logging.InvalidSample = 10
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	p := &c.Processor

	if p.Input.TierFile == "" {
		return ErrMissingTierFile
	}

	if p.Input.CorpusFile == "" {
		return ErrMissingCorpusFile
	}

	if p.Bounds.Lat.IsZero() || p.Bounds.Lng.IsZero() {
		return ErrMissingBounds
	}

	if p.Bounds.Lat.Min > p.Bounds.Lat.Max || p.Bounds.Lng.Min > p.Bounds.Lng.Max {
		return ErrInvalidBounds
	}

	if p.Dedup.Prefer != PreferExisting && p.Dedup.Prefer != PreferIncoming {
		return ErrInvalidPolicy
	}

	if p.Dedup.CoordinatePrecision < 0 {
		return ErrInvalidPrecision
	}

	if p.Logging.InvalidSample < 0 {
		return ErrInvalidSampleSize
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[p.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Tier: %s, Corpus: %s, Prefer: %s}",
		c.Processor.Input.TierFile,
		c.Processor.Input.CorpusFile,
		c.Processor.Dedup.Prefer,
	)
}
