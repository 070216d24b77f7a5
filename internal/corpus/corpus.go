// Package corpus reads and writes the accumulated pharmacy corpus snapshot.
package corpus

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"pharmadir/internal/models"
)

// WriteOptions control snapshot serialization.
type WriteOptions struct {
	PrettyPrint  bool
	CreateBackup bool
}

// Load reads the corpus snapshot at path. A missing file is not an error:
// the first tier of a fresh region starts from an empty corpus.
func Load(path string) ([]*models.PharmacyRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to read corpus: %w", err)
	}

	var records []*models.PharmacyRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse corpus: %w", err)
	}

	return records, nil
}

// Write strips run metadata from every record and replaces the snapshot at
// path. The write is all-or-nothing: the data goes to a temp file in the
// target directory first and is renamed over the previous snapshot only
// after a successful write, so a failure leaves the prior corpus untouched.
func Write(path string, records []*models.PharmacyRecord, opts WriteOptions) error {
	cleaned := CleanForOutput(records)

	var (
		data []byte
		err  error
	)

	if opts.PrettyPrint {
		data, err = json.MarshalIndent(cleaned, "", "  ")
	} else {
		data, err = json.Marshal(cleaned)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal corpus: %w", err)
	}

	if opts.CreateBackup {
		if backupErr := backup(path); backupErr != nil {
			return backupErr
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".corpus-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp corpus file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return fmt.Errorf("failed to write corpus: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("failed to close temp corpus file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("failed to replace corpus: %w", err)
	}

	return nil
}

// CleanForOutput returns copies of records with the _meta sub-record
// removed. The inputs are not mutated.
func CleanForOutput(records []*models.PharmacyRecord) []*models.PharmacyRecord {
	cleaned := make([]*models.PharmacyRecord, 0, len(records))

	for _, record := range records {
		clean := *record
		clean.Meta = nil
		cleaned = append(cleaned, &clean)
	}

	return cleaned
}

// backup copies the current snapshot to path.bak before replacement. A
// missing snapshot means there is nothing to back up.
func backup(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("failed to read corpus for backup: %w", err)
	}

	if err := os.WriteFile(path+".bak", data, 0644); err != nil {
		return fmt.Errorf("failed to write corpus backup: %w", err)
	}

	return nil
}
