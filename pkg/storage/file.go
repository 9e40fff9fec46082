package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/stonefisk/reforma/pkg/models"
)

// Defaults for the document a fresh file store is seeded with.
var (
	DefaultProjectName = "StoneFisk Project"
	DefaultTotalBudget = decimal.NewFromInt(50000)
)

// File is a Store keeping the document as a single indented JSON file.
type File struct {
	path string
}

// NewFile returns a file store for the given path. The directory is
// created if needed; the file itself is seeded on first load.
func NewFile(path string) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	return &File{path: path}, nil
}

// Load reads the document, seeding a default one if the file does not
// exist yet. File contents are validated before they are trusted.
func (f *File) Load() (models.Document, error) {
	if _, err := os.Stat(f.path); os.IsNotExist(err) {
		doc := models.DefaultDocument(DefaultProjectName, DefaultTotalBudget)

		log.Debug().Str("path", f.path).Msg("document file does not exist, seeding default document")
		if err := f.Save(doc); err != nil {
			return models.Document{}, err
		}

		return doc, nil
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	if !models.IsValidDocument(data) {
		return models.Document{}, fmt.Errorf("%w: %w", ErrLoad, models.ErrInvalidDocument)
	}

	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	doc.Normalize()

	return doc, nil
}

// Save writes the whole document, replacing the previous state.
func (f *File) Save(doc models.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSave, err)
	}

	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrSave, err)
	}

	return nil
}
