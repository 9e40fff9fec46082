// Package storage persists the project document.
package storage

import (
	"errors"

	"github.com/stonefisk/reforma/pkg/models"
)

var (
	ErrLoad = errors.New("loading the project document failed")
	ErrSave = errors.New("saving the project document failed")
)

// Store reads and writes the whole project document. The document is the
// unit of persistence; there is no partial update.
type Store interface {
	Load() (models.Document, error)
	Save(models.Document) error
}
