package project

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/stonefisk/reforma/pkg/models"
)

// AddProgressNote prepends a note to the progress journal, which is kept
// newest first, and returns the created entry.
func (m *Manager) AddProgressNote(note string) models.ProgressEntry {
	entry := models.ProgressEntry{
		ID:   uuid.NewString(),
		Date: time.Now().In(time.UTC),
		Note: note,
	}

	m.mutate(func(doc *models.Document) {
		doc.ProgressLog = append([]models.ProgressEntry{entry}, doc.ProgressLog...)
	})

	return entry
}

// UpdateProgressNote replaces the text of the entry with the given ID. An
// unknown ID is a no-op.
func (m *Manager) UpdateProgressNote(id, note string) {
	m.mutate(func(doc *models.Document) {
		for i := range doc.ProgressLog {
			if doc.ProgressLog[i].ID == id {
				doc.ProgressLog[i].Note = note
			}
		}
	})
}

// DeleteProgressNote removes the entry with the given ID. An unknown ID
// is a no-op.
func (m *Manager) DeleteProgressNote(id string) {
	m.mutate(func(doc *models.Document) {
		doc.ProgressLog = slices.DeleteFunc(doc.ProgressLog, func(e models.ProgressEntry) bool { return e.ID == id })
	})
}
