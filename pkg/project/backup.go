package project

import (
	"encoding/json"
	"fmt"

	"github.com/stonefisk/reforma/pkg/models"
)

// Import replaces the whole document with an uploaded backup. The payload
// is validated first and is applied all or nothing: an invalid payload
// leaves the current document untouched and returns
// models.ErrInvalidDocument.
func (m *Manager) Import(payload []byte) error {
	if !models.IsValidDocument(payload) {
		err := fmt.Errorf("%w: structural validation failed", models.ErrInvalidDocument)
		m.report(err)
		return err
	}

	var doc models.Document
	if err := json.Unmarshal(payload, &doc); err != nil {
		err = fmt.Errorf("%w: %w", models.ErrInvalidDocument, err)
		m.report(err)
		return err
	}
	doc.Normalize()

	m.mu.Lock()
	defer m.mu.Unlock()

	m.doc = doc
	m.scheduleSaveLocked()

	return nil
}

// Export returns the document as indented JSON for a user-facing backup.
func (m *Manager) Export() ([]byte, error) {
	doc := m.Document()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}

	return data, nil
}
