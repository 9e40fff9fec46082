package project

import "time"

// scheduleSaveLocked (re)arms the debounced flush. Rapid successive
// mutations within the window coalesce into one write. Callers must hold
// m.mu.
func (m *Manager) scheduleSaveLocked() {
	if m.closed {
		return
	}

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	m.saveTimer = time.AfterFunc(m.saveDelay, m.flush)
}

// flush writes the current document to the store. A failed save is
// reported and the in-memory document stays the source of truth; the next
// mutation will try again.
func (m *Manager) flush() {
	m.mu.Lock()
	doc := m.doc.Clone()
	m.mu.Unlock()

	if err := m.store.Save(doc); err != nil {
		m.report(err)
	}
}

// Flush writes the current document to the store immediately, cancelling
// a pending debounced save.
func (m *Manager) Flush() {
	m.mu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
		m.saveTimer = nil
	}
	m.mu.Unlock()

	m.flush()
}

// Close flushes pending state and stops the manager from scheduling
// further saves. The document remains readable afterwards.
func (m *Manager) Close() {
	m.mu.Lock()
	m.closed = true
	if m.saveTimer != nil {
		m.saveTimer.Stop()
		m.saveTimer = nil
	}
	m.mu.Unlock()

	m.flush()
}
