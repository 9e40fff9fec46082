// Package project implements the state manager owning the project document.
//
// The manager holds the authoritative in-memory document and exposes
// synchronous, invariant-preserving mutation operations. Every mutation
// replaces the document with a new value and schedules a coalesced flush
// to the store; persistence is a side effect, not part of an operation's
// correctness contract.
package project

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/stonefisk/reforma/internal/types"
	"github.com/stonefisk/reforma/pkg/filestore"
	"github.com/stonefisk/reforma/pkg/models"
	"github.com/stonefisk/reforma/pkg/storage"
)

// DefaultSaveDelay is the window in which successive mutations are
// coalesced into a single write to the store.
const DefaultSaveDelay = 800 * time.Millisecond

// PlaceholderProjectName names the project when there is nothing better:
// after a failed load, or after a full reset.
const PlaceholderProjectName = "Minha Reforma"

// Manager owns the project document.
//
// All operations are safe for concurrent use, but the system assumes a
// single active editor: there is no multi-writer conflict resolution, and
// concurrent editors would overwrite each other's saved document.
type Manager struct {
	mu  sync.Mutex
	doc models.Document

	store storage.Store
	files filestore.FileStore

	saveDelay time.Duration
	saveTimer *time.Timer
	closed    bool

	reportErr func(error)
	log       zerolog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithSaveDelay overrides the debounce window for persistence.
func WithSaveDelay(delay time.Duration) Option {
	return func(m *Manager) {
		m.saveDelay = delay
	}
}

// WithErrorReporter registers a callback receiving every non-fatal
// failure (load, save, file operations, invalid imports). Use it to
// surface transient notifications to users.
func WithErrorReporter(report func(error)) Option {
	return func(m *Manager) {
		m.reportErr = report
	}
}

// WithLogger overrides the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Manager) {
		m.log = logger
	}
}

// New returns a manager with the document loaded from the store. When the
// load fails, the failure is reported and the manager starts with an
// empty placeholder document; the session stays usable and the next
// mutation will save over whatever was unreadable.
func New(store storage.Store, files filestore.FileStore, options ...Option) *Manager {
	m := &Manager{
		store:     store,
		files:     files,
		saveDelay: DefaultSaveDelay,
		log:       log.Logger,
	}

	for _, option := range options {
		option(m)
	}

	doc, err := store.Load()
	if err != nil {
		m.report(err)
		doc = models.DefaultDocument(PlaceholderProjectName, decimal.Zero)
	}
	m.doc = doc

	return m
}

// Document returns a deep copy of the current document.
func (m *Manager) Document() models.Document {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.doc.Clone()
}

// ProjectUpdate contains the project settings that can be changed. Nil
// fields are left untouched.
type ProjectUpdate struct {
	Name        *string
	TotalBudget *decimal.Decimal
	StartDate   *types.Date
	EndDate     *types.Date // a zero date clears the end date
}

// UpdateProject merges the given settings into the project.
func (m *Manager) UpdateProject(update ProjectUpdate) {
	m.mutate(func(doc *models.Document) {
		if update.Name != nil {
			doc.Project.Name = *update.Name
		}
		if update.TotalBudget != nil {
			doc.Project.TotalBudget = *update.TotalBudget
		}
		if update.StartDate != nil {
			doc.Project.StartDate = *update.StartDate
		}
		if update.EndDate != nil {
			if update.EndDate.IsZero() {
				doc.Project.EndDate = nil
			} else {
				end := *update.EndDate
				doc.Project.EndDate = &end
			}
		}
	})
}

// Reset clears all collections. With keepProject, the project name and
// budget survive and only the start date is reset to today; without it,
// the project is replaced with placeholder defaults.
func (m *Manager) Reset(keepProject bool) {
	m.mutate(func(doc *models.Document) {
		project := models.Project{
			Name:        PlaceholderProjectName,
			TotalBudget: decimal.Zero,
			StartDate:   types.Today(),
		}
		if keepProject {
			project.Name = doc.Project.Name
			project.TotalBudget = doc.Project.TotalBudget
		}

		*doc = models.Document{Project: project}
		doc.Normalize()
	})
}

// mutate runs fn on a copy of the document, replaces the authoritative
// state with the result and schedules a flush to the store.
func (m *Manager) mutate(fn func(doc *models.Document)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc := m.doc.Clone()
	fn(&doc)
	m.doc = doc

	m.scheduleSaveLocked()
}

// report surfaces a non-fatal failure. The in-memory document stays the
// source of truth, whatever went wrong around it.
func (m *Manager) report(err error) {
	m.log.Error().Err(err).Msg("project state operation failed")

	if m.reportErr != nil {
		m.reportErr(err)
	}
}

// deleteFiles removes attachment files, best effort. Failures leave the
// file orphaned on disk rather than blocking the mutation that already
// happened.
func (m *Manager) deleteFiles(urls []string) {
	if m.files == nil {
		return
	}

	for _, url := range urls {
		if err := m.files.Delete(url); err != nil {
			m.report(fmt.Errorf("%w: deleting %q: %w", ErrFileOp, url, err))
		}
	}
}

// UploadFile stores an attachment and returns its URL. On failure nothing
// is stored and no document state changes; callers decide whether to
// reference the returned URL from an entity.
func (m *Manager) UploadFile(filename string, contents []byte) (string, error) {
	url, err := m.files.Upload(filename, contents)
	if err != nil {
		err = fmt.Errorf("%w: uploading %q: %w", ErrFileOp, filename, err)
		m.report(err)
		return "", err
	}

	return url, nil
}
