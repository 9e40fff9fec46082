package models

import (
	"slices"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stonefisk/reforma/internal/types"
)

// UnknownSupplierName is what a dangling supplier reference resolves to.
const UnknownSupplierName = "Unknown supplier"

// Project holds the project-level settings of the document.
type Project struct {
	Name        string          `json:"name"`
	TotalBudget decimal.Decimal `json:"totalBudget"`
	StartDate   types.Date      `json:"startDate"`
	EndDate     *types.Date     `json:"endDate,omitempty"`
}

// Document is the complete persisted project state. Its field names and
// five-collection shape are the wire contract with the store and with
// backup import/export.
type Document struct {
	Project     Project         `json:"project"`
	Expenses    []Expense       `json:"expenses"`
	Tasks       []Task          `json:"tasks"`
	Assets      []Asset         `json:"assets"`
	Suppliers   []Supplier      `json:"suppliers"`
	ProgressLog []ProgressEntry `json:"progressLog"`
}

// DefaultDocument returns an empty document for a named project.
func DefaultDocument(name string, totalBudget decimal.Decimal) Document {
	doc := Document{
		Project: Project{
			Name:        name,
			TotalBudget: totalBudget,
			StartDate:   types.Today(),
		},
	}
	doc.Normalize()

	return doc
}

// Normalize repairs a freshly decoded document: collections that were
// missing or null become empty slices, and progress entries without an ID
// get one assigned.
func (d *Document) Normalize() {
	if d.Expenses == nil {
		d.Expenses = []Expense{}
	}
	if d.Tasks == nil {
		d.Tasks = []Task{}
	}
	if d.Assets == nil {
		d.Assets = []Asset{}
	}
	if d.Suppliers == nil {
		d.Suppliers = []Supplier{}
	}
	if d.ProgressLog == nil {
		d.ProgressLog = []ProgressEntry{}
	}

	for i := range d.ProgressLog {
		if d.ProgressLog[i].ID == "" {
			d.ProgressLog[i].ID = uuid.NewString()
		}
	}
}

// Clone returns a deep copy of the document. Mutation operations replace
// the manager's document wholesale, so handed-out copies never alias the
// authoritative state.
func (d Document) Clone() Document {
	clone := d

	clone.Expenses = slices.Clone(d.Expenses)
	for i, expense := range clone.Expenses {
		clone.Expenses[i].Attachments = slices.Clone(expense.Attachments)
		if expense.InstallmentInfo != nil {
			info := *expense.InstallmentInfo
			clone.Expenses[i].InstallmentInfo = &info
		}
	}

	clone.Tasks = slices.Clone(d.Tasks)
	for i, task := range clone.Tasks {
		clone.Tasks[i].Attachments = slices.Clone(task.Attachments)
	}

	clone.Assets = slices.Clone(d.Assets)
	clone.Suppliers = slices.Clone(d.Suppliers)

	clone.ProgressLog = slices.Clone(d.ProgressLog)
	for i, entry := range clone.ProgressLog {
		clone.ProgressLog[i].Attachments = slices.Clone(entry.Attachments)
	}

	if d.Project.EndDate != nil {
		end := *d.Project.EndDate
		clone.Project.EndDate = &end
	}

	return clone
}

// Supplier looks up a supplier by ID.
func (d Document) Supplier(id string) (Supplier, bool) {
	for _, supplier := range d.Suppliers {
		if supplier.ID == id {
			return supplier, true
		}
	}

	return Supplier{}, false
}

// SupplierName resolves a weak supplier reference for display, defaulting
// to UnknownSupplierName when the reference dangles.
func (d Document) SupplierName(id string) string {
	supplier, ok := d.Supplier(id)
	if !ok {
		return UnknownSupplierName
	}

	return supplier.Name
}

// Expense looks up an expense by ID.
func (d Document) Expense(id string) (Expense, bool) {
	for _, expense := range d.Expenses {
		if expense.ID == id {
			return expense, true
		}
	}

	return Expense{}, false
}

// Asset looks up an asset by ID.
func (d Document) Asset(id string) (Asset, bool) {
	for _, asset := range d.Assets {
		if asset.ID == id {
			return asset, true
		}
	}

	return Asset{}, false
}
