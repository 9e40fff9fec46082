package project

import (
	"slices"

	"github.com/google/uuid"
	"github.com/stonefisk/reforma/pkg/models"
)

// SupplierEditable contains the fields callers provide when creating a
// supplier.
type SupplierEditable struct {
	Name     string
	Phone1   string
	Phone2   string
	Email    string
	Website  string
	Category models.Category
	Rating   int
	Notes    string
}

// SupplierUpdate is a partial update of a supplier. Nil fields are left
// untouched.
type SupplierUpdate struct {
	Name     *string
	Phone1   *string
	Phone2   *string
	Email    *string
	Website  *string
	Category *models.Category
	Rating   *int
	Notes    *string
}

// AddSupplier appends a new supplier and returns it.
func (m *Manager) AddSupplier(input SupplierEditable) models.Supplier {
	supplier := models.Supplier{
		ID:       uuid.NewString(),
		Name:     input.Name,
		Phone1:   input.Phone1,
		Phone2:   input.Phone2,
		Email:    input.Email,
		Website:  input.Website,
		Category: input.Category,
		Rating:   input.Rating,
		Notes:    input.Notes,
	}

	m.mutate(func(doc *models.Document) {
		doc.Suppliers = append(doc.Suppliers, supplier)
	})

	return supplier
}

// UpdateSupplier merges the update into the supplier with the given ID.
// An unknown ID is a no-op.
func (m *Manager) UpdateSupplier(id string, update SupplierUpdate) {
	m.mutate(func(doc *models.Document) {
		for i := range doc.Suppliers {
			if doc.Suppliers[i].ID != id {
				continue
			}

			if update.Name != nil {
				doc.Suppliers[i].Name = *update.Name
			}
			if update.Phone1 != nil {
				doc.Suppliers[i].Phone1 = *update.Phone1
			}
			if update.Phone2 != nil {
				doc.Suppliers[i].Phone2 = *update.Phone2
			}
			if update.Email != nil {
				doc.Suppliers[i].Email = *update.Email
			}
			if update.Website != nil {
				doc.Suppliers[i].Website = *update.Website
			}
			if update.Category != nil {
				doc.Suppliers[i].Category = *update.Category
			}
			if update.Rating != nil {
				doc.Suppliers[i].Rating = *update.Rating
			}
			if update.Notes != nil {
				doc.Suppliers[i].Notes = *update.Notes
			}
		}
	})
}

// DeleteSupplier removes a supplier. References to it from expenses,
// tasks and assets are weak and stay in place; they resolve to an
// unknown-supplier default from then on.
func (m *Manager) DeleteSupplier(id string) {
	m.mutate(func(doc *models.Document) {
		doc.Suppliers = slices.DeleteFunc(doc.Suppliers, func(s models.Supplier) bool { return s.ID == id })
	})
}
