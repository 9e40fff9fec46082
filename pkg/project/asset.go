package project

import (
	"slices"

	"github.com/google/uuid"
	"github.com/stonefisk/reforma/pkg/models"
)

// AssetEditable contains the fields callers provide when creating an
// asset by hand, next to the ones auto-created with purchases.
type AssetEditable struct {
	Name       string
	Status     models.AssetStatus
	SupplierID string
}

// AssetUpdate is a partial update of an asset. Nil fields are left
// untouched.
type AssetUpdate struct {
	Name       *string
	Status     *models.AssetStatus
	SupplierID *string
}

// AddAsset appends a new asset and returns it.
func (m *Manager) AddAsset(input AssetEditable) models.Asset {
	asset := models.Asset{
		ID:         uuid.NewString(),
		Name:       input.Name,
		Status:     input.Status,
		SupplierID: input.SupplierID,
	}
	if asset.Status == "" {
		asset.Status = models.AssetStatusPurchased
	}

	m.mutate(func(doc *models.Document) {
		doc.Assets = append(doc.Assets, asset)
	})

	return asset
}

// UpdateAsset merges the update into the asset with the given ID. An
// unknown ID is a no-op.
func (m *Manager) UpdateAsset(id string, update AssetUpdate) {
	m.mutate(func(doc *models.Document) {
		for i := range doc.Assets {
			if doc.Assets[i].ID != id {
				continue
			}

			if update.Name != nil {
				doc.Assets[i].Name = *update.Name
			}
			if update.Status != nil {
				doc.Assets[i].Status = *update.Status
			}
			if update.SupplierID != nil {
				doc.Assets[i].SupplierID = *update.SupplierID
			}
		}
	})
}

// DeleteAsset removes an asset. Expenses of the same order are not
// touched; the asset is only the delivery-tracking shadow.
func (m *Manager) DeleteAsset(id string) {
	m.mutate(func(doc *models.Document) {
		doc.Assets = slices.DeleteFunc(doc.Assets, func(a models.Asset) bool { return a.ID == id })
	})
}

// ToggleAssetStatus flips an asset between Purchased and Delivered.
func (m *Manager) ToggleAssetStatus(id string) {
	m.mutate(func(doc *models.Document) {
		for i := range doc.Assets {
			if doc.Assets[i].ID == id {
				doc.Assets[i].Status = doc.Assets[i].Status.Toggled()
			}
		}
	})
}
