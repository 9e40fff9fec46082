package models

// AssetStatus is the delivery state of an asset.
type AssetStatus string

const (
	AssetStatusPurchased AssetStatus = "Purchased"
	AssetStatusDelivered AssetStatus = "Delivered"
)

// Toggled returns the opposite delivery state. These are the only two
// states an asset can be in.
func (s AssetStatus) Toggled() AssetStatus {
	if s == AssetStatusPurchased {
		return AssetStatusDelivered
	}

	return AssetStatusPurchased
}

// Asset is the delivery-tracking record for a purchase: has the purchased
// item arrived yet? One asset exists per purchase order, its ID being the
// order's ID.
type Asset struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Status     AssetStatus `json:"status"`
	SupplierID string      `json:"supplierId,omitempty"`
}
