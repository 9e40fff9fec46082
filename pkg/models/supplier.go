package models

// Supplier is a contractor or vendor working on the project.
//
// Suppliers are referenced by ID from expenses, tasks and assets. The
// references carry no ownership: deleting a supplier leaves them dangling,
// and lookups fall back to an unknown-supplier default.
type Supplier struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Phone1   string   `json:"phone1"`
	Phone2   string   `json:"phone2,omitempty"`
	Email    string   `json:"email,omitempty"`
	Website  string   `json:"website,omitempty"`
	Category Category `json:"category"`
	Rating   int      `json:"rating,omitempty"` // 1 to 5
	Notes    string   `json:"notes,omitempty"`
}
