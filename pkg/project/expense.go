package project

import (
	"slices"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stonefisk/reforma/internal/types"
	"github.com/stonefisk/reforma/pkg/models"
)

// ExpenseEditable contains the fields callers provide when creating an
// expense. IDs, the order ID and installment information are assigned by
// the manager.
type ExpenseEditable struct {
	Name          string
	Category      models.Category
	Amount        decimal.Decimal
	Status        models.PaymentStatus
	Date          types.Date
	DueDate       types.Date
	PaymentMethod string
	SupplierID    string
	Attachments   []string
}

// ExpenseUpdate is a partial update of a single expense. Nil fields are
// left untouched; a pointer to the zero value clears a field.
type ExpenseUpdate struct {
	Name          *string
	Category      *models.Category
	Amount        *decimal.Decimal
	Status        *models.PaymentStatus
	Date          *types.Date
	DueDate       *types.Date
	PaymentMethod *string
	SupplierID    *string
	Attachments   *[]string
}

// AddExpense records a purchase as one or more installment expenses plus
// exactly one companion asset to track its delivery.
//
// The amount is split with integer-cent arithmetic: the total in cents is
// floor-divided across the installments and the remainder is distributed
// as one extra cent to the first installments, so the installment amounts
// always sum to the original amount exactly. Due dates step forward one
// calendar month per installment from the base due date.
//
// A non-positive installment count falls back to 1. The created
// installments are returned in order.
func (m *Manager) AddExpense(input ExpenseEditable, installments int) []models.Expense {
	if installments < 1 {
		installments = 1
	}

	orderID := uuid.NewString()
	amounts := splitCents(input.Amount, installments)

	baseDue := input.DueDate
	if baseDue.IsZero() {
		baseDue = input.Date
	}
	if baseDue.IsZero() {
		baseDue = types.Today()
	}

	created := make([]models.Expense, 0, installments)
	for i := 0; i < installments; i++ {
		expense := models.Expense{
			ID:            uuid.NewString(),
			Name:          input.Name,
			Category:      input.Category,
			Amount:        amounts[i],
			Status:        input.Status,
			Date:          input.Date,
			DueDate:       baseDue.AddDate(0, i, 0),
			PaymentMethod: input.PaymentMethod,
			OrderID:       orderID,
			SupplierID:    input.SupplierID,
			Attachments:   slices.Clone(input.Attachments),
		}

		if installments > 1 {
			expense.InstallmentInfo = &models.InstallmentInfo{Current: i + 1, Total: installments}
		}

		created = append(created, expense)
	}

	m.mutate(func(doc *models.Document) {
		doc.Expenses = append(doc.Expenses, created...)

		// One purchase, one deliverable to track. Unconditional,
		// regardless of how many installments pay for it.
		doc.Assets = append(doc.Assets, models.Asset{
			ID:         orderID,
			Name:       input.Name,
			Status:     models.AssetStatusPurchased,
			SupplierID: input.SupplierID,
		})
	})

	return created
}

// UpdateExpense merges the update into the expense with the given ID.
// Sibling installments of the same order are not touched. An unknown ID
// is a no-op.
//
// A changed name or supplier propagates to the companion asset. When the
// update replaces the attachment list, files that are no longer
// referenced by any expense are deleted from the file store.
func (m *Manager) UpdateExpense(id string, update ExpenseUpdate) {
	var removed []string

	m.mutate(func(doc *models.Document) {
		idx := slices.IndexFunc(doc.Expenses, func(e models.Expense) bool { return e.ID == id })
		if idx < 0 {
			return
		}

		previous := doc.Expenses[idx]
		next := previous

		if update.Name != nil {
			next.Name = *update.Name
		}
		if update.Category != nil {
			next.Category = *update.Category
		}
		if update.Amount != nil {
			next.Amount = *update.Amount
		}
		if update.Status != nil {
			next.Status = *update.Status
		}
		if update.Date != nil {
			next.Date = *update.Date
		}
		if update.DueDate != nil {
			next.DueDate = *update.DueDate
		}
		if update.PaymentMethod != nil {
			next.PaymentMethod = *update.PaymentMethod
		}
		if update.SupplierID != nil {
			next.SupplierID = *update.SupplierID
		}
		if update.Attachments != nil {
			next.Attachments = slices.Clone(*update.Attachments)
		}

		doc.Expenses[idx] = next

		// Keep the delivery-tracking asset of this purchase in sync.
		if previous.OrderID != "" {
			for i := range doc.Assets {
				if doc.Assets[i].ID != previous.OrderID {
					continue
				}

				if update.Name != nil && *update.Name != "" {
					doc.Assets[i].Name = *update.Name
				}
				if update.SupplierID != nil {
					doc.Assets[i].SupplierID = *update.SupplierID
				}
			}
		}

		if update.Attachments != nil {
			for _, url := range previous.Attachments {
				if !slices.Contains(next.Attachments, url) && !attachmentReferenced(doc.Expenses, id, url) {
					removed = append(removed, url)
				}
			}
		}
	})

	m.deleteFiles(removed)
}

// DeleteExpense removes a single installment. The companion asset is only
// removed together with the last remaining installment of its order,
// since it represents the whole purchase. Attachment files are deleted
// unless another expense still references them.
func (m *Manager) DeleteExpense(id string) {
	var removed []string

	m.mutate(func(doc *models.Document) {
		idx := slices.IndexFunc(doc.Expenses, func(e models.Expense) bool { return e.ID == id })
		if idx < 0 {
			return
		}

		expense := doc.Expenses[idx]
		doc.Expenses = slices.Delete(doc.Expenses, idx, idx+1)

		for _, url := range expense.Attachments {
			if !attachmentReferenced(doc.Expenses, id, url) {
				removed = append(removed, url)
			}
		}

		// Expenses created before orders existed have no order ID and
		// used their own ID as the asset ID.
		assetID := expense.OrderID
		if assetID == "" {
			assetID = expense.ID
		}

		siblings := expense.OrderID != "" && slices.ContainsFunc(doc.Expenses, func(e models.Expense) bool {
			return e.OrderID == expense.OrderID
		})
		if !siblings {
			doc.Assets = slices.DeleteFunc(doc.Assets, func(a models.Asset) bool { return a.ID == assetID })
		}
	})

	m.deleteFiles(removed)
}

// attachmentReferenced reports whether any expense other than excludeID
// references the URL in its attachments.
func attachmentReferenced(expenses []models.Expense, excludeID, url string) bool {
	for _, expense := range expenses {
		if expense.ID == excludeID {
			continue
		}
		if slices.Contains(expense.Attachments, url) {
			return true
		}
	}

	return false
}

// splitCents splits an amount into n parts that sum to it exactly at
// 2-decimal precision. Never divide currency with floats.
func splitCents(amount decimal.Decimal, n int) []decimal.Decimal {
	total := amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	base := total / int64(n)
	if total%int64(n) != 0 && total < 0 {
		base--
	}
	remainder := total - base*int64(n)

	parts := make([]decimal.Decimal, n)
	for i := range parts {
		cents := base
		if int64(i) < remainder {
			cents++
		}
		parts[i] = decimal.New(cents, -2)
	}

	return parts
}
