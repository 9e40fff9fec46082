package models

import (
	"github.com/shopspring/decimal"
	"github.com/stonefisk/reforma/internal/types"
)

// PaymentStatus is the payment state of an expense.
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "Paid"
	PaymentStatusDeposit PaymentStatus = "Deposit"
	PaymentStatusPending PaymentStatus = "Pending"
)

// InstallmentInfo places an expense within its purchase's installment plan.
type InstallmentInfo struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

// Expense represents a single payment, or one installment of a purchase
// that is paid in several.
type Expense struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category Category        `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Status   PaymentStatus   `json:"status"`
	Date     types.Date      `json:"date"`
	DueDate  types.Date      `json:"dueDate"`

	// PaymentMethod is free-form, e.g. "PIX" or "Boleto".
	PaymentMethod string `json:"paymentMethod,omitempty"`

	// OrderID groups all installments of one purchase and links them to
	// their companion Asset, whose ID equals the OrderID.
	OrderID         string           `json:"orderId,omitempty"`
	InstallmentInfo *InstallmentInfo `json:"installmentInfo,omitempty"`

	// SupplierID is a weak reference, resolved at display time.
	SupplierID  string   `json:"supplierId,omitempty"`
	Attachments []string `json:"attachments,omitempty"`
}
