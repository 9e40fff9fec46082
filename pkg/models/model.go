// Package models implements the project document and its entities.
package models

import (
	"errors"

	"github.com/shopspring/decimal"
)

func init() {
	// The document is exchanged as plain JSON with the store and with
	// user backups, where amounts are JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

var ErrInvalidDocument = errors.New("the payload is not a valid project document")
