package models

import "github.com/salayglass/ledger/internal/money"

// LineItem is one priced unit within a transaction. Items are owned by their
// transaction, keep insertion order, and are immutable once persisted.
type LineItem struct {
	ID              int64       `json:"id" db:"id"`                             // Assigned by the store
	TransactionID   int64       `json:"-" db:"transaction_id"`                  // Owning transaction
	ItemDescription string      `json:"item_description" db:"item_description"` // Non-empty description
	Quantity        int         `json:"quantity" db:"quantity"`                 // Always > 0
	UnitPrice       money.Money `json:"unit_price" db:"unit_price"`             // Always >= 0
	LineTotal       money.Money `json:"line_total" db:"line_total"`             // unit_price * quantity
}
