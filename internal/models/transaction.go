package models

import (
	"time"

	"github.com/salayglass/ledger/internal/money"
)

// Transaction is a customer transaction row together with its line items.
// The ledger is append-only: transactions are never mutated after creation.
type Transaction struct {
	ID              int64       `json:"id" db:"id"`                             // Assigned by the store, monotonically increasing
	CustomerName    string      `json:"customer_name" db:"customer_name"`       // Non-empty customer name
	Contact         string      `json:"contact" db:"contact"`                   // Optional contact info
	Description     string      `json:"description" db:"description"`           // Non-empty overall job description
	TotalAmount     money.Money `json:"total_amount" db:"total_amount"`         // Sum of item line totals
	AmountPaid      money.Money `json:"amount_paid" db:"amount_paid"`           // Always >= 0
	Balance         money.Money `json:"balance" db:"balance"`                   // total_amount - amount_paid; negative on overpayment
	CreatedAt       time.Time   `json:"created_at" db:"created_at"`             // Set by the store at insertion
	TransactionDate Date        `json:"transaction_date" db:"transaction_date"` // Defaults to the creation date
	Items           []LineItem  `json:"items" db:"-"`                           // At least one, insertion order preserved
}
