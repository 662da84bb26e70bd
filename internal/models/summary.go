package models

import "github.com/salayglass/ledger/internal/money"

// DailySummary holds the aggregate sums for a single calendar date.
type DailySummary struct {
	Total money.Money `json:"daily_total" db:"daily_total"` // Sum of total_amount
	Paid  money.Money `json:"daily_paid" db:"daily_paid"`   // Sum of amount_paid
}
