package models

import "github.com/salayglass/ledger/internal/money"

// TransactionList is the list-endpoint result: the page of most recent
// transactions plus the daily summary for the filter date (or today).
type TransactionList struct {
	Date         Date          `json:"date"`        // Summary date, not necessarily the date of every row
	DailyTotal   money.Money   `json:"daily_total"` // Sum of total_amount over the summary date
	DailyPaid    money.Money   `json:"daily_paid"`  // Sum of amount_paid over the summary date
	Transactions []Transaction `json:"transactions"`
}
