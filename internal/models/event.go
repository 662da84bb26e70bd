package models

// TransactionEvent is the message published to Kafka after a transaction is
// persisted. Amounts are carried as fixed two-decimal strings.
type TransactionEvent struct {
	TransactionID   int64  `json:"transaction_id"`   // Ledger id of the created transaction
	CustomerName    string `json:"customer_name"`    // Customer the transaction belongs to
	TotalAmount     string `json:"total_amount"`     // Total amount, e.g. "300.00"
	AmountPaid      string `json:"amount_paid"`      // Amount paid at creation
	Balance         string `json:"balance"`          // Remaining balance
	TransactionDate string `json:"transaction_date"` // Calendar date, YYYY-MM-DD
	Timestamp       int64  `json:"timestamp"`        // Unix timestamp of the event
	Operation       string `json:"operation"`        // Always "create" for the append-only ledger
}
