package models

// LineItemInput is one raw line item as supplied by the caller. Quantity and
// unit price arrive loosely typed; invalid items are skipped, not rejected.
type LineItemInput struct {
	ItemDescription string `json:"item_description"`
	Quantity        Number `json:"quantity"`
	UnitPrice       Number `json:"unit_price"`
}

// CreateTransactionInput is the validated-at-the-boundary input for creating
// a transaction.
type CreateTransactionInput struct {
	CustomerName    string          `json:"customer_name"`
	Contact         string          `json:"contact"`
	Description     string          `json:"description"`
	Items           []LineItemInput `json:"items"`
	AmountPaid      Number          `json:"amount_paid"`
	TransactionDate string          `json:"transaction_date"` // optional YYYY-MM-DD, defaults to today
}
