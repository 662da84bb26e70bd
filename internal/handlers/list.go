package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/salayglass/ledger/internal/logger"
	"github.com/salayglass/ledger/internal/models"
)

// TransactionLister defines the interface that the service must implement.
type TransactionLister interface {
	List(ctx context.Context, rawDate, customer string, limit int) (*models.TransactionList, error)
}

// ListTransactionsErrorResponse represents an error response for listing transactions
// swagger:model ListTransactionsErrorResponse
type ListTransactionsErrorResponse struct {
	// Error message
	// default: Failed to load transactions.
	Error string `json:"error"`
}

// NewListTransactionsHandler returns an HTTP handler for listing recent
// transactions with the daily summary.
// @Summary List transactions
// @Description Returns recent transactions, most recent first, plus daily totals for the filter date (or today). A malformed date filter is ignored.
// @Tags transactions
// @Produce json
// @Param date query string false "Filter by transaction date (YYYY-MM-DD)"
// @Param customer query string false "Filter by customer name substring"
// @Param limit query int false "Maximum rows to return (default 50)"
// @Success 200 {object} models.TransactionList "Transactions and daily summary"
// @Failure 500 {object} handlers.ListTransactionsErrorResponse "Storage failure"
// @Router /transactions [get]
func NewListTransactionsHandler(svc TransactionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		q := r.URL.Query()

		// A malformed limit falls back to the default, same as the date filter.
		limit := 0
		if rawLimit := q.Get("limit"); rawLimit != "" {
			if parsed, err := strconv.Atoi(rawLimit); err == nil {
				limit = parsed
			}
		}

		list, err := svc.List(r.Context(), q.Get("date"), q.Get("customer"), limit)
		if err != nil {
			logger.Log.Errorw("failed to list transactions", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ListTransactionsErrorResponse{Error: "Failed to load transactions."})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(list)
	}
}
