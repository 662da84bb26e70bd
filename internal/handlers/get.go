package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/salayglass/ledger/internal/logger"
	"github.com/salayglass/ledger/internal/models"
	"github.com/salayglass/ledger/internal/services"
)

// TransactionGetter defines the interface that the service must implement.
type TransactionGetter interface {
	Get(ctx context.Context, id int64) (*models.Transaction, error)
}

// GetTransactionErrorResponse represents an error response for fetching a transaction
// swagger:model GetTransactionErrorResponse
type GetTransactionErrorResponse struct {
	// Error message
	// default: Transaction not found.
	Error string `json:"error"`
}

// NewGetTransactionHandler returns an HTTP handler for fetching one transaction.
// @Summary Get a transaction
// @Description Returns a single transaction with its line items.
// @Tags transactions
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} models.Transaction "Transaction"
// @Failure 404 {object} handlers.GetTransactionErrorResponse "Unknown transaction id"
// @Failure 500 {object} handlers.GetTransactionErrorResponse "Storage failure"
// @Router /transactions/{id} [get]
func NewGetTransactionHandler(svc TransactionGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		// A non-numeric id is indistinguishable from an unknown one.
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(GetTransactionErrorResponse{Error: "Transaction not found."})
			return
		}

		txn, err := svc.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrTransactionNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(GetTransactionErrorResponse{Error: "Transaction not found."})
				return
			}
			logger.Log.Errorw("failed to get transaction", "id", id, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(GetTransactionErrorResponse{Error: "Failed to load transaction."})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(txn)
	}
}
