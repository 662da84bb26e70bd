package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/salayglass/ledger/internal/logger"
	"github.com/salayglass/ledger/internal/models"
	"github.com/salayglass/ledger/internal/services"
)

// TransactionCreator defines the interface that the service must implement.
type TransactionCreator interface {
	Create(ctx context.Context, in models.CreateTransactionInput) (*models.Transaction, error)
}

// CreateTransactionErrorResponse represents an error response for transaction creation
// swagger:model CreateTransactionErrorResponse
type CreateTransactionErrorResponse struct {
	// Error message
	// default: Customer name is required.
	Error string `json:"error"`

	// Diagnostic detail, present on server errors only
	Details string `json:"details,omitempty"`
}

// NewCreateTransactionHandler returns an HTTP handler for recording a transaction.
// @Summary Create a transaction
// @Description Records a customer transaction with its line items. Invalid line items are skipped; the transaction fails only when no valid items remain.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body models.CreateTransactionInput true "Transaction to record"
// @Success 201 {object} models.Transaction "Transaction recorded"
// @Failure 400 {object} handlers.CreateTransactionErrorResponse "Missing customer, missing description, or no valid line items"
// @Failure 500 {object} handlers.CreateTransactionErrorResponse "Storage failure"
// @Router /transactions [post]
func NewCreateTransactionHandler(svc TransactionCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req models.CreateTransactionInput
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Warnw("failed to decode create request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateTransactionErrorResponse{Error: "Invalid request body."})
			return
		}

		txn, err := svc.Create(r.Context(), req)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingCustomer):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CreateTransactionErrorResponse{Error: "Customer name is required."})
			case errors.Is(err, services.ErrMissingDescription):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CreateTransactionErrorResponse{Error: "Overall job description is required."})
			case errors.Is(err, services.ErrNoValidItems):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CreateTransactionErrorResponse{Error: "All line items are empty or invalid."})
			default:
				logger.Log.Errorw("failed to save transaction", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CreateTransactionErrorResponse{
					Error:   "Failed to save transaction.",
					Details: err.Error(),
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(txn)
	}
}
