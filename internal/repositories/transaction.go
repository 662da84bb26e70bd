package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/salayglass/ledger/internal/logger"
	"github.com/salayglass/ledger/internal/models"
)

// TransactionWriteRepository handles ledger write operations.
type TransactionWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTransactionWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db, txGetter: txGetter}
}

const insertTransactionQuery = `
	INSERT INTO transactions
		(customer_name, contact, description, total_amount, amount_paid, balance, created_at, transaction_date)
	VALUES ($1, $2, $3, $4, $5, $6, NOW(), $7)
	RETURNING id, created_at
`

const insertLineItemQuery = `
	INSERT INTO line_items
		(transaction_id, item_description, quantity, unit_price, line_total)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id
`

// Save persists a transaction and all of its line items in a single database
// transaction. The store assigns id and created_at. When no ambient transaction
// is present in the context, Save manages its own so a partial record can never
// become visible.
func (r *TransactionWriteRepository) Save(ctx context.Context, txn models.Transaction) (*models.Transaction, error) {
	var runner *sqlx.Tx
	if r.txGetter != nil {
		runner = r.txGetter(ctx)
	}

	ownTx := runner == nil
	if ownTx {
		var err error
		runner, err = r.db.BeginTxx(ctx, nil)
		if err != nil {
			return nil, err
		}
		defer func() {
			if ownTx {
				runner.Rollback()
			}
		}()
	}

	var assigned struct {
		ID        int64     `db:"id"`
		CreatedAt time.Time `db:"created_at"`
	}
	err := sqlx.GetContext(ctx, runner, &assigned, insertTransactionQuery,
		txn.CustomerName, txn.Contact, txn.Description,
		txn.TotalAmount, txn.AmountPaid, txn.Balance, txn.TransactionDate)

	logger.Log.Infow("query executed",
		"query", collapse(insertTransactionQuery),
		"args", []any{txn.CustomerName, txn.TotalAmount, txn.AmountPaid, txn.TransactionDate},
		"result", assigned.ID,
		"error", err,
	)
	if err != nil {
		return nil, err
	}

	txn.ID = assigned.ID
	txn.CreatedAt = assigned.CreatedAt

	for i := range txn.Items {
		item := &txn.Items[i]
		item.TransactionID = txn.ID

		err := sqlx.GetContext(ctx, runner, &item.ID, insertLineItemQuery,
			item.TransactionID, item.ItemDescription, item.Quantity, item.UnitPrice, item.LineTotal)

		logger.Log.Infow("query executed",
			"query", collapse(insertLineItemQuery),
			"args", []any{item.TransactionID, item.ItemDescription, item.Quantity, item.UnitPrice},
			"result", item.ID,
			"error", err,
		)
		if err != nil {
			return nil, err
		}
	}

	if ownTx {
		if err := runner.Commit(); err != nil {
			return nil, err
		}
		ownTx = false
	}

	return &txn, nil
}

// TransactionReadRepository handles ledger read operations.
type TransactionReadRepository struct {
	db *sqlx.DB
}

func NewTransactionReadRepository(db *sqlx.DB) *TransactionReadRepository {
	return &TransactionReadRepository{db: db}
}

const getTransactionQuery = `
	SELECT id, customer_name, contact, description, total_amount, amount_paid, balance, created_at, transaction_date
	FROM transactions
	WHERE id = $1
`

const listTransactionsQuery = `
	SELECT id, customer_name, contact, description, total_amount, amount_paid, balance, created_at, transaction_date
	FROM transactions
	WHERE ($1::DATE IS NULL OR transaction_date = $1)
	  AND ($2::VARCHAR IS NULL OR customer_name ILIKE '%' || $2 || '%')
	ORDER BY created_at DESC
	LIMIT $3
`

const listLineItemsQuery = `
	SELECT id, transaction_id, item_description, quantity, unit_price, line_total
	FROM line_items
	WHERE transaction_id IN (?)
	ORDER BY transaction_id, id
`

const summarizeQuery = `
	SELECT COALESCE(SUM(total_amount), 0) AS daily_total,
	       COALESCE(SUM(amount_paid), 0) AS daily_paid
	FROM transactions
	WHERE transaction_date = $1
`

// GetByID returns a transaction with its line items, or nil when no row exists.
func (r *TransactionReadRepository) GetByID(ctx context.Context, id int64) (*models.Transaction, error) {
	var txn models.Transaction
	err := r.db.GetContext(ctx, &txn, getTransactionQuery, id)

	logger.Log.Infow("query executed",
		"query", collapse(getTransactionQuery),
		"args", []any{id},
		"error", err,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	items, err := r.loadItems(ctx, []int64{txn.ID})
	if err != nil {
		return nil, err
	}
	txn.Items = items[txn.ID]

	return &txn, nil
}

// List returns transactions most-recently-created first, capped at limit.
// filterDate restricts rows to a single transaction_date; customer restricts
// to names containing the given substring, case-insensitively.
func (r *TransactionReadRepository) List(ctx context.Context, filterDate *models.Date, customer *string, limit int) ([]models.Transaction, error) {
	var dateArg, customerArg any
	if filterDate != nil {
		dateArg = filterDate.Time()
	}
	if customer != nil {
		customerArg = *customer
	}

	var txns []models.Transaction
	err := r.db.SelectContext(ctx, &txns, listTransactionsQuery, dateArg, customerArg, limit)

	logger.Log.Infow("query executed",
		"query", collapse(listTransactionsQuery),
		"args", []any{dateArg, customerArg, limit},
		"result", len(txns),
		"error", err,
	)
	if err != nil {
		return nil, err
	}
	if len(txns) == 0 {
		return txns, nil
	}

	ids := make([]int64, len(txns))
	for i, txn := range txns {
		ids[i] = txn.ID
	}
	items, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range txns {
		txns[i].Items = items[txns[i].ID]
	}

	return txns, nil
}

// SummarizeByDate returns the sums of total_amount and amount_paid over all
// transactions dated on the given day. No matching rows yields (0.00, 0.00).
func (r *TransactionReadRepository) SummarizeByDate(ctx context.Context, date models.Date) (models.DailySummary, error) {
	var summary models.DailySummary
	err := r.db.GetContext(ctx, &summary, summarizeQuery, date.Time())

	logger.Log.Infow("query executed",
		"query", collapse(summarizeQuery),
		"args", []any{date},
		"result", summary,
		"error", err,
	)
	if err != nil {
		return models.DailySummary{}, err
	}
	return summary, nil
}

// loadItems fetches line items for the given transaction ids, grouped by
// transaction and ordered by insertion (id ascending).
func (r *TransactionReadRepository) loadItems(ctx context.Context, ids []int64) (map[int64][]models.LineItem, error) {
	query, args, err := sqlx.In(listLineItemsQuery, ids)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	var items []models.LineItem
	err = r.db.SelectContext(ctx, &items, query, args...)

	logger.Log.Infow("query executed",
		"query", collapse(listLineItemsQuery),
		"args", []any{ids},
		"result", len(items),
		"error", err,
	)
	if err != nil {
		return nil, err
	}

	grouped := make(map[int64][]models.LineItem, len(ids))
	for _, item := range items {
		grouped[item.TransactionID] = append(grouped[item.TransactionID], item)
	}
	return grouped, nil
}

func collapse(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
