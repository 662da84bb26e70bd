package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/salayglass/ledger/internal/logger"
	"github.com/salayglass/ledger/internal/models"
	"github.com/salayglass/ledger/internal/money"
	"github.com/segmentio/kafka-go"
)

// Error variables
var (
	ErrMissingCustomer     = errors.New("customer name is required")
	ErrMissingDescription  = errors.New("job description is required")
	ErrNoValidItems        = errors.New("no valid line items")
	ErrTransactionNotFound = errors.New("transaction not found")
)

// DefaultListLimit caps the list endpoint when the caller supplies no limit.
const DefaultListLimit = 50

// TransactionWriter defines write operations on the ledger store.
type TransactionWriter interface {
	Save(ctx context.Context, txn models.Transaction) (*models.Transaction, error)
}

// TransactionReader defines read operations on the ledger store.
type TransactionReader interface {
	GetByID(ctx context.Context, id int64) (*models.Transaction, error)
	List(ctx context.Context, filterDate *models.Date, customer *string, limit int) ([]models.Transaction, error)
	SummarizeByDate(ctx context.Context, date models.Date) (models.DailySummary, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// LedgerService validates and builds transactions, persists them through the
// store, and serves the list/summary read path.
type LedgerService struct {
	writer      TransactionWriter
	reader      TransactionReader
	kafkaWriter KafkaWriter
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(writer TransactionWriter, reader TransactionReader, kafkaWriter KafkaWriter) *LedgerService {
	return &LedgerService{
		writer:      writer,
		reader:      reader,
		kafkaWriter: kafkaWriter,
	}
}

// Create validates the input, derives totals, and persists the transaction
// with its line items atomically. Checks run in order: customer name, job
// description, then surviving line items; the first failure wins.
func (s *LedgerService) Create(ctx context.Context, in models.CreateTransactionInput) (*models.Transaction, error) {
	customer := strings.TrimSpace(in.CustomerName)
	if customer == "" {
		return nil, ErrMissingCustomer
	}

	description := strings.TrimSpace(in.Description)
	if description == "" {
		return nil, ErrMissingDescription
	}

	items := buildLineItems(in.Items)
	if len(items) == 0 {
		return nil, ErrNoValidItems
	}

	total := money.Zero()
	for _, item := range items {
		total = total.Add(item.LineTotal)
	}

	amountPaid := amountPaidOrZero(in.AmountPaid)

	// Overpayment is allowed: the balance simply goes negative.
	txn := models.Transaction{
		CustomerName:    customer,
		Contact:         strings.TrimSpace(in.Contact),
		Description:     description,
		TotalAmount:     total,
		AmountPaid:      amountPaid,
		Balance:         total.Sub(amountPaid),
		TransactionDate: transactionDateOrToday(in.TransactionDate),
		Items:           items,
	}

	persisted, err := s.writer.Save(ctx, txn)
	if err != nil {
		logger.Log.Errorw("failed to save transaction", "customer", customer, "error", err)
		return nil, fmt.Errorf("save transaction: %w", err)
	}

	s.publishCreated(ctx, persisted)

	return persisted, nil
}

// Get returns a transaction by id, or ErrTransactionNotFound.
func (s *LedgerService) Get(ctx context.Context, id int64) (*models.Transaction, error) {
	txn, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get transaction", "id", id, "error", err)
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	if txn == nil {
		return nil, ErrTransactionNotFound
	}
	return txn, nil
}

// List returns recent transactions plus the daily summary. A malformed
// rawDate behaves exactly like no filter. The summary is always computed for
// the filter date, or today when there is none, regardless of which dates
// appear in the returned page.
func (s *LedgerService) List(ctx context.Context, rawDate, customer string, limit int) (*models.TransactionList, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	var filterDate *models.Date
	if raw := strings.TrimSpace(rawDate); raw != "" {
		if d, err := models.ParseDate(raw); err == nil {
			filterDate = &d
		} else {
			logger.Log.Warnw("ignoring malformed date filter", "date", raw)
		}
	}

	var customerFilter *string
	if c := strings.TrimSpace(customer); c != "" {
		customerFilter = &c
	}

	txns, err := s.reader.List(ctx, filterDate, customerFilter, limit)
	if err != nil {
		logger.Log.Errorw("failed to list transactions", "error", err)
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	if txns == nil {
		txns = []models.Transaction{}
	}

	summaryDate := models.Today()
	if filterDate != nil {
		summaryDate = *filterDate
	}

	summary, err := s.reader.SummarizeByDate(ctx, summaryDate)
	if err != nil {
		logger.Log.Errorw("failed to summarize transactions", "date", summaryDate, "error", err)
		return nil, fmt.Errorf("summarize transactions: %w", err)
	}

	return &models.TransactionList{
		Date:         summaryDate,
		DailyTotal:   summary.Total,
		DailyPaid:    summary.Paid,
		Transactions: txns,
	}, nil
}

// publishCreated publishes a created-transaction event to Kafka. Publishing is
// best-effort and never fails the request.
func (s *LedgerService) publishCreated(ctx context.Context, txn *models.Transaction) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "transaction_id", txn.ID)
		return
	}

	event := models.TransactionEvent{
		TransactionID:   txn.ID,
		CustomerName:    txn.CustomerName,
		TotalAmount:     txn.TotalAmount.String(),
		AmountPaid:      txn.AmountPaid.String(),
		Balance:         txn.Balance.String(),
		TransactionDate: txn.TransactionDate.String(),
		Timestamp:       time.Now().Unix(),
		Operation:       "create",
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal transaction event", "transaction_id", txn.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(txn.ID, 10)),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish transaction event", "transaction_id", txn.ID, "error", err)
	} else {
		logger.Log.Infow("transaction event published", "transaction_id", txn.ID, "total", event.TotalAmount)
	}
}

// transactionDateOrToday parses the optional transaction date, falling back to
// today when the field is absent or unparsable.
func transactionDateOrToday(raw string) models.Date {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return models.Today()
	}
	d, err := models.ParseDate(raw)
	if err != nil {
		logger.Log.Warnw("ignoring malformed transaction date", "date", raw)
		return models.Today()
	}
	return d
}
