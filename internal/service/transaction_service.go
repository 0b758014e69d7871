package service

import (
	"context"

	"github.com/lucasferreira/fintrack/internal/domain/transaction"
	"github.com/lucasferreira/fintrack/internal/infrastructure/observability"
)

// TransactionService coordinates transaction CRUD. It owns no state beyond
// its ports; every call is a self-contained unit of work.
type TransactionService struct {
	repo    transaction.Repository
	metrics *observability.Metrics
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(repo transaction.Repository, metrics *observability.Metrics) *TransactionService {
	return &TransactionService{repo: repo, metrics: metrics}
}

// Create persists a new transaction and returns the fully materialized
// row including generated ID and creation timestamp.
func (s *TransactionService) Create(ctx context.Context, req CreateTransactionRequest) (*transaction.Transaction, error) {
	tx, err := transaction.New(req.Type, req.AmountCents, req.Category, req.Description, req.Date)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, tx); err != nil {
		return nil, err
	}
	s.metrics.TransactionsTotal.WithLabelValues("create", string(tx.Type)).Inc()
	return tx, nil
}

// Update fully replaces the transaction and returns the canonical row
// read back from storage. A missing ID surfaces as ErrTransactionNotFound.
func (s *TransactionService) Update(ctx context.Context, id int64, req UpdateTransactionRequest) (*transaction.Transaction, error) {
	tx, err := transaction.New(req.Type, req.AmountCents, req.Category, req.Description, req.Date)
	if err != nil {
		return nil, err
	}
	tx.ID = id
	if err := s.repo.Update(ctx, tx); err != nil {
		return nil, err
	}
	s.metrics.TransactionsTotal.WithLabelValues("update", string(tx.Type)).Inc()
	return s.repo.GetByID(ctx, id)
}

// Delete removes a transaction. Deleting an absent ID is a no-op, so the
// operation is idempotent.
func (s *TransactionService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.metrics.TransactionsTotal.WithLabelValues("delete", "").Inc()
	return nil
}

// List returns transactions matching the conjunctive filters, most recent
// date first. Unrecognized filter values yield an empty or unfiltered
// result rather than an error.
func (s *TransactionService) List(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
	if filter.Limit <= 0 {
		filter.Limit = transaction.DefaultListLimit
	}
	return s.repo.List(ctx, filter)
}
