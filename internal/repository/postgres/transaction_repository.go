package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	domainErrors "github.com/lucasferreira/fintrack/internal/domain/errors"
	"github.com/lucasferreira/fintrack/internal/domain/transaction"
)

// pgCheckViolation is the SQLSTATE for a CHECK constraint failure, raised
// when a write carries a type outside {income, expense}.
const pgCheckViolation = "23514"

// TransactionRepository implements transaction.Repository using PostgreSQL.
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// Create inserts a new transaction and fills in the generated ID and
// creation timestamp.
func (r *TransactionRepository) Create(ctx context.Context, tx *transaction.Transaction) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO transactions (type, amount, category, description, date)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		string(tx.Type), centsToNumericString(tx.AmountCents), tx.Category, tx.Description, tx.Date,
	).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgCheckViolation {
			return domainErrors.ErrInvalidTransactionType
		}
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID retrieves a transaction by its ID.
func (r *TransactionRepository) GetByID(ctx context.Context, id int64) (*transaction.Transaction, error) {
	return r.scanTransaction(r.pool.QueryRow(ctx,
		`SELECT id, type, amount, category, description, date, created_at
		 FROM transactions WHERE id = $1`, id))
}

// Update fully replaces a transaction by ID.
func (r *TransactionRepository) Update(ctx context.Context, tx *transaction.Transaction) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE transactions
		 SET type = $1, amount = $2, category = $3, description = $4, date = $5
		 WHERE id = $6`,
		string(tx.Type), centsToNumericString(tx.AmountCents), tx.Category, tx.Description, tx.Date, tx.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgCheckViolation {
			return domainErrors.ErrInvalidTransactionType
		}
		return fmt.Errorf("update transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrTransactionNotFound
	}
	return nil
}

// Delete removes a transaction. Deleting an absent ID affects zero rows
// and is not an error.
func (r *TransactionRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}

// List lists transactions with optional conjunctive filters, ordered by
// date descending with ID descending as tie-break.
func (r *TransactionRepository) List(ctx context.Context, f transaction.ListFilter) ([]*transaction.Transaction, error) {
	query := `SELECT id, type, amount, category, description, date, created_at
		 FROM transactions WHERE 1=1`
	args := []any{}
	argIdx := 1

	if f.Type != nil {
		query += fmt.Sprintf(" AND type = $%d", argIdx)
		args = append(args, string(*f.Type))
		argIdx++
	}
	if f.Category != nil {
		query += fmt.Sprintf(" AND category = $%d", argIdx)
		args = append(args, *f.Category)
		argIdx++
	}
	if f.StartDate != nil {
		query += fmt.Sprintf(" AND date >= $%d", argIdx)
		args = append(args, *f.StartDate)
		argIdx++
	}
	if f.EndDate != nil {
		query += fmt.Sprintf(" AND date <= $%d", argIdx)
		args = append(args, *f.EndDate)
		argIdx++
	}

	limit := f.Limit
	if limit <= 0 {
		limit = transaction.DefaultListLimit
	}
	query += fmt.Sprintf(" ORDER BY date DESC, id DESC LIMIT $%d", argIdx)
	args = append(args, limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*transaction.Transaction
	for rows.Next() {
		tx, err := r.scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	return transactions, rows.Err()
}

// scanTransaction scans a transaction from any source implementing the
// scanner interface.
func (r *TransactionRepository) scanTransaction(s scanner) (*transaction.Transaction, error) {
	tx := &transaction.Transaction{}
	var (
		txType    string
		amountStr string
		date      time.Time
	)
	err := s.Scan(&tx.ID, &txType, &amountStr, &tx.Category, &tx.Description, &date, &tx.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domainErrors.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("scan transaction: %w", err)
	}

	cents, err := numericStringToCents(amountStr)
	if err != nil {
		return nil, fmt.Errorf("parse amount: %w", err)
	}
	tx.AmountCents = cents
	tx.Type = transaction.Type(txType)
	tx.Date = date.Format(transaction.DateLayout)
	return tx, nil
}
