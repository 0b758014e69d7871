package transaction

import (
	"time"

	domainErrors "github.com/lucasferreira/fintrack/internal/domain/errors"
)

// Type distinguishes money coming in from money going out.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// IsValid reports whether t is one of the two supported types.
func (t Type) IsValid() bool {
	return t == TypeIncome || t == TypeExpense
}

// DateLayout is the calendar-date format used for Transaction.Date.
// The date records when the money moved, not when the row was created.
const DateLayout = "2006-01-02"

// Transaction is a single dated money movement.
type Transaction struct {
	ID          int64
	Type        Type
	AmountCents int64 // stored as NUMERIC(14,2), carried as cents internally
	Category    string
	Description *string
	Date        string // DateLayout
	CreatedAt   time.Time
}

// New builds a transaction ready for insertion. ID and CreatedAt are
// assigned by storage.
func New(txType Type, amountCents int64, category string, description *string, date string) (*Transaction, error) {
	if !txType.IsValid() {
		return nil, domainErrors.ErrInvalidTransactionType
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return nil, domainErrors.NewValidationError("date", "must be a YYYY-MM-DD calendar date")
	}
	return &Transaction{
		Type:        txType,
		AmountCents: amountCents,
		Category:    category,
		Description: description,
		Date:        date,
	}, nil
}
