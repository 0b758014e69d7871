package transaction

import (
	"context"
)

// DefaultListLimit caps List results when the caller does not ask for a limit.
const DefaultListLimit = 100

// Repository defines the interface for transaction persistence
type Repository interface {
	// Create inserts a new transaction and fills in ID and CreatedAt
	Create(ctx context.Context, tx *Transaction) error

	// GetByID retrieves a transaction by ID
	GetByID(ctx context.Context, id int64) (*Transaction, error)

	// Update fully replaces a transaction by ID
	Update(ctx context.Context, tx *Transaction) error

	// Delete removes a transaction; deleting an absent ID is not an error
	Delete(ctx context.Context, id int64) error

	// List lists transactions with filters, most recent date first
	List(ctx context.Context, filter ListFilter) ([]*Transaction, error)
}

// ListFilter defines optional, conjunctive filters for listing transactions.
type ListFilter struct {
	Type      *Type
	Category  *string
	StartDate *string // inclusive, DateLayout
	EndDate   *string // inclusive, DateLayout
	Limit     int
}
