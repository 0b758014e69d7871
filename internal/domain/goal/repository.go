package goal

import (
	"context"
)

// Repository defines the interface for goal persistence
type Repository interface {
	// Create inserts a new goal and fills in ID and CreatedAt
	Create(ctx context.Context, g *Goal) error

	// GetByID retrieves a goal by ID
	GetByID(ctx context.Context, id int64) (*Goal, error)

	// Update fully replaces a goal by ID
	Update(ctx context.Context, g *Goal) error

	// Delete removes a goal; deleting an absent ID is not an error
	Delete(ctx context.Context, id int64) error

	// List lists all goals, newest first
	List(ctx context.Context) ([]*Goal, error)

	// ApplyContribution atomically adds deltaCents to the goal's current
	// amount and returns the updated row. Concurrent contributions to the
	// same goal must not lose updates.
	ApplyContribution(ctx context.Context, id int64, deltaCents int64) (*Goal, error)
}
