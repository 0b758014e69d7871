package goal

import (
	"time"

	domainErrors "github.com/lucasferreira/fintrack/internal/domain/errors"
	"github.com/lucasferreira/fintrack/internal/domain/transaction"
)

// DefaultColor is the display color assigned when a goal is created
// without one.
const DefaultColor = "#6366f1"

// Goal is a named savings target with progress tracking. CurrentAmount may
// exceed TargetAmount; over-funding means "exceeded", not an error.
type Goal struct {
	ID                 int64
	Name               string
	TargetAmountCents  int64
	CurrentAmountCents int64
	Deadline           *string // optional, transaction.DateLayout
	Color              string
	CreatedAt          time.Time
}

// New builds a goal ready for insertion, applying the current-amount and
// color defaults. ID and CreatedAt are assigned by storage.
func New(name string, targetCents, currentCents int64, deadline *string, color string) (*Goal, error) {
	if deadline != nil {
		if _, err := time.Parse(transaction.DateLayout, *deadline); err != nil {
			return nil, domainErrors.NewValidationError("deadline", "must be a YYYY-MM-DD calendar date")
		}
	}
	if color == "" {
		color = DefaultColor
	}
	return &Goal{
		Name:               name,
		TargetAmountCents:  targetCents,
		CurrentAmountCents: currentCents,
		Deadline:           deadline,
		Color:              color,
	}, nil
}
