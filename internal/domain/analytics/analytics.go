package analytics

import (
	"context"

	"github.com/lucasferreira/fintrack/internal/domain/transaction"
)

// DefaultMonthsBack is the trailing window used by MonthlyTrend when the
// caller does not specify one.
const DefaultMonthsBack = 6

// DateRange restricts a query to a closed [Start, End] interval on the
// transaction date. Either bound may be nil.
type DateRange struct {
	Start *string // inclusive, transaction.DateLayout
	End   *string // inclusive, transaction.DateLayout
}

// Summary holds aggregate totals over the filtered transaction set.
type Summary struct {
	TotalIncomeCents   int64
	TotalExpensesCents int64
	NetSavingsCents    int64 // TotalIncome - TotalExpenses, exactly
}

// CategoryTotal is one row of a per-category breakdown.
type CategoryTotal struct {
	Category   string
	TotalCents int64
	Count      int64
}

// MonthlyPoint is one calendar month's income and expense totals.
type MonthlyPoint struct {
	Month         string // YYYY-MM
	IncomeCents   int64
	ExpensesCents int64
}

// Queries defines the read-only aggregate views derived from the
// transaction table. None of these mutate storage; every call recomputes
// from the live table.
type Queries interface {
	// Summary sums income and expenses over the range. An empty range
	// yields all zeros, not an error.
	Summary(ctx context.Context, r DateRange) (*Summary, error)

	// CategoryBreakdown returns one row per distinct category among
	// transactions of the given type in range, ordered by total
	// descending; ties break by category label ascending so results are
	// deterministic for a fixed dataset.
	CategoryBreakdown(ctx context.Context, t transaction.Type, r DateRange) ([]*CategoryTotal, error)

	// MonthlyTrend returns per-month totals for months with at least one
	// transaction in the trailing monthsBack window, ascending by month.
	// Months without data are not zero-filled.
	MonthlyTrend(ctx context.Context, monthsBack int) ([]*MonthlyPoint, error)
}
