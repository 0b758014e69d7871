package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lucasferreira/fintrack/internal/domain/analytics"
	"github.com/lucasferreira/fintrack/internal/domain/transaction"
)

// AnalyticsRepository implements analytics.Queries using grouped SQL
// aggregation over the transactions table. Every call recomputes from the
// live table; nothing is cached and nothing is mutated.
type AnalyticsRepository struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository creates a new AnalyticsRepository.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepository {
	return &AnalyticsRepository{pool: pool}
}

// dateRangeClause appends conjunctive date bounds to query, returning the
// extended query, args, and next placeholder index.
func dateRangeClause(query string, args []any, argIdx int, r analytics.DateRange) (string, []any, int) {
	if r.Start != nil {
		query += fmt.Sprintf(" AND date >= $%d", argIdx)
		args = append(args, *r.Start)
		argIdx++
	}
	if r.End != nil {
		query += fmt.Sprintf(" AND date <= $%d", argIdx)
		args = append(args, *r.End)
		argIdx++
	}
	return query, args, argIdx
}

// Summary sums income and expenses over the range in a single grouped
// pass. An empty range yields zeros.
func (r *AnalyticsRepository) Summary(ctx context.Context, dr analytics.DateRange) (*analytics.Summary, error) {
	query := `SELECT
		COALESCE(SUM(amount) FILTER (WHERE type = 'income'), 0),
		COALESCE(SUM(amount) FILTER (WHERE type = 'expense'), 0)
	 FROM transactions WHERE 1=1`
	args := []any{}
	query, args, _ = dateRangeClause(query, args, 1, dr)

	var incomeStr, expensesStr string
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&incomeStr, &expensesStr); err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}

	income, err := numericStringToCents(incomeStr)
	if err != nil {
		return nil, fmt.Errorf("parse income total: %w", err)
	}
	expenses, err := numericStringToCents(expensesStr)
	if err != nil {
		return nil, fmt.Errorf("parse expense total: %w", err)
	}

	return &analytics.Summary{
		TotalIncomeCents:   income,
		TotalExpensesCents: expenses,
		NetSavingsCents:    income - expenses,
	}, nil
}

// CategoryBreakdown groups transactions of the given type by category.
// Ordering is total descending with category ascending as tie-break, so
// the result is deterministic for a fixed dataset.
func (r *AnalyticsRepository) CategoryBreakdown(ctx context.Context, t transaction.Type, dr analytics.DateRange) ([]*analytics.CategoryTotal, error) {
	query := `SELECT category, SUM(amount) AS total, COUNT(*) AS count
	 FROM transactions WHERE type = $1`
	args := []any{string(t)}
	query, args, _ = dateRangeClause(query, args, 2, dr)
	query += ` GROUP BY category ORDER BY total DESC, category ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("category breakdown: %w", err)
	}
	defer rows.Close()

	var breakdown []*analytics.CategoryTotal
	for rows.Next() {
		ct := &analytics.CategoryTotal{}
		var totalStr string
		if err := rows.Scan(&ct.Category, &totalStr, &ct.Count); err != nil {
			return nil, fmt.Errorf("scan category total: %w", err)
		}
		cents, err := numericStringToCents(totalStr)
		if err != nil {
			return nil, fmt.Errorf("parse category total: %w", err)
		}
		ct.TotalCents = cents
		breakdown = append(breakdown, ct)
	}
	return breakdown, rows.Err()
}

// MonthlyTrend aggregates per calendar month over the trailing monthsBack
// window, ascending by month. Only months with data produce rows.
func (r *AnalyticsRepository) MonthlyTrend(ctx context.Context, monthsBack int) ([]*analytics.MonthlyPoint, error) {
	if monthsBack <= 0 {
		monthsBack = analytics.DefaultMonthsBack
	}

	rows, err := r.pool.Query(ctx,
		`SELECT to_char(date, 'YYYY-MM') AS month,
			COALESCE(SUM(amount) FILTER (WHERE type = 'income'), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = 'expense'), 0)
		 FROM transactions
		 WHERE date >= CURRENT_DATE - make_interval(months => $1)
		 GROUP BY month
		 ORDER BY month ASC`, monthsBack)
	if err != nil {
		return nil, fmt.Errorf("monthly trend: %w", err)
	}
	defer rows.Close()

	var trend []*analytics.MonthlyPoint
	for rows.Next() {
		mp := &analytics.MonthlyPoint{}
		var incomeStr, expensesStr string
		if err := rows.Scan(&mp.Month, &incomeStr, &expensesStr); err != nil {
			return nil, fmt.Errorf("scan monthly point: %w", err)
		}
		income, err := numericStringToCents(incomeStr)
		if err != nil {
			return nil, fmt.Errorf("parse monthly income: %w", err)
		}
		expenses, err := numericStringToCents(expensesStr)
		if err != nil {
			return nil, fmt.Errorf("parse monthly expenses: %w", err)
		}
		mp.IncomeCents = income
		mp.ExpensesCents = expenses
		trend = append(trend, mp)
	}
	return trend, rows.Err()
}
