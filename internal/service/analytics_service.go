package service

import (
	"context"
	"time"

	"github.com/lucasferreira/fintrack/internal/domain/analytics"
	"github.com/lucasferreira/fintrack/internal/domain/transaction"
	"github.com/lucasferreira/fintrack/internal/infrastructure/observability"
)

// AnalyticsService exposes the three derived read-only views. Every call
// recomputes from live storage; no results are cached.
type AnalyticsService struct {
	queries analytics.Queries
	metrics *observability.Metrics
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(queries analytics.Queries, metrics *observability.Metrics) *AnalyticsService {
	return &AnalyticsService{queries: queries, metrics: metrics}
}

func (s *AnalyticsService) observe(view string, start time.Time) {
	s.metrics.AnalyticsQueries.WithLabelValues(view).Inc()
	s.metrics.AnalyticsQueryDuration.WithLabelValues(view).Observe(time.Since(start).Seconds())
}

// Summary returns income/expense totals and net savings over the range.
// Net savings is recomputed here so the identity
// netSavings == totalIncome - totalExpenses holds exactly regardless of
// the query implementation.
func (s *AnalyticsService) Summary(ctx context.Context, r analytics.DateRange) (*analytics.Summary, error) {
	defer s.observe("summary", time.Now())
	sum, err := s.queries.Summary(ctx, r)
	if err != nil {
		return nil, err
	}
	sum.NetSavingsCents = sum.TotalIncomeCents - sum.TotalExpensesCents
	return sum, nil
}

// CategoryBreakdown returns per-category totals for the given type,
// defaulting to expense. An unrecognized type yields an empty sequence.
func (s *AnalyticsService) CategoryBreakdown(ctx context.Context, t transaction.Type, r analytics.DateRange) ([]*analytics.CategoryTotal, error) {
	defer s.observe("by_category", time.Now())
	if t == "" {
		t = transaction.TypeExpense
	}
	return s.queries.CategoryBreakdown(ctx, t, r)
}

// MonthlyTrend returns per-month totals over the trailing monthsBack
// window, defaulting to six months.
func (s *AnalyticsService) MonthlyTrend(ctx context.Context, monthsBack int) ([]*analytics.MonthlyPoint, error) {
	defer s.observe("monthly", time.Now())
	if monthsBack <= 0 {
		monthsBack = analytics.DefaultMonthsBack
	}
	return s.queries.MonthlyTrend(ctx, monthsBack)
}
