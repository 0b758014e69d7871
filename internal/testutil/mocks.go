package testutil

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/lucasferreira/fintrack/internal/domain/analytics"
	domainErrors "github.com/lucasferreira/fintrack/internal/domain/errors"
	"github.com/lucasferreira/fintrack/internal/domain/goal"
	"github.com/lucasferreira/fintrack/internal/domain/transaction"
)

// --- Transaction Repository Mock ---

// MockTransactionRepository is an in-memory implementation of
// transaction.Repository. It mirrors the storage contracts exactly
// (ordering, filter composition, idempotent delete) so service and
// controller tests exercise real semantics.
type MockTransactionRepository struct {
	mu           sync.Mutex
	transactions map[int64]*transaction.Transaction
	nextID       int64

	CreateFunc  func(ctx context.Context, tx *transaction.Transaction) error
	GetByIDFunc func(ctx context.Context, id int64) (*transaction.Transaction, error)
	UpdateFunc  func(ctx context.Context, tx *transaction.Transaction) error
	DeleteFunc  func(ctx context.Context, id int64) error
	ListFunc    func(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error)
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{
		transactions: make(map[int64]*transaction.Transaction),
	}
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx *transaction.Transaction) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if !tx.Type.IsValid() {
		return domainErrors.ErrInvalidTransactionType
	}
	m.nextID++
	tx.ID = m.nextID
	tx.CreatedAt = time.Now().UTC()
	cp := *tx
	m.transactions[tx.ID] = &cp
	return nil
}

func (m *MockTransactionRepository) GetByID(ctx context.Context, id int64) (*transaction.Transaction, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	tx, ok := m.transactions[id]
	if !ok {
		return nil, domainErrors.ErrTransactionNotFound
	}
	cp := *tx
	return &cp, nil
}

func (m *MockTransactionRepository) Update(ctx context.Context, tx *transaction.Transaction) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, tx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.transactions[tx.ID]
	if !ok {
		return domainErrors.ErrTransactionNotFound
	}
	if !tx.Type.IsValid() {
		return domainErrors.ErrInvalidTransactionType
	}
	cp := *tx
	cp.CreatedAt = existing.CreatedAt
	m.transactions[tx.ID] = &cp
	return nil
}

func (m *MockTransactionRepository) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.transactions, id)
	return nil
}

func (m *MockTransactionRepository) List(ctx context.Context, f transaction.ListFilter) ([]*transaction.Transaction, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, f)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]*transaction.Transaction, 0, len(m.transactions))
	for _, tx := range m.transactions {
		if f.Type != nil && tx.Type != *f.Type {
			continue
		}
		if f.Category != nil && tx.Category != *f.Category {
			continue
		}
		if f.StartDate != nil && tx.Date < *f.StartDate {
			continue
		}
		if f.EndDate != nil && tx.Date > *f.EndDate {
			continue
		}
		cp := *tx
		result = append(result, &cp)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date > result[j].Date
		}
		return result[i].ID > result[j].ID
	})

	limit := f.Limit
	if limit <= 0 {
		limit = transaction.DefaultListLimit
	}
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// All returns every stored transaction (test helper, no ordering).
func (m *MockTransactionRepository) All() []*transaction.Transaction {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*transaction.Transaction, 0, len(m.transactions))
	for _, tx := range m.transactions {
		cp := *tx
		out = append(out, &cp)
	}
	return out
}

// --- Goal Repository Mock ---

// MockGoalRepository is an in-memory implementation of goal.Repository.
type MockGoalRepository struct {
	mu     sync.Mutex
	goals  map[int64]*goal.Goal
	nextID int64

	CreateFunc            func(ctx context.Context, g *goal.Goal) error
	GetByIDFunc           func(ctx context.Context, id int64) (*goal.Goal, error)
	UpdateFunc            func(ctx context.Context, g *goal.Goal) error
	DeleteFunc            func(ctx context.Context, id int64) error
	ListFunc              func(ctx context.Context) ([]*goal.Goal, error)
	ApplyContributionFunc func(ctx context.Context, id int64, deltaCents int64) (*goal.Goal, error)
}

func NewMockGoalRepository() *MockGoalRepository {
	return &MockGoalRepository{
		goals: make(map[int64]*goal.Goal),
	}
}

func (m *MockGoalRepository) Create(ctx context.Context, g *goal.Goal) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, g)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	g.ID = m.nextID
	g.CreatedAt = time.Now().UTC()
	cp := *g
	m.goals[g.ID] = &cp
	return nil
}

func (m *MockGoalRepository) GetByID(ctx context.Context, id int64) (*goal.Goal, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.goals[id]
	if !ok {
		return nil, domainErrors.ErrGoalNotFound
	}
	cp := *g
	return &cp, nil
}

func (m *MockGoalRepository) Update(ctx context.Context, g *goal.Goal) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, g)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.goals[g.ID]
	if !ok {
		return domainErrors.ErrGoalNotFound
	}
	cp := *g
	cp.CreatedAt = existing.CreatedAt
	m.goals[g.ID] = &cp
	return nil
}

func (m *MockGoalRepository) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.goals, id)
	return nil
}

func (m *MockGoalRepository) List(ctx context.Context) ([]*goal.Goal, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]*goal.Goal, 0, len(m.goals))
	for _, g := range m.goals {
		cp := *g
		result = append(result, &cp)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})
	return result, nil
}

func (m *MockGoalRepository) ApplyContribution(ctx context.Context, id int64, deltaCents int64) (*goal.Goal, error) {
	if m.ApplyContributionFunc != nil {
		return m.ApplyContributionFunc(ctx, id, deltaCents)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.goals[id]
	if !ok {
		return nil, domainErrors.ErrGoalNotFound
	}
	g.CurrentAmountCents += deltaCents
	cp := *g
	return &cp, nil
}

// --- Analytics Queries Mock ---

// MockAnalyticsQueries implements analytics.Queries by aggregating over a
// MockTransactionRepository's data in Go, mirroring the grouped SQL
// semantics (closed date intervals, total-desc/category-asc ordering,
// months with no data absent from the trend).
type MockAnalyticsQueries struct {
	Transactions *MockTransactionRepository

	// Now is the query-time clock for the monthly trend window.
	// Defaults to time.Now.
	Now func() time.Time
}

func NewMockAnalyticsQueries(transactions *MockTransactionRepository) *MockAnalyticsQueries {
	return &MockAnalyticsQueries{Transactions: transactions}
}

func (m *MockAnalyticsQueries) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}

func inRange(date string, r analytics.DateRange) bool {
	if r.Start != nil && date < *r.Start {
		return false
	}
	if r.End != nil && date > *r.End {
		return false
	}
	return true
}

func (m *MockAnalyticsQueries) Summary(ctx context.Context, r analytics.DateRange) (*analytics.Summary, error) {
	sum := &analytics.Summary{}
	for _, tx := range m.Transactions.All() {
		if !inRange(tx.Date, r) {
			continue
		}
		switch tx.Type {
		case transaction.TypeIncome:
			sum.TotalIncomeCents += tx.AmountCents
		case transaction.TypeExpense:
			sum.TotalExpensesCents += tx.AmountCents
		}
	}
	sum.NetSavingsCents = sum.TotalIncomeCents - sum.TotalExpensesCents
	return sum, nil
}

func (m *MockAnalyticsQueries) CategoryBreakdown(ctx context.Context, t transaction.Type, r analytics.DateRange) ([]*analytics.CategoryTotal, error) {
	byCategory := make(map[string]*analytics.CategoryTotal)
	for _, tx := range m.Transactions.All() {
		if tx.Type != t || !inRange(tx.Date, r) {
			continue
		}
		ct, ok := byCategory[tx.Category]
		if !ok {
			ct = &analytics.CategoryTotal{Category: tx.Category}
			byCategory[tx.Category] = ct
		}
		ct.TotalCents += tx.AmountCents
		ct.Count++
	}

	result := make([]*analytics.CategoryTotal, 0, len(byCategory))
	for _, ct := range byCategory {
		result = append(result, ct)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].TotalCents != result[j].TotalCents {
			return result[i].TotalCents > result[j].TotalCents
		}
		return strings.Compare(result[i].Category, result[j].Category) < 0
	})
	return result, nil
}

func (m *MockAnalyticsQueries) MonthlyTrend(ctx context.Context, monthsBack int) ([]*analytics.MonthlyPoint, error) {
	if monthsBack <= 0 {
		monthsBack = analytics.DefaultMonthsBack
	}
	cutoff := m.now().AddDate(0, -monthsBack, 0).Format(transaction.DateLayout)

	byMonth := make(map[string]*analytics.MonthlyPoint)
	for _, tx := range m.Transactions.All() {
		if tx.Date < cutoff {
			continue
		}
		month := tx.Date[:7]
		mp, ok := byMonth[month]
		if !ok {
			mp = &analytics.MonthlyPoint{Month: month}
			byMonth[month] = mp
		}
		switch tx.Type {
		case transaction.TypeIncome:
			mp.IncomeCents += tx.AmountCents
		case transaction.TypeExpense:
			mp.ExpensesCents += tx.AmountCents
		}
	}

	result := make([]*analytics.MonthlyPoint, 0, len(byMonth))
	for _, mp := range byMonth {
		result = append(result, mp)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Month < result[j].Month
	})
	return result, nil
}
