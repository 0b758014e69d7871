package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	domainErrors "github.com/lucasferreira/fintrack/internal/domain/errors"
	"github.com/lucasferreira/fintrack/internal/domain/transaction"
	"github.com/lucasferreira/fintrack/internal/infrastructure/observability"
	"github.com/lucasferreira/fintrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Test Helpers ---

func newTestMetrics() *observability.Metrics {
	return observability.NewMetrics("test", prometheus.NewRegistry())
}

func setupTransactionService() (*TransactionService, *testutil.MockTransactionRepository) {
	repo := testutil.NewMockTransactionRepository()
	svc := NewTransactionService(repo, newTestMetrics())
	return svc, repo
}

// --- Create Tests ---

func TestCreateTransaction_RoundTrip(t *testing.T) {
	svc, repo := setupTransactionService()
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateTransactionRequest{
		Type:        transaction.TypeExpense,
		AmountCents: 4250,
		Category:    "Food & Dining",
		Date:        "2024-01-15",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	// Reading back by id yields identical field values.
	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, transaction.TypeExpense, stored.Type)
	assert.Equal(t, int64(4250), stored.AmountCents)
	assert.Equal(t, "Food & Dining", stored.Category)
	assert.Equal(t, "2024-01-15", stored.Date)
	assert.Equal(t, created.CreatedAt, stored.CreatedAt)
}

func TestCreateTransaction_InvalidType(t *testing.T) {
	svc, _ := setupTransactionService()

	_, err := svc.Create(context.Background(), CreateTransactionRequest{
		Type:        transaction.Type("transfer"),
		AmountCents: 100,
		Category:    "Other",
		Date:        "2024-01-15",
	})
	assert.ErrorIs(t, err, domainErrors.ErrInvalidTransactionType)
}

// --- Update Tests ---

func TestUpdateTransaction_FullReplace(t *testing.T) {
	svc, _ := setupTransactionService()
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateTransactionRequest{
		Type:        transaction.TypeExpense,
		AmountCents: 4250,
		Category:    "Food & Dining",
		Date:        "2024-01-15",
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, UpdateTransactionRequest{
		Type:        transaction.TypeIncome,
		AmountCents: 100000,
		Category:    "Salary",
		Date:        "2024-02-01",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, transaction.TypeIncome, updated.Type)
	assert.Equal(t, int64(100000), updated.AmountCents)
	assert.Equal(t, "Salary", updated.Category)
	assert.Equal(t, "2024-02-01", updated.Date)
	// created_at is assigned at insertion and never mutated
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpdateTransaction_NotFound(t *testing.T) {
	svc, _ := setupTransactionService()

	_, err := svc.Update(context.Background(), 9999, UpdateTransactionRequest{
		Type:        transaction.TypeExpense,
		AmountCents: 100,
		Category:    "Other",
		Date:        "2024-01-15",
	})
	assert.ErrorIs(t, err, domainErrors.ErrTransactionNotFound)
}

// --- Delete Tests ---

func TestDeleteTransaction_Idempotent(t *testing.T) {
	svc, _ := setupTransactionService()
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateTransactionRequest{
		Type:        transaction.TypeExpense,
		AmountCents: 100,
		Category:    "Other",
		Date:        "2024-01-15",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	// second delete of the same id is not an error
	require.NoError(t, svc.Delete(ctx, created.ID))

	listed, err := svc.List(ctx, transaction.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, listed)
}

// --- List Tests ---

func TestListTransactions_LimitAndOrdering(t *testing.T) {
	svc, _ := setupTransactionService()
	ctx := context.Background()

	// 10 rows across two dates; ties on date break by descending id.
	for i := 0; i < 10; i++ {
		date := "2024-01-10"
		if i%2 == 0 {
			date = "2024-01-20"
		}
		_, err := svc.Create(ctx, CreateTransactionRequest{
			Type:        transaction.TypeExpense,
			AmountCents: int64(100 + i),
			Category:    fmt.Sprintf("cat-%d", i),
			Date:        date,
		})
		require.NoError(t, err)
	}

	listed, err := svc.List(ctx, transaction.ListFilter{Limit: 5})
	require.NoError(t, err)
	require.Len(t, listed, 5)

	for i := 1; i < len(listed); i++ {
		prev, cur := listed[i-1], listed[i]
		if prev.Date == cur.Date {
			assert.Greater(t, prev.ID, cur.ID)
		} else {
			assert.Greater(t, prev.Date, cur.Date)
		}
	}
}

func TestListTransactions_ConjunctiveFilters(t *testing.T) {
	svc, _ := setupTransactionService()
	ctx := context.Background()

	seed := []struct {
		txType   transaction.Type
		category string
		date     string
	}{
		{transaction.TypeExpense, "Food & Dining", "2024-01-05"},
		{transaction.TypeExpense, "Food & Dining", "2024-02-05"},
		{transaction.TypeExpense, "Travel", "2024-01-06"},
		{transaction.TypeIncome, "Salary", "2024-01-07"},
	}
	for _, s := range seed {
		_, err := svc.Create(ctx, CreateTransactionRequest{
			Type: s.txType, AmountCents: 100, Category: s.category, Date: s.date,
		})
		require.NoError(t, err)
	}

	expense := transaction.TypeExpense
	food := "Food & Dining"
	start, end := "2024-01-01", "2024-01-31"
	listed, err := svc.List(ctx, transaction.ListFilter{
		Type:      &expense,
		Category:  &food,
		StartDate: &start,
		EndDate:   &end,
	})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "2024-01-05", listed[0].Date)
}

func TestListTransactions_UnrecognizedFilterYieldsEmpty(t *testing.T) {
	svc, _ := setupTransactionService()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateTransactionRequest{
		Type: transaction.TypeExpense, AmountCents: 100, Category: "Other", Date: "2024-01-15",
	})
	require.NoError(t, err)

	bogus := transaction.Type("transfer")
	listed, err := svc.List(ctx, transaction.ListFilter{Type: &bogus})
	require.NoError(t, err)
	assert.Empty(t, listed)
}
