package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/lucasferreira/fintrack/internal/domain/transaction"
	"github.com/lucasferreira/fintrack/internal/infrastructure/observability"
	"github.com/lucasferreira/fintrack/internal/service"
	"github.com/lucasferreira/fintrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testAPI wires controllers over in-memory repositories onto a router with
// the production route patterns.
type testAPI struct {
	router       chi.Router
	transactions *testutil.MockTransactionRepository
	goals        *testutil.MockGoalRepository
	queries      *testutil.MockAnalyticsQueries
}

func setupTestAPI() *testAPI {
	metrics := observability.NewMetrics("test", prometheus.NewRegistry())

	txRepo := testutil.NewMockTransactionRepository()
	goalRepo := testutil.NewMockGoalRepository()
	queries := testutil.NewMockAnalyticsQueries(txRepo)

	txController := NewTransactionController(service.NewTransactionService(txRepo, metrics))
	goalController := NewGoalController(service.NewGoalService(goalRepo, metrics))
	analyticsController := NewAnalyticsController(service.NewAnalyticsService(queries, metrics))

	r := chi.NewRouter()
	r.Route("/transactions", func(r chi.Router) {
		r.Get("/", txController.List)
		r.Post("/", txController.Create)
		r.Put("/{id}", txController.Update)
		r.Delete("/{id}", txController.Delete)
	})
	r.Route("/goals", func(r chi.Router) {
		r.Get("/", goalController.List)
		r.Post("/", goalController.Create)
		r.Put("/{id}", goalController.Update)
		r.Delete("/{id}", goalController.Delete)
		r.Post("/{id}/contribute", goalController.Contribute)
	})
	r.Route("/analytics", func(r chi.Router) {
		r.Get("/summary", analyticsController.Summary)
		r.Get("/by-category", analyticsController.ByCategory)
		r.Get("/monthly", analyticsController.Monthly)
	})

	return &testAPI{
		router:       r,
		transactions: txRepo,
		goals:        goalRepo,
		queries:      queries,
	}
}

func (a *testAPI) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func floatPtr(f float64) *float64 { return &f }

// --- POST /transactions ---

func TestCreateTransaction_Created(t *testing.T) {
	api := setupTestAPI()

	rec := api.do(t, http.MethodPost, "/transactions", TransactionRequest{
		Type:     "expense",
		Amount:   floatPtr(42.50),
		Category: "Food & Dining",
		Date:     "2024-01-15",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeBody[TransactionResponse](t, rec)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "expense", resp.Type)
	assert.Equal(t, 42.50, resp.Amount)
	assert.Equal(t, "Food & Dining", resp.Category)
	assert.Equal(t, "2024-01-15", resp.Date)
	assert.False(t, resp.CreatedAt.IsZero())
}

func TestCreateTransaction_ValidationRejections(t *testing.T) {
	tests := []struct {
		name string
		body TransactionRequest
	}{
		{"missing type", TransactionRequest{Amount: floatPtr(10), Category: "Other", Date: "2024-01-15"}},
		{"bad type", TransactionRequest{Type: "transfer", Amount: floatPtr(10), Category: "Other", Date: "2024-01-15"}},
		{"missing amount", TransactionRequest{Type: "expense", Category: "Other", Date: "2024-01-15"}},
		{"negative amount", TransactionRequest{Type: "expense", Amount: floatPtr(-5), Category: "Other", Date: "2024-01-15"}},
		{"missing category", TransactionRequest{Type: "expense", Amount: floatPtr(10), Date: "2024-01-15"}},
		{"bad date", TransactionRequest{Type: "expense", Amount: floatPtr(10), Category: "Other", Date: "Jan 15"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := setupTestAPI()
			rec := api.do(t, http.MethodPost, "/transactions", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, api.transactions.All(), "rejected request must not persist")
		})
	}
}

func TestCreateTransaction_MalformedJSON(t *testing.T) {
	api := setupTestAPI()

	req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewReader([]byte(`{"type":`)))
	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// --- GET /transactions ---

func TestListTransactions_FiltersAndLimit(t *testing.T) {
	api := setupTestAPI()
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		tx := testutil.NewTestTransaction(transaction.TypeExpense, int64(1000+i), "Other", fmt.Sprintf("2024-01-%02d", i+1))
		require.NoError(t, api.transactions.Create(ctx, tx))
	}
	require.NoError(t, api.transactions.Create(ctx,
		testutil.NewTestTransaction(transaction.TypeIncome, 500000, "Salary", "2024-01-20")))

	rec := api.do(t, http.MethodGet, "/transactions?type=expense&limit=5", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[[]TransactionResponse](t, rec)
	require.Len(t, resp, 5)
	for i, tx := range resp {
		assert.Equal(t, "expense", tx.Type)
		if i > 0 {
			assert.GreaterOrEqual(t, resp[i-1].Date, tx.Date)
		}
	}
}

func TestListTransactions_MalformedDateFilterIgnored(t *testing.T) {
	api := setupTestAPI()
	ctx := context.Background()

	require.NoError(t, api.transactions.Create(ctx,
		testutil.NewTestTransaction(transaction.TypeExpense, 4250, "Food & Dining", "2024-01-15")))
	require.NoError(t, api.transactions.Create(ctx,
		testutil.NewTestTransaction(transaction.TypeIncome, 500000, "Salary", "2024-02-01")))

	// a date that does not parse is dropped, not compared and not rejected
	for _, path := range []string{
		"/transactions?startDate=banana",
		"/transactions?endDate=2024-13-99",
		"/transactions?startDate=banana&endDate=banana",
	} {
		rec := api.do(t, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, rec.Code, path)
		resp := decodeBody[[]TransactionResponse](t, rec)
		assert.Len(t, resp, 2, path)
	}
}

func TestListTransactions_MalformedBoundKeepsValidBound(t *testing.T) {
	api := setupTestAPI()
	ctx := context.Background()

	require.NoError(t, api.transactions.Create(ctx,
		testutil.NewTestTransaction(transaction.TypeExpense, 100, "Other", "2024-01-15")))
	require.NoError(t, api.transactions.Create(ctx,
		testutil.NewTestTransaction(transaction.TypeExpense, 200, "Other", "2024-02-15")))

	rec := api.do(t, http.MethodGet, "/transactions?startDate=banana&endDate=2024-01-31", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[[]TransactionResponse](t, rec)
	require.Len(t, resp, 1)
	assert.Equal(t, "2024-01-15", resp[0].Date)
}

func TestListTransactions_EmptyIsJSONArray(t *testing.T) {
	api := setupTestAPI()

	rec := api.do(t, http.MethodGet, "/transactions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

// --- PUT /transactions/{id} ---

func TestUpdateTransaction_OK(t *testing.T) {
	api := setupTestAPI()
	tx := testutil.NewTestTransaction(transaction.TypeExpense, 4250, "Food & Dining", "2024-01-15")
	require.NoError(t, api.transactions.Create(context.Background(), tx))

	rec := api.do(t, http.MethodPut, fmt.Sprintf("/transactions/%d", tx.ID), TransactionRequest{
		Type:     "income",
		Amount:   floatPtr(1000),
		Category: "Salary",
		Date:     "2024-02-01",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[TransactionResponse](t, rec)
	assert.Equal(t, tx.ID, resp.ID)
	assert.Equal(t, "income", resp.Type)
	assert.Equal(t, float64(1000), resp.Amount)
}

func TestUpdateTransaction_NotFound(t *testing.T) {
	api := setupTestAPI()

	rec := api.do(t, http.MethodPut, "/transactions/9999", TransactionRequest{
		Type:     "expense",
		Amount:   floatPtr(10),
		Category: "Other",
		Date:     "2024-01-15",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateTransaction_InvalidID(t *testing.T) {
	api := setupTestAPI()

	rec := api.do(t, http.MethodPut, "/transactions/abc", TransactionRequest{
		Type:     "expense",
		Amount:   floatPtr(10),
		Category: "Other",
		Date:     "2024-01-15",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_id")
}

// --- DELETE /transactions/{id} ---

func TestDeleteTransaction_NoContentTwice(t *testing.T) {
	api := setupTestAPI()
	tx := testutil.NewTestTransaction(transaction.TypeExpense, 4250, "Food & Dining", "2024-01-15")
	require.NoError(t, api.transactions.Create(context.Background(), tx))

	path := fmt.Sprintf("/transactions/%d", tx.ID)
	rec := api.do(t, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = api.do(t, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

// --- wire format ---

func TestTransactionResponse_WireFormat(t *testing.T) {
	api := setupTestAPI()
	desc := "weekly groceries"
	tx := testutil.NewTestTransaction(transaction.TypeExpense, 4250, "Food & Dining", "2024-01-15")
	tx.Description = &desc
	require.NoError(t, api.transactions.Create(context.Background(), tx))

	rec := api.do(t, http.MethodGet, "/transactions", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	require.Len(t, raw, 1)
	for _, key := range []string{"id", "type", "amount", "category", "description", "date", "created_at"} {
		assert.Contains(t, raw[0], key)
	}
	assert.Equal(t, 42.50, raw[0]["amount"])

	createdAt, err := time.Parse(time.RFC3339Nano, raw[0]["created_at"].(string))
	require.NoError(t, err)
	assert.False(t, createdAt.IsZero())
}
