package controller

import (
	"time"

	"github.com/lucasferreira/fintrack/internal/domain/analytics"
	"github.com/lucasferreira/fintrack/internal/domain/goal"
	"github.com/lucasferreira/fintrack/internal/domain/transaction"
)

// --- Request DTOs ---
// These DTOs handle HTTP/JSON concerns (float64 for money, string enums,
// validation tags). Controllers convert these to service layer DTOs before
// calling business logic. Field names follow the persisted wire format the
// dashboard client consumes.

// TransactionRequest holds the input for creating or fully replacing a
// transaction. Amount is a pointer so a missing field is rejected while an
// explicit zero is allowed.
type TransactionRequest struct {
	Type        string   `json:"type" validate:"required,oneof=income expense"`
	Amount      *float64 `json:"amount" validate:"required,gte=0"`
	Category    string   `json:"category" validate:"required"`
	Description *string  `json:"description,omitempty"`
	Date        string   `json:"date" validate:"required,datetime=2006-01-02"`
}

// GoalRequest holds the input for creating or fully replacing a goal.
// CurrentAmount defaults to 0 and Color to the fixed palette entry when
// omitted.
type GoalRequest struct {
	Name          string   `json:"name" validate:"required"`
	TargetAmount  *float64 `json:"target_amount" validate:"required,gt=0"`
	CurrentAmount *float64 `json:"current_amount,omitempty" validate:"omitempty,gte=0"`
	Deadline      *string  `json:"deadline,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Color         *string  `json:"color,omitempty"`
}

// ContributeRequest holds the increment applied to a goal's current
// amount.
type ContributeRequest struct {
	Amount *float64 `json:"amount" validate:"required,gt=0"`
}

// --- Response DTOs ---

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID          int64     `json:"id"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description *string   `json:"description,omitempty"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

// GoalResponse represents a goal in API responses.
type GoalResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	TargetAmount  float64   `json:"target_amount"`
	CurrentAmount float64   `json:"current_amount"`
	Deadline      *string   `json:"deadline,omitempty"`
	Color         string    `json:"color"`
	CreatedAt     time.Time `json:"created_at"`
}

// SummaryResponse represents the aggregate totals view.
type SummaryResponse struct {
	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
	NetSavings    float64 `json:"netSavings"`
}

// CategoryTotalResponse is one row of the category breakdown.
type CategoryTotalResponse struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int64   `json:"count"`
}

// MonthlyPointResponse is one month of the trend series.
type MonthlyPointResponse struct {
	Month    string  `json:"month"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

// CategoriesResponse is the static suggestion taxonomy.
type CategoriesResponse struct {
	Income  []string `json:"income"`
	Expense []string `json:"expense"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// --- Conversion helpers ---

// FromTransaction converts a domain transaction to API response.
func FromTransaction(tx *transaction.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:          tx.ID,
		Type:        string(tx.Type),
		Amount:      centsToFloat(tx.AmountCents),
		Category:    tx.Category,
		Description: tx.Description,
		Date:        tx.Date,
		CreatedAt:   tx.CreatedAt,
	}
}

// FromGoal converts a domain goal to API response.
func FromGoal(g *goal.Goal) *GoalResponse {
	return &GoalResponse{
		ID:            g.ID,
		Name:          g.Name,
		TargetAmount:  centsToFloat(g.TargetAmountCents),
		CurrentAmount: centsToFloat(g.CurrentAmountCents),
		Deadline:      g.Deadline,
		Color:         g.Color,
		CreatedAt:     g.CreatedAt,
	}
}

// FromSummary converts the summary aggregate to API response.
func FromSummary(s *analytics.Summary) *SummaryResponse {
	return &SummaryResponse{
		TotalIncome:   centsToFloat(s.TotalIncomeCents),
		TotalExpenses: centsToFloat(s.TotalExpensesCents),
		NetSavings:    centsToFloat(s.NetSavingsCents),
	}
}

// floatToCents converts a float currency amount to cents.
func floatToCents(f float64) int64 {
	if f >= 0 {
		return int64(f*100 + 0.5)
	}
	return int64(f*100 - 0.5)
}

// centsToFloat converts cents to a float currency amount.
func centsToFloat(cents int64) float64 {
	return float64(cents) / 100.0
}
