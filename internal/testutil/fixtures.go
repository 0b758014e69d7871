package testutil

import (
	"github.com/lucasferreira/fintrack/internal/domain/goal"
	"github.com/lucasferreira/fintrack/internal/domain/transaction"
)

func NewTestTransaction(txType transaction.Type, amountCents int64, category, date string) *transaction.Transaction {
	return &transaction.Transaction{
		Type:        txType,
		AmountCents: amountCents,
		Category:    category,
		Date:        date,
	}
}

func NewTestGoal(name string, targetCents, currentCents int64) *goal.Goal {
	return &goal.Goal{
		Name:               name,
		TargetAmountCents:  targetCents,
		CurrentAmountCents: currentCents,
		Color:              goal.DefaultColor,
	}
}

func StrPtr(s string) *string {
	return &s
}
