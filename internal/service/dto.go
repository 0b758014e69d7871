package service

import (
	"github.com/lucasferreira/fintrack/internal/domain/transaction"
)

// Controllers convert their HTTP DTOs to these types. Money is carried in
// cents; floats exist only at the JSON boundary.

type CreateTransactionRequest struct {
	Type        transaction.Type
	AmountCents int64
	Category    string
	Description *string
	Date        string // transaction.DateLayout
}

// UpdateTransactionRequest carries the full field set; updates are
// replace-by-id, never partial.
type UpdateTransactionRequest struct {
	Type        transaction.Type
	AmountCents int64
	Category    string
	Description *string
	Date        string
}

type CreateGoalRequest struct {
	Name               string
	TargetAmountCents  int64
	CurrentAmountCents int64
	Deadline           *string
	Color              string // empty means default
}

type UpdateGoalRequest struct {
	Name               string
	TargetAmountCents  int64
	CurrentAmountCents int64
	Deadline           *string
	Color              string
}
