package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_Error(t *testing.T) {
	t.Run("without wrapped error", func(t *testing.T) {
		err := NewDomainError("storage_failure", "could not reach storage", nil)
		assert.Equal(t, "could not reach storage", err.Error())
	})

	t.Run("with wrapped error", func(t *testing.T) {
		cause := stderrors.New("connection refused")
		err := NewDomainError("storage_failure", "could not reach storage", cause)
		assert.Contains(t, err.Error(), "could not reach storage")
		assert.Contains(t, err.Error(), "connection refused")
	})
}

func TestDomainError_Unwrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := NewDomainError("storage_failure", "could not reach storage", cause)
	assert.True(t, stderrors.Is(err, cause))
}

func TestValidationError_Error(t *testing.T) {
	err := NewValidationError("amount", "must be numeric")
	assert.Contains(t, err.Error(), "amount")
	assert.Contains(t, err.Error(), "must be numeric")
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	assert.False(t, stderrors.Is(ErrTransactionNotFound, ErrGoalNotFound))
	assert.False(t, stderrors.Is(ErrInvalidTransactionType, ErrTransactionNotFound))
}
