package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericStringToCents_Success(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int64
	}{
		{"whole units", "100", 10000},
		{"units with cents", "42.50", 4250},
		{"cents only", "0.99", 99},
		{"zero", "0", 0},
		{"zero with decimals", "0.00", 0},
		{"single decimal digit", "5.5", 550},
		{"three decimals round up", "5.555", 556},
		{"three decimals round down", "99.994", 9999},
		{"round up carries", "99.999", 10000},
		{"with whitespace", "  50.25  ", 5025},
		{"negative amount", "-10.50", -1050},
		{"negative cent", "-0.01", -1},
		{"large amount", "9999999999.99", 999999999999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := numericStringToCents(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestNumericStringToCents_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty string", ""},
		{"not a number", "abc"},
		{"currency symbol", "$100.00"},
		{"double decimal point", "10.5.5"},
		{"letters in fraction", "10.5a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := numericStringToCents(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestCentsToNumericString_Success(t *testing.T) {
	tests := []struct {
		name     string
		input    int64
		expected string
	}{
		{"whole units", 10000, "100.00"},
		{"units with cents", 4250, "42.50"},
		{"cents only", 99, "0.99"},
		{"zero", 0, "0.00"},
		{"single cent", 1, "0.01"},
		{"ten cents", 10, "0.10"},
		{"negative amount", -1050, "-10.50"},
		{"negative cent", -99, "-0.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, centsToNumericString(tt.input))
		})
	}
}

func TestMoneyConversion_RoundTrip(t *testing.T) {
	for _, original := range []int64{0, 1, 10, 999, 4250, 12345, 999999999999, -1, -4250} {
		str := centsToNumericString(original)
		cents, err := numericStringToCents(str)
		require.NoError(t, err)
		assert.Equal(t, original, cents, "cents=%d str=%s", original, str)
	}
}
