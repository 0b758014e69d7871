package postgres

import (
	"fmt"
	"strconv"
	"strings"
)

// numericStringToCents parses the text form of a NUMERIC(14,2) amount into
// cents without going through floating point. More than two fractional
// digits round half-up.
func numericStringToCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty numeric string")
	}

	neg := false
	if s[0] == '+' || s[0] == '-' {
		neg = s[0] == '-'
		s = s[1:]
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	w, err := strconv.ParseUint(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse numeric %q: %w", s, err)
	}
	cents := int64(w) * 100

	if frac != "" {
		for i := 0; i < len(frac); i++ {
			if frac[i] < '0' || frac[i] > '9' {
				return 0, fmt.Errorf("parse numeric %q: invalid fraction", s)
			}
		}
		roundUp := len(frac) > 2 && frac[2] >= '5'
		digits := frac
		if len(digits) > 2 {
			digits = digits[:2]
		}
		if len(digits) == 1 {
			digits += "0"
		}
		f, err := strconv.ParseUint(digits, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parse numeric %q: %w", s, err)
		}
		cents += int64(f)
		if roundUp {
			cents++
		}
	}

	if neg {
		cents = -cents
	}
	return cents, nil
}

func centsToNumericString(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	whole := cents / 100
	frac := cents % 100

	return fmt.Sprintf("%s%d.%02d", sign, whole, frac)
}
