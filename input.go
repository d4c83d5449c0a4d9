package zakat

import (
	"strings"

	"github.com/shopspring/decimal"
)

var stepAmount = decimal.NewFromInt(100)

// StepAmount returns the amount Increment and Decrement move a value by.
func StepAmount() decimal.Decimal { return stepAmount }

// SanitizeAmount turns free-form user input into a non-negative amount.
//
// Every character other than a digit or '.' is dropped, and only the
// integer part and the first fractional part are kept, so "$1,250.50"
// becomes 1250.50 and "1.2.3" becomes 1.2. Empty or unparsable input
// yields zero.
func SanitizeAmount(raw string) decimal.Decimal {
	clean := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, raw)

	parts := strings.Split(clean, ".")
	s := parts[0]
	if len(parts) > 1 {
		s += "." + parts[1]
	}
	if s == "" {
		return decimal.Zero
	}
	s = strings.TrimSuffix(s, ".")
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	return ToDecimal(s)
}

// Increment returns v plus one step.
func Increment(v decimal.Decimal) decimal.Decimal {
	return v.Add(stepAmount)
}

// Decrement returns v minus one step, never going below zero.
func Decrement(v decimal.Decimal) decimal.Decimal {
	return decimal.Max(decimal.Zero, v.Sub(stepAmount))
}
