package zakat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeAmount(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", "1250", "1250"},
		{"currency formatting", "$1,250.50", "1250.5"},
		{"extra dots dropped", "1.2.3", "1.2"},
		{"leading dot", ".5", "0.5"},
		{"trailing dot", "5.", "5"},
		{"lone dot", ".", "0"},
		{"empty", "", "0"},
		{"letters only", "abc", "0"},
		{"digits between letters", "12abc34", "1234"},
		{"minus sign dropped", "-5", "5"},
		{"spaces", " 1 000 ", "1000"},
		{"euro style loses decimal comma", "1.234,56", "1.23456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeAmount(tt.raw)
			assertDecimal(t, tt.want, got)
			assert.False(t, got.IsNegative())
		})
	}
}

func TestIncrement(t *testing.T) {
	assertDecimal(t, "100", Increment(d("0")))
	assertDecimal(t, "150.5", Increment(d("50.5")))
	assertDecimal(t, "100", StepAmount())
}

func TestDecrement(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"250", "150"},
		{"100", "0"},
		{"50", "0"},
		{"0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assertDecimal(t, tt.want, Decrement(d(tt.in)))
		})
	}
}
