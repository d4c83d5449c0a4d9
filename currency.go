package zakat

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// Currency is the display currency of a calculation. It only selects a
// formatting convention; amounts are never converted between currencies.
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	AUD Currency = "AUD"
	CAD Currency = "CAD"
	INR Currency = "INR"
)

// convention is how amounts of one currency are written in its locale.
type convention struct {
	locale      language.Tag
	symbol      string
	suffix      bool   // symbol after the number
	group       string // thousands separator
	point       string // decimal separator
	indianGroup bool   // 12,34,567 instead of 1,234,567
}

var conventions = map[Currency]convention{
	USD: {locale: language.MustParse("en-US"), symbol: "$", group: ",", point: "."},
	EUR: {locale: language.MustParse("de-DE"), symbol: "€", suffix: true, group: ".", point: ","},
	GBP: {locale: language.MustParse("en-GB"), symbol: "£", group: ",", point: "."},
	AUD: {locale: language.MustParse("en-AU"), symbol: "$", group: ",", point: "."},
	CAD: {locale: language.MustParse("en-CA"), symbol: "$", group: ",", point: "."},
	INR: {locale: language.MustParse("en-IN"), symbol: "₹", group: ",", point: ".", indianGroup: true},
}

var currencyOrder = []Currency{USD, EUR, GBP, AUD, CAD, INR}

// Currencies returns the supported currencies in display order.
func Currencies() []Currency {
	out := make([]Currency, len(currencyOrder))
	copy(out, currencyOrder)
	return out
}

// ParseCurrency parses an ISO 4217 code (case-insensitive) and checks that
// it is one of the supported currencies.
func ParseCurrency(s string) (Currency, error) {
	unit, err := currency.ParseISO(strings.TrimSpace(s))
	if err != nil {
		return "", &ParseError{Type: "Currency", Value: s}
	}
	c := Currency(unit.String())
	if !c.Valid() {
		return "", &ParseError{Type: "Currency", Value: s}
	}
	return c, nil
}

// Valid reports whether c is a supported currency.
func (c Currency) Valid() bool {
	_, ok := conventions[c]
	return ok
}

func (c Currency) convention() convention {
	if conv, ok := conventions[c]; ok {
		return conv
	}
	return conventions[USD]
}

// Symbol returns the currency symbol, for example "€".
func (c Currency) Symbol() string { return c.convention().symbol }

// Locale returns the locale whose conventions FormatCurrency follows.
func (c Currency) Locale() language.Tag { return c.convention().locale }

// Label returns the code with its symbol, for example "EUR (€)".
func (c Currency) Label() string {
	return string(c) + " (" + c.Symbol() + ")"
}

// String returns the ISO code.
func (c Currency) String() string { return string(c) }

// UnmarshalText implements encoding.TextUnmarshaler using ParseCurrency.
func (c *Currency) UnmarshalText(text []byte) error {
	parsed, err := ParseCurrency(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// FormatCurrency renders amount with exactly two fraction digits in the
// conventions of c's locale, rounding half away from zero:
//
//	USD  $1,234.56
//	EUR  1.234,56 €
//	INR  ₹1,23,456.78
//
// Unsupported currencies are formatted as USD.
func FormatCurrency(amount decimal.Decimal, c Currency) string {
	conv := c.convention()

	fixed := amount.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	var number string
	if conv.indianGroup {
		number = groupIndian(intPart, conv.group)
	} else {
		number = groupThousands(intPart, conv.group)
	}
	number += conv.point + frac

	var b strings.Builder
	if amount.Round(2).IsNegative() {
		b.WriteByte('-')
	}
	if conv.suffix {
		b.WriteString(number)
		b.WriteString("\u00a0")
		b.WriteString(conv.symbol)
	} else {
		b.WriteString(conv.symbol)
		b.WriteString(number)
	}
	return b.String()
}

// groupThousands inserts sep every three digits from the right.
func groupThousands(digits, sep string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// groupIndian groups the last three digits, then every two: 1,23,45,678.
func groupIndian(digits, sep string) string {
	if len(digits) <= 3 {
		return digits
	}
	last := digits[len(digits)-3:]
	rest := digits[:len(digits)-3]
	return groupPairs(rest, sep) + sep + last
}

func groupPairs(digits, sep string) string {
	var b strings.Builder
	head := len(digits) % 2
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 2 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+2])
	}
	return b.String()
}
