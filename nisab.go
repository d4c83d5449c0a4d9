package zakat

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Nisab weights in grams. These are fixed jurisprudential quantities; only
// the metal prices they are multiplied by vary.
var (
	goldNisabGrams   = decimal.RequireFromString("87.48")
	silverNisabGrams = decimal.RequireFromString("612.36")
)

// GoldNisabGrams returns the Nisab weight of gold, 87.48 grams.
func GoldNisabGrams() decimal.Decimal { return goldNisabGrams }

// SilverNisabGrams returns the Nisab weight of silver, 612.36 grams.
func SilverNisabGrams() decimal.Decimal { return silverNisabGrams }

// Metal selects which precious metal the Nisab threshold is pegged to.
//
// The zero value is Silver, the conventional and lower threshold. Callers
// opt into Gold explicitly.
type Metal int

const (
	// Silver pegs the Nisab to 612.36 g of silver.
	Silver Metal = iota

	// Gold pegs the Nisab to 87.48 g of gold.
	Gold
)

const (
	SilverStr = "silver"
	GoldStr   = "gold"
)

// ParseMetal converts "silver" or "gold" (case-insensitive) into a Metal.
// The empty string yields the default, Silver.
func ParseMetal(s string) (Metal, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case SilverStr, "":
		return Silver, nil
	case GoldStr:
		return Gold, nil
	default:
		return Silver, &ParseError{Type: "Metal", Value: s}
	}
}

// String returns "silver" or "gold". Values outside the enumeration
// return "unknown".
func (m Metal) String() string {
	switch m {
	case Silver:
		return SilverStr
	case Gold:
		return GoldStr
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Metal) MarshalText() ([]byte, error) {
	if m != Silver && m != Gold {
		return nil, fmt.Errorf("zakat: cannot marshal invalid Metal value: %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseMetal.
func (m *Metal) UnmarshalText(text []byte) error {
	parsed, err := ParseMetal(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MetalPrices holds the market price per gram of gold and silver, in the
// same currency as the declared assets.
type MetalPrices struct {
	Gold   decimal.Decimal `json:"gold" yaml:"gold"`
	Silver decimal.Decimal `json:"silver" yaml:"silver"`
}

// NewMetalPrices parses per-gram prices given as decimal strings.
func NewMetalPrices(gold, silver string) (MetalPrices, error) {
	g, err := decimal.NewFromString(gold)
	if err != nil {
		return MetalPrices{}, fmt.Errorf("parse gold price %q: %w", gold, err)
	}
	s, err := decimal.NewFromString(silver)
	if err != nil {
		return MetalPrices{}, fmt.Errorf("parse silver price %q: %w", silver, err)
	}
	return MetalPrices{Gold: g, Silver: s}, nil
}

// DefaultMetalPrices returns a fixed sample price table (USD per gram).
// It is a convenience for callers without a price source; nothing is fetched.
func DefaultMetalPrices() MetalPrices {
	return MetalPrices{
		Gold:   decimal.RequireFromString("62.5"),
		Silver: decimal.RequireFromString("0.78"),
	}
}

// NisabThreshold returns the minimum net wealth on which Zakat is due.
//
// For Gold it is 87.48 × prices.Gold; for Silver, and for any value other
// than Gold, it is 612.36 × prices.Silver.
func NisabThreshold(prices MetalPrices, metal Metal) decimal.Decimal {
	if metal == Gold {
		return goldNisabGrams.Mul(prices.Gold)
	}
	return silverNisabGrams.Mul(prices.Silver)
}
