package zakat

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// GoldPurity is the karat grade of a gold holding.
//
// The set of grades is closed: only the constants below are valid, and the
// zero value is not a grade. Every grade maps to a fixed fractional purity
// factor in (0, 1]; 24k is exactly 1.
type GoldPurity string

const (
	Purity24K GoldPurity = "24k"
	Purity22K GoldPurity = "22k"
	Purity21K GoldPurity = "21k"
	Purity20K GoldPurity = "20k"
	Purity18K GoldPurity = "18k"
	Purity16K GoldPurity = "16k"
	Purity14K GoldPurity = "14k"
)

const goldPurityTypeName = "GoldPurity"

// purityOrder is the display order of the grades, purest first.
var purityOrder = []GoldPurity{
	Purity24K,
	Purity22K,
	Purity21K,
	Purity20K,
	Purity18K,
	Purity16K,
	Purity14K,
}

var purityFactors = map[GoldPurity]decimal.Decimal{
	Purity24K: decimal.NewFromInt(1),
	Purity22K: decimal.RequireFromString("0.9167"),
	Purity21K: decimal.RequireFromString("0.875"),
	Purity20K: decimal.RequireFromString("0.8333"),
	Purity18K: decimal.RequireFromString("0.75"),
	Purity16K: decimal.RequireFromString("0.6667"),
	Purity14K: decimal.RequireFromString("0.5833"),
}

// Purities returns every valid grade, purest first.
func Purities() []GoldPurity {
	out := make([]GoldPurity, len(purityOrder))
	copy(out, purityOrder)
	return out
}

// ParsePurity converts text into a GoldPurity.
//
// Input is case-insensitive and may omit the "k" suffix, so "24k", "24K"
// and "24" all yield Purity24K. Anything outside the purity table returns
// a *ParseError that matches ErrInvalidArgument.
func ParsePurity(s string) (GoldPurity, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	if norm != "" && !strings.HasSuffix(norm, "k") {
		norm += "k"
	}
	p := GoldPurity(norm)
	if !p.Valid() {
		return "", &ParseError{Type: goldPurityTypeName, Value: s}
	}
	return p, nil
}

// Valid reports whether p is one of the grades in the purity table.
func (p GoldPurity) Valid() bool {
	_, ok := purityFactors[p]
	return ok
}

// Factor returns the fractional purity of p.
// An invalid grade returns an *InvalidArgumentError.
func (p GoldPurity) Factor() (decimal.Decimal, error) {
	f, ok := purityFactors[p]
	if !ok {
		return decimal.Zero, &InvalidArgumentError{
			Arg:    "purity",
			Value:  string(p),
			Reason: "not a known gold purity grade",
		}
	}
	return f, nil
}

// String returns the grade, for example "22k".
func (p GoldPurity) String() string {
	return string(p)
}

// Label returns the grade together with its rounded purity percentage,
// for example "22k (92% pure)". Invalid grades are returned as-is.
func (p GoldPurity) Label() string {
	f, ok := purityFactors[p]
	if !ok {
		return string(p)
	}
	return fmt.Sprintf("%s (%s%% pure)", p, f.Shift(2).Round(0).String())
}

// MarshalText implements encoding.TextMarshaler.
// Invalid grades are rejected so they never reach serialized output.
func (p GoldPurity) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, &ParseError{Type: goldPurityTypeName, Value: string(p)}
	}
	return []byte(p), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParsePurity.
func (p *GoldPurity) UnmarshalText(text []byte) error {
	parsed, err := ParsePurity(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
//
// Bare karat numbers such as `purity: 18` decode to Purity18K.
func (p *GoldPurity) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("decode %s: %w", goldPurityTypeName, err)
	}
	return p.UnmarshalText([]byte(s))
}
