// Package declaration reads a wealth declaration file and turns it into the
// inputs of a Zakat calculation.
//
// A declaration is the caller-held input state: assets, liabilities, metal
// holdings and optional overrides for prices, currency and Nisab metal. It
// is the sanitization boundary of the command; negative amounts are rejected
// here so the engine never sees them.
//
// Both YAML and JSON documents are accepted:
//
//	currency: USD
//	nisab: silver
//	prices: {gold: 62.5, silver: 0.78}
//	assets: {cash: 1000, stocks: 250}
//	gold:
//	  - {id: ring, weight: 10, purity: 22k, rate: 62.5}
//	silver: {weight: 100, rate: 0.78}
//	liabilities: {debts: 200, expenses: 0}
package declaration

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	zakat "github.com/IRedDragonICY/zakat-calculator"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Declaration is the decoded content of a declaration file.
type Declaration struct {
	Currency    string               `json:"currency" yaml:"currency"`
	Nisab       string               `json:"nisab" yaml:"nisab"`
	Prices      PriceOverride        `json:"prices" yaml:"prices"`
	Assets      zakat.AssetValues    `json:"assets" yaml:"assets"`
	Gold        []zakat.GoldEntry    `json:"gold" yaml:"gold"`
	Silver      *zakat.SilverHolding `json:"silver" yaml:"silver"`
	Liabilities zakat.Liabilities    `json:"liabilities" yaml:"liabilities"`
}

// PriceOverride replaces configured metal prices when set.
type PriceOverride struct {
	Gold   *decimal.Decimal `json:"gold" yaml:"gold"`
	Silver *decimal.Decimal `json:"silver" yaml:"silver"`
}

// FieldError reports one invalid field of a declaration.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return "declaration: " + e.Field + ": " + e.Reason
}

// Load reads the declaration at path. The path "-" reads standard input.
// Files ending in .json are decoded as JSON, everything else as YAML.
func Load(path string) (*Declaration, error) {
	if path == "-" {
		return Decode(os.Stdin, false)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read declaration: %w", err)
	}
	isJSON := strings.EqualFold(filepath.Ext(path), ".json")
	return Decode(bytes.NewReader(data), isJSON)
}

// Decode decodes and validates a declaration. Unknown fields are errors.
func Decode(r io.Reader, isJSON bool) (*Declaration, error) {
	var d Declaration
	if isJSON {
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode declaration: %w", err)
		}
	} else {
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&d); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode declaration: %w", err)
		}
	}
	d.normalize()
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// normalize fills in caller-side defaults: missing gold entry IDs are
// numbered from 1 and a missing purity means 24k.
func (d *Declaration) normalize() {
	for i := range d.Gold {
		if d.Gold[i].ID == "" {
			d.Gold[i].ID = strconv.Itoa(i + 1)
		}
		if d.Gold[i].Purity == "" {
			d.Gold[i].Purity = zakat.Purity24K
		}
	}
}

// Validate reports every negative amount, unknown enumeration value and
// duplicate gold entry ID, joined into one error.
func (d *Declaration) Validate() error {
	var errs []error
	nonNegative := func(field string, v decimal.Decimal) {
		if v.IsNegative() {
			errs = append(errs, &FieldError{Field: field, Reason: "must not be negative"})
		}
	}

	if d.Currency != "" {
		if _, err := zakat.ParseCurrency(d.Currency); err != nil {
			errs = append(errs, &FieldError{Field: "currency", Reason: err.Error()})
		}
	}
	if _, err := zakat.ParseMetal(d.Nisab); err != nil {
		errs = append(errs, &FieldError{Field: "nisab", Reason: err.Error()})
	}
	if d.Prices.Gold != nil {
		nonNegative("prices.gold", *d.Prices.Gold)
	}
	if d.Prices.Silver != nil {
		nonNegative("prices.silver", *d.Prices.Silver)
	}
	for _, c := range d.Assets.Categories() {
		nonNegative("assets."+c.Key, c.Amount)
	}
	nonNegative("liabilities.debts", d.Liabilities.Debts)
	nonNegative("liabilities.expenses", d.Liabilities.Expenses)

	seen := make(map[string]bool, len(d.Gold))
	for i, e := range d.Gold {
		prefix := fmt.Sprintf("gold[%d]", i)
		if seen[e.ID] {
			errs = append(errs, &FieldError{Field: prefix + ".id", Reason: fmt.Sprintf("duplicate id %q", e.ID)})
		}
		seen[e.ID] = true
		if !e.Purity.Valid() {
			errs = append(errs, &FieldError{Field: prefix + ".purity", Reason: fmt.Sprintf("unknown grade %q", e.Purity)})
		}
		nonNegative(prefix+".weight", e.Weight)
		nonNegative(prefix+".rate", e.Rate)
	}
	if d.Gold != nil && !d.Assets.Gold.IsZero() {
		errs = append(errs, &FieldError{Field: "assets.gold", Reason: "must be omitted when gold entries are listed"})
	}
	if d.Silver != nil {
		nonNegative("silver.weight", d.Silver.Weight)
		nonNegative("silver.rate", d.Silver.Rate)
		if !d.Assets.Silver.IsZero() {
			errs = append(errs, &FieldError{Field: "assets.silver", Reason: "must be omitted when a silver holding is listed"})
		}
	}

	return errors.Join(errs...)
}

// Holdings returns the declared metal holdings. Gold entries replace
// assets.gold and a silver holding replaces assets.silver.
func (d *Declaration) Holdings() zakat.Holdings {
	return zakat.Holdings{Gold: d.Gold, Silver: d.Silver}
}

// Defaults are the configured values a declaration may override.
type Defaults struct {
	Prices   zakat.MetalPrices
	Currency zakat.Currency
	Metal    zakat.Metal
}

// Request is a declaration resolved against Defaults, ready to calculate.
type Request struct {
	Assets      zakat.AssetValues
	Liabilities zakat.Liabilities
	Holdings    zakat.Holdings
	Prices      zakat.MetalPrices
	Metal       zakat.Metal
	Currency    zakat.Currency
}

// Resolve applies the declaration's overrides on top of def.
func (d *Declaration) Resolve(def Defaults) (Request, error) {
	req := Request{
		Assets:      d.Assets,
		Liabilities: d.Liabilities,
		Holdings:    d.Holdings(),
		Prices:      def.Prices,
		Metal:       def.Metal,
		Currency:    def.Currency,
	}
	if d.Prices.Gold != nil {
		req.Prices.Gold = *d.Prices.Gold
	}
	if d.Prices.Silver != nil {
		req.Prices.Silver = *d.Prices.Silver
	}
	if d.Nisab != "" {
		m, err := zakat.ParseMetal(d.Nisab)
		if err != nil {
			return Request{}, err
		}
		req.Metal = m
	}
	if d.Currency != "" {
		c, err := zakat.ParseCurrency(d.Currency)
		if err != nil {
			return Request{}, err
		}
		req.Currency = c
	}
	return req, nil
}

// Calculate runs the Zakat engine on the request.
func (r Request) Calculate() (zakat.ZakatResult, error) {
	return zakat.CalculateZakatWithHoldings(r.Assets, r.Liabilities, r.Prices, r.Metal, r.Holdings)
}
