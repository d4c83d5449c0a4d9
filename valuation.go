package zakat

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// GoldEntry is one lot of gold. ID is assigned by the caller and is only
// used to identify the lot in reports and errors.
type GoldEntry struct {
	ID     string          `json:"id" yaml:"id"`
	Weight decimal.Decimal `json:"weight" yaml:"weight"` // grams
	Purity GoldPurity      `json:"purity" yaml:"purity"`
	Rate   decimal.Decimal `json:"rate" yaml:"rate"` // currency per gram
}

// GoldEntryValue is a GoldEntry together with the factor and value used for it.
type GoldEntryValue struct {
	GoldEntry `yaml:",inline"`
	Factor decimal.Decimal `json:"factor" yaml:"factor"`
	Value  decimal.Decimal `json:"value" yaml:"value"`
}

// GoldValuation is the outcome of valuing a set of gold lots.
type GoldValuation struct {
	Total   decimal.Decimal  `json:"total" yaml:"total"`
	Entries []GoldEntryValue `json:"entries" yaml:"entries"`
}

// SilverHolding is a silver holding. Silver has no purity grade.
type SilverHolding struct {
	Weight decimal.Decimal `json:"weight" yaml:"weight"` // grams
	Rate   decimal.Decimal `json:"rate" yaml:"rate"`     // currency per gram
}

// SilverValuation is a SilverHolding together with its value.
type SilverValuation struct {
	SilverHolding `yaml:",inline"`
	Value decimal.Decimal `json:"value" yaml:"value"`
}

// ValueOfGold returns weight × rate × purity factor.
// An unknown purity grade fails with ErrInvalidArgument.
func ValueOfGold(weight, rate decimal.Decimal, purity GoldPurity) (decimal.Decimal, error) {
	f, err := purity.Factor()
	if err != nil {
		return decimal.Zero, err
	}
	return weight.Mul(rate).Mul(f), nil
}

// ValueOfGoldEntries values every entry with its own rate and purity and
// sums the results. An empty slice yields a zero total.
//
// The returned valuation lists each entry in input order with the factor
// and value applied to it. The first entry with an unknown purity aborts
// the valuation with an *InvalidArgumentError naming that entry.
func ValueOfGoldEntries(entries []GoldEntry) (GoldValuation, error) {
	out := GoldValuation{
		Total:   decimal.Zero,
		Entries: make([]GoldEntryValue, 0, len(entries)),
	}
	for i, e := range entries {
		f, err := e.Purity.Factor()
		if err != nil {
			return GoldValuation{}, &InvalidArgumentError{
				Arg:    entryArg(i, e.ID),
				Value:  string(e.Purity),
				Reason: "not a known gold purity grade",
			}
		}
		v := e.Weight.Mul(e.Rate).Mul(f)
		out.Entries = append(out.Entries, GoldEntryValue{GoldEntry: e, Factor: f, Value: v})
		out.Total = out.Total.Add(v)
	}
	return out, nil
}

func entryArg(i int, id string) string {
	if id == "" {
		return fmt.Sprintf("gold[%d].purity", i)
	}
	return fmt.Sprintf("gold[%d](%s).purity", i, id)
}

// ValueOfSilver returns weight × rate.
func ValueOfSilver(weight, rate decimal.Decimal) decimal.Decimal {
	return weight.Mul(rate)
}

// ValueOfSilverHolding values h and returns it with its value attached.
func ValueOfSilverHolding(h SilverHolding) SilverValuation {
	return SilverValuation{SilverHolding: h, Value: ValueOfSilver(h.Weight, h.Rate)}
}
