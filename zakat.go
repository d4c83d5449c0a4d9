// Package zakat computes the Zakat obligation for a set of declared assets,
// liabilities and precious-metal holdings.
//
// The package is a pure calculation engine: every function is synchronous,
// side-effect free and returns a freshly computed value. Callers hold the
// input state and pass it in by value on every recomputation.
//
// # Usage
//
//	import (
//	    "github.com/IRedDragonICY/zakat-calculator"
//	    "github.com/shopspring/decimal"
//	)
//
//	func main() {
//	    prices, err := zakat.NewMetalPrices("62.5", "0.78")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    result := zakat.CalculateZakat(zakat.AssetValues{
//	        Cash: decimal.NewFromInt(1000),
//	    }, zakat.Liabilities{}, prices, zakat.Silver)
//
//	    fmt.Println(zakat.FormatCurrency(result.ZakatPayable, zakat.USD))
//	}
//
// # Decimal Handling
//
// All amounts, weights, rates and purity factors are shopspring/decimal
// values. Prices may be supplied as strings at the boundary to preserve
// precision:
//
//	gold, _ := decimal.NewFromString("62.50")
package zakat

import (
	"github.com/shopspring/decimal"
)

// ToDecimal converts a string to a shopspring/decimal.Decimal.
// Returns decimal.Zero if parsing fails.
func ToDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// DecimalEqual compares two decimals with a tolerance.
// A zero tolerance falls back to 0.0000001.
func DecimalEqual(actual, expected, tolerance decimal.Decimal) bool {
	if tolerance.IsZero() {
		tolerance = decimal.NewFromFloat(0.0000001)
	}
	diff := actual.Sub(expected).Abs()
	return diff.LessThanOrEqual(tolerance)
}

// sum adds up a list of decimals; an empty list yields zero.
func sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
