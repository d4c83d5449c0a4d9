package zakat

import (
	"github.com/shopspring/decimal"
)

var zakatRate = decimal.RequireFromString("0.025")

// ZakatRate returns the fixed 2.5% rate applied to eligible wealth.
func ZakatRate() decimal.Decimal { return zakatRate }

// AssetValues holds the declared value of each zakatable asset category,
// all in one currency. Field order is the breakdown order.
type AssetValues struct {
	Cash             decimal.Decimal `json:"cash" yaml:"cash"`
	Gold             decimal.Decimal `json:"gold" yaml:"gold"`
	Silver           decimal.Decimal `json:"silver" yaml:"silver"`
	Stocks           decimal.Decimal `json:"stocks" yaml:"stocks"`
	Cryptocurrency   decimal.Decimal `json:"cryptocurrency" yaml:"cryptocurrency"`
	BusinessAssets   decimal.Decimal `json:"businessAssets" yaml:"businessAssets"`
	Receivables      decimal.Decimal `json:"receivables" yaml:"receivables"`
	OtherInvestments decimal.Decimal `json:"otherInvestments" yaml:"otherInvestments"`
}

// Category is one asset category: its camelCase key and amount.
type Category struct {
	Key    string
	Amount decimal.Decimal
}

// Categories returns every asset category in declaration order.
func (a AssetValues) Categories() []Category {
	return []Category{
		{Key: "cash", Amount: a.Cash},
		{Key: "gold", Amount: a.Gold},
		{Key: "silver", Amount: a.Silver},
		{Key: "stocks", Amount: a.Stocks},
		{Key: "cryptocurrency", Amount: a.Cryptocurrency},
		{Key: "businessAssets", Amount: a.BusinessAssets},
		{Key: "receivables", Amount: a.Receivables},
		{Key: "otherInvestments", Amount: a.OtherInvestments},
	}
}

// Total returns the plain sum of all categories.
func (a AssetValues) Total() decimal.Decimal {
	return sum(a.Cash, a.Gold, a.Silver, a.Stocks, a.Cryptocurrency,
		a.BusinessAssets, a.Receivables, a.OtherInvestments)
}

// Liabilities holds debts and expenses due now.
type Liabilities struct {
	Debts    decimal.Decimal `json:"debts" yaml:"debts"`
	Expenses decimal.Decimal `json:"expenses" yaml:"expenses"`
}

// Total returns Debts + Expenses.
func (l Liabilities) Total() decimal.Decimal {
	return sum(l.Debts, l.Expenses)
}

// Holdings are the metal holdings behind the Gold and Silver asset values.
// A nil Gold slice or Silver pointer leaves the matching asset value as
// declared; an empty, non-nil Gold slice values gold at zero.
type Holdings struct {
	Gold   []GoldEntry    `json:"gold" yaml:"gold"`
	Silver *SilverHolding `json:"silver" yaml:"silver"`
}

// BreakdownItem is the per-category line of a ZakatResult.
type BreakdownItem struct {
	Category    string          `json:"category" yaml:"category"`
	Amount      decimal.Decimal `json:"amount" yaml:"amount"`
	ZakatAmount decimal.Decimal `json:"zakatAmount" yaml:"zakatAmount"`
}

// DetailedBreakdown carries per-lot metal detail for reporting.
type DetailedBreakdown struct {
	Gold   *GoldValuation   `json:"gold,omitempty" yaml:"gold,omitempty"`
	Silver *SilverValuation `json:"silver,omitempty" yaml:"silver,omitempty"`
}

// ZakatResult is the outcome of a calculation. It is a derived value and is
// recomputed from scratch for every change in the inputs.
type ZakatResult struct {
	NisabThreshold     decimal.Decimal    `json:"nisabThreshold" yaml:"nisabThreshold"`
	TotalAssets        decimal.Decimal    `json:"totalAssets" yaml:"totalAssets"`
	TotalLiabilities   decimal.Decimal    `json:"totalLiabilities" yaml:"totalLiabilities"`
	NetZakatableAssets decimal.Decimal    `json:"netZakatableAssets" yaml:"netZakatableAssets"`
	ZakatPayable       decimal.Decimal    `json:"zakatPayable" yaml:"zakatPayable"`
	IsEligible         bool               `json:"isEligible" yaml:"isEligible"`
	Breakdown          []BreakdownItem    `json:"breakdown" yaml:"breakdown"`
	Detailed           *DetailedBreakdown `json:"detailedBreakdown,omitempty" yaml:"detailedBreakdown,omitempty"`
}

// CalculateZakat computes the Zakat due on assets net of liabilities.
//
// Net wealth is not clamped and may be negative. Wealth exactly equal to
// the Nisab threshold is eligible. When eligible, ZakatPayable is 2.5% of
// net wealth and every breakdown line carries 2.5% of its raw category
// amount; otherwise both are zero.
//
// Breakdown lines are not reduced by liabilities, so their ZakatAmount sum
// exceeds ZakatPayable whenever liabilities are non-zero.
func CalculateZakat(assets AssetValues, liabilities Liabilities, prices MetalPrices, metal Metal) ZakatResult {
	threshold := NisabThreshold(prices, metal)
	totalAssets := assets.Total()
	totalLiabilities := liabilities.Total()
	net := totalAssets.Sub(totalLiabilities)
	eligible := net.GreaterThanOrEqual(threshold)

	payable := decimal.Zero
	if eligible {
		payable = net.Mul(zakatRate)
	}

	categories := assets.Categories()
	breakdown := make([]BreakdownItem, 0, len(categories))
	for _, c := range categories {
		zakatAmount := decimal.Zero
		if eligible {
			zakatAmount = c.Amount.Mul(zakatRate)
		}
		breakdown = append(breakdown, BreakdownItem{
			Category:    FormatCategoryName(c.Key),
			Amount:      c.Amount,
			ZakatAmount: zakatAmount,
		})
	}

	return ZakatResult{
		NisabThreshold:     threshold,
		TotalAssets:        totalAssets,
		TotalLiabilities:   totalLiabilities,
		NetZakatableAssets: net,
		ZakatPayable:       payable,
		IsEligible:         eligible,
		Breakdown:          breakdown,
	}
}

// CalculateZakatWithHoldings values the metal holdings, uses those values
// for assets.Gold and assets.Silver, and runs CalculateZakat. The result
// carries the per-lot detail in Detailed, which stays nil when there are
// no holdings.
//
// It fails only when a gold entry has an unknown purity grade.
func CalculateZakatWithHoldings(assets AssetValues, liabilities Liabilities, prices MetalPrices, metal Metal, holdings Holdings) (ZakatResult, error) {
	detail := &DetailedBreakdown{}
	if holdings.Gold != nil {
		gold, err := ValueOfGoldEntries(holdings.Gold)
		if err != nil {
			return ZakatResult{}, err
		}
		assets.Gold = gold.Total
		detail.Gold = &gold
	}
	if holdings.Silver != nil {
		silver := ValueOfSilverHolding(*holdings.Silver)
		assets.Silver = silver.Value
		detail.Silver = &silver
	}

	result := CalculateZakat(assets, liabilities, prices, metal)
	if detail.Gold != nil || detail.Silver != nil {
		result.Detailed = detail
	}
	return result, nil
}

// NisabPercentage returns net wealth as a whole percentage of the Nisab
// threshold, capped at 100. Halves round up. With a zero threshold the
// result is 100 for non-negative wealth and 0 otherwise.
func (r ZakatResult) NisabPercentage() int {
	if r.NisabThreshold.IsZero() {
		if r.NetZakatableAssets.IsNegative() {
			return 0
		}
		return 100
	}
	pct := r.NetZakatableAssets.Div(r.NisabThreshold).Shift(2)
	rounded := pct.Add(decimal.NewFromFloat(0.5)).Floor().IntPart()
	return int(min(100, rounded))
}

// BelowNisabWithWealth reports whether there is positive net wealth that
// falls short of the threshold. Zakat is not obligatory in that case.
func (r ZakatResult) BelowNisabWithWealth() bool {
	return !r.IsEligible && r.NetZakatableAssets.IsPositive()
}

// NonZeroBreakdown returns the breakdown lines with a positive amount.
func (r ZakatResult) NonZeroBreakdown() []BreakdownItem {
	var out []BreakdownItem
	for _, item := range r.Breakdown {
		if item.Amount.IsPositive() {
			out = append(out, item)
		}
	}
	return out
}
