package report

import (
	"bytes"
	"encoding/json"
	"testing"

	zakat "github.com/IRedDragonICY/zakat-calculator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func eligibleResult(t *testing.T) zakat.ZakatResult {
	t.Helper()
	result, err := zakat.CalculateZakatWithHoldings(
		zakat.AssetValues{Cash: dec("1000")},
		zakat.Liabilities{},
		zakat.DefaultMetalPrices(),
		zakat.Silver,
		zakat.Holdings{
			Gold: []zakat.GoldEntry{{ID: "ring", Weight: dec("10"), Purity: zakat.Purity18K, Rate: dec("60")}},
		},
	)
	require.NoError(t, err)
	return result
}

func TestWriteText_Eligible(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, eligibleResult(t), zakat.USD, zakat.Silver))

	out := buf.String()
	assert.Contains(t, out, "Zakat Calculation (USD ($), Nisab based on silver)")
	assert.Contains(t, out, "$477.64")
	assert.Contains(t, out, "100% of Nisab")
	assert.Contains(t, out, "$1,450.00")
	assert.Contains(t, out, "$36.25")
	assert.Contains(t, out, "Breakdown by Asset Category")
	assert.Contains(t, out, "Cash")
	assert.Contains(t, out, "18k (75% pure)")
	assert.NotContains(t, out, "Stocks", "empty categories are not listed")
	assert.NotContains(t, out, "No Zakat Due")
}

func TestWriteText_BelowNisab(t *testing.T) {
	result := zakat.CalculateZakat(zakat.AssetValues{Cash: dec("100")}, zakat.Liabilities{}, zakat.DefaultMetalPrices(), zakat.Silver)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, result, zakat.EUR, zakat.Silver))

	out := buf.String()
	assert.Contains(t, out, "No Zakat Due")
	assert.Contains(t, out, "100,00\u00a0€")
	assert.Contains(t, out, "477,64\u00a0€")
	assert.Contains(t, out, "21% of Nisab")
	assert.NotContains(t, out, "Breakdown by Asset Category")
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "json", eligibleResult(t), zakat.GBP, zakat.Silver))

	var doc struct {
		Currency        string `json:"currency"`
		NisabMetal      string `json:"nisabMetal"`
		NisabPercentage int    `json:"nisabPercentage"`
		Result          struct {
			ZakatPayable decimal.Decimal `json:"zakatPayable"`
			IsEligible   bool            `json:"isEligible"`
			Breakdown    []struct {
				Category string `json:"category"`
			} `json:"breakdown"`
			Detailed struct {
				Gold struct {
					Entries []struct {
						ID     string `json:"id"`
						Purity string `json:"purity"`
					} `json:"entries"`
				} `json:"gold"`
			} `json:"detailedBreakdown"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "GBP", doc.Currency)
	assert.Equal(t, "silver", doc.NisabMetal)
	assert.Equal(t, 100, doc.NisabPercentage)
	assert.True(t, doc.Result.IsEligible)
	assert.True(t, doc.Result.ZakatPayable.Equal(dec("36.25")))
	require.Len(t, doc.Result.Breakdown, 8)
	assert.Equal(t, "Business Assets", doc.Result.Breakdown[5].Category)
	require.Len(t, doc.Result.Detailed.Gold.Entries, 1)
	assert.Equal(t, "ring", doc.Result.Detailed.Gold.Entries[0].ID)
	assert.Equal(t, "18k", doc.Result.Detailed.Gold.Entries[0].Purity)
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "YAML", eligibleResult(t), zakat.INR, zakat.Gold))

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "INR", doc["currency"])
	assert.Equal(t, "gold", doc["nisabMetal"])

	result, ok := doc["result"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, result, "zakatPayable")
	assert.Contains(t, result, "detailedBreakdown")
}

func TestWrite_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, "xml", zakat.ZakatResult{}, zakat.USD, zakat.Silver)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
	assert.Empty(t, buf.String())
}
