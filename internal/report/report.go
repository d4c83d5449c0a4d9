// Package report renders a ZakatResult for the terminal or for machines.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	zakat "github.com/IRedDragonICY/zakat-calculator"
	"gopkg.in/yaml.v3"
)

// Document is the machine-readable report.
type Document struct {
	Currency        zakat.Currency    `json:"currency" yaml:"currency"`
	NisabMetal      string            `json:"nisabMetal" yaml:"nisabMetal"`
	NisabPercentage int               `json:"nisabPercentage" yaml:"nisabPercentage"`
	Result          zakat.ZakatResult `json:"result" yaml:"result"`
}

// NewDocument builds the machine-readable report of result.
func NewDocument(result zakat.ZakatResult, currency zakat.Currency, metal zakat.Metal) Document {
	return Document{
		Currency:        currency,
		NisabMetal:      metal.String(),
		NisabPercentage: result.NisabPercentage(),
		Result:          result,
	}
}

// Write renders result to w as "text", "json" or "yaml".
func Write(w io.Writer, format string, result zakat.ZakatResult, currency zakat.Currency, metal zakat.Metal) error {
	switch strings.ToLower(format) {
	case "", "text":
		return WriteText(w, result, currency, metal)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(NewDocument(result, currency, metal))
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(NewDocument(result, currency, metal)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("report: unsupported format %q", format)
	}
}

// WriteText renders the human-readable report: totals, the Nisab notice,
// the breakdown of non-empty categories and any metal detail.
func WriteText(w io.Writer, result zakat.ZakatResult, currency zakat.Currency, metal zakat.Metal) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	p := func(format string, args ...any) {
		fmt.Fprintf(tw, format, args...)
	}

	p("Zakat Calculation (%s, Nisab based on %s)\n", currency.Label(), metal)
	p("Nisab Threshold\t%s\t%d%% of Nisab\n", zakat.FormatCurrency(result.NisabThreshold, currency), result.NisabPercentage())
	p("Total Assets\t%s\n", zakat.FormatCurrency(result.TotalAssets, currency))
	p("Total Liabilities\t%s\n", zakat.FormatCurrency(result.TotalLiabilities, currency))
	p("Net Zakatable Assets\t%s\n", zakat.FormatCurrency(result.NetZakatableAssets, currency))
	p("Zakat Payable\t%s\n", zakat.FormatCurrency(result.ZakatPayable, currency))

	if result.BelowNisabWithWealth() {
		p("\nNo Zakat Due: your net wealth of %s is below the Nisab threshold of %s.\n",
			zakat.FormatCurrency(result.NetZakatableAssets, currency),
			zakat.FormatCurrency(result.NisabThreshold, currency))
		p("Zakat is not obligatory, but voluntary charity (Sadaqah) is always encouraged.\n")
	}

	if items := result.NonZeroBreakdown(); result.IsEligible && len(items) > 0 {
		p("\nBreakdown by Asset Category\n")
		for _, item := range items {
			p("%s\t%s\t%s\n", item.Category,
				zakat.FormatCurrency(item.Amount, currency),
				zakat.FormatCurrency(item.ZakatAmount, currency))
		}
	}

	if d := result.Detailed; d != nil {
		if d.Gold != nil && len(d.Gold.Entries) > 0 {
			p("\nGold\n")
			for _, e := range d.Gold.Entries {
				p("%s\t%s g\t%s\t@ %s/g\t%s\n", e.ID, e.Weight, e.Purity.Label(),
					zakat.FormatCurrency(e.Rate, currency),
					zakat.FormatCurrency(e.Value, currency))
			}
			p("Total\t\t\t\t%s\n", zakat.FormatCurrency(d.Gold.Total, currency))
		}
		if d.Silver != nil {
			p("\nSilver\t%s g\t@ %s/g\t%s\n", d.Silver.Weight,
				zakat.FormatCurrency(d.Silver.Rate, currency),
				zakat.FormatCurrency(d.Silver.Value, currency))
		}
	}

	return tw.Flush()
}
