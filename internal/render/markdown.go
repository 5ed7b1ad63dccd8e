package render

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/Rhymond/go-money"
	md "github.com/nao1215/markdown"

	"portfolio-dashboard/internal/portfolio"
)

// Currency formats a value as Indian rupees.
func Currency(v float64) string {
	return money.NewFromFloat(v, money.INR).Display()
}

func Number(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Percent renders with an explicit sign, matching the gain/loss convention.
func Percent(v float64) string {
	return fmt.Sprintf("%+.2f%%", v)
}

// Markdown renders a portfolio snapshot as a sector-grouped markdown report.
func Markdown(s portfolio.Snapshot) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio Dashboard")
	doc.PlainText(fmt.Sprintf("Investment %s | Present Value %s | Gain/Loss %s (%s)",
		Currency(s.TotalInvestment),
		Currency(s.TotalPresentValue),
		Currency(s.TotalGainLoss),
		Percent(s.TotalGainLossPct),
	))

	for _, sec := range s.Sectors {
		doc.H2(fmt.Sprintf("%s (%s of portfolio)", sec.Sector, Percent(sec.PortfolioPct)))

		rows := make([][]string, 0, len(sec.Holdings))
		for _, h := range sec.Holdings {
			rows = append(rows, []string{
				h.Name,
				h.Symbol,
				strconv.Itoa(h.Qty),
				Number(h.CMP),
				Currency(h.Investment),
				Currency(h.PresentValue),
				Currency(h.GainLoss),
				Percent(h.GainLossPct),
			})
		}
		doc.Table(md.TableSet{
			Header: []string{"Stock", "Symbol", "Qty", "CMP", "Investment", "Present Value", "Gain/Loss", "Gain/Loss %"},
			Rows:   rows,
		})
		doc.PlainText(fmt.Sprintf("Sector total: %s invested, %s now, %s (%s)",
			Currency(sec.TotalInvestment),
			Currency(sec.TotalPresentValue),
			Currency(sec.TotalGainLoss),
			Percent(sec.TotalGainLossPct),
		))
	}

	return doc.String()
}
