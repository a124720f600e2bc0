package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/hsa"
)

// GainsMarkdown renders the capital gains log: one table per fund with a row
// per sale and the running totals, followed by the totals per fund.
//
// With showLots, every sale is followed by the lots it consumed.
func GainsMarkdown(report *hsa.GainsReport, showLots bool) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Capital Gains\n\n")
	for _, fg := range report.Funds {
		ConditionalBlock(&b, func(w io.Writer) bool {
			fundGains(w, fg, showLots)
			return len(fg.Sales) > 0
		})
	}

	totals := Header(func(w io.Writer) {
		fmt.Fprint(w, "## Totals\n\n")
		fmt.Fprintln(w, "| Fund | Basis | Long Term | Short Term | Total |")
		fmt.Fprintln(w, "|:---|---:|---:|---:|---:|")
	}).Footer(func(w io.Writer) {
		fmt.Fprintf(w, "| **%s** | **%s** | **%s** | **%s** | **%s** |\n",
			"Total",
			report.CostBasis,
			report.LongTerm.SignedString(),
			report.ShortTerm.SignedString(),
			report.Total().SignedString(),
		)
	})
	sold := false
	for _, fg := range report.Funds {
		if len(fg.Sales) == 0 {
			continue
		}
		sold = true
		totals.PrintHeader(&b)
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			cell(fg.Fund),
			fg.CostBasis,
			fg.LongTerm.SignedString(),
			fg.ShortTerm.SignedString(),
			fg.Total().SignedString(),
		)
	}
	totals.PrintFooter(&b)

	if !sold {
		fmt.Fprintln(&b, "No sales.")
	}
	return b.String()
}

func fundGains(w io.Writer, fg hsa.FundGains, showLots bool) {
	fmt.Fprintf(w, "## %s\n\n", fg.Fund)
	fmt.Fprintln(w, "| Date | Shares | Price | Proceeds | Basis | Long Term | Short Term | Total LTG | Total STG | Total Basis |")
	fmt.Fprintln(w, "|:---|---:|---:|---:|---:|---:|---:|---:|---:|---:|")
	for _, s := range fg.Sales {
		fmt.Fprintf(w, "| %s | %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			s.Sale.Date,
			shares(s.Sale.Shares.Abs()),
			s.Sale.Price,
			s.Sale.Amount.Abs(),
			s.CostBasis,
			s.LongTerm.SignedString(),
			s.ShortTerm.SignedString(),
			s.RunningLongTerm.SignedString(),
			s.RunningShortTerm.SignedString(),
			s.RunningCostBasis,
		)
	}
	fmt.Fprintln(w)

	if !showLots {
		return
	}
	for _, s := range fg.Sales {
		fmt.Fprintf(w, "### %s %s\n\n", s.Sale.Date, Transaction(s.Sale))
		fmt.Fprintln(w, "| Lot | Category | Price | Shares | Cost | Proceeds | Gain | Term |")
		fmt.Fprintln(w, "|:---|:---|---:|---:|---:|---:|---:|:---|")
		for _, m := range s.Matches {
			fmt.Fprintf(w, "| %s | %s | %s | %s | %s | %s | %s | %s |\n",
				m.Lot.Date,
				m.Lot.Category,
				m.Lot.Price,
				shares(m.Shares),
				m.Cost,
				m.Proceeds,
				m.Gain().SignedString(),
				m.Term,
			)
		}
		fmt.Fprintln(w)
	}
}
