package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/hsa"
)

// DividendsMarkdown renders the dividend income per year.
func DividendsMarkdown(years []hsa.YearDividends) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Dividends\n\n")
	if len(years) == 0 {
		fmt.Fprintln(&b, "No dividends.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Year | Amount | Count |")
	fmt.Fprintln(&b, "|:---|---:|---:|")
	for _, y := range years {
		fmt.Fprintf(&b, "| %d | %s | %d |\n", y.Year, y.Amount, y.Count)
	}
	total, count := hsa.TotalDividends(years)
	fmt.Fprintf(&b, "| **Total** | **%s** | **%d** |\n", total, count)
	return b.String()
}
