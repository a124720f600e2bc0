package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/hsa"
	"github.com/etnz/hsa/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	output
	lots bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "dividends per year and the capital gains log" }
func (*reportCmd) Usage() string {
	return `hsa report [-lots] [-format md|html|json] [-select <jsonpath>] <glob>

  Loads every statement matching the glob, like "reports/hsa-*.html", then
  prints the total dividends per year and the realized capital gains of
  every sale, fund by fund.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	c.output.SetFlags(f)
	f.BoolVar(&c.lots, "lots", false, "show the lots consumed by every sale")
}

// fullReport is the json form of the report command.
type fullReport struct {
	Dividends []hsa.YearDividends `json:"dividends"`
	Gains     *hsa.GainsReport    `json:"gains"`
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	ledger, status := loadLedger(f)
	if ledger == nil {
		return status
	}

	gains, err := ledger.CapitalGains()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing capital gains: %v\n", err)
		return subcommands.ExitFailure
	}
	report := fullReport{Dividends: ledger.Dividends(), Gains: gains}
	return c.print(report, func() string {
		return renderer.DividendsMarkdown(report.Dividends) + "\n" + renderer.GainsMarkdown(gains, c.lots)
	})
}
