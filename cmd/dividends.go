package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/hsa/renderer"
	"github.com/google/subcommands"
)

type dividendsCmd struct {
	output
}

func (*dividendsCmd) Name() string     { return "dividends" }
func (*dividendsCmd) Synopsis() string { return "total dividends per year" }
func (*dividendsCmd) Usage() string {
	return `hsa dividends [-format md|html|json] [-select <jsonpath>] <glob>

  Sums the reinvested dividends of every fund, per calendar year.
`
}

func (c *dividendsCmd) SetFlags(f *flag.FlagSet) { c.output.SetFlags(f) }

func (c *dividendsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	ledger, status := loadLedger(f)
	if ledger == nil {
		return status
	}
	years := ledger.Dividends()
	return c.print(years, func() string { return renderer.DividendsMarkdown(years) })
}
