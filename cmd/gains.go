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

// gainsCmd holds the flags for the 'gains' subcommand.
type gainsCmd struct {
	output
	fund string
	lots bool
}

func (*gainsCmd) Name() string     { return "gains" }
func (*gainsCmd) Synopsis() string { return "realized capital gains, per sale and per fund" }
func (*gainsCmd) Usage() string {
	return `hsa gains [-fund <fund>] [-lots] [-format md|html|json] [-select <jsonpath>] <glob>

  Matches every sale against the earlier lots of the same fund and reports
  the cost basis, the long term and the short term gains.
`
}

func (c *gainsCmd) SetFlags(f *flag.FlagSet) {
	c.output.SetFlags(f)
	f.StringVar(&c.fund, "fund", "", "only report this fund")
	f.BoolVar(&c.lots, "lots", false, "show the lots consumed by every sale")
}

func (c *gainsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	ledger, status := loadLedger(f)
	if ledger == nil {
		return status
	}

	report, err := c.gains(ledger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing capital gains: %v\n", err)
		return subcommands.ExitFailure
	}
	return c.print(report, func() string { return renderer.GainsMarkdown(report, c.lots) })
}

// gains computes the report of every fund, or only of -fund.
func (c *gainsCmd) gains(ledger *hsa.Ledger) (*hsa.GainsReport, error) {
	if c.fund == "" {
		return ledger.CapitalGains()
	}
	txs, ok := ledger.Funds()[c.fund]
	if !ok {
		return nil, fmt.Errorf("no transaction for fund %q", c.fund)
	}
	fg, err := hsa.MatchFund(c.fund, txs)
	if err != nil {
		return nil, err
	}
	return &hsa.GainsReport{
		Funds:     []hsa.FundGains{*fg},
		CostBasis: fg.CostBasis,
		LongTerm:  fg.LongTerm,
		ShortTerm: fg.ShortTerm,
	}, nil
}
