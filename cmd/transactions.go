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

type transactionsCmd struct {
	output
	fund     string
	category string
}

func (*transactionsCmd) Name() string     { return "transactions" }
func (*transactionsCmd) Synopsis() string { return "list the statement transactions in chronological order" }
func (*transactionsCmd) Usage() string {
	return `hsa transactions [-fund <fund>] [-category Buy|Sell|Dividend] [-format md|html|json] [-select <jsonpath>] <glob>

  Lists the transactions of every statement matching the glob.
`
}

func (c *transactionsCmd) SetFlags(f *flag.FlagSet) {
	c.output.SetFlags(f)
	f.StringVar(&c.fund, "fund", "", "only list this fund")
	f.StringVar(&c.category, "category", "", "only list this category (Buy, Sell, Dividend)")
}

func (c *transactionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	var category hsa.Category
	if c.category != "" {
		var err error
		if category, err = hsa.ParseCategory(c.category); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	ledger, status := loadLedger(f)
	if ledger == nil {
		return status
	}

	txs := []hsa.Transaction{}
	for _, tx := range ledger.Transactions() {
		if c.fund != "" && tx.Fund != c.fund {
			continue
		}
		if category != 0 && tx.Category != category {
			continue
		}
		txs = append(txs, tx)
	}
	return c.print(txs, func() string { return renderer.TransactionsMarkdown(txs) })
}
