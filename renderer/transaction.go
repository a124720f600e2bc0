package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/hsa"
)

// Transaction renders a transaction to a string.
func Transaction(tx hsa.Transaction) string {
	switch tx.Category {
	case hsa.Buy:
		return fmt.Sprintf("Bought %s of %s at %s for %s", shares(tx.Shares), tx.Fund, tx.Price, tx.Amount)
	case hsa.Sell:
		return fmt.Sprintf("Sold %s of %s at %s for %s", shares(tx.Shares.Abs()), tx.Fund, tx.Price, tx.Amount.Abs())
	case hsa.Dividend:
		return fmt.Sprintf("Reinvested %s dividend in %s of %s at %s", tx.Amount, shares(tx.Shares), tx.Fund, tx.Price)
	default:
		return tx.String()
	}
}

// TransactionsMarkdown renders transactions as a table, in the given order.
func TransactionsMarkdown(txs []hsa.Transaction) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Transactions\n\n")
	if len(txs) == 0 {
		fmt.Fprintln(&b, "No transactions.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Date | Fund | Category | Description | Price | Amount | Shares | Total Shares | Total Value |")
	fmt.Fprintln(&b, "|:---|:---|:---|:---|---:|---:|---:|---:|---:|")
	for _, tx := range txs {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			tx.Date,
			cell(tx.Fund),
			tx.Category,
			cell(tx.Description),
			tx.Price,
			tx.Amount.Accounting(),
			shares(tx.Shares),
			shares(tx.TotalShares),
			tx.TotalValue,
		)
	}
	fmt.Fprintf(&b, "\n%d transactions.\n", len(txs))
	return b.String()
}
