package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/subcommands"
)

const statementHeader = `<tr><td>Date</td><td>Fund</td><td>Category</td><td>Description</td><td>Price</td><td>Amount</td><td>Shares</td><td>Total Shares</td><td>Total Value</td></tr>`

func statementHTML(dateRange string, rows ...string) string {
	var b strings.Builder
	b.WriteString("<html><body><table>\n")
	b.WriteString(`<tr><td colspan="9">All Investment Transactions</td></tr>` + "\n")
	b.WriteString(`<tr><td colspan="9">Date Range: ` + dateRange + "</td></tr>\n")
	b.WriteString(statementHeader + "\n")
	for _, r := range rows {
		b.WriteString("<tr><td>" + r + "</td></tr>\n")
	}
	b.WriteString("</table></body></html>\n")
	return b.String()
}

// testStatements writes two statements of two funds and returns their glob.
func testStatements(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"hsa-2022.html": statementHTML("1/1/2022 to 12/31/2022",
			"01/03/2022</td><td>VFIAX</td><td>Buy</td><td>Contribution</td><td>$100.00</td><td>$200.00</td><td>2.000</td><td>2.000</td><td>$200.00",
			"06/15/2022</td><td>VBTLX</td><td>Buy</td><td>Contribution</td><td>$10.00</td><td>$100.00</td><td>10.000</td><td>10.000</td><td>$100.00",
			"12/20/2022</td><td>VFIAX</td><td>Dividend</td><td>Dividend Reinvestment</td><td>$110.00</td><td>$11.00</td><td>0.100</td><td>2.100</td><td>$231.00",
		),
		"hsa-2023.html": statementHTML("1/1/2023 to 12/31/2023",
			"06/01/2023</td><td>VFIAX</td><td>Sell</td><td>Distribution</td><td>$120.00</td><td>($120.00)</td><td>-1.000</td><td>1.100</td><td>$132.00",
			"12/20/2023</td><td>VFIAX</td><td>Dividend</td><td>Dividend Reinvestment</td><td>$130.00</td><td>$13.00</td><td>0.100</td><td>1.200</td><td>$156.00",
		),
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	return filepath.Join(dir, "hsa-*.html")
}

// run executes c with args and returns its status and output.
func run(t *testing.T, c subcommands.Command, args ...string) (subcommands.ExitStatus, string) {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	f.SetOutput(io.Discard)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("invalid arguments %q: %v", args, err)
	}

	var buf bytes.Buffer
	defer func(w io.Writer) { stdout = w }(stdout)
	stdout = &buf
	status := c.Execute(context.Background(), f)
	return status, buf.String()
}

func TestMissingGlob(t *testing.T) {
	for _, c := range Commands {
		t.Run(c.Name(), func(t *testing.T) {
			if status, _ := run(t, c); status != subcommands.ExitUsageError {
				t.Errorf("Execute() = %v, want %v", status, subcommands.ExitUsageError)
			}
		})
	}
}

func TestNoStatement(t *testing.T) {
	glob := filepath.Join(t.TempDir(), "*.html")
	if status, _ := run(t, &gainsCmd{}, glob); status != subcommands.ExitFailure {
		t.Errorf("Execute() = %v, want %v", status, subcommands.ExitFailure)
	}
}

func TestInvalidFormat(t *testing.T) {
	if status, _ := run(t, &dividendsCmd{}, "-format", "pdf", testStatements(t)); status != subcommands.ExitUsageError {
		t.Errorf("Execute() = %v, want %v", status, subcommands.ExitUsageError)
	}
}

func TestGainsSelect(t *testing.T) {
	glob := testStatements(t)
	tests := []struct {
		args []string
		want any
	}{
		{[]string{"-select", "$.total.amount"}, "20"},
		{[]string{"-select", "$.costBasis.amount"}, "100"},
		{[]string{"-select", "$.funds[0].fund"}, "VBTLX"},
		{[]string{"-fund", "VBTLX", "-select", "$.total.amount"}, "0"},
		{[]string{"-select", "$.funds[1].sales[0].lots[0].term"}, "long"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			status, out := run(t, &gainsCmd{}, append(tt.args, glob)...)
			if status != subcommands.ExitSuccess {
				t.Fatalf("Execute() = %v, want success", status)
			}
			var got any
			if err := json.Unmarshal([]byte(out), &got); err != nil {
				t.Fatalf("invalid json output %q: %v", out, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGainsUnknownFund(t *testing.T) {
	if status, _ := run(t, &gainsCmd{}, "-fund", "VTSAX", testStatements(t)); status != subcommands.ExitFailure {
		t.Errorf("Execute() = %v, want %v", status, subcommands.ExitFailure)
	}
}

func TestDividendsJSON(t *testing.T) {
	status, out := run(t, &dividendsCmd{}, "-format", "json", testStatements(t))
	if status != subcommands.ExitSuccess {
		t.Fatalf("Execute() = %v, want success", status)
	}
	var got []struct {
		Year   int
		Amount struct{ Amount string }
		Count  int
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid json output %q: %v", out, err)
	}
	want := []struct {
		Year   int
		Amount struct{ Amount string }
		Count  int
	}{
		{2022, struct{ Amount string }{"11"}, 1},
		{2023, struct{ Amount string }{"13"}, 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("dividends mismatch (-want +got):\n%s", diff)
	}
}

func TestReportHTML(t *testing.T) {
	status, out := run(t, &reportCmd{}, "-format", "html", "-lots", testStatements(t))
	if status != subcommands.ExitSuccess {
		t.Fatalf("Execute() = %v, want success", status)
	}
	for _, w := range []string{"<h1>Dividends</h1>", "<h1>Capital Gains</h1>", "<h2>VFIAX</h2>", "+$20.00", "<table>"} {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q in:\n%s", w, out)
		}
	}
}

func TestTransactionsFilter(t *testing.T) {
	glob := testStatements(t)
	tests := []struct {
		args []string
		want int
	}{
		{nil, 5},
		{[]string{"-fund", "VFIAX"}, 4},
		{[]string{"-category", "Dividend"}, 2},
		{[]string{"-fund", "VBTLX", "-category", "Sell"}, 0},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			status, out := run(t, &transactionsCmd{}, append(append(tt.args, "-format", "json"), glob)...)
			if status != subcommands.ExitSuccess {
				t.Fatalf("Execute() = %v, want success", status)
			}
			var got []json.RawMessage
			if err := json.Unmarshal([]byte(out), &got); err != nil {
				t.Fatalf("invalid json output %q: %v", out, err)
			}
			if len(got) != tt.want {
				t.Errorf("got %d transactions, want %d", len(got), tt.want)
			}
		})
	}
}

func TestTransactionsInvalidCategory(t *testing.T) {
	if status, _ := run(t, &transactionsCmd{}, "-category", "Transfer", testStatements(t)); status != subcommands.ExitUsageError {
		t.Errorf("Execute() = %v, want %v", status, subcommands.ExitUsageError)
	}
}

func TestCompletion(t *testing.T) {
	c := Completion()
	for _, name := range []string{"report", "gains", "dividends", "transactions"} {
		sub, ok := c.Sub[name]
		if !ok {
			t.Errorf("missing %q completion", name)
			continue
		}
		if _, ok := sub.Flags["format"]; !ok {
			t.Errorf("%s: missing -format completion", name)
		}
		if sub.Args == nil {
			t.Errorf("%s: missing argument completion", name)
		}
	}
	if got := c.Sub["transactions"].Flags["category"].Predict(""); !cmp.Equal(got, []string{"Buy", "Sell", "Dividend"}) {
		t.Errorf("category predictions = %v", got)
	}
}
