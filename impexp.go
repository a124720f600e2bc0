package hsa

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/net/html"
)

// this file decodes the "All Investment Transactions" report that the HSA
// custodian exports as an HTML table:
//
//	row 0: a single cell titled "All Investment Transactions"
//	row 1: a single cell "Date Range: 1/1/2023 to 12/31/2023"
//	row 2: the header, one cell per column
//	row 3+: one transaction per row
//
// Columns are Date, Fund, Category, Description, Price, Amount, Shares,
// Total Shares and Total Value.

const statementTitle = "All Investment Transactions"

// statementColumns is the number of cells of header and transaction rows.
const statementColumns = 9

var dateRangeRE = regexp.MustCompile(`Date Range:\s*(\d+/\d+/\d+)\s*to\s*(\d+/\d+/\d+)`)

// Statement is one decoded report.
type Statement struct {
	Name         string // File name, if any.
	Range        Range  // Period covered, as announced by the report.
	Transactions []Transaction
}

// DecodeStatement decodes a report from r.
//
// Decoding is strict: the first malformed row fails the whole statement.
func DecodeStatement(r io.Reader) (*Statement, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("cannot parse statement html: %w", err)
	}

	rows := findRows(doc)
	if len(rows) < 3 {
		return nil, fmt.Errorf("statement has %d rows, want at least a title, a date range and a header", len(rows))
	}

	s := new(Statement)
	for i, cells := range rows {
		switch i {
		case 0:
			if len(cells) != 1 || !strings.Contains(cells[0], statementTitle) {
				return nil, fmt.Errorf("row %d: want a single %q title cell, got %q", i, statementTitle, cells)
			}
		case 1:
			if len(cells) != 1 {
				return nil, fmt.Errorf("row %d: want a single date range cell, got %d cells", i, len(cells))
			}
			s.Range, err = parseDateRange(cells[0])
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
		case 2:
			if err := checkHeader(cells); err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
		default:
			tx, err := parseTransaction(cells)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
			s.Transactions = append(s.Transactions, tx)
		}
	}
	return s, nil
}

// Stray returns the transactions dated outside the statement range.
func (s *Statement) Stray() []Transaction {
	var stray []Transaction
	for _, tx := range s.Transactions {
		if !s.Range.Contains(tx.Date) {
			stray = append(stray, tx)
		}
	}
	return stray
}

// parseDateRange parses the "Date Range: <from> to <to>" cell.
func parseDateRange(cell string) (Range, error) {
	m := dateRangeRE.FindStringSubmatch(cell)
	if m == nil {
		return Range{}, fmt.Errorf("invalid date range: %q", cell)
	}
	from, err := ParseDate(m[1])
	if err != nil {
		return Range{}, fmt.Errorf("invalid date range start: %w", err)
	}
	to, err := ParseDate(m[2])
	if err != nil {
		return Range{}, fmt.Errorf("invalid date range end: %w", err)
	}
	if to.Before(from) {
		return Range{}, fmt.Errorf("invalid date range: %s is before %s", to, from)
	}
	return Range{From: from, To: to}, nil
}

func checkHeader(cells []string) error {
	if len(cells) != statementColumns {
		return fmt.Errorf("header has %d columns, want %d", len(cells), statementColumns)
	}
	if !strings.Contains(cells[0], "Date") {
		return fmt.Errorf("first column is %q, want Date", cells[0])
	}
	if !strings.Contains(cells[1], "Fund") {
		return fmt.Errorf("second column is %q, want Fund", cells[1])
	}
	return nil
}

func parseTransaction(cells []string) (Transaction, error) {
	if len(cells) != statementColumns {
		return Transaction{}, fmt.Errorf("transaction has %d columns, want %d", len(cells), statementColumns)
	}

	var tx Transaction
	var err error
	if tx.Date, err = ParseDate(cells[0]); err != nil {
		return tx, err
	}
	tx.Fund = cells[1]
	if tx.Category, err = ParseCategory(cells[2]); err != nil {
		return tx, err
	}
	tx.Description = cells[3]

	var values [5]decimal.Decimal
	for i := range values {
		col := 4 + i
		if values[i], err = parseNumber(cells[col]); err != nil {
			return tx, fmt.Errorf("column %d: %w", col, err)
		}
	}
	tx.Price = USD(values[0])
	tx.Amount = USD(values[1])
	tx.Shares = Q(values[2])
	tx.TotalShares = Q(values[3])
	tx.TotalValue = USD(values[4])

	if err := tx.Validate(); err != nil {
		return tx, err
	}
	return tx, nil
}

// parseNumber parses statement numbers and currency values: "1,234.5",
// "$1,234.56" or "($12.34)" for negative amounts.
func parseNumber(cell string) (decimal.Decimal, error) {
	s := strings.TrimSpace(cell)
	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}
	if strings.HasPrefix(s, "-") {
		negative = !negative
		s = s[1:]
	}
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return decimal.Decimal{}, fmt.Errorf("invalid number %q", cell)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid number %q: %w", cell, err)
	}
	if negative {
		d = d.Neg()
	}
	return d, nil
}

// findRows returns the text of the cells of every table row of the
// document, in document order.
func findRows(n *html.Node) [][]string {
	var rows [][]string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" {
			rows = append(rows, findCells(n))
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return rows
}

func findCells(tr *html.Node) []string {
	var cells []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "td" || n.Data == "th") {
			cells = append(cells, strings.TrimSpace(text(n)))
			return
		}
		// nested tables own their cells
		if n != tr && n.Type == html.ElementNode && n.Data == "tr" {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(tr)
	return cells
}

// text returns the concatenated text nodes under n, with runs of whitespace
// collapsed.
func text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}
