// Package cmd implements the hsa command line: capital gains and dividend
// reports over a set of exported HSA statements.
package cmd

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"slices"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/hsa"
	"github.com/etnz/hsa/renderer"
	"github.com/google/subcommands"
)

// Commands is the list of all hsa subcommands.
var Commands = []subcommands.Command{
	&reportCmd{},
	&gainsCmd{},
	&dividendsCmd{},
	&transactionsCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// Verbose enables informational messages: files found, statement ranges and coverage warnings.
var Verbose = flag.Bool("v", false, "print informational messages about the statements being loaded")

var style = flag.String("style", "auto", "markdown rendering style (auto, dark, light, notty, ascii, or env to use GLAMOUR_STYLE)")

// Styles are the accepted values of the -style flag.
var Styles = []string{"auto", "dark", "light", "notty", "ascii", "env"}

// stdout is where reports are written.
var stdout io.Writer = os.Stdout

// SetupLogging configures the standard logger according to the global flags.
// It must be called after the flags are parsed.
func SetupLogging() {
	log.SetFlags(0)
	log.SetPrefix("hsa: ")
	if !*Verbose {
		log.SetOutput(io.Discard)
	}
}

// loadLedger loads the statements matching the single positional argument.
func loadLedger(f *flag.FlagSet) (*hsa.Ledger, subcommands.ExitStatus) {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: missing HSA report glob.")
		f.Usage()
		return nil, subcommands.ExitUsageError
	}
	ledger, err := hsa.LoadStatements(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading statements: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	return ledger, subcommands.ExitSuccess
}

// printMarkdown renders md for the terminal. If rendering fails the raw
// markdown is printed.
func printMarkdown(md string) {
	opt := glamour.WithStandardStyle(*style)
	if *style == "env" {
		opt = glamour.WithEnvironmentConfig()
	}
	r, err := glamour.NewTermRenderer(opt, glamour.WithWordWrap(0))
	if err != nil {
		log.Printf("cannot create markdown renderer: %v", err)
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		log.Printf("cannot render markdown: %v", err)
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}

// Formats are the accepted values of the -format flag.
var Formats = []string{"md", "html", "json"}

// output holds the flags shared by commands printing a report.
type output struct {
	format   string
	selector string
}

func (o *output) SetFlags(f *flag.FlagSet) {
	f.StringVar(&o.format, "format", "md", "output format (md, html, json)")
	f.StringVar(&o.selector, "select", "", "JSONPath expression selecting a part of the json report, like $.total.amount. Implies -format json")
}

// validate checks the flags before any statement is loaded.
func (o *output) validate() error {
	if !slices.Contains(Formats, o.format) {
		return fmt.Errorf("unknown format %q, want one of %v", o.format, Formats)
	}
	if o.selector != "" {
		o.format = "json"
	}
	return nil
}

// print writes the report: md renders the markdown version and v is encoded
// for the json format.
func (o *output) print(v any, md func() string) subcommands.ExitStatus {
	switch o.format {
	case "html":
		h, err := renderer.HTML(md())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprint(stdout, h)
	case "json":
		if o.selector != "" {
			var err error
			if v, err = hsa.Select(v, o.selector); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return subcommands.ExitFailure
			}
		}
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding report: %v\n", err)
			return subcommands.ExitFailure
		}
	default:
		printMarkdown(md())
	}
	return subcommands.ExitSuccess
}
