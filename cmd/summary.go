package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/minhvu/pnltrack"
	"github.com/minhvu/pnltrack/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	from    string
	to      string
	account string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display per-account and overall P&L summaries" }
func (*summaryCmd) Usage() string {
	return `plt summary [-from <date>] [-to <date>] [-a <account>]

  Displays, for each account active in the period, the opening and closing
  balances, the capital moved, and the flow-corrected period P&L. Without a
  window it also shows the overall all-time summary.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Inclusive lower date bound (YYYY-MM-DD)")
	f.StringVar(&c.to, "to", "", "Inclusive upper date bound (YYYY-MM-DD)")
	f.StringVar(&c.account, "a", "", "Restrict to entries mentioning this account")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, err := parseWindow(c.from, c.to, c.account)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	book, err := loadBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var b strings.Builder
	b.WriteString(renderer.Summaries(book.SummarizeAll(w), *currency))
	if w == (pnltrack.Window{}) {
		b.WriteString("\n")
		b.WriteString(renderer.Summary(book.Summary(), *currency))
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
