package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/minhvu/pnltrack/renderer"
)

// tableCmd holds the flags for the 'table' subcommand.
type tableCmd struct {
	from    string
	to      string
	account string
	ids     bool
}

func (*tableCmd) Name() string     { return "table" }
func (*tableCmd) Synopsis() string { return "display the transaction history with P&L figures" }
func (*tableCmd) Usage() string {
	return `plt table [-from <date>] [-to <date>] [-a <account>] [-ids]

  Displays one row per (date, account) snapshot with the daily and cumulative
  P&L, optionally narrowed to a date range and/or one account.
`
}

func (c *tableCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Inclusive lower date bound (YYYY-MM-DD)")
	f.StringVar(&c.to, "to", "", "Inclusive upper date bound (YYYY-MM-DD)")
	f.StringVar(&c.account, "a", "", "Restrict to entries mentioning this account")
	f.BoolVar(&c.ids, "ids", false, "Also list entry identifiers (for edit/delete -id)")
}

func (c *tableCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	rows := book.Rows(w)
	printMarkdown(renderer.Rows(rows, *currency))

	if c.ids {
		for _, r := range rows {
			fmt.Printf("%s  %s  %s\n", r.EntryID, r.Date, r.Account)
		}
	}
	return subcommands.ExitSuccess
}
