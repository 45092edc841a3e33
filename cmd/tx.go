package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/google/uuid"
	"github.com/minhvu/pnltrack"
	"github.com/shopspring/decimal"
)

// parseAmount parses a non-negative decimal flag value; empty means zero.
func parseAmount(name, value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid -%s %q: %w", name, value, err)
	}
	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("-%s must not be negative", name)
	}
	return d, nil
}

// --- Add Command ---

type addCmd struct {
	date     string
	account  string
	balance  string
	deposit  string
	withdraw string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record an account balance snapshot" }
func (*addCmd) Usage() string {
	return `plt add -a <account> -b <balance> [-d <date>] [-in <deposit>] [-out <withdraw>]

  Records the end-of-period balance of one account on a date, along with the
  capital deposited or withdrawn during the period. When an entry for that
  date already exists without the account, the snapshot joins it.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", pnltrack.Today().String(), "Snapshot date (YYYY-MM-DD)")
	f.StringVar(&c.account, "a", "", "Account name")
	f.StringVar(&c.balance, "b", "", "End-of-period balance")
	f.StringVar(&c.deposit, "in", "", "Capital deposited during the period")
	f.StringVar(&c.withdraw, "out", "", "Capital withdrawn during the period")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" || c.balance == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := pnltrack.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	var rec pnltrack.AccountRecord
	if rec.Balance, err = parseAmount("b", c.balance); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if rec.Deposit, err = parseAmount("in", c.deposit); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if rec.Withdraw, err = parseAmount("out", c.withdraw); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	book, err := loadBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	book.Record(day, c.account, rec)
	if err := saveBook(book); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded %s snapshot for %q in %s\n", day, c.account, *bookFile)
	return subcommands.ExitSuccess
}

// --- Edit Command ---

type editCmd struct {
	date       string
	account    string
	id         string
	newAccount string
	balance    string
	deposit    string
	withdraw   string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "replace an existing snapshot's fields" }
func (*editCmd) Usage() string {
	return `plt edit -d <date> -a <account> -b <balance> [-in <deposit>] [-out <withdraw>] [-rename <account>] [-id <entry-id>]

  Replaces the snapshot identified by (date, account). When duplicate entries
  share the date, the chronologically first match is edited; pass -id (shown
  by 'plt table') to target a specific one. -rename moves the snapshot to a
  new account name within the same entry.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Snapshot date (YYYY-MM-DD)")
	f.StringVar(&c.account, "a", "", "Account name")
	f.StringVar(&c.id, "id", "", "Entry identifier, to disambiguate duplicates")
	f.StringVar(&c.newAccount, "rename", "", "New account name")
	f.StringVar(&c.balance, "b", "", "End-of-period balance")
	f.StringVar(&c.deposit, "in", "", "Capital deposited during the period")
	f.StringVar(&c.withdraw, "out", "", "Capital withdrawn during the period")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" || c.balance == "" || (c.date == "" && c.id == "") {
		f.Usage()
		return subcommands.ExitUsageError
	}

	var rec pnltrack.AccountRecord
	var err error
	if rec.Balance, err = parseAmount("b", c.balance); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if rec.Deposit, err = parseAmount("in", c.deposit); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if rec.Withdraw, err = parseAmount("out", c.withdraw); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	book, err := loadBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.id != "" {
		id, err := uuid.Parse(c.id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -id: %v\n", err)
			return subcommands.ExitUsageError
		}
		err = book.EditByID(id, c.account, c.newAccount, rec)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	} else {
		day, err := pnltrack.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
		if err := book.Edit(day, c.account, c.newAccount, rec); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	if err := saveBook(book); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated snapshot for %q in %s\n", c.account, *bookFile)
	return subcommands.ExitSuccess
}

// --- Delete Command ---

type deleteCmd struct {
	date    string
	account string
	id      string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "remove a snapshot from the book" }
func (*deleteCmd) Usage() string {
	return `plt delete -d <date> -a <account> [-id <entry-id>]

  Removes the snapshot identified by (date, account). An entry left with no
  accounts is removed entirely. Pass -id to target a specific duplicate.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Snapshot date (YYYY-MM-DD)")
	f.StringVar(&c.account, "a", "", "Account name")
	f.StringVar(&c.id, "id", "", "Entry identifier, to disambiguate duplicates")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" || (c.date == "" && c.id == "") {
		f.Usage()
		return subcommands.ExitUsageError
	}

	book, err := loadBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.id != "" {
		id, err := uuid.Parse(c.id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -id: %v\n", err)
			return subcommands.ExitUsageError
		}
		if err := book.DeleteByID(id, c.account); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	} else {
		day, err := pnltrack.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
		if err := book.Delete(day, c.account); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	if err := saveBook(book); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted snapshot for %q from %s\n", c.account, *bookFile)
	return subcommands.ExitSuccess
}
