package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/minhvu/pnltrack"
)

// --- Import Command ---

type importCmd struct {
	input string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the book with a JSON snapshot collection" }
func (*importCmd) Usage() string {
	return `plt import [-i <file>]

  Reads a JSON array of snapshot entries (from a file or stdin) and replaces
  the book with it. Validation is all-or-nothing: one malformed record rejects
  the whole payload and the book is left untouched.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "File to import, defaults to stdin")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var r io.Reader = os.Stdin
	if c.input != "" {
		file, err := os.Open(c.input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening import file %q: %v\n", c.input, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		r = file
	}

	book, err := pnltrack.DecodeBook(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing data: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := saveBook(book); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %d entries into %s\n", book.Len(), *bookFile)
	return subcommands.ExitSuccess
}

// --- Export Command ---

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the whole book as indented JSON" }
func (*exportCmd) Usage() string {
	return `plt export [-o <file>]

  Writes the full book, date-sorted, as an indented JSON array (to a file or
  stdout). The output re-imports to an identical book.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "File to write, defaults to stdout")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := loadBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var w io.Writer = os.Stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating export file %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		w = file
	}

	if err := pnltrack.EncodeBook(w, book); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting data: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
