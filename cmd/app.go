// Package cmd implements the CLI application to manage a book of balance
// snapshots and report P&L on them.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/minhvu/pnltrack"
)

// Commands lists the subcommands a main package should register.
var Commands = []subcommands.Command{
	&addCmd{},
	&tableCmd{},
	&summaryCmd{},
	&editCmd{},
	&deleteCmd{},
	&importCmd{},
	&exportCmd{},
	&accountsCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var bookFile = flag.String("f", "book.json", "Path to the book file (JSON format)")
var currency = flag.String("c", "USD", "Display currency for amounts")

// loadBook reads the book file. A missing file yields an empty book so that
// the very first 'add' works without setup.
func loadBook() (*pnltrack.Book, error) {
	f, err := os.Open(*bookFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, book file %q does not exist, starting with an empty book", *bookFile)
		return pnltrack.NewBook(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open book file %q: %w", *bookFile, err)
	}
	defer f.Close()

	book, err := pnltrack.DecodeBook(f)
	if err != nil {
		return nil, fmt.Errorf("cannot decode book file %q: %w", *bookFile, err)
	}
	return book, nil
}

// saveBook writes the book back atomically: encode to a sibling temp file,
// then rename over the original.
func saveBook(book *pnltrack.Book) error {
	dir := filepath.Dir(*bookFile)
	tmp, err := os.CreateTemp(dir, ".book-*.json")
	if err != nil {
		return fmt.Errorf("cannot create temp book file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := pnltrack.EncodeBook(tmp, book); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), *bookFile); err != nil {
		return fmt.Errorf("cannot replace book file %q: %w", *bookFile, err)
	}
	return nil
}

// printMarkdown renders a markdown report for the terminal. If rendering
// fails (e.g. no usable terminal profile), the raw markdown is printed.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// parseWindow builds a query window from the shared -from/-to/-a flag values.
func parseWindow(from, to, account string) (pnltrack.Window, error) {
	var w pnltrack.Window
	var err error
	if from != "" {
		if w.From, err = pnltrack.ParseDate(from); err != nil {
			return w, fmt.Errorf("invalid -from: %w", err)
		}
	}
	if to != "" {
		if w.To, err = pnltrack.ParseDate(to); err != nil {
			return w, fmt.Errorf("invalid -to: %w", err)
		}
	}
	w.Account = account
	return w, nil
}
