package pnltrack

import (
	"iter"
	"slices"
	"sort"

	"github.com/google/uuid"
)

// Book holds the full collection of snapshot entries.
//
// In a Book entries are always in chronological order. The sort is stable:
// entries sharing a date keep their original relative order, and that order is
// the tie-break for every computation that needs an "earlier" same-date entry.
type Book struct {
	entries []*Entry
}

// NewBook creates an empty book.
func NewBook() *Book {
	return &Book{entries: make([]*Entry, 0)}
}

// Append appends entries to this book and maintains the chronological order.
func (b *Book) Append(entries ...*Entry) {
	b.entries = append(b.entries, entries...)
	b.stableSort()
}

// stableSort sorts the book by entry date. The sort is stable, meaning entries
// on the same day maintain their original relative order.
func (b *Book) stableSort() {
	sort.SliceStable(b.entries, func(i, j int) bool {
		return b.entries[i].Date.Before(b.entries[j].Date)
	})
}

// Len returns the number of entries in the book.
func (b *Book) Len() int { return len(b.entries) }

// Entries returns an iterator that yields each entry in chronological order.
func (b *Book) Entries() iter.Seq2[int, *Entry] {
	return func(yield func(int, *Entry) bool) {
		for i, e := range b.entries {
			if !yield(i, e) {
				return
			}
		}
	}
}

// EntriesFor returns an iterator over the entries mentioning the given
// account, in chronological order with the book's same-date tie-break.
func (b *Book) EntriesFor(account string) iter.Seq[*Entry] {
	return func(yield func(*Entry) bool) {
		for _, e := range b.entries {
			if !e.Has(account) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// AllAccounts returns the union of account names across all entries, in
// lexicographic order for stable display.
func (b *Book) AllAccounts() []string {
	visited := make(map[string]struct{})
	for _, e := range b.entries {
		for name := range e.Accounts {
			visited[name] = struct{}{}
		}
	}
	names := make([]string, 0, len(visited))
	for name := range visited {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// FirstEntryFor returns the chronologically earliest entry mentioning the
// account, or nil if the account is unknown. Its balance is the account's
// baseline, the zero-point for cumulative P&L.
func (b *Book) FirstEntryFor(account string) *Entry {
	for e := range b.EntriesFor(account) {
		return e
	}
	return nil
}

// LastEntryBefore returns the latest entry for the account dated strictly
// before 'on', or nil if none exists. This is the entry that carries an
// account's balance "immediately before" a window starts.
func (b *Book) LastEntryBefore(account string, on Date) *Entry {
	var last *Entry
	for e := range b.EntriesFor(account) {
		if !e.Date.Before(on) {
			break
		}
		last = e
	}
	return last
}

// OldestDate returns the date of the earliest entry in the book.
func (b *Book) OldestDate() Date {
	if len(b.entries) == 0 {
		return Date{}
	}
	return b.entries[0].Date
}

// NewestDate returns the date of the latest entry in the book.
func (b *Book) NewestDate() Date {
	if len(b.entries) == 0 {
		return Date{}
	}
	return b.entries[len(b.entries)-1].Date
}

// FindByID returns the entry with the given surrogate identifier, or nil.
func (b *Book) FindByID(id uuid.UUID) *Entry {
	for _, e := range b.entries {
		if e.id == id {
			return e
		}
	}
	return nil
}

// find returns the chronologically first entry matching (date, account).
// When duplicate same-date entries exist for the account, the first one in
// book order wins; callers holding an entry ID can address the others.
func (b *Book) find(on Date, account string) *Entry {
	for _, e := range b.entries {
		if e.Date == on && e.Has(account) {
			return e
		}
	}
	return nil
}

// Record merges one account snapshot into the book. If an entry already
// exists on that date without the account, the record is added to it;
// otherwise a new entry is appended.
func (b *Book) Record(on Date, account string, rec AccountRecord) *Entry {
	for _, e := range b.entries {
		if e.Date == on && !e.Has(account) {
			e.Accounts[account] = rec
			return e
		}
	}
	e := NewEntry(on)
	e.Accounts[account] = rec
	b.Append(e)
	return e
}

// Edit locates the entry matching (date, account) and replaces the account's
// record. When newAccount differs from account the record moves to the new
// name within the same entry. Returns a NotFoundError when nothing matches.
func (b *Book) Edit(on Date, account, newAccount string, rec AccountRecord) error {
	e := b.find(on, account)
	if e == nil {
		return &NotFoundError{Date: on, Account: account}
	}
	return b.editEntry(e, account, newAccount, rec)
}

// EditByID is like Edit but addresses the entry by its surrogate identifier,
// disambiguating duplicate (date, account) pairs.
func (b *Book) EditByID(id uuid.UUID, account, newAccount string, rec AccountRecord) error {
	e := b.FindByID(id)
	if e == nil || !e.Has(account) {
		return &NotFoundError{Account: account}
	}
	return b.editEntry(e, account, newAccount, rec)
}

func (b *Book) editEntry(e *Entry, account, newAccount string, rec AccountRecord) error {
	if newAccount == "" {
		newAccount = account
	}
	if newAccount != account {
		delete(e.Accounts, account)
	}
	e.Accounts[newAccount] = rec
	b.stableSort()
	return nil
}

// Delete locates the entry matching (date, account) and removes the account
// from it. An entry left with no accounts is removed from the book entirely.
// Returns a NotFoundError when nothing matches.
func (b *Book) Delete(on Date, account string) error {
	e := b.find(on, account)
	if e == nil {
		return &NotFoundError{Date: on, Account: account}
	}
	b.deleteFrom(e, account)
	return nil
}

// DeleteByID is like Delete but addresses the entry by its surrogate identifier.
func (b *Book) DeleteByID(id uuid.UUID, account string) error {
	e := b.FindByID(id)
	if e == nil || !e.Has(account) {
		return &NotFoundError{Account: account}
	}
	b.deleteFrom(e, account)
	return nil
}

func (b *Book) deleteFrom(e *Entry, account string) {
	delete(e.Accounts, account)
	if len(e.Accounts) > 0 {
		return
	}
	b.entries = slices.DeleteFunc(b.entries, func(x *Entry) bool { return x == e })
}
