package pnltrack

// Filter returns the entries passing the window, preserving their relative
// order in the book. The underlying entries are shared, not copied: filtering
// never mutates the book.
//
// An entry passes if its date is inside the (inclusive) bounds and, when the
// window restricts to one account, the entry mentions that account. Note the
// account restriction gates whole entries: a passing entry still carries all
// of its accounts.
func (b *Book) Filter(w Window) []*Entry {
	filtered := make([]*Entry, 0, len(b.entries))
	for _, e := range b.entries {
		if w.Matches(e) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
