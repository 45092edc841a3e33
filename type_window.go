package pnltrack

// Window narrows a query to a date range and/or a single account.
//
// A zero From or To means unbounded in that direction, an empty Account means
// all accounts. Boundaries are inclusive and compared at day precision.
type Window struct {
	From    Date
	To      Date
	Account string
}

// Contains reports whether a date falls inside the window's date bounds.
func (w Window) Contains(d Date) bool {
	if !w.From.IsZero() && d.Before(w.From) {
		return false
	}
	if !w.To.IsZero() && d.After(w.To) {
		return false
	}
	return true
}

// Matches reports whether an entry passes the window: the entry date is within
// bounds and, when an account restriction is set, the entry mentions it.
func (w Window) Matches(e *Entry) bool {
	if w.Account != "" && !e.Has(w.Account) {
		return false
	}
	return w.Contains(e.Date)
}
