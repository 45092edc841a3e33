package pnltrack

import (
	"maps"
	"slices"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountRecord is the end-of-period state of one account on one date: the
// closing balance plus the capital that moved in or out during the period.
// All three fields are non-negative; this is enforced at the input boundary.
type AccountRecord struct {
	Balance  decimal.Decimal
	Deposit  decimal.Decimal
	Withdraw decimal.Decimal
}

// NetFlow returns deposit minus withdraw, the capital movement of the period.
func (r AccountRecord) NetFlow() decimal.Decimal {
	return r.Deposit.Sub(r.Withdraw)
}

// Entry is one dated snapshot of one or more accounts.
//
// Each account name appears at most once within an entry. Several entries may
// share the same date; their relative order in the book is the tie-break for
// every chronological computation. Each entry carries a surrogate identifier
// so that duplicate (date, account) pairs can still be addressed precisely.
type Entry struct {
	id       uuid.UUID
	Date     Date
	Accounts map[string]AccountRecord
}

// NewEntry creates an empty entry for the given date with a fresh identifier.
func NewEntry(on Date) *Entry {
	return &Entry{
		id:       uuid.New(),
		Date:     on,
		Accounts: make(map[string]AccountRecord),
	}
}

// ID returns the entry's surrogate identifier.
func (e *Entry) ID() uuid.UUID { return e.id }

// Has reports whether the entry mentions the given account.
func (e *Entry) Has(account string) bool {
	_, ok := e.Accounts[account]
	return ok
}

// Record returns the account's record within this entry, if any.
func (e *Entry) Record(account string) (AccountRecord, bool) {
	r, ok := e.Accounts[account]
	return r, ok
}

// AccountNames returns the entry's account names in lexicographic order.
func (e *Entry) AccountNames() []string {
	names := slices.Collect(maps.Keys(e.Accounts))
	slices.Sort(names)
	return names
}
