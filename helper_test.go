package pnltrack

import (
	"testing"

	"github.com/shopspring/decimal"
)

// rec builds an AccountRecord from float literals for test readability.
func rec(balance, deposit, withdraw float64) AccountRecord {
	return AccountRecord{
		Balance:  decimal.NewFromFloat(balance),
		Deposit:  decimal.NewFromFloat(deposit),
		Withdraw: decimal.NewFromFloat(withdraw),
	}
}

// entry builds an Entry on a date with the given accounts.
func entry(date string, accounts map[string]AccountRecord) *Entry {
	e := NewEntry(MustParse(date))
	for name, r := range accounts {
		e.Accounts[name] = r
	}
	return e
}

// assertDecimal fails the test when got does not exactly equal want.
func assertDecimal(t *testing.T, label string, got decimal.Decimal, want float64) {
	t.Helper()
	if !got.Equal(decimal.NewFromFloat(want)) {
		t.Errorf("%s = %s, want %v", label, got, want)
	}
}

// tradingBook is the reference scenario: one account with a deposit and a
// withdrawal, plus a second account appearing mid-history.
//
//	2024-01-01  A balance 1000
//	2024-02-01  A balance 1100 deposit 50
//	2024-02-01  B balance 500
//	2024-03-01  A balance 1000 withdraw 200
func tradingBook() *Book {
	b := NewBook()
	b.Append(
		entry("2024-01-01", map[string]AccountRecord{"A": rec(1000, 0, 0)}),
		entry("2024-02-01", map[string]AccountRecord{
			"A": rec(1100, 50, 0),
			"B": rec(500, 0, 0),
		}),
		entry("2024-03-01", map[string]AccountRecord{"A": rec(1000, 0, 200)}),
	)
	return b
}
