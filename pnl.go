package pnltrack

import "github.com/shopspring/decimal"

// PnL holds the profit-and-loss figures derived for one (entry, account) pair.
type PnL struct {
	// Daily is the balance minus the flow-implied balance at this snapshot.
	// It always equals Cumulative; see [Book.RowPnL].
	Daily decimal.Decimal
	// Cumulative is the total profit or loss since the account's baseline,
	// after removing all deposits and withdrawals to date.
	Cumulative decimal.Decimal
}

// RowPnL computes the daily and cumulative P&L for one account within one
// entry, relative to the account's all-time baseline.
//
// The baseline is the balance of the chronologically first entry mentioning
// the account; on that entry both figures are zero. Flows are accumulated
// over the entries preceding 'entry' in the account's chronology (same-date
// entries earlier in book order count as earlier), plus the entry's own.
// The identity
//
//	cumulative = balance + withdrawals - deposits - baseline
//
// holds exactly: capital added is not profit, capital removed is not loss.
//
// Daily is the balance minus the balance implied by flows alone, baseline
// plus net flows up to and including this entry. That makes it algebraically
// equal to Cumulative, NOT the delta between consecutive cumulative figures;
// the two fields exist for display parity, not because they can differ.
//
// The function is total: if the entry does not mention the account it returns
// a zero result rather than failing.
func (b *Book) RowPnL(entry *Entry, account string) PnL {
	rec, ok := entry.Record(account)
	if !ok {
		return PnL{}
	}

	var baseline, net decimal.Decimal
	first, found := true, false
	for e := range b.EntriesFor(account) {
		r, _ := e.Record(account)
		if first {
			baseline = r.Balance
			first = false
		}
		net = net.Add(r.NetFlow())
		if e == entry {
			found = true
			break
		}
	}
	if !found {
		// The entry is not part of this book; treat it as the account's only
		// snapshot so the result is still well-defined.
		baseline = rec.Balance
		net = rec.NetFlow()
	}

	// The balance implied by flows alone, had no profit or loss occurred.
	implied := baseline.Add(net)
	return PnL{
		Daily:      rec.Balance.Sub(implied),
		Cumulative: rec.Balance.Sub(net).Sub(baseline),
	}
}
