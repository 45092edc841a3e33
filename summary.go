package pnltrack

import "github.com/shopspring/decimal"

// AccountSummary aggregates one account over a period window: the balance the
// account had going into the window, the balance it left with, the capital
// that moved during the window, and the flow-corrected P&L of the window.
type AccountSummary struct {
	Account          string
	OpeningBalance   decimal.Decimal
	ClosingBalance   decimal.Decimal
	TotalDeposits    decimal.Decimal
	TotalWithdrawals decimal.Decimal
	PeriodPnL        decimal.Decimal
}

// Summarize aggregates one account over the window's date bounds. It reports
// false when the account has no entry inside the window.
//
// The opening balance is re-baselined to the window: it is the balance of the
// latest entry strictly before the window start (by the full, unfiltered
// chronology), falling back to the account's all-time baseline when the
// window starts before the account's first snapshot. Flows are summed over
// in-window entries only, so
//
//	periodPnL = closing + withdrawals - deposits - opening
//
// measures trading performance within the window, unpolluted by earlier
// flows or gains.
func (b *Book) Summarize(account string, w Window) (AccountSummary, bool) {
	s := AccountSummary{Account: account}

	var firstIn, lastIn *Entry
	for e := range b.EntriesFor(account) {
		if !w.Contains(e.Date) {
			continue
		}
		if firstIn == nil {
			firstIn = e
		}
		lastIn = e
		r, _ := e.Record(account)
		s.TotalDeposits = s.TotalDeposits.Add(r.Deposit)
		s.TotalWithdrawals = s.TotalWithdrawals.Add(r.Withdraw)
	}
	if firstIn == nil {
		return AccountSummary{}, false
	}

	closing, _ := lastIn.Record(account)
	s.ClosingBalance = closing.Balance

	opening := b.FirstEntryFor(account)
	if !w.From.IsZero() {
		if before := b.LastEntryBefore(account, w.From); before != nil {
			opening = before
		}
	}
	r, _ := opening.Record(account)
	s.OpeningBalance = r.Balance

	s.PeriodPnL = s.ClosingBalance.Add(s.TotalWithdrawals).Sub(s.TotalDeposits).Sub(s.OpeningBalance)
	return s, true
}

// SummarizeAll aggregates every account that appears in the window's filtered
// subset, in lexicographic account order. Accounts with no activity in the
// window are omitted.
func (b *Book) SummarizeAll(w Window) []AccountSummary {
	visited := make(map[string]struct{})
	for _, e := range b.Filter(w) {
		for name := range e.Accounts {
			visited[name] = struct{}{}
		}
	}

	summaries := make([]AccountSummary, 0, len(visited))
	for _, name := range b.AllAccounts() {
		if _, ok := visited[name]; !ok {
			continue
		}
		if s, ok := b.Summarize(name, w); ok {
			summaries = append(summaries, s)
		}
	}
	return summaries
}

// GlobalSummary aggregates across all accounts over the full, unfiltered
// history: the sum of baselines, the sum of current balances, the sum of all
// flows, and the total flow-corrected P&L.
type GlobalSummary struct {
	AccountCount     int
	InitialBalance   decimal.Decimal
	CurrentBalance   decimal.Decimal
	TotalDeposits    decimal.Decimal
	TotalWithdrawals decimal.Decimal
	TotalPnL         decimal.Decimal
}

// Summary reduces the whole book into a single global summary.
func (b *Book) Summary() GlobalSummary {
	var g GlobalSummary
	for _, account := range b.AllAccounts() {
		s, ok := b.Summarize(account, Window{})
		if !ok {
			continue
		}
		g.AccountCount++
		g.InitialBalance = g.InitialBalance.Add(s.OpeningBalance)
		g.CurrentBalance = g.CurrentBalance.Add(s.ClosingBalance)
		g.TotalDeposits = g.TotalDeposits.Add(s.TotalDeposits)
		g.TotalWithdrawals = g.TotalWithdrawals.Add(s.TotalWithdrawals)
	}
	g.TotalPnL = g.CurrentBalance.Add(g.TotalWithdrawals).Sub(g.TotalDeposits).Sub(g.InitialBalance)
	return g
}
