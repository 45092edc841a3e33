// Package renderer turns pnltrack reports into markdown for display.
package renderer

import (
	"fmt"
	"strings"

	"github.com/minhvu/pnltrack"
)

// table writes a markdown table with a header row and an alignment row.
type table struct {
	b       strings.Builder
	columns int
}

func newTable(headers ...string) *table {
	t := &table{columns: len(headers)}
	t.row(headers...)
	aligns := make([]string, len(headers))
	aligns[0] = ":---"
	for i := 1; i < len(headers); i++ {
		aligns[i] = "---:" // numeric columns are right-aligned
	}
	t.row(aligns...)
	return t
}

func (t *table) row(cells ...string) {
	t.b.WriteString("| ")
	t.b.WriteString(strings.Join(cells, " | "))
	t.b.WriteString(" |\n")
}

func (t *table) String() string { return t.b.String() }

// Rows renders the flattened transaction rows as a markdown document.
// Amounts are formatted in the given display currency.
func Rows(rows []pnltrack.Row, currency string) string {
	var b strings.Builder
	b.WriteString("# Transactions\n\n")
	if len(rows) == 0 {
		b.WriteString("No transactions in the selected period.\n")
		return b.String()
	}

	t := newTable("Date", "Account", "Balance", "Deposit", "Withdraw", "Daily P&L", "Cumulative P&L")
	for _, r := range rows {
		deposit, withdraw := "-", "-"
		if !r.Deposit.IsZero() {
			deposit = "+" + pnltrack.M(r.Deposit, currency).String()
		}
		if !r.Withdraw.IsZero() {
			withdraw = "-" + pnltrack.M(r.Withdraw, currency).String()
		}
		t.row(
			r.Date.String(),
			r.Account,
			pnltrack.M(r.Balance, currency).String(),
			deposit,
			withdraw,
			pnltrack.M(r.Daily, currency).SignedString(),
			pnltrack.M(r.Cumulative, currency).SignedString(),
		)
	}
	b.WriteString(t.String())
	return b.String()
}

// Summaries renders the per-account window summaries as a markdown document.
func Summaries(summaries []pnltrack.AccountSummary, currency string) string {
	var b strings.Builder
	b.WriteString("# Account Summaries\n\n")
	if len(summaries) == 0 {
		b.WriteString("No account has activity in the selected period.\n")
		return b.String()
	}

	t := newTable("Account", "Opening", "Closing", "Deposits", "Withdrawals", "Period P&L")
	for _, s := range summaries {
		t.row(
			s.Account,
			pnltrack.M(s.OpeningBalance, currency).String(),
			pnltrack.M(s.ClosingBalance, currency).String(),
			pnltrack.M(s.TotalDeposits, currency).String(),
			pnltrack.M(s.TotalWithdrawals, currency).String(),
			pnltrack.M(s.PeriodPnL, currency).SignedString(),
		)
	}
	b.WriteString(t.String())
	return b.String()
}

// Summary renders the global all-time summary card.
func Summary(g pnltrack.GlobalSummary, currency string) string {
	var b strings.Builder
	b.WriteString("# Overall\n\n")
	b.WriteString(fmt.Sprintf("Accounts tracked: %d\n\n", g.AccountCount))

	t := newTable("Metric", "Value")
	t.row("Initial balance", pnltrack.M(g.InitialBalance, currency).String())
	t.row("Current balance", pnltrack.M(g.CurrentBalance, currency).String())
	t.row("Total deposits", pnltrack.M(g.TotalDeposits, currency).String())
	t.row("Total withdrawals", pnltrack.M(g.TotalWithdrawals, currency).String())
	t.row("Total P&L", pnltrack.M(g.TotalPnL, currency).SignedString())
	b.WriteString(t.String())
	return b.String()
}
