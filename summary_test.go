package pnltrack

import "testing"

func TestSummarize_Window(t *testing.T) {
	b := tradingBook()

	s, ok := b.Summarize("A", Window{From: MustParse("2024-02-01"), To: MustParse("2024-03-01")})
	if !ok {
		t.Fatal("Summarize() reported no activity")
	}
	// Opening is re-baselined to the balance immediately before the window,
	// not the all-time baseline; flows are in-window only.
	assertDecimal(t, "opening", s.OpeningBalance, 1000)
	assertDecimal(t, "closing", s.ClosingBalance, 1000)
	assertDecimal(t, "deposits", s.TotalDeposits, 50)
	assertDecimal(t, "withdrawals", s.TotalWithdrawals, 200)
	assertDecimal(t, "period P&L", s.PeriodPnL, 150) // 1000 + 200 - 50 - 1000
}

func TestSummarize_MidWindowOpening(t *testing.T) {
	// A window starting after the deposit entry must open on that entry's
	// balance, so pre-window flows and gains do not pollute the period P&L.
	b := tradingBook()
	s, ok := b.Summarize("A", Window{From: MustParse("2024-02-15")})
	if !ok {
		t.Fatal("Summarize() reported no activity")
	}
	assertDecimal(t, "opening", s.OpeningBalance, 1100)
	assertDecimal(t, "closing", s.ClosingBalance, 1000)
	assertDecimal(t, "deposits", s.TotalDeposits, 0)
	assertDecimal(t, "withdrawals", s.TotalWithdrawals, 200)
	assertDecimal(t, "period P&L", s.PeriodPnL, 100) // 1000 + 200 - 0 - 1100
}

func TestSummarize_RebaseliningAgreesWithAllTime(t *testing.T) {
	// A window opening before the account's first entry with an unbounded end
	// must agree with the all-time summary.
	b := tradingBook()

	allTime, ok := b.Summarize("A", Window{})
	if !ok {
		t.Fatal("all-time Summarize() reported no activity")
	}
	early, ok := b.Summarize("A", Window{From: MustParse("2020-01-01")})
	if !ok {
		t.Fatal("early-window Summarize() reported no activity")
	}
	if !allTime.OpeningBalance.Equal(early.OpeningBalance) ||
		!allTime.ClosingBalance.Equal(early.ClosingBalance) ||
		!allTime.TotalDeposits.Equal(early.TotalDeposits) ||
		!allTime.TotalWithdrawals.Equal(early.TotalWithdrawals) ||
		!allTime.PeriodPnL.Equal(early.PeriodPnL) {
		t.Errorf("summaries disagree:\n all-time %+v\n windowed %+v", allTime, early)
	}

	// And the all-time figures themselves.
	assertDecimal(t, "opening", allTime.OpeningBalance, 1000)
	assertDecimal(t, "closing", allTime.ClosingBalance, 1000)
	assertDecimal(t, "period P&L", allTime.PeriodPnL, 150)
}

func TestSummarize_NoActivity(t *testing.T) {
	b := tradingBook()
	if _, ok := b.Summarize("A", Window{From: MustParse("2025-01-01")}); ok {
		t.Error("Summarize() reported activity outside the account's history")
	}
	if _, ok := b.Summarize("unknown", Window{}); ok {
		t.Error("Summarize() reported activity for an unknown account")
	}
}

func TestSummarizeAll(t *testing.T) {
	b := tradingBook()

	t.Run("all accounts over all time", func(t *testing.T) {
		sums := b.SummarizeAll(Window{})
		if len(sums) != 2 {
			t.Fatalf("SummarizeAll() = %d summaries, want 2", len(sums))
		}
		if sums[0].Account != "A" || sums[1].Account != "B" {
			t.Errorf("accounts = %s, %s; want lexicographic A, B", sums[0].Account, sums[1].Account)
		}
	})

	t.Run("inactive accounts are omitted", func(t *testing.T) {
		sums := b.SummarizeAll(Window{From: MustParse("2024-03-01")})
		if len(sums) != 1 || sums[0].Account != "A" {
			t.Fatalf("SummarizeAll() = %+v, want only account A", sums)
		}
	})

	t.Run("empty window yields no summaries", func(t *testing.T) {
		if sums := b.SummarizeAll(Window{From: MustParse("2025-01-01")}); len(sums) != 0 {
			t.Errorf("SummarizeAll() = %+v, want empty", sums)
		}
	})
}

func TestSummary_Global(t *testing.T) {
	b := tradingBook()
	g := b.Summary()

	if g.AccountCount != 2 {
		t.Errorf("AccountCount = %d, want 2", g.AccountCount)
	}
	assertDecimal(t, "initial", g.InitialBalance, 1500)     // 1000 + 500
	assertDecimal(t, "current", g.CurrentBalance, 1500)     // 1000 + 500
	assertDecimal(t, "deposits", g.TotalDeposits, 50)
	assertDecimal(t, "withdrawals", g.TotalWithdrawals, 200)
	assertDecimal(t, "total P&L", g.TotalPnL, 150) // 1500 + 200 - 50 - 1500
}

func TestSummary_EmptyBook(t *testing.T) {
	g := NewBook().Summary()
	if g.AccountCount != 0 {
		t.Errorf("AccountCount = %d, want 0", g.AccountCount)
	}
	assertDecimal(t, "total P&L", g.TotalPnL, 0)
}
