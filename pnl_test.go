package pnltrack

import (
	"testing"
)

func TestRowPnL_Scenarios(t *testing.T) {
	b := tradingBook()

	testCases := []struct {
		name           string
		date           string
		account        string
		wantDaily      float64
		wantCumulative float64
	}{
		{
			name:    "first entry is the baseline",
			date:    "2024-01-01",
			account: "A",
			// balance == baseline, flows cancel out: both figures are zero.
			wantDaily:      0,
			wantCumulative: 0,
		},
		{
			name:    "deposit does not count as profit",
			date:    "2024-02-01",
			account: "A",
			// 1100 - (1000 + 50 - 0) = 50
			wantDaily:      50,
			wantCumulative: 50,
		},
		{
			name:    "withdrawal does not count as loss",
			date:    "2024-03-01",
			account: "A",
			// cumulative: 1000 + 200 - 50 - 1000 = 150
			// daily: 1000 - (1000 + 50 - 200) = 150, same figure
			wantDaily:      150,
			wantCumulative: 150,
		},
		{
			name:           "second account has its own baseline",
			date:           "2024-02-01",
			account:        "B",
			wantDaily:      0,
			wantCumulative: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := b.find(MustParse(tc.date), tc.account)
			if e == nil {
				t.Fatalf("no entry for %s/%s", tc.date, tc.account)
			}
			got := b.RowPnL(e, tc.account)
			assertDecimal(t, "daily", got.Daily, tc.wantDaily)
			assertDecimal(t, "cumulative", got.Cumulative, tc.wantCumulative)
		})
	}
}

func TestRowPnL_AbsentAccountIsZero(t *testing.T) {
	b := tradingBook()
	e := b.find(MustParse("2024-03-01"), "A")
	got := b.RowPnL(e, "B") // entry does not mention B
	assertDecimal(t, "daily", got.Daily, 0)
	assertDecimal(t, "cumulative", got.Cumulative, 0)
}

// TestRowPnL_FlowInvariance checks the defining identity on every row:
// cumulativePnL + baseline + deposits - withdrawals == balance, exactly.
func TestRowPnL_FlowInvariance(t *testing.T) {
	b := NewBook()
	b.Append(
		entry("2024-01-01", map[string]AccountRecord{"A": rec(1000, 0, 0), "B": rec(2500.25, 0, 0)}),
		entry("2024-01-08", map[string]AccountRecord{"A": rec(1225.50, 300, 0)}),
		entry("2024-01-15", map[string]AccountRecord{"A": rec(900, 0, 400), "B": rec(2400, 100, 250)}),
		entry("2024-02-01", map[string]AccountRecord{"B": rec(2600.10, 0, 0)}),
		entry("2024-02-01", map[string]AccountRecord{"B": rec(2550, 0, 100)}), // same-date duplicate
	)

	for _, account := range b.AllAccounts() {
		baseline := b.FirstEntryFor(account).Accounts[account].Balance
		for e := range b.EntriesFor(account) {
			r := e.Accounts[account]
			pnl := b.RowPnL(e, account)

			// cumulative + baseline + deposits - withdrawals == balance
			sum := pnl.Cumulative.Add(baseline)
			for prior := range b.EntriesFor(account) {
				pr := prior.Accounts[account]
				sum = sum.Add(pr.Deposit).Sub(pr.Withdraw)
				if prior == e {
					break
				}
			}
			if !sum.Equal(r.Balance) {
				t.Errorf("%s on %s: identity broken: got %s, balance %s", account, e.Date, sum, r.Balance)
			}
		}
	}
}

// TestRowPnL_DailyEqualsCumulative pins the deliberate quirk of the daily
// figure: it subtracts the flow-implied balance from the same baseline the
// cumulative figure uses, so the two are always equal. In particular it is
// NOT the delta between consecutive cumulative figures.
func TestRowPnL_DailyEqualsCumulative(t *testing.T) {
	b := tradingBook()

	for _, account := range b.AllAccounts() {
		for e := range b.EntriesFor(account) {
			got := b.RowPnL(e, account)
			if !got.Daily.Equal(got.Cumulative) {
				t.Errorf("%s on %s: daily %s != cumulative %s", account, e.Date, got.Daily, got.Cumulative)
			}
		}
	}

	// The 2024-03-01 row: the cumulative delta would be 100, the figure is 150.
	e := b.find(MustParse("2024-03-01"), "A")
	assertDecimal(t, "daily", b.RowPnL(e, "A").Daily, 150)
}

func TestAccountRecord_NetFlow(t *testing.T) {
	assertDecimal(t, "net flow", rec(0, 300, 120).NetFlow(), 180)
	assertDecimal(t, "zero net flow", rec(1000, 0, 0).NetFlow(), 0)
}
