package pnltrack

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Row is the flattened, display-ready view of one account within one entry:
// the transaction identified by (date, account), carrying its snapshot fields
// and the derived P&L figures.
type Row struct {
	EntryID    uuid.UUID
	Date       Date
	Account    string
	Balance    decimal.Decimal
	Deposit    decimal.Decimal
	Withdraw   decimal.Decimal
	Daily      decimal.Decimal
	Cumulative decimal.Decimal
}

// Rows flattens the entries passing the window into one row per
// (entry, account) pair. Rows come out date-ascending with the book's stable
// same-date tie-break; within an entry accounts are listed lexicographically.
//
// Projection is a pure function of the book's current contents: applying it
// twice to an unmodified book yields identical output.
func (b *Book) Rows(w Window) []Row {
	var rows []Row
	for _, e := range b.Filter(w) {
		for _, account := range e.AccountNames() {
			rec, _ := e.Record(account)
			pnl := b.RowPnL(e, account)
			rows = append(rows, Row{
				EntryID:    e.ID(),
				Date:       e.Date,
				Account:    account,
				Balance:    rec.Balance,
				Deposit:    rec.Deposit,
				Withdraw:   rec.Withdraw,
				Daily:      pnl.Daily,
				Cumulative: pnl.Cumulative,
			})
		}
	}
	return rows
}
