// Package pnltrack reconstructs profit-and-loss figures from periodic balance
// snapshots of named trading accounts.
//
// Users record, per date, the end-of-period balance of one or more accounts
// along with any deposit or withdrawal. From that collection alone the package
// derives, for any account and any date window, the daily and cumulative P&L,
// corrected for capital flows so the figures reflect trading performance
// rather than cash movement.
//
// The central type is [Book], the chronologically ordered collection of
// [Entry] snapshots. All computations are pure functions over the book's
// current contents: [Book.Rows] flattens entries into display rows with P&L,
// [Book.Summarize] aggregates one account over a [Window] with a re-baselined
// opening balance, and [Book.Summary] reduces the whole history into one
// global figure. [DecodeBook] and [EncodeBook] implement the JSON interchange
// format with all-or-nothing validation.
//
// Amounts are exact decimals ([github.com/shopspring/decimal]); the package
// performs no rounding and knows nothing about currencies beyond display
// formatting.
package pnltrack
