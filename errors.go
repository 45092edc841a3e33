package pnltrack

import "fmt"

// NotFoundError reports an edit or delete whose (date, account) target does
// not match any entry. No mutation has been performed.
type NotFoundError struct {
	Date    Date
	Account string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no snapshot for account %q on %s", e.Account, e.Date)
}

// ValidationError reports a malformed record in an import payload. The whole
// import is rejected; Index is the zero-based position of the bad entry.
type ValidationError struct {
	Index   int
	Account string
	Reason  string
}

func (e *ValidationError) Error() string {
	if e.Account != "" {
		return fmt.Sprintf("invalid entry %d, account %q: %s", e.Index+1, e.Account, e.Reason)
	}
	return fmt.Sprintf("invalid entry %d: %s", e.Index+1, e.Reason)
}

// MalformedInputError reports an import payload that is not a JSON array.
// It is detected before any per-record validation.
type MalformedInputError struct {
	Err error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("import payload must be a JSON array: %v", e.Err)
}

func (e *MalformedInputError) Unwrap() error { return e.Err }
