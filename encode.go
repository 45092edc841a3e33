package pnltrack

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// This file implements the import/export format: a single indented JSON array
// of entries, each an object with a "date" string and an "accounts" object
// mapping account names to {balance, deposit, withdraw}. It is the on-disk
// book format as well as the interchange format, and round-trips exactly
// (modulo the date-sort normalization applied on decode).

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeBook decodes a snapshot collection from 'r' in the import format and
// returns a date-sorted Book.
//
// Validation is all-or-nothing: any malformed record rejects the whole
// payload with a ValidationError and no Book is produced. A payload that is
// not a JSON array fails with a MalformedInputError before any per-record
// validation. Absent deposit/withdraw fields default to zero; present but
// non-numeric ones are errors, never coerced.
func DecodeBook(r io.Reader) (*Book, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read import payload: %w", err)
	}

	var rawEntries []json.RawMessage
	if err := json.Unmarshal(data, &rawEntries); err != nil {
		return nil, &MalformedInputError{Err: err}
	}

	entries := make([]*Entry, 0, len(rawEntries))
	for i, raw := range rawEntries {
		e, err := decodeEntry(i, raw)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	book := NewBook()
	book.Append(entries...)
	return book, nil
}

func decodeEntry(index int, raw json.RawMessage) (*Entry, error) {
	var je struct {
		Date     *Date                      `json:"date"`
		Accounts map[string]json.RawMessage `json:"accounts"`
	}
	if err := json.Unmarshal(raw, &je); err != nil {
		return nil, &ValidationError{Index: index, Reason: err.Error()}
	}
	if je.Date == nil {
		return nil, &ValidationError{Index: index, Reason: "missing date"}
	}
	if je.Accounts == nil {
		return nil, &ValidationError{Index: index, Reason: "missing or non-object accounts"}
	}

	e := NewEntry(*je.Date)
	for name, rawRec := range je.Accounts {
		if name == "" {
			return nil, &ValidationError{Index: index, Reason: "empty account name"}
		}
		rec, err := decodeRecord(index, name, rawRec)
		if err != nil {
			return nil, err
		}
		e.Accounts[name] = rec
	}
	return e, nil
}

func decodeRecord(index int, account string, raw json.RawMessage) (AccountRecord, error) {
	fail := func(reason string) (AccountRecord, error) {
		return AccountRecord{}, &ValidationError{Index: index, Account: account, Reason: reason}
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return fail("account record is not an object")
	}

	number := func(field string) (decimal.Decimal, error) {
		v, present := fields[field]
		if !present {
			if field == "balance" {
				return decimal.Decimal{}, fmt.Errorf("missing numeric balance")
			}
			return decimal.Zero, nil // deposit/withdraw default to 0 when absent
		}
		n, ok := v.(json.Number)
		if !ok {
			return decimal.Decimal{}, fmt.Errorf("%s is not a number", field)
		}
		d, err := decimal.NewFromString(n.String())
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("%s is not a number", field)
		}
		if d.IsNegative() {
			return decimal.Decimal{}, fmt.Errorf("%s must not be negative", field)
		}
		return d, nil
	}

	var rec AccountRecord
	var err error
	if rec.Balance, err = number("balance"); err != nil {
		return fail(err.Error())
	}
	if rec.Deposit, err = number("deposit"); err != nil {
		return fail(err.Error())
	}
	if rec.Withdraw, err = number("withdraw"); err != nil {
		return fail(err.Error())
	}
	return rec, nil
}

// jsonRecord marshals an AccountRecord with a fixed field order, omitting
// zero deposit/withdraw so the output stays minimal and reproducible.
type jsonRecord struct{ rec AccountRecord }

func (j jsonRecord) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("balance", j.rec.Balance)
	if !j.rec.Deposit.IsZero() {
		w.Append("deposit", j.rec.Deposit)
	}
	if !j.rec.Withdraw.IsZero() {
		w.Append("withdraw", j.rec.Withdraw)
	}
	return w.MarshalJSON()
}

// jsonEntry marshals an Entry with "date" first; the accounts map relies on
// encoding/json's sorted map keys for a canonical account order. Surrogate
// identifiers are internal and never emitted.
type jsonEntry struct{ entry *Entry }

func (j jsonEntry) MarshalJSON() ([]byte, error) {
	accounts := make(map[string]jsonRecord, len(j.entry.Accounts))
	for name, rec := range j.entry.Accounts {
		accounts[name] = jsonRecord{rec}
	}
	var w jsonObjectWriter
	w.Append("date", j.entry.Date)
	w.Append("accounts", accounts)
	return w.MarshalJSON()
}

// EncodeBook reorders entries by date (stable) and writes the whole book to
// 'w' as an indented JSON array. The output is byte-for-byte reproducible for
// the same input, so DecodeBook(EncodeBook(x)) == x after date-sort
// normalization.
func EncodeBook(w io.Writer, b *Book) error {
	b.stableSort()

	jentries := make([]jsonEntry, 0, len(b.entries))
	for _, e := range b.entries {
		jentries = append(jentries, jsonEntry{e})
	}

	data, err := json.MarshalIndent(jentries, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal book: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write book: %w", err)
	}
	return nil
}
