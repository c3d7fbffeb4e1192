package teller

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/teller/bits"
)

const (
	// Delimiter separates the fields of a ledger line.
	Delimiter = ","
	// Currency is the currency code appended to every persisted balance.
	Currency = "COP"
)

// Record is an account as stored on one ledger line.
type Record struct {
	ID      string
	Secret  string
	Name    string
	Balance int64
}

// Line returns the ledger line for this record.
func (r Record) Line() string { return EncodeRecord(r.ID, r.Secret, r.Name, r.Balance) }

// Amount returns the balance as Money.
func (r Record) Amount() Money { return M(r.Balance, Currency) }

// EncodeRecord joins the four fields of an account into a ledger line.
//
// No field may contain the Delimiter, this is checked by validation upstream, not here.
func EncodeRecord(id, secret, name string, balance int64) string {
	return id + Delimiter + secret + Delimiter + name + Delimiter + strconv.FormatInt(balance, 10) + " " + Currency
}

// DecodeRecord splits a ledger line into a Record.
//
// The balance is read from the leading digits of the last field, the currency suffix is
// ignored and regenerated by EncodeRecord.
func DecodeRecord(line string) (Record, error) {
	fields := strings.SplitN(line, Delimiter, 4)
	if len(fields) < 4 {
		return Record{}, fmt.Errorf("%w: %d fields, want 4", ErrMalformedRecord, len(fields))
	}
	if fields[0] == "" || fields[1] == "" {
		return Record{}, fmt.Errorf("%w: empty identifier or secret", ErrMalformedRecord)
	}
	balance, err := parseBalance(fields[3])
	if err != nil {
		return Record{}, err
	}
	return Record{ID: fields[0], Secret: fields[1], Name: fields[2], Balance: balance}, nil
}

// parseBalance scans the leading decimal digits of s, after optional blanks.
// No digits at all reads as zero.
func parseBalance(s string) (int64, error) {
	s = strings.TrimLeft(s, " \t")
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, nil
	}
	v, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: balance %q: %v", ErrMalformedRecord, s[:end], err)
	}
	return v, nil
}

// DecodeCredentials reads the identifier and secret of a line, trimming surrounding blanks.
//
// Admin ledgers only hold "id,secret" lines, so extra fields are optional.
func DecodeCredentials(line string) (id, secret string, err error) {
	fields := strings.SplitN(strings.TrimSpace(line), Delimiter, 3)
	if len(fields) < 2 {
		return "", "", fmt.Errorf("%w: missing delimiter between identifier and secret", ErrMalformedRecord)
	}
	id, secret = strings.TrimSpace(fields[0]), strings.TrimSpace(fields[1])
	if id == "" || secret == "" {
		return "", "", fmt.Errorf("%w: empty identifier or secret", ErrMalformedRecord)
	}
	return id, secret, nil
}

// IsTransformed reports whether line is in the transformed alphabet, that is non-empty and
// made only of '0' and '1'.
func IsTransformed(line string) bool { return bits.IsBinary(line) }
