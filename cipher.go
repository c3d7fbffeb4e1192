package teller

import (
	"errors"
	"unicode"

	"github.com/etnz/teller/bits"
)

// Encrypt transforms every plain line of the ledger with seed.
//
// Empty lines and lines already in the transformed alphabet are left as is. A line that fails
// is left untouched and the remaining lines are still processed; the failures are returned
// joined, each one a *LineError.
func (l *Ledger) Encrypt(seed int) error {
	var errs error
	for i, line := range l.lines {
		if line == "" || IsTransformed(line) {
			continue
		}
		enc, err := bits.Encrypt(line, seed)
		if err != nil {
			errs = errors.Join(errs, &LineError{Ledger: l.name, Line: i, Err: err})
			continue
		}
		l.set(i, enc)
	}
	return errs
}

// Decrypt reverts Encrypt on every transformed line whose length is a multiple of 8.
//
// Other lines are left as is. A line that fails, including one that decodes to mostly
// non-printable text (ErrUnreadable), is left untouched and reported in the joined error.
func (l *Ledger) Decrypt(seed int) error {
	var errs error
	for i, line := range l.lines {
		if !IsTransformed(line) || len(line)%8 != 0 {
			continue
		}
		text, err := bits.Decrypt(line, seed)
		if err == nil && !readable(text) {
			err = ErrUnreadable
		}
		if err != nil {
			errs = errors.Join(errs, &LineError{Ledger: l.name, Line: i, Err: err})
			continue
		}
		l.set(i, text)
	}
	return errs
}

// readable reports whether at most half of the bytes of text are non-printable.
// Tabs and line breaks count as printable.
func readable(text string) bool {
	unreadable := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == '\t' || c == '\n' || c == '\r' {
			continue
		}
		if c >= 0x80 || !unicode.IsPrint(rune(c)) {
			unreadable++
		}
	}
	return unreadable <= len(text)/2
}
