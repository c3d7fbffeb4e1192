package teller

import (
	"fmt"
)

// Authenticate checks id and secret against the ledger.
//
// Lines are compared on their identifier and secret fields with surrounding blanks trimmed,
// which is how hand-edited admin files are written. Lines that cannot be decoded are skipped.
// It returns ErrNotFound when no line has this identifier and ErrInvalidCredentials when the
// secret does not match.
func Authenticate(l *Ledger, id, secret string) error {
	for _, line := range l.Lines() {
		storedID, storedSecret, err := DecodeCredentials(line)
		if err != nil || storedID != id {
			continue
		}
		if storedSecret != secret {
			return fmt.Errorf("%w: wrong secret for %q", ErrInvalidCredentials, id)
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrNotFound, id)
}

// Register validates r and appends the new account at the end of users.
//
// Existing indices are not affected. It fails with ErrDuplicateAccount if the identifier is
// already in use.
func Register(users *Ledger, r Registration) (Record, error) {
	if err := ValidateRegistration(r); err != nil {
		return Record{}, err
	}
	if _, exists := users.Find(r.ID); exists {
		return Record{}, fmt.Errorf("%w: %q", ErrDuplicateAccount, r.ID)
	}
	rec := r.Record()
	users.Append(rec.Line())
	return rec, nil
}
