package teller

import (
	"errors"
	"fmt"

	"github.com/etnz/teller/bits"
)

var (
	// ErrInvalidParameter reports a bad seed, length, index, or amount argument.
	ErrInvalidParameter = bits.ErrInvalidParameter
	// ErrInvalidEncoding reports a non-binary character where a bit-string was required.
	ErrInvalidEncoding = bits.ErrInvalidEncoding

	ErrMalformedRecord   = errors.New("malformed record")
	ErrNotFound          = errors.New("account not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrIO                = errors.New("i/o failure")

	// ErrUnreadable reports a line that decrypts to mostly non-printable text.
	ErrUnreadable = errors.New("decrypted text is not readable")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateAccount   = errors.New("an account with this identifier already exists")

	ErrInvalidIdentifier = errors.New("identifier must be 6 to 10 digits and not start with 0")
	ErrWeakPassword      = errors.New("password must be 8 to 20 printable characters with an upper case letter, a lower case letter, a digit and a special character")
	ErrInvalidName       = errors.New("name must not be empty nor contain a comma")
	ErrBalanceOutOfRange = errors.New("balance must be between 0 and 1,000,000")
)

// LineError reports a failure on a single line of a ledger.
type LineError struct {
	Ledger string // ledger name
	Line   int    // zero based index of the line
	Err    error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s: line %d: %v", e.Ledger, e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }
