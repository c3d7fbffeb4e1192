package teller

import (
	"fmt"
)

// Fee is the service charge of every balance inquiry and withdrawal.
const Fee int64 = 1000

// Status discriminates the result of an account operation. The zero Status is the one of a
// failed operation.
type Status int

const (
	NotFound Status = iota + 1
	Found
	Accepted
	Rejected
)

func (s Status) String() string {
	switch s {
	case NotFound:
		return "not found"
	case Found:
		return "found"
	case Accepted:
		return "accepted"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Outcome is the result of an account operation.
//
// Missing accounts and insufficient funds are outcomes, not errors.
type Outcome struct {
	Status   Status
	Name     string // account display name
	Previous int64  // balance before the operation
	Balance  int64  // balance after the operation
	Amount   int64  // amount withdrawn, zero for an inquiry
	Fee      int64  // fee charged
	Reason   error  // ErrInsufficientFunds when Rejected
}

// InquiryPolicy decides what a balance inquiry does when the balance does not cover the Fee.
type InquiryPolicy int

const (
	// ClampFee charges the fee anyway, the balance never drops below zero.
	ClampFee InquiryPolicy = iota
	// KeepWhenShort charges nothing when the balance is lower than the fee.
	KeepWhenShort
)

// InquireBalance charges the Fee on account id and returns its new balance, with the ClampFee
// policy.
func InquireBalance(l *Ledger, id string) (Outcome, error) {
	return ClampFee.Inquire(l, id)
}

// Inquire charges the Fee on account id according to policy p.
//
// The returned error is only set when the stored line cannot be decoded, in which case the
// line is left untouched.
func (p InquiryPolicy) Inquire(l *Ledger, id string) (Outcome, error) {
	i, rec, found, err := lookup(l, id)
	if err != nil {
		return Outcome{}, err
	}
	if !found {
		return Outcome{Status: NotFound}, nil
	}

	out := Outcome{Status: Found, Name: rec.Name, Previous: rec.Balance, Fee: Fee}
	switch {
	case rec.Balance >= Fee:
		rec.Balance -= Fee
	case p == KeepWhenShort:
		out.Fee = 0
	default:
		out.Fee = rec.Balance
		rec.Balance = 0
	}
	out.Balance = rec.Balance
	if err := l.Replace(i, rec.Line()); err != nil {
		return Outcome{}, err
	}
	return out, nil
}

// Withdraw takes amount plus the Fee from account id.
//
// If the balance does not cover both the outcome is Rejected with ErrInsufficientFunds and
// the ledger is not modified.
func Withdraw(l *Ledger, id string, amount int64) (Outcome, error) {
	if amount <= 0 {
		return Outcome{}, fmt.Errorf("%w: withdrawal amount %d must be positive", ErrInvalidParameter, amount)
	}
	if amount > MaxAmount {
		return Outcome{}, fmt.Errorf("%w: withdrawal amount %d is too large", ErrInvalidParameter, amount)
	}
	i, rec, found, err := lookup(l, id)
	if err != nil {
		return Outcome{}, err
	}
	if !found {
		return Outcome{Status: NotFound}, nil
	}

	out := Outcome{Name: rec.Name, Previous: rec.Balance, Balance: rec.Balance, Amount: amount, Fee: Fee}
	total := amount + Fee
	if rec.Balance < total {
		out.Status = Rejected
		out.Reason = ErrInsufficientFunds
		return out, nil
	}
	rec.Balance -= total
	if err := l.Replace(i, rec.Line()); err != nil {
		return Outcome{}, err
	}
	out.Status = Accepted
	out.Balance = rec.Balance
	return out, nil
}

// lookup finds and decodes the record of account id.
func lookup(l *Ledger, id string) (int, Record, bool, error) {
	i, ok := l.Find(id)
	if !ok {
		return -1, Record{}, false, nil
	}
	rec, err := DecodeRecord(l.Line(i))
	if err != nil {
		return -1, Record{}, false, &LineError{Ledger: l.name, Line: i, Err: err}
	}
	return i, rec, true, nil
}
