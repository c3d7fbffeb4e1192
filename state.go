package teller

// EncryptionState tells whether the users and admins ledgers are transformed.
type EncryptionState int

const (
	BothPlain EncryptionState = iota
	BothTransformed
	// Inconsistent means one ledger looks transformed and the other does not. Callers treat
	// it as BothPlain and report it.
	Inconsistent
)

func (s EncryptionState) String() string {
	switch s {
	case BothPlain:
		return "plain"
	case BothTransformed:
		return "transformed"
	case Inconsistent:
		return "inconsistent"
	default:
		return "unknown"
	}
}

// CheckState classifies the pair of ledgers from their first line only.
// An empty ledger counts as plain.
func CheckState(users, admins *Ledger) EncryptionState {
	u := users.Len() > 0 && IsTransformed(users.Line(0))
	a := admins.Len() > 0 && IsTransformed(admins.Line(0))
	switch {
	case u && a:
		return BothTransformed
	case !u && !a:
		return BothPlain
	default:
		return Inconsistent
	}
}
