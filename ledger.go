package teller

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// State tracks a Ledger against its backing file.
type State int

const (
	// Loaded means the lines are as read from storage.
	Loaded State = iota
	// Dirty means at least one line was replaced or appended since load.
	Dirty
	// Persisted means the lines were written back to storage.
	Persisted
)

func (s State) String() string {
	switch s {
	case Loaded:
		return "loaded"
	case Dirty:
		return "dirty"
	case Persisted:
		return "persisted"
	default:
		return "unknown"
	}
}

// Ledger represents an ordered list of lines.
//
// Indices are stable for the lifetime of a Ledger: lines are replaced or appended, never
// removed or inserted.
type Ledger struct {
	name  string
	lines []string
	state State
}

// NewLedger creates a ledger holding a copy of lines.
func NewLedger(name string, lines ...string) *Ledger {
	return &Ledger{name: name, lines: slices.Clone(lines)}
}

// Name returns the ledger name, usually its file base name.
func (l *Ledger) Name() string { return l.name }

// State returns the ledger state.
func (l *Ledger) State() State { return l.state }

// Len returns the number of lines.
func (l *Ledger) Len() int { return len(l.lines) }

// Line returns the line at index i.
func (l *Ledger) Line(i int) string { return l.lines[i] }

// Lines returns an iterator that yields each line in its original order.
func (l *Ledger) Lines() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i, line := range l.lines {
			if !yield(i, line) {
				return
			}
		}
	}
}

// Snapshot returns a copy of the lines.
func (l *Ledger) Snapshot() []string { return slices.Clone(l.lines) }

// Find returns the index of the first line whose identifier is exactly id.
//
// A line matches when its bytes up to the first Delimiter equal id, so "123" does not match
// "1234,..." and an id holding a Delimiter never matches. Fields are not trimmed.
func (l *Ledger) Find(id string) (int, bool) {
	if id == "" {
		return -1, false
	}
	for i, line := range l.lines {
		if field, _, ok := strings.Cut(line, Delimiter); ok && field == id {
			return i, true
		}
	}
	return -1, false
}

// Replace installs line at index i, discarding the previous one.
func (l *Ledger) Replace(i int, line string) error {
	if i < 0 || i >= len(l.lines) {
		return fmt.Errorf("%w: line index %d out of range [0,%d)", ErrInvalidParameter, i, len(l.lines))
	}
	l.lines[i] = line
	l.state = Dirty
	return nil
}

// Append adds line at the end of the ledger.
func (l *Ledger) Append(line string) {
	l.lines = append(l.lines, line)
	l.state = Dirty
}

// set rewrites line i without changing the state. It is used to switch a line between its
// plain and transformed representation.
func (l *Ledger) set(i int, line string) { l.lines[i] = line }
