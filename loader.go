package teller

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadLines reads the non-empty lines of the file at path.
//
// It fails if the file cannot be read, is larger than MaxFileSize, or has no line at all.
// All failures wrap ErrIO.
func LoadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: could not open ledger file %q: %v", ErrIO, path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: could not stat ledger file %q: %v", ErrIO, path, err)
	}
	if info.Size() > MaxFileSize {
		return nil, fmt.Errorf("%w: ledger file %q is too large (%d bytes)", ErrIO, path, info.Size())
	}

	lines, err := DecodeLines(f)
	if err != nil {
		return nil, fmt.Errorf("%w: could not decode ledger file %q: %v", ErrIO, path, err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: ledger file %q is empty", ErrIO, path)
	}
	return lines, nil
}

// SaveLines overwrites the file at path with lines.
//
// The content is first written to a temporary file next to path and then renamed over it,
// so that a failed write never leaves a truncated ledger behind.
func SaveLines(path string, lines []string) error {
	var b bytes.Buffer
	if err := EncodeLines(&b, lines); err != nil {
		return fmt.Errorf("%w: could not encode ledger %q: %v", ErrIO, path, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b.Bytes(), 0600); err != nil {
		return fmt.Errorf("%w: could not write ledger file %q: %v", ErrIO, tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: could not replace ledger file %q: %v", ErrIO, path, err)
	}
	return nil
}

// LoadLedger loads the ledger file at path. The ledger is named after the file base name
// without extension.
func LoadLedger(path string) (*Ledger, error) {
	lines, err := LoadLines(path)
	if err != nil {
		return nil, err
	}
	return &Ledger{name: ledgerName(path), lines: lines}, nil
}

// SaveLedger writes the ledger to path and marks it Persisted.
func SaveLedger(path string, l *Ledger) error {
	if err := SaveLines(path, l.lines); err != nil {
		return err
	}
	l.state = Persisted
	return nil
}

func ledgerName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
