package teller

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// MaxFileSize is the largest ledger file accepted, in bytes.
const MaxFileSize = 10_000_000

// DecodeLines reads lines from r, skipping empty ones.
// A trailing carriage return is removed from each line.
func DecodeLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxFileSize)

	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue // Skip empty lines
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return lines, nil
}

// EncodeLines writes lines to w separated by newlines, without a newline after the last one.
func EncodeLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for i, line := range lines {
		if i > 0 {
			if err := bw.WriteByte('\n'); err != nil {
				return fmt.Errorf("failed to write line %d: %w", i, err)
			}
		}
		if _, err := bw.WriteString(line); err != nil {
			return fmt.Errorf("failed to write line %d: %w", i, err)
		}
	}
	return bw.Flush()
}

// DecodeLedger reads a named ledger from r.
func DecodeLedger(name string, r io.Reader) (*Ledger, error) {
	lines, err := DecodeLines(r)
	if err != nil {
		return nil, err
	}
	return &Ledger{name: name, lines: lines}, nil
}

// EncodeLedger writes the ledger lines to w.
func EncodeLedger(w io.Writer, l *Ledger) error { return EncodeLines(w, l.lines) }
