// Package bits implements the reversible bit-string transform that protects ledger lines at rest.
//
// A bit-string is a plain Go string restricted to the characters '0' and '1'. Text is
// expanded to a bit-string eight characters per byte, most significant bit first, and the
// bit-string is then scrambled window by window by [Transform]. The transform is an
// involution for a given seed: applying it twice yields the input back.
//
// This is obfuscation, not cryptography.
package bits

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidParameter reports a bad seed, block size, or length argument.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrInvalidEncoding reports a character outside {'0','1'} where a bit-string was required.
	ErrInvalidEncoding = errors.New("invalid encoding")
)

// FromText expands each byte of text to 8 characters, most significant bit first.
func FromText(text []byte) string {
	var b strings.Builder
	b.Grow(len(text) * 8)
	for _, c := range text {
		for j := 7; j >= 0; j-- {
			if (c>>j)&1 == 1 {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
	}
	return b.String()
}

// ToText is the inverse of FromText.
//
// Every character of s must be '0' or '1'. Only the largest prefix whose length is a multiple
// of 8 is converted, the remaining bits are dropped. Callers that need an exact conversion
// must check the length first.
func ToText(s string) ([]byte, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty bit-string", ErrInvalidParameter)
	}
	n := len(s) / 8
	for i := n * 8; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidEncoding, s[i], i)
		}
	}
	out := make([]byte, 0, n)
	for i := 0; i < n*8; i += 8 {
		var c byte
		for j := 0; j < 8; j++ {
			bit := s[i+j]
			if bit != '0' && bit != '1' {
				return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidEncoding, bit, i+j)
			}
			c = c<<1 | (bit - '0')
		}
		out = append(out, c)
	}
	return out, nil
}

// IsBinary reports whether s is non-empty and made only of '0' and '1'.
func IsBinary(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return false
		}
	}
	return true
}

// FlipAll maps '0' to '1' and '1' to '0'. Any other character is rejected.
func FlipAll(s string) (string, error) {
	return FlipBlocks(s, max(len(s), 1))
}

// FlipBlocks splits s into consecutive chunks of n bits (the last one may be shorter) and
// flips every bit of every chunk.
func FlipBlocks(s string, n int) (string, error) {
	if n < 1 {
		return "", fmt.Errorf("%w: block size %d", ErrInvalidParameter, n)
	}
	out := []byte(s)
	for i := 0; i < len(out); i += n {
		for j := i; j < i+n && j < len(out); j++ {
			switch out[j] {
			case '0':
				out[j] = '1'
			case '1':
				out[j] = '0'
			default:
				return "", fmt.Errorf("%w: %q at offset %d", ErrInvalidEncoding, out[j], j)
			}
		}
	}
	return string(out), nil
}
