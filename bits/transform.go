package bits

import (
	"fmt"
	"strings"
)

// Transform scrambles s in consecutive windows of seed bits, left to right.
//
// The first window is flipped entirely. Every following window is processed according to
// the population of the previous *output* window: as many ones as zeros flips it entirely,
// more zeros flips it in blocks of 2, more ones flips it in blocks of 3.
//
// Because the rule depends only on the previous output and every rule is its own inverse,
// Transform(Transform(s, seed), seed) == s.
func Transform(s string, seed int) (string, error) {
	if seed <= 0 {
		return "", fmt.Errorf("%w: seed %d must be > 0", ErrInvalidParameter, seed)
	}
	if s == "" {
		return "", fmt.Errorf("%w: empty bit-string", ErrInvalidParameter)
	}

	var out strings.Builder
	out.Grow(len(s))
	prev := "" // output of the previous window, empty before the first one
	for start := 0; start < len(s); start += seed {
		window := s[start:min(start+seed, len(s))]
		processed, err := step(prev, window)
		if err != nil {
			return "", fmt.Errorf("window at offset %d: %w", start, err)
		}
		out.WriteString(processed)
		prev = processed
	}
	return out.String(), nil
}

// Untransform reverts Transform. The transform is an involution so this is Transform itself.
func Untransform(s string, seed int) (string, error) { return Transform(s, seed) }

// step processes one window given the previous processed window.
func step(prev, window string) (string, error) {
	if prev == "" {
		return FlipAll(window)
	}
	ones := strings.Count(prev, "1")
	zeros := strings.Count(prev, "0")
	switch {
	case ones == zeros:
		return FlipAll(window)
	case zeros > ones:
		return FlipBlocks(window, 2)
	default:
		return FlipBlocks(window, 3)
	}
}

// Encrypt converts text to a bit-string and transforms it with seed.
func Encrypt(text string, seed int) (string, error) {
	if text == "" {
		return "", fmt.Errorf("%w: empty text", ErrInvalidParameter)
	}
	return Transform(FromText([]byte(text)), seed)
}

// Decrypt reverts Encrypt. The length of s must be a multiple of 8.
func Decrypt(s string, seed int) (string, error) {
	if len(s)%8 != 0 {
		return "", fmt.Errorf("%w: length %d is not a multiple of 8", ErrInvalidParameter, len(s))
	}
	plain, err := Untransform(s, seed)
	if err != nil {
		return "", err
	}
	text, err := ToText(plain)
	if err != nil {
		return "", err
	}
	return string(text), nil
}
