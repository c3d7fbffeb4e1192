package teller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckState(t *testing.T) {
	plain := NewLedger("plain", jane)
	transformed := NewLedger("transformed", "01100001", "not looked at")
	empty := NewLedger("empty")

	assert.Equal(t, BothPlain, CheckState(plain, plain))
	assert.Equal(t, BothTransformed, CheckState(transformed, transformed))
	assert.Equal(t, Inconsistent, CheckState(plain, transformed))
	assert.Equal(t, Inconsistent, CheckState(transformed, plain))
	assert.Equal(t, BothPlain, CheckState(empty, plain))
	assert.Equal(t, "inconsistent", Inconsistent.String())
}
