package teller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jane = "123456,Secret1!,Jane Doe,5000 COP"

func TestInquireBalance(t *testing.T) {
	l := NewLedger("users", "987654,Secret2!,John Roe,100 COP", jane)

	out, err := InquireBalance(l, "123456")
	require.NoError(t, err)
	assert.Equal(t, Found, out.Status)
	assert.Equal(t, "Jane Doe", out.Name)
	assert.Equal(t, int64(5000), out.Previous)
	assert.Equal(t, int64(4000), out.Balance)
	assert.Equal(t, Fee, out.Fee)
	assert.Equal(t, "123456,Secret1!,Jane Doe,4000 COP", l.Line(1))
	assert.Equal(t, "987654,Secret2!,John Roe,100 COP", l.Line(0), "other lines must be untouched")
}

func TestInquireBalanceClampsToZero(t *testing.T) {
	for _, balance := range []int64{0, 1, 999, 1000} {
		l := NewLedger("users", EncodeRecord("123456", "Secret1!", "Jane Doe", balance))
		out, err := InquireBalance(l, "123456")
		require.NoError(t, err)
		assert.Equal(t, int64(0), out.Balance, "balance %d", balance)
		assert.Equal(t, balance, out.Fee, "the fee charged is what was left")
		assert.Equal(t, "123456,Secret1!,Jane Doe,0 COP", l.Line(0))
	}
}

func TestInquireKeepWhenShort(t *testing.T) {
	l := NewLedger("users", "123456,Secret1!,Jane Doe,999 COP")
	out, err := KeepWhenShort.Inquire(l, "123456")
	require.NoError(t, err)
	assert.Equal(t, Found, out.Status)
	assert.Equal(t, int64(999), out.Balance)
	assert.Zero(t, out.Fee)

	l = NewLedger("users", jane)
	out, err = KeepWhenShort.Inquire(l, "123456")
	require.NoError(t, err)
	assert.Equal(t, int64(4000), out.Balance)
}

func TestInquireBalanceNotFound(t *testing.T) {
	l := NewLedger("users", jane)
	out, err := InquireBalance(l, "12345")
	require.NoError(t, err)
	assert.Equal(t, NotFound, out.Status)
	assert.Equal(t, jane, l.Line(0))
	assert.Equal(t, Loaded, l.State())
}

func TestInquireBalanceMalformed(t *testing.T) {
	l := NewLedger("users", "123456,Secret1!")
	out, err := InquireBalance(l, "123456")
	assert.ErrorIs(t, err, ErrMalformedRecord)
	assert.Equal(t, Outcome{}, out)
	assert.NotEqual(t, NotFound, out.Status, "a malformed record is not a missing one")
	assert.Equal(t, "unknown", out.Status.String())

	var le *LineError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, 0, le.Line)
	assert.Equal(t, "123456,Secret1!", l.Line(0))
}

func TestWithdraw(t *testing.T) {
	l := NewLedger("users", jane)

	out, err := Withdraw(l, "123456", 2000)
	require.NoError(t, err)
	assert.Equal(t, Accepted, out.Status)
	assert.Equal(t, int64(5000), out.Previous)
	assert.Equal(t, int64(2000), out.Balance)
	assert.Equal(t, int64(2000), out.Amount)
	assert.Equal(t, "123456,Secret1!,Jane Doe,2000 COP", l.Line(0))

	// exact balance is accepted.
	out, err = Withdraw(l, "123456", 1000)
	require.NoError(t, err)
	assert.Equal(t, Accepted, out.Status)
	assert.Equal(t, int64(0), out.Balance)
}

func TestWithdrawRejectedLeavesLineUntouched(t *testing.T) {
	l := NewLedger("users", "123456,Secret1!,Jane Doe,4000 COP")

	out, err := Withdraw(l, "123456", 10000)
	require.NoError(t, err)
	assert.Equal(t, Rejected, out.Status)
	assert.ErrorIs(t, out.Reason, ErrInsufficientFunds)
	assert.Equal(t, int64(4000), out.Balance)
	assert.Equal(t, "123456,Secret1!,Jane Doe,4000 COP", l.Line(0))
	assert.Equal(t, Loaded, l.State())

	// amount alone fits but not with the fee.
	out, err = Withdraw(l, "123456", 3500)
	require.NoError(t, err)
	assert.Equal(t, Rejected, out.Status)
	assert.Equal(t, "123456,Secret1!,Jane Doe,4000 COP", l.Line(0))
}

func TestWithdrawInvalidAmount(t *testing.T) {
	l := NewLedger("users", jane)
	for _, amount := range []int64{0, -1, MaxAmount + 1} {
		_, err := Withdraw(l, "123456", amount)
		assert.ErrorIs(t, err, ErrInvalidParameter)
	}
	assert.Equal(t, jane, l.Line(0))
}

func TestWithdrawNotFound(t *testing.T) {
	l := NewLedger("users", jane)
	out, err := Withdraw(l, "1234567", 10)
	require.NoError(t, err)
	assert.Equal(t, NotFound, out.Status)
	assert.Equal(t, jane, l.Line(0))
}

func TestWithdrawMalformed(t *testing.T) {
	l := NewLedger("users", "123456,Secret1!,Jane Doe")
	out, err := Withdraw(l, "123456", 10)
	assert.ErrorIs(t, err, ErrMalformedRecord)
	assert.Equal(t, Outcome{}, out)
	assert.Equal(t, "123456,Secret1!,Jane Doe", l.Line(0))
}
