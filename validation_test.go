package teller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validRegistration() Registration {
	return Registration{ID: "1012345678", Secret: "Passw0rd!", Name: "Ana María Pérez", Balance: 250000}
}

func TestValidateRegistration(t *testing.T) {
	assert.NoError(t, ValidateRegistration(validRegistration()))

	testCases := []struct {
		name   string
		modify func(r *Registration)
		want   error
	}{
		{name: "id too short", modify: func(r *Registration) { r.ID = "12345" }, want: ErrInvalidIdentifier},
		{name: "id too long", modify: func(r *Registration) { r.ID = "12345678901" }, want: ErrInvalidIdentifier},
		{name: "id leading zero", modify: func(r *Registration) { r.ID = "0123456" }, want: ErrInvalidIdentifier},
		{name: "id not digits", modify: func(r *Registration) { r.ID = "12345a" }, want: ErrInvalidIdentifier},
		{name: "password short", modify: func(r *Registration) { r.Secret = "Pa0!" }, want: ErrWeakPassword},
		{name: "password no upper", modify: func(r *Registration) { r.Secret = "passw0rd!" }, want: ErrWeakPassword},
		{name: "password no lower", modify: func(r *Registration) { r.Secret = "PASSW0RD!" }, want: ErrWeakPassword},
		{name: "password no digit", modify: func(r *Registration) { r.Secret = "Password!" }, want: ErrWeakPassword},
		{name: "password no special", modify: func(r *Registration) { r.Secret = "Passw0rdX" }, want: ErrWeakPassword},
		{name: "password blank", modify: func(r *Registration) { r.Secret = "Pass w0rd!" }, want: ErrWeakPassword},
		{name: "password delimiter", modify: func(r *Registration) { r.Secret = "Passw0rd," }, want: ErrWeakPassword},
		{name: "name empty", modify: func(r *Registration) { r.Name = "" }, want: ErrInvalidName},
		{name: "name delimiter", modify: func(r *Registration) { r.Name = "Doe, Jane" }, want: ErrInvalidName},
		{name: "name newline", modify: func(r *Registration) { r.Name = "Jane\nDoe" }, want: ErrInvalidName},
		{name: "balance negative", modify: func(r *Registration) { r.Balance = -1 }, want: ErrBalanceOutOfRange},
		{name: "balance too large", modify: func(r *Registration) { r.Balance = 1000001 }, want: ErrBalanceOutOfRange},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := validRegistration()
			tc.modify(&r)
			assert.ErrorIs(t, ValidateRegistration(r), tc.want)
		})
	}
}

func TestValidateRegistrationReportsEveryField(t *testing.T) {
	err := ValidateRegistration(Registration{ID: "1", Secret: "x", Name: "", Balance: -5})
	assert.ErrorIs(t, err, ErrInvalidIdentifier)
	assert.ErrorIs(t, err, ErrWeakPassword)
	assert.ErrorIs(t, err, ErrInvalidName)
	assert.ErrorIs(t, err, ErrBalanceOutOfRange)
	assert.NotContains(t, err.Error(), "x\"", "secrets are never echoed")
}

func TestValidateRegistrationBounds(t *testing.T) {
	r := validRegistration()
	r.Balance = 0
	assert.NoError(t, ValidateRegistration(r))
	r.Balance = 1000000
	assert.NoError(t, ValidateRegistration(r))
	r.ID = "100000"
	assert.NoError(t, ValidateRegistration(r))
	r.Secret = "Aa1!Aa1!Aa1!Aa1!Aa1!"
	assert.NoError(t, ValidateRegistration(r))
}

func TestValidateIdentifier(t *testing.T) {
	assert.NoError(t, ValidateIdentifier("123456"))
	assert.ErrorIs(t, ValidateIdentifier("012345"), ErrInvalidIdentifier)
}
