package teller

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/etnz/teller/bits"
)

const admin = "111111,Adm1n!pass"

// newFiles writes plain users and admins ledgers in a temporary folder.
func newFiles(t *testing.T, users, admins string) Config {
	t.Helper()
	dir := t.TempDir()
	cfg := Config{
		UsersPath:  filepath.Join(dir, "usuarios.bin"),
		AdminsPath: filepath.Join(dir, "sudo.bin"),
		Seed:       DefaultSeed,
	}
	require.NoError(t, os.WriteFile(cfg.UsersPath, []byte(users), 0600))
	require.NoError(t, os.WriteFile(cfg.AdminsPath, []byte(admins), 0600))
	return cfg
}

// readPlain reads a transformed file and returns its decoded lines.
func readPlain(t *testing.T, path string, seed int) []string {
	t.Helper()
	lines, err := LoadLines(path)
	require.NoError(t, err)
	var plain []string
	for _, line := range lines {
		require.True(t, IsTransformed(line), "line %q is not transformed", line)
		text, err := bits.Decrypt(line, seed)
		require.NoError(t, err)
		plain = append(plain, text)
	}
	return plain
}

func TestOpenEncryptsPlainFiles(t *testing.T) {
	cfg := newFiles(t, jane+"\n", admin+"\n")

	s, err := Open(cfg)
	require.NoError(t, err)

	// in memory, the ledgers are decoded.
	assert.Equal(t, []string{jane}, s.Users.Snapshot())
	assert.Equal(t, []string{admin}, s.Admins.Snapshot())

	// at rest, they are transformed.
	assert.Equal(t, []string{jane}, readPlain(t, cfg.UsersPath, cfg.Seed))
	assert.Equal(t, []string{admin}, readPlain(t, cfg.AdminsPath, cfg.Seed))
}

func TestSessionRoundTrip(t *testing.T) {
	cfg := newFiles(t, jane, admin)

	s, err := Open(cfg)
	require.NoError(t, err)

	out, err := s.InquireBalance("123456")
	require.NoError(t, err)
	assert.Equal(t, int64(4000), out.Balance)

	out, err = s.Withdraw("123456", 2000)
	require.NoError(t, err)
	assert.Equal(t, Accepted, out.Status)
	assert.Equal(t, int64(1000), out.Balance)

	require.NoError(t, s.Close())
	assert.Equal(t, []string{"123456,Secret1!,Jane Doe,1000 COP"}, readPlain(t, cfg.UsersPath, cfg.Seed))
	assert.Equal(t, []string{admin}, readPlain(t, cfg.AdminsPath, cfg.Seed))

	// reopening an already transformed pair does not transform it twice.
	s, err = Open(cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"123456,Secret1!,Jane Doe,1000 COP"}, s.Users.Snapshot())
	require.NoError(t, s.Close())
}

func TestSessionLogin(t *testing.T) {
	s, err := Open(newFiles(t, jane, admin))
	require.NoError(t, err)

	assert.NoError(t, s.Login("123456", "Secret1!"))
	assert.ErrorIs(t, s.Login("123456", "secret1!"), ErrInvalidCredentials)
	assert.ErrorIs(t, s.Login("654321", "Secret1!"), ErrNotFound)
}

func TestSessionRegister(t *testing.T) {
	cfg := newFiles(t, jane, admin)
	s, err := Open(cfg)
	require.NoError(t, err)

	_, err = s.Register("111111", "wrong", validRegistration())
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = s.Register("999999", "Adm1n!pass", validRegistration())
	assert.ErrorIs(t, err, ErrInvalidCredentials, "unknown admins are reported as invalid credentials")
	assert.False(t, errors.Is(err, ErrNotFound))

	rec, err := s.Register("111111", "Adm1n!pass", validRegistration())
	require.NoError(t, err)
	require.NoError(t, s.Close())

	assert.Equal(t, []string{jane, rec.Line()}, readPlain(t, cfg.UsersPath, cfg.Seed))
}

func TestOpenInconsistent(t *testing.T) {
	transformed, err := bits.Encrypt(admin, DefaultSeed)
	require.NoError(t, err)
	cfg := newFiles(t, jane, transformed)

	core, logs := observer.New(zap.WarnLevel)
	cfg.Logger = zap.New(core)

	s, err := Open(cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessageSnippet("not in the same state").Len())

	// the already transformed line is left alone, then decoded.
	assert.Equal(t, []string{admin}, s.Admins.Snapshot())
	assert.Equal(t, []string{jane}, s.Users.Snapshot())
}

func TestOpenUnreadableLine(t *testing.T) {
	good, err := bits.Encrypt(jane, DefaultSeed)
	require.NoError(t, err)
	garbage, err := bits.Encrypt(strings.Repeat("\x02", 8), DefaultSeed)
	require.NoError(t, err)
	adminLine, err := bits.Encrypt(admin, DefaultSeed)
	require.NoError(t, err)
	cfg := newFiles(t, good+"\n"+garbage, adminLine)

	core, logs := observer.New(zap.WarnLevel)
	cfg.Logger = zap.New(core)

	s, err := Open(cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{jane, garbage}, s.Users.Snapshot(), "unreadable lines are kept as is")
	assert.Equal(t, 1, logs.FilterMessageSnippet("decrypt failed").Len())
}

func TestOpenFailures(t *testing.T) {
	cfg := newFiles(t, jane, admin)

	bad := cfg
	bad.Seed = 0
	_, err := Open(bad)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	missing := cfg
	missing.AdminsPath = filepath.Join(t.TempDir(), "nope.bin")
	_, err = Open(missing)
	assert.ErrorIs(t, err, ErrIO)
	assert.True(t, strings.Contains(err.Error(), "admins"))

	empty := newFiles(t, "", admin)
	_, err = Open(empty)
	assert.ErrorIs(t, err, ErrIO)
}

func TestLineErrors(t *testing.T) {
	assert.Nil(t, LineErrors(nil))

	e1 := &LineError{Ledger: "a", Line: 1, Err: ErrUnreadable}
	e2 := &LineError{Ledger: "a", Line: 3, Err: ErrUnreadable}
	assert.Equal(t, []*LineError{e1, e2}, LineErrors(errors.Join(e1, e2)))

	other := errors.New("boom")
	les := LineErrors(other)
	require.Len(t, les, 1)
	assert.Equal(t, other, les[0].Err)
}
