package teller

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultSeed is the transform seed used when none is configured.
const DefaultSeed = 4

// Config holds what a Session needs to open the ledgers.
type Config struct {
	UsersPath  string
	AdminsPath string
	Seed       int
	Logger     *zap.Logger // defaults to a no-op logger
}

// Session owns the users and admins ledgers for one run.
//
// Open leaves both ledgers decoded in memory, Close obfuscates and writes them back. A Session
// assumes exclusive access to both files between the two calls.
type Session struct {
	ID     uuid.UUID
	Users  *Ledger
	Admins *Ledger

	cfg Config
	log *zap.Logger
}

// Open loads both ledgers and decodes them in memory.
//
// If the files are not both transformed they are first transformed and saved, then reloaded,
// so that the files at rest are always obfuscated once a session was opened. Failures on
// individual lines are logged and leave the line as is; I/O failures abort.
func Open(cfg Config) (*Session, error) {
	if cfg.Seed <= 0 {
		return nil, fmt.Errorf("%w: seed %d must be > 0", ErrInvalidParameter, cfg.Seed)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	s := &Session{ID: uuid.New(), cfg: cfg}
	s.log = cfg.Logger.With(zap.Stringer("session", s.ID))

	if err := s.load(); err != nil {
		return nil, err
	}

	state := CheckState(s.Users, s.Admins)
	s.log.Debug("ledgers loaded",
		zap.Int("users", s.Users.Len()),
		zap.Int("admins", s.Admins.Len()),
		zap.Stringer("state", state))

	if state == Inconsistent {
		s.log.Warn("users and admins ledgers are not in the same state, treating them as plain")
	}
	if state != BothTransformed {
		s.log.Info("encrypting plain ledgers", zap.Int("seed", cfg.Seed))
		if err := s.persist(); err != nil {
			return nil, err
		}
		if err := s.load(); err != nil {
			return nil, fmt.Errorf("could not reload encrypted ledgers: %w", err)
		}
	}

	s.report("decrypt", s.Admins.Decrypt(cfg.Seed))
	s.report("decrypt", s.Users.Decrypt(cfg.Seed))
	return s, nil
}

// Close obfuscates both ledgers and writes them back.
func (s *Session) Close() error {
	if err := s.persist(); err != nil {
		return err
	}
	s.log.Debug("session closed")
	return nil
}

// InquireBalance runs InquireBalance on the users ledger.
func (s *Session) InquireBalance(id string) (Outcome, error) {
	out, err := InquireBalance(s.Users, id)
	s.logOutcome("inquiry", id, out, err)
	return out, err
}

// Withdraw runs Withdraw on the users ledger.
func (s *Session) Withdraw(id string, amount int64) (Outcome, error) {
	out, err := Withdraw(s.Users, id, amount)
	s.logOutcome("withdrawal", id, out, err)
	return out, err
}

// Login authenticates a user.
func (s *Session) Login(id, secret string) error {
	err := Authenticate(s.Users, id, secret)
	if err != nil {
		s.log.Info("user login refused", zap.String("id", id), zap.Error(err))
	}
	return err
}

// Register authenticates the admin and registers a new user account.
func (s *Session) Register(adminID, adminSecret string, r Registration) (Record, error) {
	if err := Authenticate(s.Admins, adminID, adminSecret); err != nil {
		s.log.Info("admin login refused", zap.String("admin", adminID), zap.Error(err))
		if errors.Is(err, ErrNotFound) {
			// do not tell which of the identifier or the secret is wrong.
			err = fmt.Errorf("%w: unknown admin %q", ErrInvalidCredentials, adminID)
		}
		return Record{}, err
	}
	rec, err := Register(s.Users, r)
	if err != nil {
		return Record{}, err
	}
	s.log.Info("account registered", zap.String("admin", adminID), zap.String("id", rec.ID), zap.Int("line", s.Users.Len()-1))
	return rec, nil
}

func (s *Session) load() error {
	users, err := LoadLedger(s.cfg.UsersPath)
	if err != nil {
		return fmt.Errorf("could not load users: %w", err)
	}
	admins, err := LoadLedger(s.cfg.AdminsPath)
	if err != nil {
		return fmt.Errorf("could not load admins: %w", err)
	}
	s.Users, s.Admins = users, admins
	return nil
}

func (s *Session) persist() error {
	s.report("encrypt", s.Admins.Encrypt(s.cfg.Seed))
	s.report("encrypt", s.Users.Encrypt(s.cfg.Seed))

	if err := SaveLedger(s.cfg.UsersPath, s.Users); err != nil {
		return fmt.Errorf("could not save users: %w", err)
	}
	if err := SaveLedger(s.cfg.AdminsPath, s.Admins); err != nil {
		return fmt.Errorf("could not save admins: %w", err)
	}
	return nil
}

// report logs every line failure of a batch transform.
func (s *Session) report(op string, err error) {
	for _, le := range LineErrors(err) {
		s.log.Warn(op+" failed, line left untouched",
			zap.String("ledger", le.Ledger),
			zap.Int("line", le.Line),
			zap.Error(le.Err))
	}
}

func (s *Session) logOutcome(op, id string, out Outcome, err error) {
	if err != nil {
		s.log.Error(op+" failed", zap.String("id", id), zap.Error(err))
		return
	}
	s.log.Info(op,
		zap.String("id", id),
		zap.Stringer("status", out.Status),
		zap.Int64("previous", out.Previous),
		zap.Int64("balance", out.Balance))
}

// LineErrors unpacks the individual line failures joined by Ledger.Encrypt or Ledger.Decrypt.
func LineErrors(err error) []*LineError {
	if err == nil {
		return nil
	}
	var les []*LineError
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			les = append(les, LineErrors(e)...)
		}
		return les
	}
	var le *LineError
	if errors.As(err, &le) {
		return []*LineError{le}
	}
	return []*LineError{{Err: err}}
}
