package teller

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Registration holds the fields of a new account.
type Registration struct {
	ID      string `validate:"identifier"`
	Secret  string `validate:"password,excludesall=0x2C"`
	Name    string `validate:"required,excludesall=0x2C,singleline"`
	Balance int64  `validate:"gte=0,lte=1000000"`
}

// Record returns the account record to register.
func (r Registration) Record() Record {
	return Record{ID: r.ID, Secret: r.Secret, Name: r.Name, Balance: r.Balance}
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
	errValidate  error
)

func initValidator() (*validator.Validate, error) {
	vld := validator.New(validator.WithRequiredStructEnabled())

	if err := vld.RegisterValidation("identifier", func(fl validator.FieldLevel) bool {
		return validIdentifier(fl.Field().String())
	}); err != nil {
		return nil, fmt.Errorf("failed to register 'identifier': %w", err)
	}
	if err := vld.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		return validPassword(fl.Field().String())
	}); err != nil {
		return nil, fmt.Errorf("failed to register 'password': %w", err)
	}
	if err := vld.RegisterValidation("singleline", func(fl validator.FieldLevel) bool {
		return !strings.ContainsAny(fl.Field().String(), "\r\n")
	}); err != nil {
		return nil, fmt.Errorf("failed to register 'singleline': %w", err)
	}
	return vld, nil
}

func getValidator() (*validator.Validate, error) {
	validateOnce.Do(func() {
		validate, errValidate = initValidator()
	})
	return validate, errValidate
}

// ValidateRegistration checks every field of r.
//
// Each failing field is reported with its own sentinel (ErrInvalidIdentifier,
// ErrWeakPassword, ErrInvalidName, ErrBalanceOutOfRange), joined together.
func ValidateRegistration(r Registration) error {
	vld, err := getValidator()
	if err != nil {
		return err
	}
	err = vld.Struct(r)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	var errs error
	for _, fe := range verrs {
		errs = errors.Join(errs, fieldError(fe))
	}
	return errs
}

// ValidateIdentifier checks that id is 6 to 10 digits not starting with 0.
func ValidateIdentifier(id string) error {
	if !validIdentifier(id) {
		return fmt.Errorf("%w: %q", ErrInvalidIdentifier, id)
	}
	return nil
}

func fieldError(fe validator.FieldError) error {
	switch fe.Field() {
	case "ID":
		return fmt.Errorf("%w: %q", ErrInvalidIdentifier, fe.Value())
	case "Secret":
		return ErrWeakPassword // never echo the secret
	case "Name":
		return fmt.Errorf("%w: %q", ErrInvalidName, fe.Value())
	case "Balance":
		return fmt.Errorf("%w: %v", ErrBalanceOutOfRange, fe.Value())
	default:
		return fmt.Errorf("invalid %s: failed on %q", fe.Field(), fe.Tag())
	}
}

func validIdentifier(id string) bool {
	if len(id) < 6 || len(id) > 10 || id[0] == '0' {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '0' || id[i] > '9' {
			return false
		}
	}
	return true
}

// validPassword requires 8 to 20 printable ASCII characters without blanks, with at least one
// digit, one upper case letter, one lower case letter and one special character.
func validPassword(s string) bool {
	if len(s) < 8 || len(s) > 20 {
		return false
	}
	var digit, upper, lower, special bool
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			digit = true
		case c >= 'A' && c <= 'Z':
			upper = true
		case c >= 'a' && c <= 'z':
			lower = true
		case c >= 33 && c <= 126:
			special = true
		default:
			return false
		}
	}
	return digit && upper && lower && special
}
