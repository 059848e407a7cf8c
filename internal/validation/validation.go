// Package validation rejects obviously-invalid submissions before any
// network call is made. Rules are checked in a fixed order and the first
// failing rule wins; no aggregation.
package validation

import (
	"regexp"

	domainerrors "beacon/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// Deliberately not RFC-5322-complete: word characters with optional interior
// dot/hyphen segments and a 2-3 character final segment, matching what the
// sign-up form has always accepted.
var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

// Validator performs the pre-network input checks.
type Validator struct {
	validate *validator.Validate
}

// New builds a Validator with the form email rule registered.
func New() *Validator {
	validate := validator.New()

	// Registration failing here would be a programming error, not input.
	_ = validate.RegisterValidation("formemail", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})

	return &Validator{validate: validate}
}

// CheckRegistration validates a sign-up submission. Inputs are expected to
// be trimmed by the caller; the password is taken verbatim.
func (v *Validator) CheckRegistration(name, email, password string) error {
	if name == "" || email == "" || password == "" {
		return domainerrors.ErrEmptyFields
	}
	if err := v.validate.Var(email, "formemail"); err != nil {
		return domainerrors.ErrInvalidEmail
	}
	if err := v.validate.Var(password, "min=6"); err != nil {
		return domainerrors.ErrWeakPassword
	}

	return nil
}

// CheckNameLogin validates a sign-in-by-display-name submission. The
// identifier is a display name, not an email, so no email-shape check runs.
func (v *Validator) CheckNameLogin(name, password string) error {
	if name == "" || password == "" {
		return domainerrors.ErrEmptyFields
	}

	return nil
}

// CheckEmailLogin validates a sign-in submission. Matching the original
// sign-in behavior, only emptiness is checked here; the provider is the
// authority on whether the email exists.
func (v *Validator) CheckEmailLogin(email, password string) error {
	if email == "" || password == "" {
		return domainerrors.ErrEmptyFields
	}

	return nil
}
