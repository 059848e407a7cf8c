package validation

import (
	"testing"

	domainerrors "beacon/internal/domain/errors"

	"github.com/stretchr/testify/assert"
)

func TestCheckRegistration_EmailPattern(t *testing.T) {
	v := New()

	accepted := []string{
		"alice@example.com",
		"alice.liddell@example.co",
		"a-b@mail.example.org",
		"a_b@example.io",
		"alice@sub.example.com",
	}
	for _, email := range accepted {
		t.Run("accepts/"+email, func(t *testing.T) {
			assert.NoError(t, v.CheckRegistration("alice", email, "secret1"))
		})
	}

	rejected := []string{
		"aliceexample.com",    // no @
		"alice@example",       // no final segment
		"alice@example.c",     // final segment too short
		"alice@example.museum", // final segment too long
		"alice@@example.com",
		".alice@example.com",
		"alice@example..com",
	}
	for _, email := range rejected {
		t.Run("rejects/"+email, func(t *testing.T) {
			err := v.CheckRegistration("alice", email, "secret1")
			assert.ErrorIs(t, err, domainerrors.ErrInvalidEmail)
		})
	}
}

func TestCheckRegistration_PasswordLength(t *testing.T) {
	v := New()

	err := v.CheckRegistration("alice", "alice@example.com", "12345")
	assert.ErrorIs(t, err, domainerrors.ErrWeakPassword)

	assert.NoError(t, v.CheckRegistration("alice", "alice@example.com", "123456"))
	assert.NoError(t, v.CheckRegistration("alice", "alice@example.com", "      "))
}

func TestCheckRegistration_FirstFailingRuleWins(t *testing.T) {
	v := New()

	// Empty name is checked before the malformed email.
	err := v.CheckRegistration("", "not-an-email", "123")
	assert.ErrorIs(t, err, domainerrors.ErrEmptyFields)

	// Malformed email is checked before the weak password.
	err = v.CheckRegistration("alice", "not-an-email", "123")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidEmail)
}

func TestCheckNameLogin(t *testing.T) {
	v := New()

	assert.ErrorIs(t, v.CheckNameLogin("", "secret1"), domainerrors.ErrEmptyFields)
	assert.ErrorIs(t, v.CheckNameLogin("alice", ""), domainerrors.ErrEmptyFields)

	// A display name is not an email; no shape check applies.
	assert.NoError(t, v.CheckNameLogin("alice", "secret1"))
	assert.NoError(t, v.CheckNameLogin("not-an-email", "123"))
}

func TestCheckEmailLogin(t *testing.T) {
	v := New()

	assert.ErrorIs(t, v.CheckEmailLogin("", "secret1"), domainerrors.ErrEmptyFields)
	assert.ErrorIs(t, v.CheckEmailLogin("alice@example.com", ""), domainerrors.ErrEmptyFields)
	assert.NoError(t, v.CheckEmailLogin("alice@example.com", "secret1"))
}
