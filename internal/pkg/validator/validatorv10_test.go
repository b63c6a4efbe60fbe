package validator

import (
	"errors"
	"strings"
	"testing"
)

type registrationForm struct {
	Email    string `validate:"required,email"`
	OTPCode  string `validate:"required,otp"`
	Password string `validate:"required,password"`
}

func TestV10Validator(t *testing.T) {
	v, err := NewV10Validator()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Valid", func(t *testing.T) {
		err := v.Validate(registrationForm{
			Email:    "a@b.com",
			OTPCode:  "123456",
			Password: "longenoughpw",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("FieldKeysAreSnakeCase", func(t *testing.T) {
		err := v.Validate(registrationForm{Email: "a@b.com", OTPCode: "123456", Password: ""})

		var verr V10ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected V10ValidationError, got %v", err)
		}
		if _, ok := verr["password"]; !ok {
			t.Fatalf("expected snake_case field key, got %v", verr.Values())
		}
	})

	t.Run("PasswordTooShort", func(t *testing.T) {
		err := v.Validate(registrationForm{Email: "a@b.com", OTPCode: "123456", Password: "short"})

		var verr V10ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected V10ValidationError, got %v", err)
		}
		if !strings.Contains(verr["password"], "8-72") {
			t.Fatalf("expected password rule message, got %q", verr["password"])
		}
	})

	t.Run("PasswordTooLong", func(t *testing.T) {
		err := v.Validate(registrationForm{
			Email:    "a@b.com",
			OTPCode:  "123456",
			Password: strings.Repeat("x", 73),
		})
		if err == nil {
			t.Fatalf("expected error for 73-char password")
		}
	})

	t.Run("OTPNotSixDigits", func(t *testing.T) {
		for _, code := range []string{"12345", "1234567", "12345a", "abcdef"} {
			err := v.Validate(registrationForm{Email: "a@b.com", OTPCode: code, Password: "longenoughpw"})
			if err == nil {
				t.Fatalf("expected error for otp %q", code)
			}
		}
	})

	t.Run("BadEmail", func(t *testing.T) {
		err := v.Validate(registrationForm{Email: "nope", OTPCode: "123456", Password: "longenoughpw"})
		if err == nil {
			t.Fatalf("expected error for malformed email")
		}
	})
}
