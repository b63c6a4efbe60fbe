package router

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestDecodeForm(t *testing.T) {
	t.Run("ParsesValues", func(t *testing.T) {
		body := "username=a%40b.com&password=+secret+"
		req := httptest.NewRequest("POST", "/token", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		values, err := (&Request{Request: req}).DecodeForm()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if values["username"] != "a@b.com" {
			t.Fatalf("expected username a@b.com, got %q", values["username"])
		}
		if values["password"] != "secret" {
			t.Fatalf("expected trimmed password, got %q", values["password"])
		}
	})

	t.Run("RejectsWrongContentType", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/token", strings.NewReader(`{"a":1}`))
		req.Header.Set("Content-Type", "application/json")

		if _, err := (&Request{Request: req}).DecodeForm(); err == nil {
			t.Fatalf("expected error for wrong content type")
		}
	})
}

func TestDecodeBody(t *testing.T) {
	type payload struct {
		Email string `json:"email"`
	}

	t.Run("Valid", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/register", strings.NewReader(`{"email":"a@b.com"}`))

		var p payload
		if err := (&Request{Request: req}).DecodeBody(&p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Email != "a@b.com" {
			t.Fatalf("expected email a@b.com, got %q", p.Email)
		}
	})

	t.Run("UnknownField", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/register", strings.NewReader(`{"email":"a@b.com","extra":1}`))

		var p payload
		if err := (&Request{Request: req}).DecodeBody(&p); err == nil {
			t.Fatalf("expected error for unknown field")
		}
	})

	t.Run("TrailingGarbage", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/register", strings.NewReader(`{"email":"a@b.com"}{}`))

		var p payload
		if err := (&Request{Request: req}).DecodeBody(&p); err == nil {
			t.Fatalf("expected error for trailing data")
		}
	})
}
