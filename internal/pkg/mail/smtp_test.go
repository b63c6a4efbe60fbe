package mail

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestNewSMTP(t *testing.T) {
	t.Run("MissingHostPort", func(t *testing.T) {
		if _, err := NewSMTP(SMTPConfig{}); !errors.Is(err, ErrSMTPHostPortRequired) {
			t.Fatalf("expected ErrSMTPHostPortRequired, got %v", err)
		}
	})

	t.Run("Port465ImpliesImplicitTLS", func(t *testing.T) {
		s, err := NewSMTP(SMTPConfig{Host: "smtp.example.com", Port: 465})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !s.implicitTLS {
			t.Fatalf("expected implicit TLS for port 465")
		}
	})

	t.Run("OtherPortsUseSTARTTLS", func(t *testing.T) {
		s, err := NewSMTP(SMTPConfig{Host: "smtp.example.com", Port: 587})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.implicitTLS {
			t.Fatalf("expected STARTTLS path for port 587")
		}
	})
}

func TestSMTPSendValidation(t *testing.T) {
	s, err := NewSMTP(SMTPConfig{Host: "smtp.example.com", Port: 587})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("NoRecipients", func(t *testing.T) {
		err := s.Send(context.Background(), Message{Subject: "hi"})
		if !errors.Is(err, ErrSMTPNoRecipients) {
			t.Fatalf("expected ErrSMTPNoRecipients, got %v", err)
		}
	})

	t.Run("NoSender", func(t *testing.T) {
		err := s.Send(context.Background(), Message{To: []string{"a@b.com"}})
		if !errors.Is(err, ErrSMTPNoSender) {
			t.Fatalf("expected ErrSMTPNoSender, got %v", err)
		}
	})

	t.Run("CanceledContext", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := s.Send(ctx, Message{From: "x@y.com", To: []string{"a@b.com"}})
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	})
}

func TestBuildBody(t *testing.T) {
	t.Run("HTMLOnly", func(t *testing.T) {
		body, ct := buildBody(Message{HTMLBody: "<b>hello</b>"})
		if body != "<b>hello</b>" || ct != "text/html; charset=UTF-8" {
			t.Fatalf("unexpected body %q content type %q", body, ct)
		}
	})

	t.Run("TextOnly", func(t *testing.T) {
		body, ct := buildBody(Message{TextBody: "hello"})
		if body != "hello" || ct != "text/plain; charset=UTF-8" {
			t.Fatalf("unexpected body %q content type %q", body, ct)
		}
	})

	t.Run("Multipart", func(t *testing.T) {
		body, ct := buildBody(Message{TextBody: "hello", HTMLBody: "<b>hello</b>"})
		if !strings.HasPrefix(ct, "multipart/alternative; boundary=") {
			t.Fatalf("unexpected content type %q", ct)
		}
		if !strings.Contains(body, "hello") || !strings.Contains(body, "<b>hello</b>") {
			t.Fatalf("expected both parts in body")
		}
	})
}
