package jwt

import (
	"errors"
	"testing"
	"time"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	return f.now
}

type fakeUUID struct{}

func (fakeUUID) Generate() string {
	return "00000000-0000-0000-0000-000000000000"
}

func TestNewHS256(t *testing.T) {
	t.Run("MissingSecret", func(t *testing.T) {
		_, err := NewHS256(Config{})
		if !errors.Is(err, ErrSigningKeyRequired) {
			t.Fatalf("expected ErrSigningKeyRequired, got %v", err)
		}
	})

	t.Run("DefaultTTL", func(t *testing.T) {
		s, err := NewHS256(Config{
			Secret: []byte("secret"),
			Clock:  &fakeClock{now: time.Now()},
			UUID:   fakeUUID{},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.ttl != defaultTTL {
			t.Fatalf("expected default ttl %v, got %v", defaultTTL, s.ttl)
		}
	})
}

func TestSymmetricGenerateVerify(t *testing.T) {
	clk := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	s, err := NewHS256(Config{
		Secret: []byte("test-secret"),
		TTL:    30 * time.Minute,
		Clock:  clk,
		UUID:   fakeUUID{},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("SubjectIsUserID", func(t *testing.T) {
		token, err := s.Generate(42)
		if err != nil {
			t.Fatalf("unexpected generate error: %v", err)
		}

		claims, err := s.Verify(token)
		if err != nil {
			t.Fatalf("unexpected verify error: %v", err)
		}

		if claims.Subject != "42" {
			t.Fatalf("expected subject %q, got %q", "42", claims.Subject)
		}
		if claims.UserID() != 42 {
			t.Fatalf("expected user id 42, got %d", claims.UserID())
		}
	})

	t.Run("ExpiryIsNowPlusTTL", func(t *testing.T) {
		token, err := s.Generate(7)
		if err != nil {
			t.Fatalf("unexpected generate error: %v", err)
		}

		claims, err := s.Verify(token)
		if err != nil {
			t.Fatalf("unexpected verify error: %v", err)
		}

		want := clk.now.Add(30 * time.Minute)
		if !claims.ExpiresAt.Time.Equal(want) {
			t.Fatalf("expected expiry %v, got %v", want, claims.ExpiresAt.Time)
		}
	})

	t.Run("FailsAfterExpiry", func(t *testing.T) {
		token, err := s.Generate(7)
		if err != nil {
			t.Fatalf("unexpected generate error: %v", err)
		}

		clk.now = clk.now.Add(31 * time.Minute)
		defer func() { clk.now = clk.now.Add(-31 * time.Minute) }()

		if _, err := s.Verify(token); !errors.Is(err, ErrTokenExpired) {
			t.Fatalf("expected ErrTokenExpired, got %v", err)
		}
	})

	t.Run("WrongSecret", func(t *testing.T) {
		token, err := s.Generate(7)
		if err != nil {
			t.Fatalf("unexpected generate error: %v", err)
		}

		other, err := NewHS256(Config{
			Secret: []byte("other-secret"),
			Clock:  clk,
			UUID:   fakeUUID{},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := other.Verify(token); err == nil {
			t.Fatalf("expected verify to fail with a different secret")
		}
	})

	t.Run("Garbage", func(t *testing.T) {
		if _, err := s.Verify("not-a-token"); err == nil {
			t.Fatalf("expected verify to fail for malformed token")
		}
	})
}
