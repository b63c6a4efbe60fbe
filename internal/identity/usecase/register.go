package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/expensio/expensio/internal/pkg/goerror"
	"github.com/expensio/expensio/internal/pkg/mail"
)

type RegisterInput struct {
	Email string `validate:"required,email"`
}

// Register starts email verification: it generates a one-time code, stores it
// with a short expiry, and emails it to the address. Calling it again for the
// same address replaces the pending code. No account is created yet.
func (s *Usecase) Register(ctx context.Context, in RegisterInput) error {
	ctx, span := s.startSpan(ctx, "Register")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	_, err := s.repoDB.GetUserByEmail(ctx, in.Email)
	if err == nil {
		return goerror.NewBusiness("Email already registered", goerror.CodeConflict)
	}
	if !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	code, err := s.otp.Generate()
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate verification code", "error", err)
		return goerror.NewServer(err)
	}

	if err := s.otpStore.Set(ctx, in.Email, code); err != nil {
		slog.ErrorContext(ctx, "failed to store verification code", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	body, err := s.renderOTPEmail(in.Email, code)
	if err != nil {
		slog.ErrorContext(ctx, "failed to render verification email", "error", err)
		return goerror.NewServer(err)
	}

	if err := s.mailer.Send(ctx, mail.Message{
		To:       []string{in.Email},
		Subject:  "Verify your Expensio account",
		HTMLBody: body,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to send verification email", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
