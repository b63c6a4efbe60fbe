package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"strings"

	"github.com/expensio/expensio/internal/identity/entity"
	"github.com/expensio/expensio/internal/pkg/goerror"
)

type RegisterVerifyInput struct {
	Email    string `validate:"required,email"`
	OTP      string `validate:"required,otp"`
	Password string `validate:"required,password"`
}

// RegisterVerify consumes the pending verification code and, when it matches,
// creates the account with the bcrypt-hashed password. The code is single-use:
// it is removed before the account is created, and a wrong, expired, or absent
// code is always rejected as unauthorized, including when the store is down.
func (s *Usecase) RegisterVerify(ctx context.Context, in RegisterVerifyInput) error {
	ctx, span := s.startSpan(ctx, "RegisterVerify")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	code, err := s.otpStore.Get(ctx, in.Email)
	if err != nil {
		if !errors.Is(err, goerror.ErrNotFound) {
			slog.ErrorContext(ctx, "failed to read verification code", "email", in.Email, "error", err)
		}
		return goerror.NewBusiness("Invalid or expired OTP", goerror.CodeUnauthorized)
	}

	if subtle.ConstantTimeCompare([]byte(code), []byte(in.OTP)) != 1 {
		slog.WarnContext(ctx, "verification code mismatch", "email", in.Email)
		return goerror.NewBusiness("Invalid or expired OTP", goerror.CodeUnauthorized)
	}

	if err := s.otpStore.Del(ctx, in.Email); err != nil {
		slog.WarnContext(ctx, "failed to delete verification code", "email", in.Email, "error", err)
	}

	hashedPassword, err := s.bcrypt.Hash(in.Password)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash password", "error", err)
		return goerror.NewServer(err)
	}

	newUser := entity.NewUser{
		ID:    s.uid.Generate(),
		Email: in.Email,
	}

	err = s.repoDB.CreateUser(ctx, newUser, string(hashedPassword))
	if errors.Is(err, goerror.ErrConflict) {
		return goerror.NewBusiness("Email already registered", goerror.CodeConflict)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create user", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
