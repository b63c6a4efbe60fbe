package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/expensio/expensio/internal/pkg/goerror"
)

type TokenInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type TokenOutput struct {
	AccessToken string
	TokenType   string
}

// Token authenticates a user by email and password and issues a bearer token.
func (s *Usecase) Token(ctx context.Context, in TokenInput) (*TokenOutput, error) {
	ctx, span := s.startSpan(ctx, "Token")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	user, err := s.repoDB.GetUserByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "user account not found", "email", in.Email)
		return nil, goerror.NewBusiness("Incorrect username or password", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	if !s.bcrypt.Verify(user.Password, in.Password) {
		slog.WarnContext(ctx, "password user account not match", "user_id", user.ID)
		return nil, goerror.NewBusiness("Incorrect username or password", goerror.CodeUnauthorized)
	}

	acToken, err := s.jwt.Generate(user.ID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate access jwt token", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &TokenOutput{
		AccessToken: acToken,
		TokenType:   "bearer",
	}, nil
}
