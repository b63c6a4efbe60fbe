package inbound

import (
	"github.com/expensio/expensio/internal/identity/usecase"
	"github.com/expensio/expensio/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for authentication and registration.
type HTTPEndpoint struct {
	uc uc
}

// Token authenticates a user from a url-encoded form and returns a bearer
// token. The field is named "username" but carries the account email.
func (h *HTTPEndpoint) Token(r *router.Request) (any, error) {
	form, err := r.DecodeForm()
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.Token(r.Context(), usecase.TokenInput{
		Email:    form["username"],
		Password: form["password"],
	})
	if err != nil {
		return nil, err
	}

	return TokenResponse{
		AccessToken: resp.AccessToken,
		TokenType:   resp.TokenType,
	}, nil
}

// Register starts registration by emailing a verification code.
func (h *HTTPEndpoint) Register(r *router.Request) (any, error) {
	var req RegisterRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.Register(r.Context(), usecase.RegisterInput{Email: req.Email}); err != nil {
		return nil, err
	}

	return RegisterResponse{}, nil
}

// RegisterVerify consumes the verification code and creates the account.
func (h *HTTPEndpoint) RegisterVerify(r *router.Request) (any, error) {
	var req RegisterVerifyRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.RegisterVerify(r.Context(), usecase.RegisterVerifyInput{
		Email:    req.Email,
		OTP:      string(req.OTP),
		Password: req.Password,
	}); err != nil {
		return nil, err
	}

	return RegisterVerifyResponse{}, nil
}
