package inbound

import (
	"context"

	"github.com/expensio/expensio/internal/identity/usecase"
	"github.com/expensio/expensio/internal/pkg/router"
)

type uc interface {
	Token(ctx context.Context, in usecase.TokenInput) (*usecase.TokenOutput, error)
	Register(ctx context.Context, in usecase.RegisterInput) error
	RegisterVerify(ctx context.Context, in usecase.RegisterVerifyInput) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/token", end.Token)
	r.POST("/register", end.Register)
	r.POST("/register/verify", end.RegisterVerify)
}
