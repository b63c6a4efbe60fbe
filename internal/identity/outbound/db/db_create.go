package db

import (
	"context"

	"github.com/expensio/expensio/internal/identity/entity"
)

const queryCreateUser = `
INSERT INTO users (id, email, password)
VALUES ($1, $2, $3)
`

func (s *DB) CreateUser(ctx context.Context, user entity.NewUser, hash string) (err error) {
	ctx, span := s.startSpan(ctx, "CreateUser")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, queryCreateUser, user.ID, user.Email, hash)
	return s.mapError(err)
}
