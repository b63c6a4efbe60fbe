package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/expensio/expensio/internal/pkg/goerror"
	"github.com/expensio/expensio/internal/pkg/instrument"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ErrUnavailable indicates the backing store could not be reached at
// construction time.
var ErrUnavailable = errors.New("otp store is unavailable")

// Store keeps pending verification codes in Redis, one key per email. Writing
// a code replaces any previous one and restarts its expiry, so at most one
// code is live for an address at a time.
type Store struct {
	client *redis.Client
	ins    instrument.Instrumentation
	prefix string
	ttl    time.Duration
}

type Config struct {
	// KeyPrefix is prepended to the email to form the Redis key.
	KeyPrefix string
	// TTL is how long a stored code stays valid.
	TTL time.Duration
}

// NewStore verifies connectivity and returns a code store. A client that
// cannot reach Redis is reported here as ErrUnavailable rather than failing
// later on first use.
func NewStore(ctx context.Context, client *redis.Client, ins instrument.Instrumentation, cfg Config) (*Store, error) {
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "otp:"
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 5 * time.Minute
	}

	return &Store{
		client: client,
		ins:    ins,
		prefix: cfg.KeyPrefix,
		ttl:    cfg.TTL,
	}, nil
}

func (s *Store) key(email string) string {
	return s.prefix + email
}

func (s *Store) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("identity.outbound.store").Start(ctx, name)
}

func (s *Store) endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, goerror.ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// Set stores the code for email, overwriting any pending one.
func (s *Store) Set(ctx context.Context, email, code string) (err error) {
	ctx, span := s.startSpan(ctx, "Set")
	defer func() { s.endSpan(span, err) }()

	err = s.client.Set(ctx, s.key(email), code, s.ttl).Err()
	return err
}

// Get returns the pending code for email, or goerror.ErrNotFound when none
// exists or it has expired.
func (s *Store) Get(ctx context.Context, email string) (code string, err error) {
	ctx, span := s.startSpan(ctx, "Get")
	defer func() { s.endSpan(span, err) }()

	code, err = s.client.Get(ctx, s.key(email)).Result()
	if errors.Is(err, redis.Nil) {
		return "", goerror.ErrNotFound
	}
	if err != nil {
		return "", err
	}

	return code, nil
}

// Del removes the pending code for email. Deleting an absent key is not an
// error.
func (s *Store) Del(ctx context.Context, email string) (err error) {
	ctx, span := s.startSpan(ctx, "Del")
	defer func() { s.endSpan(span, err) }()

	err = s.client.Del(ctx, s.key(email)).Err()
	return err
}
