package usecase

import (
	"context"

	"github.com/expensio/expensio/internal/identity/entity"
	"github.com/expensio/expensio/internal/pkg/config"
	"github.com/expensio/expensio/internal/pkg/hash"
	"github.com/expensio/expensio/internal/pkg/instrument"
	"github.com/expensio/expensio/internal/pkg/jwt"
	"github.com/expensio/expensio/internal/pkg/mail"
	"github.com/expensio/expensio/internal/pkg/otp"
	"github.com/expensio/expensio/internal/pkg/uid"
	"github.com/expensio/expensio/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	CreateUser(ctx context.Context, user entity.NewUser, hash string) error
}

// otpStore holds at most one pending verification code per email. Set
// overwrites any previous code and resets its expiry.
type otpStore interface {
	Set(ctx context.Context, email, code string) error
	Get(ctx context.Context, email string) (string, error)
	Del(ctx context.Context, email string) error
}

type mailer interface {
	Send(ctx context.Context, msg mail.Message) error
}

type Usecase struct {
	repoDB    repoDB
	otpStore  otpStore
	mailer    mailer
	validator validator.Validator
	cfg       config.Config
	bcrypt    hash.Hash
	uid       uid.NumberID
	otp       otp.Generator
	jwt       jwt.JWT
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoDB     repoDB
	OTPStore   otpStore
	Mailer     mailer
	Validator  validator.Validator
	Config     config.Config
	Bcrypt     hash.Hash
	UID        uid.NumberID
	OTP        otp.Generator
	JWT        jwt.JWT
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		otpStore:  dep.OTPStore,
		mailer:    dep.Mailer,
		validator: dep.Validator,
		cfg:       dep.Config,
		bcrypt:    dep.Bcrypt,
		uid:       dep.UID,
		otp:       dep.OTP,
		jwt:       dep.JWT,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("identity.usecase").Start(ctx, name)
}
