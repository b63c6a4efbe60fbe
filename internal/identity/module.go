package identity

import (
	"context"

	"github.com/expensio/expensio/internal/identity/inbound"
	"github.com/expensio/expensio/internal/identity/outbound/db"
	"github.com/expensio/expensio/internal/identity/outbound/email"
	"github.com/expensio/expensio/internal/identity/outbound/store"
	"github.com/expensio/expensio/internal/identity/usecase"
	"github.com/expensio/expensio/internal/pkg/config"
	"github.com/expensio/expensio/internal/pkg/hash"
	"github.com/expensio/expensio/internal/pkg/instrument"
	"github.com/expensio/expensio/internal/pkg/jwt"
	"github.com/expensio/expensio/internal/pkg/mail"
	"github.com/expensio/expensio/internal/pkg/otp"
	"github.com/expensio/expensio/internal/pkg/router"
	"github.com/expensio/expensio/internal/pkg/uid"
	"github.com/expensio/expensio/internal/pkg/validator"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	CacheConn  *redis.Client              `validate:"required"`
	Mail       mail.Mail                  `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	Bcrypt     hash.Hash                  `validate:"required"`
	OTP        otp.Generator              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	JWT        jwt.JWT                    `validate:"required"`
}

func New(ctx context.Context, dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	otpStore, err := store.NewStore(ctx, dep.CacheConn, dep.Instrument, store.Config{
		KeyPrefix: dep.Config.GetString("modules.identity.otp_key_prefix"),
		TTL:       dep.Config.GetMinute("modules.identity.otp_ttl_minutes"),
	})
	if err != nil {
		return err
	}

	uc := usecase.New(usecase.Dependency{
		RepoDB:     db.NewDB(dep.DBConn, dep.Instrument),
		OTPStore:   otpStore,
		Mailer:     email.New(dep.Mail, dep.Instrument),
		Validator:  dep.Validator,
		Config:     dep.Config,
		Bcrypt:     dep.Bcrypt,
		UID:        dep.UID,
		OTP:        dep.OTP,
		JWT:        dep.JWT,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
