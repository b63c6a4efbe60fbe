package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/expensio/expensio/internal/identity/entity"
	"github.com/expensio/expensio/internal/pkg/config"
	"github.com/expensio/expensio/internal/pkg/goerror"
	"github.com/expensio/expensio/internal/pkg/hash"
	"github.com/expensio/expensio/internal/pkg/instrument"
	"github.com/expensio/expensio/internal/pkg/jwt"
	"github.com/expensio/expensio/internal/pkg/mail"
	"github.com/expensio/expensio/internal/pkg/otp"
	"github.com/expensio/expensio/internal/pkg/validator"
	"golang.org/x/crypto/bcrypt"
)

type fakeRepoDB struct {
	users     map[string]*entity.User
	getErr    error
	createErr error
}

func newFakeRepoDB() *fakeRepoDB {
	return &fakeRepoDB{users: map[string]*entity.User{}}
}

func (f *fakeRepoDB) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}

	user, ok := f.users[email]
	if !ok {
		return nil, goerror.ErrNotFound
	}

	return user, nil
}

func (f *fakeRepoDB) CreateUser(_ context.Context, user entity.NewUser, hash string) error {
	if f.createErr != nil {
		return f.createErr
	}

	if _, ok := f.users[user.Email]; ok {
		return goerror.ErrConflict
	}

	f.users[user.Email] = &entity.User{
		ID:        user.ID,
		Email:     user.Email,
		Password:  hash,
		CreatedAt: time.Now(),
	}

	return nil
}

// fakeOTPStore mimics the single-key-per-email behavior of the Redis store.
// down makes every call fail, as if the backend were unreachable.
type fakeOTPStore struct {
	codes map[string]string
	down  bool
}

func newFakeOTPStore() *fakeOTPStore {
	return &fakeOTPStore{codes: map[string]string{}}
}

var errStoreDown = errors.New("store down")

func (f *fakeOTPStore) Set(_ context.Context, email, code string) error {
	if f.down {
		return errStoreDown
	}

	f.codes[email] = code

	return nil
}

func (f *fakeOTPStore) Get(_ context.Context, email string) (string, error) {
	if f.down {
		return "", errStoreDown
	}

	code, ok := f.codes[email]
	if !ok {
		return "", goerror.ErrNotFound
	}

	return code, nil
}

func (f *fakeOTPStore) Del(_ context.Context, email string) error {
	if f.down {
		return errStoreDown
	}

	delete(f.codes, email)

	return nil
}

type fakeMailer struct {
	sent    []mail.Message
	sendErr error
}

func (f *fakeMailer) Send(_ context.Context, msg mail.Message) error {
	if f.sendErr != nil {
		return f.sendErr
	}

	f.sent = append(f.sent, msg)

	return nil
}

type fakeNumberID struct {
	next int64
}

func (f *fakeNumberID) Generate() int64 {
	f.next++

	return f.next
}

type fixedOTP struct {
	code string
}

func (f fixedOTP) Generate() (string, error) {
	return f.code, nil
}

type fakeJWT struct{}

func (fakeJWT) Generate(uid int64) (string, error) {
	return "token-for-user", nil
}

func (fakeJWT) Verify(string) (jwt.Claims, error) {
	return jwt.Claims{}, nil
}

type testEnv struct {
	uc     *Usecase
	repoDB *fakeRepoDB
	store  *fakeOTPStore
	mailer *fakeMailer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	v, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("failed to init validator: %v", err)
	}

	cfg, err := config.NewViperFromBytes("yaml", []byte(`
modules:
  identity:
    otp_ttl_minutes: 5
mail:
  support_address: support@expensio.app
`))
	if err != nil {
		t.Fatalf("failed to init config: %v", err)
	}

	env := &testEnv{
		repoDB: newFakeRepoDB(),
		store:  newFakeOTPStore(),
		mailer: &fakeMailer{},
	}

	env.uc = New(Dependency{
		RepoDB:     env.repoDB,
		OTPStore:   env.store,
		Mailer:     env.mailer,
		Validator:  v,
		Config:     cfg,
		Bcrypt:     hash.NewBcrypt(bcrypt.MinCost, ""),
		UID:        &fakeNumberID{},
		OTP:        otp.NewNumeric(),
		JWT:        fakeJWT{},
		Instrument: instrument.NewNoop(),
	})

	return env
}

func userFixture(email string) *entity.User {
	return &entity.User{
		ID:        1,
		Email:     email,
		Password:  "$2a$04$invalidhashfortestingonly",
		CreatedAt: time.Now(),
	}
}
