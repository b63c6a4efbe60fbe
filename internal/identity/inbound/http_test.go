package inbound

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/expensio/expensio/internal/identity/usecase"
	"github.com/expensio/expensio/internal/pkg/clock"
	"github.com/expensio/expensio/internal/pkg/config"
	"github.com/expensio/expensio/internal/pkg/goerror"
	"github.com/expensio/expensio/internal/pkg/instrument"
	"github.com/expensio/expensio/internal/pkg/jwt"
	"github.com/expensio/expensio/internal/pkg/router"
	"github.com/expensio/expensio/internal/pkg/uid"
)

type fakeUC struct {
	tokenOut  *usecase.TokenOutput
	tokenErr  error
	regErr    error
	verifyErr error
	verifyIn  usecase.RegisterVerifyInput
}

func (f *fakeUC) Token(context.Context, usecase.TokenInput) (*usecase.TokenOutput, error) {
	return f.tokenOut, f.tokenErr
}

func (f *fakeUC) Register(context.Context, usecase.RegisterInput) error {
	return f.regErr
}

func (f *fakeUC) RegisterVerify(_ context.Context, in usecase.RegisterVerifyInput) error {
	f.verifyIn = in

	return f.verifyErr
}

func newTestRouter(t *testing.T, uc uc) *router.Router {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte("app:\n  maintenance:\n    endpoints: \"\"\n"))
	if err != nil {
		t.Fatalf("failed to init config: %v", err)
	}

	verifier, err := jwt.NewHS256(jwt.Config{
		Secret: []byte("test-secret"),
		TTL:    time.Minute,
		Clock:  clock.New(),
		UUID:   uid.NewUUID(),
	})
	if err != nil {
		t.Fatalf("failed to init jwt: %v", err)
	}

	r := router.NewRouter(router.Config{
		Config:     cfg,
		UUID:       uid.NewUUID(),
		JWT:        verifier,
		Instrument: instrument.NewNoop(),
	})

	RegisterHTTPEndpoint(r, uc)

	return r
}

func TestTokenEndpoint(t *testing.T) {
	t.Run("ReturnsRawTokenPayload", func(t *testing.T) {
		r := newTestRouter(t, &fakeUC{
			tokenOut: &usecase.TokenOutput{AccessToken: "tok123", TokenType: "bearer"},
		})

		req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader("username=a%40b.com&password=pw"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var body map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body["access_token"] != "tok123" || body["token_type"] != "bearer" {
			t.Fatalf("unexpected payload %v", body)
		}
		if _, ok := body["data"]; ok {
			t.Fatalf("token payload must not be wrapped in an envelope")
		}
	})

	t.Run("BadCredentialsReturnDetail", func(t *testing.T) {
		r := newTestRouter(t, &fakeUC{
			tokenErr: goerror.NewBusiness("Incorrect username or password", goerror.CodeUnauthorized),
		})

		req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader("username=a%40b.com&password=bad"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}

		var body struct {
			Detail string `json:"detail"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body.Detail != "Incorrect username or password" {
			t.Fatalf("unexpected detail %q", body.Detail)
		}
	})

	t.Run("RejectsJSONBody", func(t *testing.T) {
		r := newTestRouter(t, &fakeUC{})

		req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(`{"username":"a@b.com"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestRegisterEndpoints(t *testing.T) {
	t.Run("RegisterSuccessMessage", func(t *testing.T) {
		r := newTestRouter(t, &fakeUC{})

		req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{"email":"a@b.com"}`))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var body struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body.Message == "" {
			t.Fatalf("expected top-level message in response")
		}
	})

	t.Run("ConflictStatus", func(t *testing.T) {
		r := newTestRouter(t, &fakeUC{
			regErr: goerror.NewBusiness("Email already registered", goerror.CodeConflict),
		})

		req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{"email":"a@b.com"}`))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
	})

	t.Run("VerifyAcceptsNumericCode", func(t *testing.T) {
		uc := &fakeUC{}
		r := newTestRouter(t, uc)

		payload := `{"email":"a@b.com","otp":123456,"password":"longenoughpw"}`
		req := httptest.NewRequest(http.MethodPost, "/register/verify", strings.NewReader(payload))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if uc.verifyIn.OTP != "123456" {
			t.Fatalf("expected code %q, got %q", "123456", uc.verifyIn.OTP)
		}
	})

	t.Run("VerifyAcceptsStringCode", func(t *testing.T) {
		uc := &fakeUC{}
		r := newTestRouter(t, uc)

		payload := `{"email":"a@b.com","otp":"012345","password":"longenoughpw"}`
		req := httptest.NewRequest(http.MethodPost, "/register/verify", strings.NewReader(payload))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if uc.verifyIn.OTP != "012345" {
			t.Fatalf("expected code %q, got %q", "012345", uc.verifyIn.OTP)
		}
	})

	t.Run("VerifyWrongCode", func(t *testing.T) {
		r := newTestRouter(t, &fakeUC{
			verifyErr: goerror.NewBusiness("Invalid or expired OTP", goerror.CodeUnauthorized),
		})

		payload := `{"email":"a@b.com","otp":"000000","password":"longenoughpw"}`
		req := httptest.NewRequest(http.MethodPost, "/register/verify", strings.NewReader(payload))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(t, &fakeUC{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
