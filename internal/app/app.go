package app

import (
	"context"
	"net/http"

	"github.com/expensio/expensio/internal/pkg/clock"
	"github.com/expensio/expensio/internal/pkg/config"
	"github.com/expensio/expensio/internal/pkg/goroutine"
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

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	goroutine *goroutine.Manager
	validator validator.Validator
	clock     clock.Clocker
	bcrypt    hash.Hash
	uid       uid.NumberID
	uuid      uid.StringID
	otp       otp.Generator
	jwt       jwt.JWT

	// resources
	dbConn    *pgxpool.Pool
	cacheConn *redis.Client
	mail      mail.Mail

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initJWT()
	app.initDatabase()
	app.initCache()
	app.initMail()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
