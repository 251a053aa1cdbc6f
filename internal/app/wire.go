package app

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/entomoguide-backend/internal/adapter/postgres"
	accountrepo "github.com/heartmarshall/entomoguide-backend/internal/adapter/postgres/account"
	attachmentrepo "github.com/heartmarshall/entomoguide-backend/internal/adapter/postgres/attachment"
	"github.com/heartmarshall/entomoguide-backend/internal/adapter/postgres/category"
	"github.com/heartmarshall/entomoguide-backend/internal/adapter/postgres/insect"
	"github.com/heartmarshall/entomoguide-backend/internal/auth"
	"github.com/heartmarshall/entomoguide-backend/internal/config"
	"github.com/heartmarshall/entomoguide-backend/internal/service/account"
	"github.com/heartmarshall/entomoguide-backend/internal/service/attachment"
	"github.com/heartmarshall/entomoguide-backend/internal/service/catalog"
	"github.com/heartmarshall/entomoguide-backend/internal/service/notify"
	"github.com/heartmarshall/entomoguide-backend/internal/transport/middleware"
	"github.com/heartmarshall/entomoguide-backend/internal/transport/rest"
)

// MailSender delivers one HTML message.
type MailSender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// Deps are the external resources an Application is built from.
// A nil Mailer disables notification delivery.
type Deps struct {
	Config *config.Config
	Logger *slog.Logger
	Pool   *pgxpool.Pool
	Store  Store
	Mailer MailSender
}

// Application is the assembled HTTP API.
type Application struct {
	handler  http.Handler
	accounts *account.Service
	limiter  *middleware.RateLimiter
}

// New wires repositories, services and handlers.
func New(d Deps) (*Application, error) {
	cfg, logger := d.Config, d.Logger

	txm := postgres.NewTxManager(d.Pool)
	accounts := accountrepo.New(d.Pool)
	categories := category.New(d.Pool)
	insects := insect.New(d.Pool)
	attachments := attachmentrepo.New(d.Pool)

	hasher := auth.NewHasher(cfg.Auth.PasswordHashCost)
	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)

	dispatcher := notify.NewDispatcher(logger, d.Mailer, cfg.Mail)

	accountSvc, err := account.NewService(logger, accounts, hasher, jwt, dispatcher, d.Store)
	if err != nil {
		return nil, err
	}
	catalogSvc := catalog.NewService(logger, categories, insects, attachments, d.Store)
	attachmentSvc := attachment.NewService(logger, attachments, d.Store, txm)

	limiter := middleware.NewRateLimiter(5 * time.Minute)

	h := handlers{
		health: rest.NewHealthHandler(BuildVersion(),
			rest.Check{Name: "database", Ping: d.Pool.Ping},
		),
		accounts:    rest.NewAccountHandler(accountSvc, logger),
		catalog:     rest.NewCatalogHandler(catalogSvc, logger),
		attachments: rest.NewAttachmentHandler(attachmentSvc, logger),
		uploads:     d.Store.Handler(),
	}

	mw := routeMiddleware{
		auth: middleware.Auth(jwt),
		limit: func(scope string) middleware.Middleware {
			return limiter.Limit(scope, cfg.Auth.PublicRateLimit)
		},
		json:   middleware.BodyLimit(jsonBodyLimit),
		upload: middleware.BodyLimit(cfg.Storage.MaxUploadSize),
	}

	root := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	)(routes(h, mw))

	return &Application{handler: root, accounts: accountSvc, limiter: limiter}, nil
}

// Handler is the root HTTP handler.
func (a *Application) Handler() http.Handler { return a.handler }

// Close stops background work: the rate limiter sweeper and any
// registration notices still being sent.
func (a *Application) Close() {
	a.limiter.Stop()
	a.accounts.Wait()
}
