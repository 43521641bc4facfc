package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	coursecatalog "studentska/contexts/academics/course-catalog-service"
	catalogpostgres "studentska/contexts/academics/course-catalog-service/adapters/postgres"
	examenrollment "studentska/contexts/academics/exam-enrollment-service"
	catalogadapter "studentska/contexts/academics/exam-enrollment-service/adapters/catalog"
	ledgerpostgres "studentska/contexts/academics/exam-enrollment-service/adapters/postgres"
	identity "studentska/contexts/identity-access/identity-service"
	bcryptadapter "studentska/contexts/identity-access/identity-service/adapters/bcrypt"
	jwtadapter "studentska/contexts/identity-access/identity-service/adapters/jwt"
	identitypostgres "studentska/contexts/identity-access/identity-service/adapters/postgres"
	"studentska/contexts/identity-access/identity-service/adapters/render"
	"studentska/internal/platform/config"
	"studentska/internal/platform/db"
	"studentska/internal/platform/httpserver"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}
	if err := pg.Migrate(catalogpostgres.Migrate, ledgerpostgres.Migrate, identitypostgres.Migrate); err != nil {
		_ = pg.Close()
		return nil, err
	}

	courseRepo := catalogpostgres.NewRepository(pg.DB, logger)
	ledgerRepo := ledgerpostgres.NewRepository(pg.DB, logger)

	catalogModule := coursecatalog.NewModule(coursecatalog.Dependencies{
		Courses:     courseRepo,
		Enrollments: ledgerRepo,
		Clock:       catalogpostgres.SystemClock{},
		IDGenerator: catalogpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	ledgerModule := examenrollment.NewModule(examenrollment.Dependencies{
		Enrollments: ledgerRepo,
		Courses:     catalogadapter.Directory{Courses: courseRepo},
		Clock:       ledgerpostgres.SystemClock{},
		IDGenerator: ledgerpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	accountRepo := identitypostgres.NewRepository(pg.DB, logger)
	identityModule := identity.NewModule(identity.Dependencies{
		Accounts:    accountRepo,
		Tokens:      identitypostgres.NewTokenRepository(pg.DB),
		Codec:       jwtadapter.NewCodec(cfg.JWTSecret),
		Hasher:      bcryptadapter.NewHasher(cfg.BcryptCost),
		Renderer:    render.NewConfirmationRenderer(),
		Enrollments: ledgerRepo,
		Clock:       identitypostgres.SystemClock{},
		IDGenerator: identitypostgres.UUIDGenerator{},
		TokenTTL:    cfg.TokenTTL,
		Logger:      logger,
	})

	server := httpserver.New(catalogModule, ledgerModule, identityModule, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
