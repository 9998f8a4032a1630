// Copyright (c) 2026 Folio. All rights reserved.

// Command api is the entry point for the Folio HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"github.com/foliohq/folio/internal/api"
	"github.com/foliohq/folio/internal/auth"
	"github.com/foliohq/folio/internal/blog"
	"github.com/foliohq/folio/internal/contact"
	"github.com/foliohq/folio/internal/platform/config"
	"github.com/foliohq/folio/internal/platform/constants"
	"github.com/foliohq/folio/internal/platform/migration"
	pgstore "github.com/foliohq/folio/internal/platform/postgres"
	redisstore "github.com/foliohq/folio/internal/platform/redis"
	"github.com/foliohq/folio/internal/platform/sec"
	"github.com/foliohq/folio/internal/profile"
	"github.com/foliohq/folio/internal/project"
	"github.com/foliohq/folio/internal/resume"
	"github.com/foliohq/folio/internal/users"
)

func main() {
	// ── 1. Environment & Logger ───────────────────────────────────────────
	// A missing .env file is fine; real deployments set variables directly.
	_ = godotenv.Load()

	log := newLogger(os.Getenv("ENVIRONMENT"), slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("[Folio] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(cfg.Environment, slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Token Service ──────────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTSecret, constants.AuthIssuer, cfg.JWTTTL)
	must(log, err, "initialize jwt service")

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	cookies := auth.CookieSettings{
		TTL:    cfg.CookieTTL(),
		Secure: !cfg.IsDevelopment(),
	}

	accountStore := auth.NewPostgresAccountStore(pool)
	authService := auth.NewService(accountStore, jwtSvc)
	authHandler := auth.NewHandler(authService, cookies)

	usersHandler := users.NewHandler(users.NewService(users.NewPostgresStore(pool), log))
	blogHandler := blog.NewHandler(blog.NewService(blog.NewPostgresStore(pool)))
	projectHandler := project.NewHandler(project.NewService(project.NewPostgresStore(pool)))

	throttle := contact.NewRedisThrottle(rdb, constants.ContactThrottleWindow)
	contactService := contact.NewService(contact.NewPostgresStore(pool), throttle, constants.ContactThrottleLimit, log)
	contactHandler := contact.NewHandler(contactService)

	resumeHandler := resume.NewHandler(resume.NewService(resume.NewPostgresStore(pool)))
	profileHandler := profile.NewHandler(profile.NewService(profile.NewPostgresStore(pool)))

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      authHandler,
		Users:     usersHandler,
		Blog:      blogHandler,
		Project:   projectHandler,
		Contact:   contactHandler,
		Resume:    resumeHandler,
		Profile:   profileHandler,
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, jwtSvc, authService, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// newLogger returns a colorized console logger in development and a JSON
// logger everywhere else.
func newLogger(environment string, level slog.Level) *slog.Logger {
	var handler slog.Handler
	if environment == "" || environment == "development" {
		handler = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	return slog.New(handler).With(slog.String("app", "folio-api"))
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
