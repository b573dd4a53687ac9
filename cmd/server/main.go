// Command server runs the event booking storefront API.
//
// @title Event Booking API
// @version 1.0
// @description Event discovery and booking storefront: browse and search the catalog, manage listings, and sign in with the mocked session flows.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"eventbooking/config"
	"eventbooking/internal/adapters/auth"
	"eventbooking/internal/adapters/email"
	deliveryhttp "eventbooking/internal/delivery/http"
	"eventbooking/internal/delivery/http/controllers"
	"eventbooking/internal/delivery/http/middleware"
	"eventbooking/internal/domain"
	"eventbooking/internal/repository/file"
	"eventbooking/internal/repository/memory"
	"eventbooking/internal/repository/postgres"
	redisslot "eventbooking/internal/repository/redis"
	"eventbooking/internal/repository/sqlite"
	"eventbooking/internal/services"
)

func main() {
	logger := config.NewLogger()
	if err := run(logger); err != nil {
		logger.Error("server exited", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	ctx := context.Background()

	slot, closeSlot, err := openSlot(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeSlot()
	logger.Info("durable slot ready", "backend", cfg.SlotBackend, "key", cfg.SlotKey)

	catalog := services.NewCatalogStore(logger, nil)
	catalog.Initialize()

	session := services.NewSessionStore(slot, cfg.SlotKey, cfg.SessionDelay, logger)
	defer session.Close()
	if err := session.Restore(ctx); err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	if state := session.Current(); state.Authenticated() {
		logger.Info("session restored", "identity_id", state.Identity.ID, "email", state.Identity.Email)
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.MailProvider,
		FromAddress: cfg.MailFromAddress,
		FromName:    cfg.MailFromName,
		SES: email.SESConfig{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		},
	}, logger)
	if err != nil {
		return fmt.Errorf("mailer: %w", err)
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)
	bookingService := services.NewBookingService(catalog, session, emailService)

	issuer := auth.NewJWTIssuer(cfg.JWTSecret)
	verifier := auth.NewJWTVerifier(cfg.JWTSecret)

	mux := deliveryhttp.NewRouter(
		controllers.NewEventController(logger, catalog),
		controllers.NewSessionController(logger, session, issuer, cfg.JWTExpiry, emailService),
		controllers.NewBookingController(logger, bookingService),
		middleware.RequireSession(verifier, session, logger),
	)

	srv := &http.Server{
		Addr:         cfg.ServerAddr(),
		Handler:      deliveryhttp.NewHandler(mux, logger, cfg.AllowedOrigins()),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second + cfg.SessionDelay,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case sig := <-quit:
		logger.Info("shutting down server", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// openSlot builds the durable slot selected by SLOT_BACKEND. The returned func releases it.
func openSlot(ctx context.Context, cfg *config.Config) (domain.DurableSlot, func(), error) {
	noop := func() {}
	switch cfg.SlotBackend {
	case config.SlotBackendMemory:
		return memory.NewSlot(), noop, nil
	case config.SlotBackendFile:
		slot, err := file.NewSlot(cfg.SlotDir)
		if err != nil {
			return nil, nil, fmt.Errorf("file slot: %w", err)
		}
		return slot, noop, nil
	case config.SlotBackendPostgres:
		db, err := postgres.Open(ctx, cfg.DBUrl)
		if err != nil {
			return nil, nil, fmt.Errorf("postgres slot: %w", err)
		}
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("postgres slot: %w", err)
		}
		return postgres.NewSlotRepository(db), func() { db.Close() }, nil
	case config.SlotBackendSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0o700); err != nil {
			return nil, nil, fmt.Errorf("sqlite slot: %w", err)
		}
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("sqlite slot: %w", err)
		}
		return sqlite.NewSlotRepository(db), func() { db.Close() }, nil
	case config.SlotBackendRedis:
		slot, err := redisslot.NewSlot(redisslot.SlotOptions{URL: cfg.RedisURL, Prefix: cfg.RedisPrefix})
		if err != nil {
			return nil, nil, fmt.Errorf("redis slot: %w", err)
		}
		return slot, func() { slot.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown slot backend %q", cfg.SlotBackend)
	}
}
