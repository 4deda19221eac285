package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"accessinvites/config"
	"accessinvites/internal/adapters/auth"
	"accessinvites/internal/adapters/email"
	"accessinvites/internal/adapters/metrics"
	deliveryhttp "accessinvites/internal/delivery/http"
	"accessinvites/internal/delivery/http/controllers"
	"accessinvites/internal/repository/postgres"
	"accessinvites/internal/services"
)

const shutdownTimeout = 15 * time.Second

// @title Access Invites API
// @version 1.0
// @description Invitation lifecycle for organization and workspace access.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := config.NewLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		return err
	}
	if err := postgres.Migrate(ctx, db); err != nil {
		return err
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.AWSRegion,
			AccessKeyID:        cfg.Email.AWSAccessKeyID,
			SecretAccessKey:    cfg.Email.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.Email.SESInsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		return err
	}
	renderer, err := email.NewTemplateRenderer()
	if err != nil {
		return err
	}
	policy, err := services.PolicyByName(cfg.InvitationPolicy)
	if err != nil {
		return err
	}
	registry := metrics.NewRegistry()

	invitationService := services.NewInvitationService(
		postgres.NewInvitationRepository(db),
		postgres.NewTxManager(db),
		services.NewEmailService(mailer, renderer),
		policy,
		registry,
		logger,
		services.InvitationServiceConfig{
			InvitationTTL:  cfg.InvitationTTL,
			ContextTimeout: cfg.ContextTimeout,
			AcceptURLBase:  cfg.InviteBaseURL,
		},
	)

	router := deliveryhttp.NewRouter(deliveryhttp.RouterDeps{
		Logger:             logger,
		Invitations:        controllers.NewInvitationController(logger, invitationService),
		Verifier:           auth.NewJWTVerifier(cfg.JWTSecret),
		Metrics:            registry.Handler(),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment, "policy", cfg.InvitationPolicy)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
