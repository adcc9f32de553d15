// Package app wires configuration, storage, services, and transport
// together and runs the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/echospace/echospace-backend/internal/adapter/postgres"
	"github.com/echospace/echospace-backend/internal/adapter/postgres/feedback"
	ideastore "github.com/echospace/echospace-backend/internal/adapter/postgres/idea"
	sectionstore "github.com/echospace/echospace-backend/internal/adapter/postgres/section"
	"github.com/echospace/echospace-backend/internal/adapter/postgres/sectionlike"
	"github.com/echospace/echospace-backend/internal/adapter/postgres/token"
	userstore "github.com/echospace/echospace-backend/internal/adapter/postgres/user"
	"github.com/echospace/echospace-backend/internal/adapter/provider/github"
	jwtauth "github.com/echospace/echospace-backend/internal/auth"
	"github.com/echospace/echospace-backend/internal/config"
	authsvc "github.com/echospace/echospace-backend/internal/service/auth"
	ideasvc "github.com/echospace/echospace-backend/internal/service/idea"
	sectionsvc "github.com/echospace/echospace-backend/internal/service/section"
	usersvc "github.com/echospace/echospace-backend/internal/service/user"
	"github.com/echospace/echospace-backend/internal/transport/middleware"
	"github.com/echospace/echospace-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories, services, and handlers, and serves
// HTTP until the context is canceled or a shutdown signal arrives.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, pool); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
	}

	userRepo := userstore.New(pool)
	tokenRepo := token.New(pool)
	sectionRepo := sectionstore.New(pool)
	feedbackRepo := feedback.New(pool)
	sectionLikeRepo := sectionlike.New(pool)
	ideaRepo := ideastore.New(pool)
	ideaLikeRepo := ideastore.NewLikeRepo(pool)
	ideaCommentRepo := ideastore.NewCommentRepo(pool)

	jwtManager := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	verifier := github.NewVerifier(cfg.Auth.GitHubClientID, cfg.Auth.GitHubClientSecret, cfg.Auth.GitHubRedirectURI, logger)
	if !cfg.Auth.HasGitHubOAuth() {
		logger.Warn("github oauth credentials are not configured, login will be unavailable")
	}

	authService := authsvc.NewService(logger, userRepo, tokenRepo, verifier, jwtManager, cfg.Auth)
	userService := usersvc.NewService(logger, userRepo)
	sectionService := sectionsvc.NewService(logger, sectionRepo, userRepo, feedbackRepo, sectionLikeRepo)
	ideaService := ideasvc.NewService(logger, ideaRepo, ideaLikeRepo, ideaCommentRepo)

	router := rest.NewRouter(rest.Handlers{
		Auth:    rest.NewAuthHandler(authService, logger),
		Admin:   rest.NewAdminHandler(userService, logger),
		Section: rest.NewSectionHandler(sectionService, logger),
		Idea:    rest.NewIdeaHandler(ideaService, logger),
		Health:  rest.NewHealthHandler(pool, BuildVersion()),
	})

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Logger(logger),
		middleware.Auth(authService),
	)(router)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
