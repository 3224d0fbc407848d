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

	"eventsignup/config"
	authadapter "eventsignup/internal/adapters/auth"
	"eventsignup/internal/adapters/email"
	delivery "eventsignup/internal/delivery/http"
	"eventsignup/internal/delivery/http/controllers"
	"eventsignup/internal/delivery/http/middleware"
	"eventsignup/internal/repository/postgres"
	"eventsignup/internal/services"
	"eventsignup/internal/store"
)

const (
	requestTimeout  = 10 * time.Second
	shutdownTimeout = 15 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg)

	st, err := store.Open(store.Config{
		DSN:             cfg.DBUrl,
		MaxOpenConns:    25,
		MaxIdleConns:    10,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 2 * time.Minute,
	})
	if err != nil {
		logger.Error("open store", "err", err)
		os.Exit(1)
	}
	defer st.Close()

	db := st.DB()
	eventRepo := postgres.NewEventRepository(db)
	signupRepo := postgres.NewSignupRepository(db)
	userRepo := postgres.NewUserRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)

	hasher := authadapter.NewBcryptHasher(cfg.BcryptCost)
	mailer := email.NewMailer(cfg.Email, logger)
	emailSvc := services.NewEmailService(mailer, email.NewTemplateRenderer(), cfg.Email.NotifyAddress)

	eventSvc := services.NewEventService(logger, eventRepo, cfg.PageSize, requestTimeout)
	signupSvc := services.NewSignupService(logger, signupRepo, eventRepo, emailSvc, cfg.StrictSignupRefs, cfg.PageSize, requestTimeout)
	authSvc := services.NewAuthService(logger, userRepo, sessionRepo, hasher, cfg.SessionLifetime, requestTimeout)

	router := delivery.NewRouter(
		controllers.NewEventController(logger, eventSvc),
		controllers.NewSignupController(logger, signupSvc),
		controllers.NewAuthController(logger, authSvc),
		middleware.RequireSession(authSvc, logger),
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      middleware.LoggingMiddleware(logger, router),
		ReadTimeout:  requestTimeout,
		WriteTimeout: requestTimeout,
		IdleTimeout:  time.Minute,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown", "err", err)
	}
}
