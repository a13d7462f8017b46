// Package main provides the entry point for the lead-intake service.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"loadup-backend/internal/auth"
	"loadup-backend/internal/config"
	"loadup-backend/internal/handler"
	"loadup-backend/internal/inquiry"
	"loadup-backend/internal/logger"
	"loadup-backend/internal/settings"
	"loadup-backend/internal/store"
)

// Run is the testable entrypoint for the application.
func Run(ctx context.Context) error {
	_ = godotenv.Load()
	cfg := config.Load()
	log := logger.New(cfg.Env)
	log.Info("Starting LoadUP lead-intake service")

	kv, err := store.OpenSQLite(cfg.DataPath)
	if err != nil {
		log.Error("failed to open store", zap.Error(err))
		return err
	}
	defer func() {
		if err := kv.Close(); err != nil {
			log.Error("failed to close store", zap.Error(err))
		}
	}()

	verifier, err := auth.NewStaticVerifier(cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		log.Error("failed to build credential verifier", zap.Error(err))
		return err
	}

	validate := validator.New()
	_ = validate.RegisterValidation("emailformat", handler.EmailValidator)

	h := handler.New(log,
		inquiry.NewRepository(kv),
		settings.NewRepository(kv),
		auth.NewSession(kv),
		verifier,
		validate,
		cfg.MaxUploadBytes,
	)

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      h.Routes(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()

	log.Info("Shutting down server")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctxShutdown)
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := Run(ctx); err != nil {
		os.Exit(1)
	}
}
