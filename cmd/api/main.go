package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gearshed/gearshed/internal/config"
	"github.com/gearshed/gearshed/internal/database"
	"github.com/gearshed/gearshed/internal/handler"
	"github.com/gearshed/gearshed/internal/logger"
	"github.com/gearshed/gearshed/internal/repository"
	"github.com/gearshed/gearshed/internal/router"
	"github.com/gearshed/gearshed/internal/server"
	"github.com/gearshed/gearshed/internal/service"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	appLogger := logger.New(cfg.Primary.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := database.Migrate(ctx, appLogger, cfg); err != nil {
		appLogger.Fatal().Err(err).Msg("failed to run migrations")
	}

	srv, err := server.New(cfg, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos := repository.NewRepositories(srv.DB)
	services := service.NewServices(srv, repos)
	handlers := handler.NewHandlers(srv, services)

	srv.SetupHTTPServer(router.New(srv, handlers))

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	appLogger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error().Err(err).Msg("shutdown failed")
	}
}
