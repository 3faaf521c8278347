package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"petstore/internal/config"
	"petstore/internal/db"
	"petstore/internal/logger"
	"petstore/internal/router"
	"petstore/internal/services"
)

func main() {
	cfg, err := config.LoadConfig()

	log := logger.InitLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	log.Info().Msg("Application starting")

	st, err := db.Open(context.Background(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open store")
	}

	authService := services.NewAuthService(cfg.JWTSecret, log)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.SetupRouter(st, authService, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Msgf("Server is running on http://localhost:%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
	if err := st.Close(ctx); err != nil {
		log.Error().Err(err).Msg("Closing store failed")
	}

	log.Info().Msg("Server stopped")
}
