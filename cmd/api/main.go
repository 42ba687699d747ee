package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/passform/passform-go/internal/config"
	"github.com/passform/passform-go/internal/crypto"
	"github.com/passform/passform-go/internal/handler"
	"github.com/passform/passform-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	src, err := crypto.SourceByName(cfg.RandomSource)
	if err != nil {
		slog.Error("invalid RANDOM_SOURCE", "error", err)
		os.Exit(1)
	}

	router := handler.NewRouter(handler.RouterConfig{
		Generator:      handler.NewGeneratorHandler(service.NewGeneratorService(src)),
		Form:           handler.NewFormHandler(service.NewFormService(src, cfg.FormSecret, cfg.FormExpiry)),
		FormSecret:     cfg.FormSecret,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "source", cfg.RandomSource)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
