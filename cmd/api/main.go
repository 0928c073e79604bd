package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/erp-api/internal/app"
	"github.com/jhoicas/erp-api/pkg/config"
	"github.com/jhoicas/erp-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Bool("debug", cfg.App.Debug).
		Msg("iniciando aplicación")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("construir aplicación")
	}
	defer application.Close()

	// Un fallo de la carga inicial no detiene el arranque; queda en /ready.
	application.Bootstrap(ctx)

	if err := application.Serve(ctx); err != nil {
		application.Close()
		os.Exit(1)
	}
}
