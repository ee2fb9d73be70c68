package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/bravo-menu-api/internal/application/usecase"
	"github.com/jhoicas/bravo-menu-api/internal/cli"
	"github.com/jhoicas/bravo-menu-api/internal/infrastructure/postgres"
	"github.com/jhoicas/bravo-menu-api/pkg/config"
	"github.com/jhoicas/bravo-menu-api/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "menuctl"})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	defer pool.Close()

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		return fmt.Errorf("zona horaria %q: %w", cfg.App.Timezone, err)
	}

	app := &cli.App{
		Migrator: postgres.NewMigrator(pool, log),
		Plans:    usecase.NewEntitlementUseCase(postgres.NewBusinessRepository(pool), log, time.Now, loc),
	}
	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
