package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/jhoicas/bravo-menu-api/pkg/logger"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const migrationsDir = "migrations"

// Migrator aplica el esquema embebido con goose sobre el pool de la app.
type Migrator struct {
	pool *pgxpool.Pool
	log  *logger.Logger
}

// NewMigrator construye el migrador.
func NewMigrator(pool *pgxpool.Pool, log *logger.Logger) *Migrator {
	return &Migrator{pool: pool, log: log.Component("migration")}
}

func (m *Migrator) open() (*sql.DB, error) {
	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, fmt.Errorf("goose dialect: %w", err)
	}
	return stdlib.OpenDBFromPool(m.pool), nil
}

// Up aplica todas las migraciones pendientes.
func (m *Migrator) Up(ctx context.Context) error {
	db, err := m.open()
	if err != nil {
		return err
	}
	defer db.Close()

	from, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("current version: %w", err)
	}
	if err := goose.UpContext(ctx, db, migrationsDir); err != nil {
		m.log.Error().Err(err).Msg("migración fallida")
		return fmt.Errorf("migrate up: %w", err)
	}
	to, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("final version: %w", err)
	}
	m.log.Info().Int64("from_version", from).Int64("to_version", to).Msg("migraciones aplicadas")
	return nil
}

// Down revierte `steps` migraciones.
func (m *Migrator) Down(ctx context.Context, steps int) error {
	db, err := m.open()
	if err != nil {
		return err
	}
	defer db.Close()

	for i := 0; i < steps; i++ {
		if err := goose.DownContext(ctx, db, migrationsDir); err != nil {
			return fmt.Errorf("migrate down: %w", err)
		}
	}
	m.log.Info().Int("steps", steps).Msg("migraciones revertidas")
	return nil
}

// Status imprime el estado de cada migración y devuelve la versión actual.
func (m *Migrator) Status(ctx context.Context) (int64, error) {
	db, err := m.open()
	if err != nil {
		return 0, err
	}
	defer db.Close()

	if err := goose.StatusContext(ctx, db, migrationsDir); err != nil {
		return 0, fmt.Errorf("migrate status: %w", err)
	}
	return goose.GetDBVersionContext(ctx, db)
}
