package postgres

import (
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/hanbitlee/mykorean-backend/internal/config"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies all pending SQL migrations to the configured database.
// Run at startup before the pool is handed to repositories.
func Migrate(cfg config.DatabaseConfig) error {
	connCfg, err := pgx.ParseConfig(cfg.DSN)
	if err != nil {
		return fmt.Errorf("parse database DSN: %w", err)
	}

	db := stdlib.OpenDB(*connCfg)
	defer db.Close()

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}
