package database

import (
	"context"
	"database/sql"
	"fmt"

	"clicksafe/internal/data/migrations"
	"clicksafe/pkg/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// RunMigrations applies the embedded schema migrations. Goose needs a
// database/sql handle, so it opens its own short-lived connection via the
// pgx stdlib driver instead of borrowing from the pool.
func RunMigrations(ctx context.Context, config utils.DatabaseConfig) error {
	db, err := sql.Open("pgx", ConnString(config))
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set migration dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}
