// Package storage opens the local database, applies schema migrations, and
// bundles the per-collection repositories used by the services.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/acortes/libreserve/internal/repositories/books"
	"github.com/acortes/libreserve/internal/repositories/reservations"
	"github.com/acortes/libreserve/internal/repositories/users"
	"github.com/acortes/libreserve/internal/storage/migrations"
	"github.com/pressly/goose/v3"
)

// Repositories bundles one repository per collection, all sharing a handle
// to the same database file.
type Repositories struct {
	Users        users.Repository
	Books        books.Repository
	Reservations reservations.Repository
}

// RunMigrations applies the embedded goose migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (creating if needed) the database at dsn, migrates the
// schema, and returns the repository bundle.
func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		return nil, err
	}

	repos := &Repositories{
		Users:        users.NewSQLiteRepository(db),
		Books:        books.NewSQLiteRepository(db),
		Reservations: reservations.NewSQLiteRepository(db),
	}
	return repos, nil
}
