package application

import (
	"context"
	"database/sql"
	"io/fs"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/pressly/goose/v3/database"
)

// MigrationManager collects per-module embedded migration filesystems and
// applies them with goose. Each module gets its own version table so module
// version numbers never collide.
type MigrationManager interface {
	RegisterSchema(module string, fsys fs.FS)
	Up(ctx context.Context) error
}

type moduleSchema struct {
	module string
	fsys   fs.FS
}

func NewMigrationManager(pool *pgxpool.Pool) MigrationManager {
	return &migrationManager{pool: pool}
}

type migrationManager struct {
	pool    *pgxpool.Pool
	schemas []moduleSchema
}

func (m *migrationManager) RegisterSchema(module string, fsys fs.FS) {
	m.schemas = append(m.schemas, moduleSchema{module: module, fsys: fsys})
}

func (m *migrationManager) Up(ctx context.Context) error {
	db := stdlib.OpenDBFromPool(m.pool)
	defer func() { _ = db.Close() }()

	for _, schema := range m.schemas {
		if err := m.upModule(ctx, db, schema); err != nil {
			return errors.Wrapf(err, "failed to migrate module %s", schema.module)
		}
	}
	return nil
}

func (m *migrationManager) upModule(ctx context.Context, db *sql.DB, schema moduleSchema) error {
	store, err := database.NewStore(database.DialectPostgres, "goose_db_version_"+schema.module)
	if err != nil {
		return err
	}
	provider, err := goose.NewProvider("", db, schema.fsys, goose.WithStore(store))
	if err != nil {
		return err
	}
	_, err = provider.Up(ctx)
	return err
}
