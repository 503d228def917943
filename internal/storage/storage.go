package storage

import (
	"context"
	"fmt"

	"github.com/meltforce/gymtracker/internal/progress"
)

// RecordStore is a keyed record store that can be closed.
type RecordStore interface {
	progress.Store
	Close() error
}

var (
	_ RecordStore = (*DB)(nil)
	_ RecordStore = (*SQLite)(nil)
)

// Open returns the store selected by driver: "sqlite" opens sqlitePath,
// "postgres" connects to dsn and applies migrations from migrationsPath.
func Open(ctx context.Context, driver, sqlitePath, dsn, migrationsPath string) (RecordStore, error) {
	switch driver {
	case "sqlite":
		return OpenSQLite(sqlitePath)
	case "postgres":
		if err := RunMigrations(dsn, migrationsPath); err != nil {
			return nil, err
		}
		return New(ctx, dsn)
	}
	return nil, fmt.Errorf("unknown storage driver %q", driver)
}
