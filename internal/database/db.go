package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// memoryDSN backs the catalog with a private in-memory database; it vanishes
// with the last connection, so the pool below never lets that one go.
const memoryDSN = "file::memory:?_foreign_keys=on"

// Open opens the in-memory sqlite catalog.
func Open() (*sql.DB, error) {
	db, err := sql.Open("sqlite3", memoryDSN)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1) // one connection == one memory database
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)
	return db, nil
}

// OpenCatalog opens the catalog and applies the embedded migrations, which
// also seed the static content.
func OpenCatalog(ctx context.Context) (*sql.DB, error) {
	db, err := Open()
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping catalog: %w", err)
	}
	if err := Migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate catalog: %w", err)
	}
	return db, nil
}
