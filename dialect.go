// Package userdb provides the persistence layer for user records stored in an embedded SQLite file.
// This file implements the dialect abstraction that separates driver differences from the store.
//
// Dialect is responsible for:
//   - Database identification (used in logs, spans and metrics)
//   - The database/sql driver name to open
//   - Placeholder format for squirrel
//   - The idempotent DDL for the users table
//
// Two SQLite drivers are supported:
//   - github.com/mattn/go-sqlite3 (cgo), registered as "sqlite3"
//   - modernc.org/sqlite (pure Go), registered as "sqlite"
//
// The driver package itself must be imported by the binary (or test) that opens the store:
//
//	import _ "github.com/mattn/go-sqlite3"
//
//	store, err := userdb.Open(ctx, "data/users.sqlite", userdb.SQLite)
package userdb

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

var (
	SQLite     = &SQLiteDialect{}
	PureSQLite = &PureSQLiteDialect{}
)

// Dialect abstracts driver-specific details of the embedded store.
type Dialect interface {
	// Name returns the database system name.
	// Used for logging and metrics attributes, always "sqlite" for the supported engines.
	Name() string

	// DriverName returns the name the driver registered with database/sql.
	//
	// Returns:
	//   - "sqlite3" for github.com/mattn/go-sqlite3
	//   - "sqlite" for modernc.org/sqlite
	DriverName() string

	// PlaceholderFormat returns the placeholder format used by the database.
	// Squirrel uses this format to generate parameterized queries.
	PlaceholderFormat() sq.PlaceholderFormat

	// CreateTableSQL returns a statement that creates the users table if it is missing.
	// Running it on a database that already has the table must be a no-op.
	CreateTableSQL() string
}

// createUsersTable is shared by both SQLite drivers, they run the same engine.
// AUTOINCREMENT keeps ids monotonic: an id freed by a delete is never handed out again.
const createUsersTable = `CREATE TABLE IF NOT EXISTS ` + usersTable + ` (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	age INTEGER NOT NULL
)`

// SQLiteDialect implements Dialect for github.com/mattn/go-sqlite3.
//
// Usage example:
//
//	session := userdb.NewSession(db, userdb.SQLite)
type SQLiteDialect struct{}

// Name returns the SQLite dialect name.
func (d *SQLiteDialect) Name() string { return "sqlite" }

// DriverName returns the driver name registered by go-sqlite3.
func (d *SQLiteDialect) DriverName() string { return "sqlite3" }

// PlaceholderFormat returns SQLite's placeholder format (?).
func (d *SQLiteDialect) PlaceholderFormat() sq.PlaceholderFormat {
	return sq.Question
}

// CreateTableSQL returns the users table DDL.
func (d *SQLiteDialect) CreateTableSQL() string { return createUsersTable }

// PureSQLiteDialect implements Dialect for modernc.org/sqlite.
// It allows building the CLI with CGO_ENABLED=0.
type PureSQLiteDialect struct{}

// Name returns the SQLite dialect name.
func (d *PureSQLiteDialect) Name() string { return "sqlite" }

// DriverName returns the driver name registered by modernc.org/sqlite.
func (d *PureSQLiteDialect) DriverName() string { return "sqlite" }

// PlaceholderFormat returns SQLite's placeholder format (?).
func (d *PureSQLiteDialect) PlaceholderFormat() sq.PlaceholderFormat {
	return sq.Question
}

// CreateTableSQL returns the users table DDL.
func (d *PureSQLiteDialect) CreateTableSQL() string { return createUsersTable }

// DialectFor resolves a database/sql driver name to its dialect.
//
// Example:
//
//	dialect, err := userdb.DialectFor(cfg.Driver) // "sqlite3" or "sqlite"
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case SQLite.DriverName():
		return SQLite, nil
	case PureSQLite.DriverName():
		return PureSQLite, nil
	default:
		return nil, fmt.Errorf("userdb: unsupported driver %q", driver)
	}
}
