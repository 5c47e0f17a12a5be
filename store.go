// Package userdb provides the persistence layer for user records stored in an embedded SQLite file.
// This file implements the Store type, the single component exposing the CRUD operations.
//
// Store covers:
//   - Schema initialization (Open, EnsureSchema)
//   - Create (Insert)
//   - Read (FindByID, List)
//   - Update (Update, partial)
//   - Delete (Delete)
package userdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	sq "github.com/Masterminds/squirrel"
)

// Store manages the users table.
//
// Usage example:
//
//	store, err := userdb.Open(ctx, "data/users.sqlite", userdb.SQLite)
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	id, err := store.Insert(ctx, "Alice", 30)
//	user, err := store.FindByID(ctx, id)
type Store struct {
	session *Session
	schema  userSchema
}

// Open opens (creating if needed) the SQLite file at path and makes sure the
// users table exists. The parent directory is created when missing.
//
// Parameters:
//   - ctx: Context, supports cancellation and timeout
//   - path: File path of the database, or ":memory:"
//   - dialect: Driver dialect; its driver package must be imported by the caller
//   - opts: Session options (logging, tracing, metrics)
//
// Returns:
//   - *Store: Ready-to-use store, release it with Close
//   - error: StorageError when the file cannot be opened or initialized
//
// Note:
//   - The store holds a single connection; one invocation performs one operation
func Open(ctx context.Context, path string, dialect Dialect, opts ...SessionOption) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, &StorageError{Op: "create data directory", Err: err}
		}
	}

	db, err := sql.Open(dialect.DriverName(), path)
	if err != nil {
		return nil, &StorageError{Op: "open", Err: err}
	}
	db.SetMaxOpenConns(1)

	store := NewStore(NewSession(db, dialect, opts...))
	if err := store.EnsureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// NewStore creates a Store on top of an existing session.
// It does not touch the schema; call EnsureSchema when the table may be missing.
func NewStore(session *Session) *Store {
	return &Store{session: session}
}

// EnsureSchema creates the users table if it does not exist.
// It is safe to call on every startup: existing rows are never touched.
func (s *Store) EnsureSchema(ctx context.Context) error {
	return wrapStorage("initialize schema", ensureSchema(ctx, s.session))
}

// Close releases the database handle.
func (s *Store) Close() error {
	return wrapStorage("close", s.session.Close())
}

// Insert creates a user and returns the id assigned by the engine.
//
// Operation flow:
//  1. Trigger BeforeCreate hook (trims the name, validates name and age)
//  2. Execute INSERT
//  3. Return the auto-increment id
//
// Returns:
//   - int64: New id, greater than every id handed out before
//   - error: ValidationError for bad input, StorageError for engine failures
func (s *Store) Insert(ctx context.Context, name string, age int) (int64, error) {
	user := &User{Name: name, Age: age}
	if err := triggerBeforeCreate(ctx, user); err != nil {
		return 0, err
	}

	cols, vals := s.schema.InsertRow(user)
	query, args, err := sq.Insert(s.schema.TableName()).
		Columns(cols...).
		Values(vals...).
		PlaceholderFormat(s.session.dialect.PlaceholderFormat()).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("userdb: failed to build insert: %w", err)
	}

	result, err := s.session.Exec(ctx, query, args...)
	if err != nil {
		return 0, wrapStorage("insert", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, wrapStorage("read inserted id", err)
	}
	return id, nil
}

// FindByID returns the user with the given id.
//
// Returns:
//   - *User: Found user
//   - error: ErrNotFound when no row matches, ValidationError for id <= 0,
//     StorageError for engine failures
func (s *Store) FindByID(ctx context.Context, id int64) (*User, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	user, err := s.findByID(ctx, s.session, id)
	return user, wrapStorage("find", err)
}

func (s *Store) findByID(ctx context.Context, session *Session, id int64) (*User, error) {
	query, args, err := byIDQuery(s.schema, session.dialect, id)
	if err != nil {
		return nil, fmt.Errorf("userdb: failed to build sql: %w", err)
	}

	var user User
	if err := session.Get(ctx, &user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// List returns one page of users ordered by id.
//
// Parameters:
//   - page: 1-based page number
//   - perPage: Page size
//
// Returns:
//   - []*User: Users on the page; empty (not nil, not an error) past the last row
//   - error: ValidationError when page or perPage is below 1
//
// Example:
//
//	// Rows 11-15
//	users, err := store.List(ctx, 3, 5)
func (s *Store) List(ctx context.Context, page, perPage int) ([]*User, error) {
	p := Page{Number: page, PerPage: perPage}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if p.OutOfRange() {
		return []*User{}, nil
	}

	query, args, err := pageQuery(s.schema, s.session.dialect, p)
	if err != nil {
		return nil, fmt.Errorf("userdb: failed to build sql: %w", err)
	}

	var users []*User
	if err := s.session.Select(ctx, &users, query, args...); err != nil {
		return nil, wrapStorage("list", err)
	}
	if users == nil {
		users = []*User{}
	}
	return users, nil
}

// Update applies a partial update and returns the stored result.
// Only fields set in the patch are written, the others keep their values.
//
// Operation flow:
//  1. Trigger BeforeUpdate hook (rejects an empty patch, validates supplied fields)
//  2. In one transaction: UPDATE with the supplied columns only, then read the row back
//  3. Zero affected rows means the id does not exist and nothing changed
//
// Example:
//
//	age := 31
//	user, err := store.Update(ctx, 1, userdb.UserPatch{Age: &age})
//	if errors.Is(err, userdb.ErrNotFound) {
//	    // no such user
//	}
func (s *Store) Update(ctx context.Context, id int64, patch UserPatch) (*User, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	if err := triggerBeforeUpdate(ctx, &patch); err != nil {
		return nil, err
	}

	query, args, err := sq.Update(s.schema.TableName()).
		SetMap(s.schema.UpdateMap(&patch)).
		Where(sq.Eq{s.schema.PKColumn(): id}).
		PlaceholderFormat(s.session.dialect.PlaceholderFormat()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("userdb: failed to build update: %w", err)
	}

	var updated *User
	err = s.session.Transaction(ctx, func(tx *Session) error {
		result, err := tx.Exec(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrNotFound
		}

		updated, err = s.findByID(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, wrapStorage("update", err)
	}
	return updated, nil
}

// Delete removes the user and returns the row as it was before removal.
// Deleting an id that does not exist, including one deleted earlier, returns ErrNotFound.
func (s *Store) Delete(ctx context.Context, id int64) (*User, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	query, args, err := sq.Delete(s.schema.TableName()).
		Where(sq.Eq{s.schema.PKColumn(): id}).
		PlaceholderFormat(s.session.dialect.PlaceholderFormat()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("userdb: failed to build delete: %w", err)
	}

	var deleted *User
	err = s.session.Transaction(ctx, func(tx *Session) error {
		user, err := s.findByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return err
		}
		deleted = user
		return nil
	})
	if err != nil {
		return nil, wrapStorage("delete", err)
	}
	return deleted, nil
}
