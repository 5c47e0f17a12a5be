package userdb

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Executor defines the common database operations for both DB and Tx
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
	GetContext(ctx context.Context, dest any, query string, args ...any) error
}

// Session manages the database connection and current transaction
type Session struct {
	db       *sqlx.DB // Underlying DB for starting transactions
	executor Executor // Current executor (DB or Tx)
	dialect  Dialect
	obs      *ObservabilityConfig
}

func NewSession(db *sql.DB, dialect Dialect, opts ...SessionOption) *Session {
	xdb := sqlx.NewDb(db, dialect.DriverName())
	s := &Session{
		db:       xdb,
		executor: xdb,
		dialect:  dialect,
		obs:      defaultObservabilityConfig(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	ctx, span := s.startSpan(ctx, query)
	defer span.End()

	start := time.Now()
	res, err := s.executor.ExecContext(ctx, query, args...)
	s.observe(ctx, span, query, time.Since(start), err)
	return res, err
}

func (s *Session) Select(ctx context.Context, dest any, query string, args ...any) error {
	ctx, span := s.startSpan(ctx, query)
	defer span.End()

	start := time.Now()
	err := s.executor.SelectContext(ctx, dest, query, args...)
	s.observe(ctx, span, query, time.Since(start), err)
	return err
}

// Get scans a single row into dest. It returns sql.ErrNoRows when nothing matches,
// which is not recorded as a query failure.
func (s *Session) Get(ctx context.Context, dest any, query string, args ...any) error {
	ctx, span := s.startSpan(ctx, query)
	defer span.End()

	start := time.Now()
	err := s.executor.GetContext(ctx, dest, query, args...)
	s.observe(ctx, span, query, time.Since(start), err)
	return err
}

func (s *Session) Begin(ctx context.Context) (*Session, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	// Return new Session where executor is the transaction
	return &Session{
		db:       s.db,
		executor: tx,
		dialect:  s.dialect,
		obs:      s.obs,
	}, nil
}

func (s *Session) Commit() error {
	if tx, ok := s.executor.(*sqlx.Tx); ok {
		return tx.Commit()
	}
	return sql.ErrTxDone
}

func (s *Session) Rollback() error {
	if tx, ok := s.executor.(*sqlx.Tx); ok {
		return tx.Rollback()
	}
	return sql.ErrTxDone
}

// Transaction executes a function within a transaction.
// All statements inside fn must go through txSession: the store keeps a single
// connection open, so using the outer session would block.
func (s *Session) Transaction(ctx context.Context, fn func(txSession *Session) error) (err error) {
	// Check if already in transaction
	if _, ok := s.executor.(*sqlx.Tx); ok {
		return fn(s)
	}

	txSession, err := s.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = txSession.Rollback()
			panic(p)
		} else if err != nil {
			_ = txSession.Rollback()
		}
	}()

	err = fn(txSession)
	if err != nil {
		return err
	}

	return txSession.Commit()
}

// Close releases the underlying database handle.
func (s *Session) Close() error {
	return s.db.Close()
}

func (s *Session) startSpan(ctx context.Context, query string) (context.Context, spanWrapper) {
	return s.startSpanWith(ctx, "userdb."+operationOf(query),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", s.dialect.Name()),
			attribute.String("db.operation", operationOf(query)),
		),
	)
}
