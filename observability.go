package userdb

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName = "github.com/arllen133/userdb"
	meterName  = "github.com/arllen133/userdb"
)

// Metrics are the per-statement instruments recorded for every store call.
type Metrics struct {
	QueryCount    metric.Int64Counter
	QueryDuration metric.Float64Histogram
	QueryErrors   metric.Int64Counter
}

// ObservabilityConfig is shared by a Session and the transaction sessions it begins.
// A nil Logger, Tracer or Metrics switches that output off.
type ObservabilityConfig struct {
	Logger             *slog.Logger
	Tracer             trace.Tracer
	Meter              metric.Meter
	Metrics            *Metrics
	SlowQueryThreshold time.Duration
	LogQueries         bool // include SQL text and log successful statements
}

// defaultObservabilityConfig is silent apart from the slow statement threshold.
func defaultObservabilityConfig() *ObservabilityConfig {
	return &ObservabilityConfig{
		SlowQueryThreshold: 200 * time.Millisecond,
	}
}

// SessionOption configures a Session. Pass them to Open or NewSession.
type SessionOption func(*Session)

// WithLogger reports failed and slow statements to logger.
func WithLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) {
		s.obs.Logger = logger
	}
}

// WithTracer starts one client span per statement.
func WithTracer(tracer trace.Tracer) SessionOption {
	return func(s *Session) {
		s.obs.Tracer = tracer
	}
}

// WithDefaultTracer is WithTracer with the globally registered provider.
func WithDefaultTracer() SessionOption {
	return func(s *Session) {
		s.obs.Tracer = otel.Tracer(tracerName)
	}
}

// WithMeter records statement counts, durations and failures on meter.
func WithMeter(meter metric.Meter) SessionOption {
	return func(s *Session) {
		s.obs.Meter = meter
		s.obs.Metrics = initMetrics(meter)
	}
}

// WithDefaultMeter is WithMeter with the globally registered provider.
func WithDefaultMeter() SessionOption {
	return func(s *Session) {
		meter := otel.Meter(meterName)
		s.obs.Meter = meter
		s.obs.Metrics = initMetrics(meter)
	}
}

func initMetrics(meter metric.Meter) *Metrics {
	queryCount, _ := meter.Int64Counter("userdb.query.count",
		metric.WithDescription("Total number of SQL statements executed"),
		metric.WithUnit("{query}"),
	)

	queryDuration, _ := meter.Float64Histogram("userdb.query.duration",
		metric.WithDescription("Statement execution duration in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000),
	)

	queryErrors, _ := meter.Int64Counter("userdb.query.errors",
		metric.WithDescription("Total number of failed statements"),
		metric.WithUnit("{error}"),
	)

	return &Metrics{
		QueryCount:    queryCount,
		QueryDuration: queryDuration,
		QueryErrors:   queryErrors,
	}
}

// WithSlowQueryThreshold logs statements slower than d at warn level.
func WithSlowQueryThreshold(d time.Duration) SessionOption {
	return func(s *Session) {
		s.obs.SlowQueryThreshold = d
	}
}

// WithQueryLogging logs every statement at debug level, SQL text included.
func WithQueryLogging(enabled bool) SessionOption {
	return func(s *Session) {
		s.obs.LogQueries = enabled
	}
}

// spanWrapper lets statement code end and annotate a span without checking
// whether tracing is on.
type spanWrapper struct {
	span trace.Span
}

func (w spanWrapper) End() {
	if w.span != nil {
		w.span.End()
	}
}

func (w spanWrapper) RecordError(err error) {
	if w.span != nil {
		w.span.RecordError(err)
	}
}

func (w spanWrapper) SetStatus(code codes.Code, description string) {
	if w.span != nil {
		w.span.SetStatus(code, description)
	}
}

func (s *Session) startSpanWith(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, spanWrapper) {
	if s.obs.Tracer == nil {
		return ctx, spanWrapper{nil}
	}
	ctx, span := s.obs.Tracer.Start(ctx, name, opts...)
	return ctx, spanWrapper{span}
}

// observe reports a finished statement to the span, metrics and logger.
// sql.ErrNoRows is an expected outcome of a lookup and is not counted as a failure.
func (s *Session) observe(ctx context.Context, span spanWrapper, query string, duration time.Duration, err error) {
	if errors.Is(err, sql.ErrNoRows) {
		err = nil
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	operation := operationOf(query)
	s.recordMetrics(ctx, operation, duration, err)
	s.logQuery(ctx, operation, query, duration, err)
}

func (s *Session) recordMetrics(ctx context.Context, operation string, duration time.Duration, err error) {
	if s.obs.Metrics == nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("db.operation", operation),
		attribute.String("db.system", s.dialect.Name()),
	)

	s.obs.Metrics.QueryCount.Add(ctx, 1, attrs)
	s.obs.Metrics.QueryDuration.Record(ctx, float64(duration.Microseconds())/1000, attrs)

	if err != nil {
		s.obs.Metrics.QueryErrors.Add(ctx, 1, attrs)
	}
}

// logQuery picks one level per statement: error on failure, warn when slow,
// debug otherwise and only with query logging on.
func (s *Session) logQuery(ctx context.Context, operation, query string, duration time.Duration, err error) {
	if s.obs.Logger == nil {
		return
	}

	attrs := []slog.Attr{
		slog.String("operation", operation),
		slog.Duration("duration", duration),
	}

	if s.obs.LogQueries {
		attrs = append(attrs, slog.String("query", query))
	}

	if err != nil {
		s.obs.Logger.LogAttrs(ctx, slog.LevelError, "query failed", append(attrs, slog.String("error", err.Error()))...)
		return
	}

	if duration > s.obs.SlowQueryThreshold {
		s.obs.Logger.LogAttrs(ctx, slog.LevelWarn, "slow query", attrs...)
		return
	}

	if s.obs.LogQueries {
		s.obs.Logger.LogAttrs(ctx, slog.LevelDebug, "query executed", attrs...)
	}
}

// operationOf returns the lower-cased leading SQL verb, e.g. "select" or "insert".
func operationOf(query string) string {
	query = strings.TrimSpace(query)
	if i := strings.IndexAny(query, " \t\n"); i > 0 {
		query = query[:i]
	}
	return strings.ToLower(query)
}
