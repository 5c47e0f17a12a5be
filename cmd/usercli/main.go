package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/term"
	_ "modernc.org/sqlite"

	"github.com/arllen133/userdb"
	"github.com/arllen133/userdb/cmd/usercli/command"
	"github.com/arllen133/userdb/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one command line and returns the process exit status.
// The store is opened once here and closed on every return path.
func run(ctx context.Context, args []string, stdin *os.File, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return command.ExitFailure
	}

	logger, err := newLogger(cfg.Log, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return command.ExitFailure
	}

	dialect, err := userdb.DialectFor(cfg.Driver)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return command.ExitFailure
	}

	path, err := cfg.ResolveDBPath()
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return command.ExitFailure
	}

	store, err := userdb.Open(ctx, path, dialect, sessionOptions(cfg, logger)...)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return command.ExitCode(err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("failed to close store", "error", err)
		}
	}()
	logger.Debug("store opened", "path", path, "driver", dialect.DriverName())

	root := command.NewRootCommand(store, command.Options{
		PerPage:     cfg.PerPage,
		Interactive: term.IsTerminal(int(stdin.Fd())),
		Logger:      logger,
		In:          stdin,
		Out:         stdout,
		Err:         stderr,
	})
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return command.ExitCode(err)
	}
	return command.ExitOK
}

func newLogger(cfg config.Log, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}
	return slog.New(handler), nil
}

func sessionOptions(cfg *config.Config, logger *slog.Logger) []userdb.SessionOption {
	opts := []userdb.SessionOption{
		userdb.WithLogger(logger),
		userdb.WithQueryLogging(cfg.Log.Queries),
		userdb.WithSlowQueryThreshold(cfg.Observe.SlowQuery),
	}
	if cfg.Observe.Tracing {
		opts = append(opts, userdb.WithDefaultTracer())
	}
	if cfg.Observe.Metrics {
		opts = append(opts, userdb.WithDefaultMeter())
	}
	return opts
}
