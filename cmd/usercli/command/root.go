// Package command builds the usercli subcommand tree.
//
// The store is created once by the caller and handed to NewRootCommand;
// every subcommand closes over it instead of reaching for shared state.
package command

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/arllen133/userdb"
)

// UserStore is the part of userdb.Store the commands use.
type UserStore interface {
	Insert(ctx context.Context, name string, age int) (int64, error)
	FindByID(ctx context.Context, id int64) (*userdb.User, error)
	List(ctx context.Context, page, perPage int) ([]*userdb.User, error)
	Update(ctx context.Context, id int64, patch userdb.UserPatch) (*userdb.User, error)
	Delete(ctx context.Context, id int64) (*userdb.User, error)
}

var _ UserStore = (*userdb.Store)(nil)

// Options configures the command tree.
type Options struct {
	// PerPage is the default page size of the list command.
	PerPage int
	// Interactive enables prompt labels when add has to read missing values from stdin.
	Interactive bool
	Logger      *slog.Logger
	In          io.Reader
	Out         io.Writer
	Err         io.Writer
}

func (o *Options) setDefaults() {
	if o.PerPage < 1 {
		o.PerPage = 5
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if o.In == nil {
		o.In = os.Stdin
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Err == nil {
		o.Err = os.Stderr
	}
}

// NewRootCommand returns the usercli root command with all subcommands attached.
func NewRootCommand(store UserStore, opts Options) *cobra.Command {
	opts.setDefaults()

	root := &cobra.Command{
		Use:   "usercli",
		Short: "Manage user records stored in a local SQLite file",
		Long: `Create, inspect, update and delete user records (name, age).

Records live in a single SQLite file. Set USERCLI_DB_PATH to use a file other
than data/users.sqlite next to the executable.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageErrorf("unknown command %q for %q", args[0], cmd.CommandPath())
			}
			return cmd.Help()
		},
	}
	root.SetIn(opts.In)
	root.SetOut(opts.Out)
	root.SetErr(opts.Err)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	root.AddCommand(
		newAddCommand(store, opts),
		newFindCommand(store, opts),
		newListCommand(store, opts),
		newUpdateCommand(store, opts),
		newDeleteCommand(store, opts),
	)
	return root
}

// noArgs rejects positional arguments as a usage error.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usageErrorf("%q accepts no arguments, got %q", cmd.CommandPath(), args[0])
	}
	return nil
}
