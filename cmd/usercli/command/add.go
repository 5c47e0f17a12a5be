package command

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arllen133/userdb"
)

func newAddCommand(store UserStore, opts Options) *cobra.Command {
	var name, age string

	cmd := &cobra.Command{
		Use:     "add",
		Aliases: []string{"create", "add-user"},
		Short:   "Create a user",
		Long: `Create a user. A missing --name or --age is read from standard input.

Example:
  usercli add -n Alice -a 30`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			p := newPrompter(cmd.InOrStdin(), cmd.ErrOrStderr(), opts.Interactive)
			if !cmd.Flags().Changed("name") {
				v, err := p.ask("Name")
				if err != nil {
					return err
				}
				name = v
			}
			if !cmd.Flags().Changed("age") {
				v, err := p.ask("Age")
				if err != nil {
					return err
				}
				age = v
			}

			parsedAge, err := parseAge(age)
			if err != nil {
				return err
			}

			id, err := store.Insert(ctx, name, parsedAge)
			if err != nil {
				return err
			}
			opts.Logger.DebugContext(ctx, "user created", "id", id)

			fmt.Fprintf(cmd.OutOrStdout(), "User %s created with ID %d.\n", strings.TrimSpace(name), id)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", fmt.Sprintf("name of the user (1-%d characters)", userdb.MaxNameLength))
	cmd.Flags().StringVarP(&age, "age", "a", "", "age of the user (non-negative integer)")
	return cmd
}
