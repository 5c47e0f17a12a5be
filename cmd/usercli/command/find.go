package command

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/arllen133/userdb"
)

func newFindCommand(store UserStore, opts Options) *cobra.Command {
	var rawID string

	cmd := &cobra.Command{
		Use:     "find",
		Aliases: []string{"find-by-id"},
		Short:   "Show a user by id",
		Args:    noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := parseID(rawID)
			if err != nil {
				return err
			}

			user, err := store.FindByID(cmd.Context(), id)
			if errors.Is(err, userdb.ErrNotFound) {
				opts.Logger.DebugContext(cmd.Context(), "user not found", "id", id)
				printNotFound(cmd.OutOrStdout(), id)
				return nil
			}
			if err != nil {
				return err
			}
			printUser(cmd.OutOrStdout(), user)
			return nil
		},
	}

	cmd.Flags().StringVarP(&rawID, "id", "i", "", "id of the user (required)")
	return cmd
}
