package command

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arllen133/userdb"
)

func newDeleteCommand(store UserStore, opts Options) *cobra.Command {
	var rawID string

	cmd := &cobra.Command{
		Use:     "delete",
		Aliases: []string{"delete-user"},
		Short:   "Delete a user by id",
		Args:    noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := parseID(rawID)
			if err != nil {
				return err
			}

			user, err := store.Delete(cmd.Context(), id)
			if errors.Is(err, userdb.ErrNotFound) {
				printNotFound(cmd.OutOrStdout(), id)
				return nil
			}
			if err != nil {
				return err
			}
			opts.Logger.DebugContext(cmd.Context(), "user deleted", "id", id, "name", user.Name)

			fmt.Fprintf(cmd.OutOrStdout(), "User with ID %d was deleted.\n", id)
			return nil
		},
	}

	cmd.Flags().StringVarP(&rawID, "id", "i", "", "id of the user (required)")
	return cmd
}
