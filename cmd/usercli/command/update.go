package command

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arllen133/userdb"
)

func newUpdateCommand(store UserStore, opts Options) *cobra.Command {
	var rawID, name, age string

	cmd := &cobra.Command{
		Use:     "update",
		Aliases: []string{"update-user"},
		Short:   "Change the name and/or age of a user",
		Long: `Change the name and/or age of a user. Fields that are not given keep their value.

Example:
  usercli update -i 1 -a 31`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := parseID(rawID)
			if err != nil {
				return err
			}

			var patch userdb.UserPatch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("age") {
				parsed, err := parseAge(age)
				if err != nil {
					return err
				}
				patch.Age = &parsed
			}

			user, err := store.Update(cmd.Context(), id, patch)
			if errors.Is(err, userdb.ErrNotFound) {
				printNotFound(cmd.OutOrStdout(), id)
				return nil
			}
			if err != nil {
				return err
			}
			opts.Logger.DebugContext(cmd.Context(), "user updated", "id", id)

			fmt.Fprintf(cmd.OutOrStdout(), "User with ID %d was updated.\n", id)
			printUser(cmd.OutOrStdout(), user)
			return nil
		},
	}

	cmd.Flags().StringVarP(&rawID, "id", "i", "", "id of the user (required)")
	cmd.Flags().StringVarP(&name, "name", "n", "", "new name of the user")
	cmd.Flags().StringVarP(&age, "age", "a", "", "new age of the user")
	return cmd
}
