package command

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newListCommand(store UserStore, opts Options) *cobra.Command {
	var rawPage, rawPerPage string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"list-users"},
		Short:   "List users one page at a time",
		Args:    noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			page, err := parsePageValue("page", rawPage)
			if err != nil {
				return err
			}
			perPage, err := parsePageValue("per-page", rawPerPage)
			if err != nil {
				return err
			}

			users, err := store.List(cmd.Context(), page, perPage)
			if err != nil {
				return err
			}
			opts.Logger.DebugContext(cmd.Context(), "users listed", "page", page, "per_page", perPage, "count", len(users))

			if len(users) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No users found on page %d\n", page)
				return nil
			}
			for _, u := range users {
				printUser(cmd.OutOrStdout(), u)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&rawPage, "page", "p", "1", "page number, starting at 1")
	cmd.Flags().StringVarP(&rawPerPage, "per-page", "r", strconv.Itoa(opts.PerPage), "number of users per page")
	return cmd
}
