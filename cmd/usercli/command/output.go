package command

import (
	"fmt"
	"io"

	"github.com/arllen133/userdb"
)

func printUser(w io.Writer, u *userdb.User) {
	fmt.Fprintln(w, u.String())
}

func printNotFound(w io.Writer, id int64) {
	fmt.Fprintf(w, "User with ID %d does not exist\n", id)
}
