package userdb

import (
	"context"
)

const usersTable = "users"

// userSchema maps User values to the users table and back.
type userSchema struct{}

func (userSchema) TableName() string { return usersTable }

func (userSchema) SelectColumns() []string {
	return []string{"id", "name", "age"}
}

// InsertRow returns the columns and values of a new row. The id column is
// omitted so the engine assigns it.
func (userSchema) InsertRow(u *User) ([]string, []any) {
	return []string{"name", "age"}, []any{u.Name, u.Age}
}

// UpdateMap returns only the columns supplied by the patch, so omitted
// fields keep their stored values.
func (userSchema) UpdateMap(p *UserPatch) map[string]any {
	set := make(map[string]any, 2)
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.Age != nil {
		set["age"] = *p.Age
	}
	return set
}

func (userSchema) PKColumn() string { return "id" }

// ensureSchema creates the users table when it does not exist yet.
func ensureSchema(ctx context.Context, session *Session) error {
	_, err := session.Exec(ctx, session.dialect.CreateTableSQL())
	return err
}
