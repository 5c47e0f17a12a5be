package userdb

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageQuery(t *testing.T) {
	query, args, err := pageQuery(userSchema{}, SQLite, Page{Number: 3, PerPage: 4})
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, name, age FROM users ORDER BY id ASC LIMIT 4 OFFSET 8", query)
	assert.Empty(t, args)
}

func TestByIDQuery(t *testing.T) {
	query, args, err := byIDQuery(userSchema{}, PureSQLite, 9)
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, name, age FROM users WHERE id = ? ORDER BY id ASC LIMIT 1", query)
	assert.Equal(t, []any{int64(9)}, args)
}

func TestUpdateMap(t *testing.T) {
	name, age := "X", 7

	tests := []struct {
		name    string
		patch   UserPatch
		wantSQL string
	}{
		{name: "name only", patch: UserPatch{Name: &name}, wantSQL: "UPDATE users SET name = ? WHERE id = ?"},
		{name: "age only", patch: UserPatch{Age: &age}, wantSQL: "UPDATE users SET age = ? WHERE id = ?"},
		{name: "both", patch: UserPatch{Name: &name, Age: &age}, wantSQL: "UPDATE users SET age = ?, name = ? WHERE id = ?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, _, err := sq.Update(usersTable).
				SetMap(userSchema{}.UpdateMap(&tt.patch)).
				Where(sq.Eq{"id": 1}).
				ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, query)
		})
	}
}

func TestOperationOf(t *testing.T) {
	assert.Equal(t, "select", operationOf("SELECT id FROM users"))
	assert.Equal(t, "create", operationOf("\n\tCREATE TABLE IF NOT EXISTS users (...)"))
	assert.Equal(t, "delete", operationOf("delete from users"))
}

func TestWrapStorage(t *testing.T) {
	assert.NoError(t, wrapStorage("op", nil))
	assert.Same(t, ErrNotFound, wrapStorage("op", ErrNotFound))

	verr := &ValidationError{Field: "id", Message: "must be a positive integer"}
	assert.Same(t, verr, wrapStorage("op", verr))

	wrapped := wrapStorage("insert", assert.AnError)
	var serr *StorageError
	require.ErrorAs(t, wrapped, &serr)
	assert.Equal(t, "userdb: insert: "+assert.AnError.Error(), wrapped.Error())
	assert.Same(t, wrapped, wrapStorage("commit", wrapped), "already wrapped errors are kept")
}

func TestDialectFor(t *testing.T) {
	d, err := DialectFor("sqlite3")
	require.NoError(t, err)
	assert.Same(t, SQLite, d)

	d, err = DialectFor("sqlite")
	require.NoError(t, err)
	assert.Same(t, PureSQLite, d)

	_, err = DialectFor("postgres")
	assert.EqualError(t, err, `userdb: unsupported driver "postgres"`)
}
