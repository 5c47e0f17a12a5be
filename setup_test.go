package userdb_test

import (
	"context"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"

	"github.com/arllen133/userdb"
)

// openTestStore opens a store on a fresh SQLite file that is removed after the test.
func openTestStore(t *testing.T, opts ...userdb.SessionOption) *userdb.Store {
	t.Helper()
	return openTestStoreAt(t, filepath.Join(t.TempDir(), "users.sqlite"), userdb.SQLite, opts...)
}

func openTestStoreAt(t *testing.T, path string, dialect userdb.Dialect, opts ...userdb.SessionOption) *userdb.Store {
	t.Helper()
	store, err := userdb.Open(context.Background(), path, dialect, opts...)
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func mustInsert(t *testing.T, store *userdb.Store, name string, age int) int64 {
	t.Helper()
	id, err := store.Insert(context.Background(), name, age)
	if err != nil {
		t.Fatalf("Failed to insert %q: %v", name, err)
	}
	return id
}

func ids(users []*userdb.User) []int64 {
	out := make([]int64, len(users))
	for i, u := range users {
		out[i] = u.ID
	}
	return out
}
