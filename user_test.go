package userdb_test

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/arllen133/userdb"
)

func TestUserBeforeCreate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		user    userdb.User
		wantErr string
	}{
		{name: "valid", user: userdb.User{Name: "Alice", Age: 30}},
		{name: "zero age", user: userdb.User{Name: "Baby", Age: 0}},
		{name: "max length", user: userdb.User{Name: strings.Repeat("a", 50), Age: 1}},
		{name: "empty name", user: userdb.User{Name: "", Age: 1}, wantErr: "invalid name: is required"},
		{name: "too long", user: userdb.User{Name: strings.Repeat("a", 51), Age: 1}, wantErr: "invalid name: must be at most 50 characters"},
		{name: "negative age", user: userdb.User{Name: "Bob", Age: -1}, wantErr: "invalid age: must be greater than or equal to 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := tt.user
			err := u.BeforeCreate(ctx)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestUserBeforeCreateCollectsAllErrors(t *testing.T) {
	u := userdb.User{Name: " ", Age: -3}
	err := u.BeforeCreate(context.Background())

	errs := multierr.Errors(err)
	require.Len(t, errs, 2)

	var fields []string
	for _, e := range errs {
		var verr *userdb.ValidationError
		require.True(t, errors.As(e, &verr))
		fields = append(fields, verr.Field)
	}
	assert.ElementsMatch(t, []string{"name", "age"}, fields)
}

func TestUserPatchBeforeUpdate(t *testing.T) {
	ctx := context.Background()
	ptr := func(s string) *string { return &s }
	intPtr := func(i int) *int { return &i }

	t.Run("Trims supplied name", func(t *testing.T) {
		p := userdb.UserPatch{Name: ptr("  Zed ")}
		require.NoError(t, p.BeforeUpdate(ctx))
		assert.Equal(t, "Zed", *p.Name)
		assert.Nil(t, p.Age)
	})

	t.Run("Age only skips name rules", func(t *testing.T) {
		p := userdb.UserPatch{Age: intPtr(0)}
		assert.NoError(t, p.BeforeUpdate(ctx))
	})

	t.Run("Empty patch", func(t *testing.T) {
		p := userdb.UserPatch{}
		assert.True(t, p.Empty())
		assert.True(t, userdb.IsValidation(p.BeforeUpdate(ctx)))
	})

	t.Run("Blank name", func(t *testing.T) {
		p := userdb.UserPatch{Name: ptr("   ")}
		assert.EqualError(t, p.BeforeUpdate(ctx), "invalid name: is required")
	})
}

func TestUserString(t *testing.T) {
	u := &userdb.User{ID: 1, Name: "Alice", Age: 30}
	assert.Equal(t, "ID: 1, Name: Alice, Age: 30", u.String())
}

func TestPage(t *testing.T) {
	assert.Equal(t, uint64(0), userdb.Page{Number: 1, PerPage: 5}.Offset())
	assert.Equal(t, uint64(10), userdb.Page{Number: 3, PerPage: 5}.Offset())

	assert.False(t, userdb.Page{Number: 1, PerPage: math.MaxInt}.OutOfRange())
	assert.False(t, userdb.Page{Number: 2, PerPage: math.MaxInt}.OutOfRange(), "largest accepted offset")
	assert.True(t, userdb.Page{Number: 3, PerPage: math.MaxInt}.OutOfRange())
	assert.True(t, userdb.Page{Number: 1<<62 + 1, PerPage: 4}.OutOfRange(), "product wraps past 2^64")
	assert.True(t, userdb.Page{Number: math.MaxInt, PerPage: 2}.OutOfRange())

	assert.NoError(t, userdb.Page{Number: 1, PerPage: 1}.Validate())
	assert.EqualError(t, userdb.Page{Number: 0, PerPage: 1}.Validate(), "invalid page: must be greater than or equal to 1")
	assert.EqualError(t, userdb.Page{Number: 1, PerPage: 0}.Validate(), "invalid per-page: must be greater than or equal to 1")
}
