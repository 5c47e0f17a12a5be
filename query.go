package userdb

import (
	"math"

	sq "github.com/Masterminds/squirrel"
)

// Page selects a window of users ordered by id.
// Both fields are 1-based and must be at least 1; out-of-range values are
// rejected rather than clamped.
type Page struct {
	Number  int `label:"page" validate:"gte=1"`
	PerPage int `label:"per-page" validate:"gte=1"`
}

// Offset returns the number of rows skipped before the page starts.
// Only meaningful when OutOfRange reports false.
func (p Page) Offset() uint64 {
	return uint64(p.Number-1) * uint64(p.PerPage)
}

// OutOfRange reports whether the page starts beyond the largest row offset
// SQLite accepts. Such a page lies past any table and is always empty.
func (p Page) OutOfRange() bool {
	return uint64(p.Number-1) > math.MaxInt64/uint64(p.PerPage)
}

// Validate checks the page bounds.
func (p Page) Validate() error {
	return validateStruct(p)
}

// selectUsers starts a SELECT over all user columns, ordered by id so that
// paging is stable.
func selectUsers(schema userSchema, dialect Dialect) sq.SelectBuilder {
	return sq.Select(schema.SelectColumns()...).
		From(schema.TableName()).
		OrderBy(schema.PKColumn() + " ASC").
		PlaceholderFormat(dialect.PlaceholderFormat())
}

// pageQuery builds the SQL for one page of users.
func pageQuery(schema userSchema, dialect Dialect, page Page) (string, []any, error) {
	return selectUsers(schema, dialect).
		Limit(uint64(page.PerPage)).
		Offset(page.Offset()).
		ToSql()
}

// byIDQuery builds the SQL for a single user lookup.
func byIDQuery(schema userSchema, dialect Dialect, id int64) (string, []any, error) {
	return selectUsers(schema, dialect).
		Where(sq.Eq{schema.PKColumn(): id}).
		Limit(1).
		ToSql()
}
