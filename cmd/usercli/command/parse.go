package command

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/arllen133/userdb"
)

// parseInteger parses a decimal flag value into T. An empty value is reported
// as missing, anything else that is not an integer in T's range as malformed.
func parseInteger[T constraints.Signed](field, raw string) (T, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, &userdb.ValidationError{Field: field, Message: "is required"}
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || int64(T(n)) != n {
		return 0, &userdb.ValidationError{Field: field, Message: "must be an integer, got " + strconv.Quote(raw)}
	}
	return T(n), nil
}

func parseID(raw string) (int64, error) {
	id, err := parseInteger[int64]("id", raw)
	if err != nil {
		return 0, err
	}
	if id < 1 {
		return 0, &userdb.ValidationError{Field: "id", Message: "must be a positive integer"}
	}
	return id, nil
}

func parseAge(raw string) (int, error) {
	age, err := parseInteger[int]("age", raw)
	if err != nil {
		return 0, err
	}
	if age < 0 {
		return 0, &userdb.ValidationError{Field: "age", Message: "must be a non-negative integer"}
	}
	return age, nil
}

// parsePageValue parses page and per-page, which start at 1.
func parsePageValue(field, raw string) (int, error) {
	n, err := parseInteger[int](field, raw)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, &userdb.ValidationError{Field: field, Message: "must be at least 1"}
	}
	return n, nil
}
