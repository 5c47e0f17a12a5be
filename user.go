package userdb

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"
)

// MaxNameLength is the longest accepted name, counted in characters (runes).
const MaxNameLength = 50

// User is a single row of the users table.
// ID is assigned by the store on insert and never changes afterwards.
type User struct {
	ID   int64  `db:"id"`
	Name string `db:"name" validate:"required,min=1,max=50"`
	Age  int    `db:"age" validate:"gte=0"`
}

// String renders the user the way the CLI prints records.
func (u *User) String() string {
	return fmt.Sprintf("ID: %d, Name: %s, Age: %d", u.ID, u.Name, u.Age)
}

// BeforeCreate trims the name and checks the record rules.
func (u *User) BeforeCreate(context.Context) error {
	u.Name = strings.TrimSpace(u.Name)
	return validateStruct(u)
}

// UserPatch describes a partial update. A nil field is left untouched.
type UserPatch struct {
	Name *string
	Age  *int
}

// Empty reports whether the patch changes nothing.
func (p *UserPatch) Empty() bool {
	return p.Name == nil && p.Age == nil
}

// BeforeUpdate trims a supplied name and checks supplied fields against the
// same rules as User. At least one field must be supplied.
func (p *UserPatch) BeforeUpdate(context.Context) error {
	if p.Empty() {
		return &ValidationError{Field: "update", Message: "supply a name or an age to change"}
	}

	var candidate User
	var fields []string
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		p.Name = &name
		candidate.Name = name
		fields = append(fields, "Name")
	}
	if p.Age != nil {
		candidate.Age = *p.Age
		fields = append(fields, "Age")
	}
	return translate(validate.StructPartial(&candidate, fields...))
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their column or flag name instead of the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"label", "db"} {
			name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
			if name != "" && name != "-" {
				return name
			}
		}
		return strings.ToLower(fld.Name)
	})
	return v
}

func validateStruct(s any) error {
	return translate(validate.Struct(s))
}

// validateID checks that an id can refer to a stored row.
func validateID(id int64) error {
	if id <= 0 {
		return &ValidationError{Field: "id", Message: "must be a positive integer"}
	}
	return nil
}

// translate converts validator output into ValidationErrors combined with multierr.
func translate(err error) error {
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	var out error
	for _, fe := range fieldErrs {
		out = multierr.Append(out, &ValidationError{Field: fe.Field(), Message: describe(fe)})
	}
	return out
}

func describe(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if isString {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "max":
		if isString {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return "must be at most " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	default:
		return fmt.Sprintf("failed the %q rule", fe.Tag())
	}
}
