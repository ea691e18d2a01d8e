package bo

import (
	"database/sql/driver"
	"reflect"
)

// Identity is implemented by business objects that can stand in for their
// primary key, e.g. when a related object is assigned to a foreign-key property.
type Identity interface {
	ID() any
}

// CustomProperty is implemented (on the pointer receiver) by value-object
// property types. The mapper allocates a fresh value and initializes it from
// the raw input; isPersistValue is false for user-entered values.
type CustomProperty interface {
	InitCustomProperty(value any, isPersistValue bool) error
}

type dbNull struct{}

func (dbNull) String() string { return "" }

// DBNull is the database-null sentinel.
var DBNull any = dbNull{}

// IsNull reports whether v is nil, the empty string, DBNull, a nil pointer,
// or a driver.Valuer (e.g. an invalid sql.NullString) yielding nil.
func IsNull(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case dbNull:
		return true
	case driver.Valuer:
		if isNilPointer(v) {
			return true
		}
		dv, err := t.Value()
		return err == nil && dv == nil
	}

	return isNilPointer(v)
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}

// Unwrap returns the underlying value of a valid database/sql nullable, so
// that sql.NullInt64{Int64: 5, Valid: true} parses like 5. Other values,
// including driver.Valuer types from other packages, are returned unchanged.
func Unwrap(v any) any {
	dv, ok := v.(driver.Valuer)
	if !ok || isNilPointer(v) || reflect.TypeOf(v).PkgPath() != "database/sql" {
		return v
	}

	val, err := dv.Value()
	if err != nil || val == nil {
		return v
	}

	return val
}
