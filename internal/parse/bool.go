package parse

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrUnsupportedInput is wrapped by DeveloperError for inputs no parser handles.
var ErrUnsupportedInput = errors.New("unsupported input type")

// DeveloperError reports a programming mistake rather than bad user input,
// e.g. handing a struct to the boolean parser.
type DeveloperError struct {
	Parser string
	Type   reflect.Type
	Err    error
}

func (e *DeveloperError) Error() string {
	return fmt.Sprintf("%s parser: %v: %s", e.Parser, e.Err, e.Type)
}

func (e *DeveloperError) Unwrap() error { return e.Err }

// Bool parses v as a boolean.
// ok is false when v is text or a number that does not denote a boolean.
// A *DeveloperError is returned for input types that can never denote one.
func Bool(v any, opts Options) (value bool, ok bool, err error) {
	switch t := v.(type) {
	case bool:
		return t, true, nil
	case string:
		return boolText(strings.TrimSpace(t), opts)
	case fmt.Stringer:
		return boolText(strings.TrimSpace(t.String()), opts)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0, true, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0, true, nil
	case reflect.Bool:
		return rv.Bool(), true, nil
	case reflect.String:
		return boolText(strings.TrimSpace(rv.String()), opts)
	}

	return false, false, &DeveloperError{Parser: "bool", Type: reflect.TypeOf(v), Err: ErrUnsupportedInput}
}

func boolText(s string, opts Options) (bool, bool, error) {
	for _, lit := range opts.trueValues() {
		if strings.EqualFold(s, lit) {
			return true, true, nil
		}
	}

	for _, lit := range opts.falseValues() {
		if strings.EqualFold(s, lit) {
			return false, true, nil
		}
	}

	return false, false, nil
}
