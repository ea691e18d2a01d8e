package mapper

import (
	"errors"
	"fmt"
	"reflect"

	"datamapper/bo"
	"datamapper/primitive"
)

var (
	ErrNilTargetType     = errors.New("target type cannot be nil")
	ErrConversion        = errors.New("cannot convert value")
	ErrUnknownEnumMember = errors.New("unknown enum member")
	ErrUnknownKind       = errors.New("unknown data mapper kind")
)

// DataMapper parses raw property input into the typed value of one Go type
// and formats values of that type for display.
type DataMapper interface {
	// TryParsePropValue returns ok=false when raw cannot be represented.
	// A non-nil error is fatal and only produced by GeneralDataMapper.
	TryParsePropValue(raw any) (value any, ok bool, err error)
	ConvertValueToString(value any) string
}

// Kinded is implemented by the built-in mappers and GeneralDataMapper.
type Kinded interface {
	Kind() primitive.KindEnum
}

// KindOf returns the kind of m, or KindGeneral for mappers outside the package.
func KindOf(m DataMapper) primitive.KindEnum {
	if k, ok := m.(Kinded); ok {
		return k.Kind()
	}

	return primitive.KindGeneral
}

// ConversionError is the fatal error of GeneralDataMapper.
type ConversionError struct {
	Source reflect.Type
	Target reflect.Type
	Err    error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("convert %s to %s: %v", typeName(e.Source), typeName(e.Target), e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	return t.String()
}

// formatDefault is the formatting every mapper falls back to.
func formatDefault(v any) string {
	if bo.IsNull(v) {
		return ""
	}

	return fmt.Sprint(v)
}

// NewBuiltin creates the mapper of a built-in kind.
func NewBuiltin(kind primitive.KindEnum, opts ...Option) (DataMapper, error) {
	return newBuiltin(kind, newSettings(opts))
}

func newBuiltin(kind primitive.KindEnum, s settings) (DataMapper, error) {
	switch kind {
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	case primitive.KindBool:
		return &BoolDataMapper{opts: s.parse}, nil
	case primitive.KindGuid:
		return &GuidDataMapper{}, nil
	case primitive.KindDateTime:
		return &DateTimeDataMapper{opts: s.parse, layout: s.standardLayout}, nil
	case primitive.KindInt:
		return &IntDataMapper{}, nil
	case primitive.KindLong:
		return &LongDataMapper{}, nil
	case primitive.KindString:
		return &StringDataMapper{layout: s.standardLayout}, nil
	case primitive.KindTimeSpan:
		return &TimeSpanDataMapper{opts: s.parse}, nil
	case primitive.KindByteArray:
		return &ByteArrayDataMapper{}, nil
	case primitive.KindImage:
		return &ImageDataMapper{quality: s.jpegQuality}, nil
	}
}
