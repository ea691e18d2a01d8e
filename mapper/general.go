package mapper

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"datamapper/bo"
	"datamapper/primitive"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
)

var customPropertyType = reflect.TypeFor[bo.CustomProperty]()

// GeneralDataMapper maps any type without a built-in mapper. It resolves
// input, first match wins:
//
//  1. null input, as every mapper
//  2. values already assignable to the target
//  3. custom property targets (see bo.CustomProperty), unless a registered
//     converter accepts the input
//  4. member names of registered enums
//  5. registered type converters
//  6. generic coercion (github.com/spf13/cast, then reflect conversion)
//
// Failures of steps 3 to 6 are returned as *ConversionError, not as ok=false.
type GeneralDataMapper struct {
	target     reflect.Type
	converters *Converters
	enums      *Enums
	log        logrus.FieldLogger
}

// NewGeneralDataMapper returns a mapper for target.
func NewGeneralDataMapper(target reflect.Type, opts ...Option) (*GeneralDataMapper, error) {
	return newGeneral(target, newSettings(opts))
}

func newGeneral(target reflect.Type, s settings) (*GeneralDataMapper, error) {
	if target == nil {
		return nil, ErrNilTargetType
	}

	return &GeneralDataMapper{
		target:     target,
		converters: s.converters,
		enums:      s.enums,
		log:        s.log,
	}, nil
}

func (*GeneralDataMapper) Kind() primitive.KindEnum { return primitive.KindGeneral }

// TargetType returns the type values are converted to.
func (m *GeneralDataMapper) TargetType() reflect.Type { return m.target }

func (m *GeneralDataMapper) TryParsePropValue(raw any) (any, bool, error) {
	if bo.IsNull(raw) {
		return nil, true, nil
	}

	src := reflect.TypeOf(raw)
	if src.AssignableTo(m.target) {
		return raw, true, nil
	}

	if v, handled, err := m.customProperty(raw, src); handled {
		return v, err == nil, err
	}

	if s, ok := raw.(string); ok && m.enums.IsEnum(m.target) {
		v, err := m.enums.Member(m.target, s)
		if err != nil {
			return nil, false, &ConversionError{Source: src, Target: m.target, Err: err}
		}
		return v, true, nil
	}

	if conv, ok := m.converters.Lookup(m.target, src); ok {
		v, err := conv.ConvertFrom(raw)
		if err != nil {
			return nil, false, &ConversionError{Source: src, Target: m.target, Err: err}
		}
		return v, true, nil
	}

	v, err := coerce(raw, m.target)
	if err != nil {
		m.log.WithFields(logrus.Fields{
			"source": src.String(),
			"target": m.target.String(),
		}).WithError(err).Error("generic value conversion failed")

		return nil, false, &ConversionError{Source: src, Target: m.target, Err: err}
	}

	return v, true, nil
}

// ConvertValueToString renders registered enum members by name.
func (m *GeneralDataMapper) ConvertValueToString(value any) string {
	if bo.IsNull(value) {
		return ""
	}

	if name, ok := m.enums.Name(value); ok {
		return name
	}

	return fmt.Sprint(value)
}

// customProperty initializes a fresh target value from raw. handled is false
// when the target is not a custom property or a converter accepts raw.
func (m *GeneralDataMapper) customProperty(raw any, src reflect.Type) (v any, handled bool, err error) {
	base, isPtr := m.target, false
	if base.Kind() == reflect.Ptr {
		base, isPtr = base.Elem(), true
	}

	if base.Kind() == reflect.Interface || !reflect.PointerTo(base).Implements(customPropertyType) {
		return nil, false, nil
	}

	if _, ok := m.converters.Lookup(m.target, src); ok {
		return nil, false, nil
	}

	ptr := reflect.New(base)
	if err := ptr.Interface().(bo.CustomProperty).InitCustomProperty(raw, false); err != nil {
		return nil, true, &ConversionError{Source: src, Target: m.target, Err: err}
	}

	if isPtr {
		return ptr.Interface(), true, nil
	}

	return ptr.Elem().Interface(), true, nil
}

// coerce is the last resort conversion of v to target.
func coerce(v any, target reflect.Type) (any, error) {
	var (
		out any
		err error
	)

	switch target.Kind() {
	case reflect.Bool:
		out, err = cast.ToBoolE(v)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		out, err = coerceInt(v, target)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		out, err = coerceUint(v, target)
	case reflect.Float32:
		var f float64
		if f, err = cast.ToFloat64E(v); err == nil && reflect.Zero(target).OverflowFloat(f) {
			err = fmt.Errorf("%v overflows %s", v, target)
		}
		out = f
	case reflect.Float64:
		out, err = cast.ToFloat64E(v)
	case reflect.String:
		out, err = cast.ToStringE(v)
	default:
		rv := reflect.ValueOf(v)
		if !rv.CanConvert(target) {
			return nil, fmt.Errorf("%w: no conversion from %s", ErrConversion, rv.Type())
		}
		return rv.Convert(target).Interface(), nil
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConversion, err)
	}

	// named targets such as `type Percent float64`
	return reflect.ValueOf(out).Convert(target).Interface(), nil
}

// coerceInt reads v as a signed integer that fits target. Text must be
// decimal.
func coerceInt(v any, target reflect.Type) (int64, error) {
	var (
		n   int64
		err error
	)

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n = rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, fmt.Errorf("%d overflows %s", u, target)
		}
		n = int64(u)
	case reflect.Float32, reflect.Float64:
		var ok bool
		if n, ok = floatToInteger(rv.Float()); !ok {
			return 0, fmt.Errorf("%v is not a whole number within %s", v, target)
		}
	case reflect.String:
		return strconv.ParseInt(strings.TrimSpace(rv.String()), 10, target.Bits())
	default:
		if n, err = cast.ToInt64E(v); err != nil {
			return 0, err
		}
	}

	if reflect.Zero(target).OverflowInt(n) {
		return 0, fmt.Errorf("%d overflows %s", n, target)
	}

	return n, nil
}

// coerceUint reads v as an unsigned integer that fits target. Text must be
// decimal.
func coerceUint(v any, target reflect.Type) (uint64, error) {
	var u uint64

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u = rv.Uint()
	case reflect.String:
		return strconv.ParseUint(strings.TrimSpace(rv.String()), 10, target.Bits())
	default:
		n, err := coerceInt(v, reflect.TypeFor[int64]())
		if err != nil {
			return 0, err
		}
		if n < 0 {
			return 0, fmt.Errorf("%d is negative, %s is unsigned", n, target)
		}
		u = uint64(n)
	}

	if reflect.Zero(target).OverflowUint(u) {
		return 0, fmt.Errorf("%d overflows %s", u, target)
	}

	return u, nil
}
