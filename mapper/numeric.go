package mapper

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"datamapper/bo"
	"datamapper/primitive"

	"github.com/shopspring/decimal"
)

var (
	minLong = decimal.NewFromInt(math.MinInt64)
	maxLong = decimal.NewFromInt(math.MaxInt64)
)

// IntDataMapper maps int properties.
type IntDataMapper struct{}

func (*IntDataMapper) Kind() primitive.KindEnum { return primitive.KindInt }

func (*IntDataMapper) TryParsePropValue(raw any) (any, bool, error) {
	if bo.IsNull(raw) {
		return nil, true, nil
	}

	n, ok := toInteger(raw, primitive.KindInt.Bits())
	if !ok {
		return nil, false, nil
	}

	return int(n), true, nil
}

func (m *IntDataMapper) ConvertValueToString(value any) string {
	return formatInteger(m, value)
}

// LongDataMapper maps int64 properties. Besides integers and text it accepts
// decimal.Decimal values within the int64 range, rounded half to even.
type LongDataMapper struct{}

func (*LongDataMapper) Kind() primitive.KindEnum { return primitive.KindLong }

func (*LongDataMapper) TryParsePropValue(raw any) (any, bool, error) {
	if bo.IsNull(raw) {
		return nil, true, nil
	}

	switch t := raw.(type) {
	case decimal.Decimal:
		n, ok := decimalToLong(t)
		return longOrNil(n, ok)
	case *decimal.Decimal:
		n, ok := decimalToLong(*t)
		return longOrNil(n, ok)
	case decimal.NullDecimal:
		n, ok := decimalToLong(t.Decimal)
		return longOrNil(n, ok)
	}

	n, ok := toInteger(raw, primitive.KindLong.Bits())
	return longOrNil(n, ok)
}

func (m *LongDataMapper) ConvertValueToString(value any) string {
	return formatInteger(m, value)
}

func longOrNil(n int64, ok bool) (any, bool, error) {
	if !ok {
		return nil, false, nil
	}

	return n, true, nil
}

func decimalToLong(d decimal.Decimal) (int64, bool) {
	if d.LessThan(minLong) || d.GreaterThan(maxLong) {
		return 0, false
	}

	return d.RoundBank(0).IntPart(), true
}

// toInteger reads integer kinds, business-object identities with an integer
// ID, and decimal text. The result must fit a signed integer of the given width.
func toInteger(raw any, bits int) (int64, bool) {
	raw = bo.Unwrap(raw)

	if id, ok := raw.(bo.Identity); ok {
		raw = id.ID()
		if !isIntegerKind(reflect.ValueOf(raw).Kind()) {
			return 0, false
		}
	}

	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fitInteger(rv.Int(), bits)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, false
		}
		return fitInteger(int64(u), bits)
	case reflect.Float32, reflect.Float64:
		n, ok := floatToInteger(rv.Float())
		if !ok {
			return 0, false
		}
		return fitInteger(n, bits)
	case reflect.String:
		n, err := strconv.ParseInt(strings.TrimSpace(rv.String()), 10, bits)
		return n, err == nil
	}

	n, err := strconv.ParseInt(strings.TrimSpace(fmt.Sprint(raw)), 10, bits)
	return n, err == nil
}

// floatToInteger accepts whole numbers within the int64 range only.
func floatToInteger(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Trunc(f) != f {
		return 0, false
	}

	// 2^63 is exactly representable, MaxInt64 is not.
	if f < math.MinInt64 || f >= -math.MinInt64 {
		return 0, false
	}

	return int64(f), true
}

func fitInteger(n int64, bits int) (int64, bool) {
	if bits >= 64 {
		return n, true
	}

	limit := int64(1) << (bits - 1)
	return n, -limit <= n && n < limit
}

func isIntegerKind(k reflect.Kind) bool {
	switch k {
	default:
		return false
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
}

func formatInteger(m DataMapper, value any) string {
	if bo.IsNull(value) {
		return ""
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	}

	parsed, ok, _ := m.TryParsePropValue(value)
	if !ok || parsed == nil {
		return ""
	}

	return fmt.Sprint(parsed)
}
