package primitive

import (
	"image"
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum tags the closed set of built-in data mapper variants.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, it stands for the general (reflection) fallback

	KindBool
	KindGuid
	KindDateTime
	KindInt
	KindLong
	KindString
	KindTimeSpan
	KindByteArray
	KindImage

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// KindGeneral is the zero KindEnum, used for types without a built-in mapper.
const KindGeneral KindEnum = 0

var (
	typeOfBool      = reflect.TypeFor[bool]()
	typeOfGuid      = reflect.TypeFor[uuid.UUID]()
	typeOfDateTime  = reflect.TypeFor[time.Time]()
	typeOfInt       = reflect.TypeFor[int]()
	typeOfLong      = reflect.TypeFor[int64]()
	typeOfString    = reflect.TypeFor[string]()
	typeOfTimeSpan  = reflect.TypeFor[time.Duration]()
	typeOfByteArray = reflect.TypeFor[[]byte]()
	typeOfImage     = reflect.TypeFor[image.Image]()
)

// IsInteger reports whether values of the kind are whole numbers.
func (k KindEnum) IsInteger() bool {
	switch k {
	default:
		return false
	case KindInt, KindLong:
		return true
	}
}

// IsBinary reports whether the kind is rendered as base64 text.
func (k KindEnum) IsBinary() bool {
	switch k {
	default:
		return false
	case KindByteArray, KindImage:
		return true
	}
}

// IsPreRegistered reports whether a fresh mapper factory holds the kind.
// Images are opt-in.
func (k KindEnum) IsPreRegistered() bool {
	return k != KindGeneral && k != KindImage && int(k) < KindTotal
}

// Bits returns the width of integer kinds.
func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("only integer kinds has meaningful bits amount, but requested for: " + k.String())
	case KindInt:
		power := 0
		for n := uint(math.MaxUint); n > 0; n >>= 1 {
			power++
		}
		return power
	case KindLong:
		return 64
	}
}

// ReflectType returns the Go type a built-in kind maps, or nil for KindGeneral.
func (k KindEnum) ReflectType() reflect.Type {
	switch k {
	default:
		return nil
	case KindBool:
		return typeOfBool
	case KindGuid:
		return typeOfGuid
	case KindDateTime:
		return typeOfDateTime
	case KindInt:
		return typeOfInt
	case KindLong:
		return typeOfLong
	case KindString:
		return typeOfString
	case KindTimeSpan:
		return typeOfTimeSpan
	case KindByteArray:
		return typeOfByteArray
	case KindImage:
		return typeOfImage
	}
}

// FromReflectType returns the built-in kind for exactly the given type.
// Named types (e.g. `type Color int`) are not built-ins and yield KindGeneral.
func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return KindGeneral
	}

	switch rtype {
	case typeOfBool:
		return KindBool
	case typeOfGuid:
		return KindGuid
	case typeOfDateTime:
		return KindDateTime
	case typeOfInt:
		return KindInt
	case typeOfLong:
		return KindLong
	case typeOfString:
		return KindString
	case typeOfTimeSpan:
		return KindTimeSpan
	case typeOfByteArray:
		return KindByteArray
	case typeOfImage:
		return KindImage
	}

	return KindGeneral
}

// ParseKind resolves a kind by its short, case-insensitive name ("guid", "long", ...).
func ParseKind(name string) (KindEnum, bool) {
	for k := KindEnum(1); int(k) < KindTotal; k++ {
		if strings.EqualFold(k.Name(), name) {
			return k, true
		}
	}

	return KindGeneral, false
}

// Name returns the short name of the kind, without the "Kind" prefix.
func (k KindEnum) Name() string {
	s := k.String()
	if len(s) > 4 && s[:4] == "Kind" {
		return s[4:]
	}

	return s
}
