package mapper

import (
	"fmt"
	"strings"

	"datamapper/bo"
	"datamapper/primitive"

	"github.com/google/uuid"
)

// GuidDataMapper maps uuid.UUID properties. The nil UUID is treated as no value.
type GuidDataMapper struct{}

func (*GuidDataMapper) Kind() primitive.KindEnum { return primitive.KindGuid }

func (m *GuidDataMapper) TryParsePropValue(raw any) (any, bool, error) {
	if bo.IsNull(raw) {
		return nil, true, nil
	}

	switch t := raw.(type) {
	case uuid.UUID:
		return guidOrNil(t), true, nil
	case *uuid.UUID:
		return guidOrNil(*t), true, nil
	case uuid.NullUUID:
		return guidOrNil(t.UUID), true, nil
	case bo.Identity:
		id := t.ID()
		if u, ok := id.(uuid.UUID); ok {
			return guidOrNil(u), true, nil
		}
		if bo.IsNull(id) {
			return nil, true, nil
		}
		raw = id
	case []byte:
		if len(t) == 16 {
			u, err := uuid.FromBytes(t)
			if err != nil {
				return nil, false, nil
			}
			return guidOrNil(u), true, nil
		}
	}

	u, err := uuid.Parse(strings.TrimSpace(fmt.Sprint(bo.Unwrap(raw))))
	if err != nil {
		return nil, false, nil
	}

	return guidOrNil(u), true, nil
}

// ConvertValueToString renders the braced upper-case form, e.g.
// {6BA7B810-9DAD-11D1-80B4-00C04FD430C8}.
func (m *GuidDataMapper) ConvertValueToString(value any) string {
	if bo.IsNull(value) {
		return ""
	}

	if u, ok := value.(uuid.UUID); ok {
		return FormatGuid(u)
	}

	parsed, ok, _ := m.TryParsePropValue(value)
	if !ok || parsed == nil {
		return ""
	}

	return FormatGuid(parsed.(uuid.UUID))
}

// FormatGuid returns the braced upper-case form of u, or "" for the nil UUID.
func FormatGuid(u uuid.UUID) string {
	if u == uuid.Nil {
		return ""
	}

	return "{" + strings.ToUpper(u.String()) + "}"
}

func guidOrNil(u uuid.UUID) any {
	if u == uuid.Nil {
		return nil
	}

	return u
}
