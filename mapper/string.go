package mapper

import (
	"fmt"
	"time"

	"datamapper/bo"
	"datamapper/primitive"

	"github.com/google/uuid"
)

// StringDataMapper maps string properties. It accepts any input.
type StringDataMapper struct {
	layout string
}

func (*StringDataMapper) Kind() primitive.KindEnum { return primitive.KindString }

func (m *StringDataMapper) TryParsePropValue(raw any) (any, bool, error) {
	if bo.IsNull(raw) {
		return nil, true, nil
	}

	s, ok := m.text(raw)
	if !ok {
		return nil, true, nil
	}

	return s, true, nil
}

func (m *StringDataMapper) ConvertValueToString(value any) string {
	if bo.IsNull(value) {
		return ""
	}

	s, _ := m.text(value)
	return s
}

// text returns ok=false for values that stand for no string, i.e. the nil UUID.
func (m *StringDataMapper) text(v any) (string, bool) {
	switch t := bo.Unwrap(v).(type) {
	case string:
		return t, true
	case uuid.UUID:
		if t == uuid.Nil {
			return "", false
		}
		return FormatGuid(t), true
	case *uuid.UUID:
		if t == nil || *t == uuid.Nil {
			return "", false
		}
		return FormatGuid(*t), true
	case time.Time:
		return t.Format(m.layout), true
	default:
		return fmt.Sprint(t), true
	}
}
