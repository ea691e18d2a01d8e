package mapper

import (
	"fmt"
	"time"

	"datamapper/bo"
	"datamapper/internal/parse"
	"datamapper/primitive"
)

// DateTimeDataMapper maps time.Time properties.
type DateTimeDataMapper struct {
	opts   parse.Options
	layout string
}

func (*DateTimeDataMapper) Kind() primitive.KindEnum { return primitive.KindDateTime }

func (m *DateTimeDataMapper) TryParsePropValue(raw any) (any, bool, error) {
	if bo.IsNull(raw) {
		return nil, true, nil
	}

	t, ok := parse.DateTime(bo.Unwrap(raw), m.opts)
	if !ok {
		return nil, false, nil
	}

	return t, true, nil
}

func (m *DateTimeDataMapper) ConvertValueToString(value any) string {
	parsed, ok, _ := m.TryParsePropValue(value)
	if !ok || parsed == nil {
		return ""
	}

	if t, ok := parsed.(time.Time); ok {
		return t.Format(m.layout)
	}

	return fmt.Sprint(parsed)
}
