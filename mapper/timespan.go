package mapper

import (
	"time"

	"datamapper/bo"
	"datamapper/internal/parse"
	"datamapper/primitive"
)

// TimeSpanDataMapper maps time.Duration properties. Text is read as a time
// of day, so "10:30" parses to 10h30m.
type TimeSpanDataMapper struct {
	opts parse.Options
}

func (*TimeSpanDataMapper) Kind() primitive.KindEnum { return primitive.KindTimeSpan }

func (m *TimeSpanDataMapper) TryParsePropValue(raw any) (any, bool, error) {
	if bo.IsNull(raw) {
		return nil, true, nil
	}

	switch t := raw.(type) {
	case time.Duration:
		return t, true, nil
	case *time.Duration:
		return *t, true, nil
	}

	tm, ok := parse.DateTime(bo.Unwrap(raw), m.opts)
	if !ok {
		return nil, false, nil
	}

	return parse.TimeOfDay(tm), true, nil
}

func (*TimeSpanDataMapper) ConvertValueToString(value any) string {
	return formatDefault(value)
}
