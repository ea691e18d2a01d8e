package mapper

import (
	"errors"

	"datamapper/bo"
	"datamapper/internal/parse"
	"datamapper/primitive"
)

// BoolDataMapper maps bool properties.
type BoolDataMapper struct {
	opts parse.Options
}

func (*BoolDataMapper) Kind() primitive.KindEnum { return primitive.KindBool }

// TryParsePropValue accepts the configured true/false literals, integers and
// bools. Input types the parser rejects as a developer mistake are reported
// as ok=false rather than as an error.
func (m *BoolDataMapper) TryParsePropValue(raw any) (any, bool, error) {
	if bo.IsNull(raw) {
		return nil, true, nil
	}

	v, ok, err := parse.Bool(bo.Unwrap(raw), m.opts)
	if err != nil {
		var devErr *parse.DeveloperError
		if errors.As(err, &devErr) {
			return nil, false, nil
		}

		return nil, false, err
	}

	if !ok {
		return nil, false, nil
	}

	return v, true, nil
}

func (*BoolDataMapper) ConvertValueToString(value any) string {
	return formatDefault(value)
}
