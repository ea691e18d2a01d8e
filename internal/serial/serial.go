// Package serial converts arbitrary values to and from byte arrays.
package serial

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

var ErrEmptyData = errors.New("no data to deserialize")

// ObjectToBytes serializes v.
func ObjectToBytes(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize %T: %w", v, err)
	}

	return data, nil
}

// BytesToObject deserializes data produced by ObjectToBytes into v, which
// must be a pointer.
func BytesToObject(data []byte, v any) error {
	if len(data) == 0 {
		return ErrEmptyData
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to deserialize into %T: %w", v, err)
	}

	return nil
}
