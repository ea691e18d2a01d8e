package mapper

import (
	"reflect"
	"sync"
)

// TypeConverter converts values of some source types into one target type.
type TypeConverter interface {
	CanConvertFrom(src reflect.Type) bool
	ConvertFrom(v any) (any, error)
}

type converterFunc[S, T any] func(S) (T, error)

func (fn converterFunc[S, T]) CanConvertFrom(src reflect.Type) bool {
	want := reflect.TypeFor[S]()
	if src == nil {
		return false
	}
	if want.Kind() == reflect.Interface {
		return src.Implements(want)
	}

	return src == want
}

func (fn converterFunc[S, T]) ConvertFrom(v any) (any, error) {
	return fn(v.(S))
}

// ConverterFunc adapts a typed conversion function to a TypeConverter.
// When S is an interface, every type implementing it is accepted.
func ConverterFunc[S, T any](fn func(S) (T, error)) TypeConverter {
	return converterFunc[S, T](fn)
}

// Converters holds type converters per target type.
type Converters struct {
	mu       sync.RWMutex
	byTarget map[reflect.Type][]TypeConverter
}

func NewConverters() *Converters {
	return &Converters{byTarget: make(map[reflect.Type][]TypeConverter)}
}

// Register adds c for target. Converters registered later win.
func (c *Converters) Register(target reflect.Type, conv TypeConverter) {
	if target == nil || conv == nil {
		panic("converter target type and converter cannot be nil")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.byTarget[target] = append([]TypeConverter{conv}, c.byTarget[target]...)
}

// RegisterConverter registers fn as the converter from S to T.
func RegisterConverter[S, T any](c *Converters, fn func(S) (T, error)) {
	c.Register(reflect.TypeFor[T](), ConverterFunc(fn))
}

// Lookup returns a converter for target that accepts src.
func (c *Converters) Lookup(target, src reflect.Type) (TypeConverter, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, conv := range c.byTarget[target] {
		if conv.CanConvertFrom(src) {
			return conv, true
		}
	}

	return nil, false
}
