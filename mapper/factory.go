package mapper

import (
	"reflect"
	"sort"
	"sync"

	"datamapper/primitive"

	"github.com/sirupsen/logrus"
)

// Factory resolves the DataMapper of a Go type. It is created once per
// application and passed to whatever needs type mapping.
//
// The built-in kinds except images are registered on construction; other
// types get a GeneralDataMapper on first request, which is cached so that
// repeated lookups return the same instance. A Factory is safe for
// concurrent use.
type Factory struct {
	mu       sync.RWMutex
	mappers  map[reflect.Type]DataMapper
	settings settings
}

func NewFactory(opts ...Option) *Factory {
	f := &Factory{
		mappers:  make(map[reflect.Type]DataMapper),
		settings: newSettings(opts),
	}

	for k := primitive.KindEnum(0); int(k) < primitive.KindTotal; k++ {
		if !k.IsPreRegistered() {
			continue
		}

		m, err := newBuiltin(k, f.settings)
		if err != nil {
			panic("built-in kind without mapper: " + k.String())
		}

		f.mappers[k.ReflectType()] = m
	}

	return f
}

// GetDataMapper returns the mapper registered for t, creating and caching a
// GeneralDataMapper when there is none.
func (f *Factory) GetDataMapper(t reflect.Type) (DataMapper, error) {
	if t == nil {
		return nil, ErrNilTargetType
	}

	f.mu.RLock()
	m, ok := f.mappers[t]
	f.mu.RUnlock()

	if ok {
		return m, nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if m, ok := f.mappers[t]; ok {
		return m, nil
	}

	gm, err := newGeneral(t, f.settings)
	if err != nil {
		return nil, err
	}

	f.mappers[t] = gm
	f.settings.log.WithField("type", t.String()).Debug("registered general data mapper")

	return gm, nil
}

// SetDataMapper registers m for t, replacing any built-in or cached mapper.
func (f *Factory) SetDataMapper(t reflect.Type, m DataMapper) {
	if t == nil || m == nil {
		panic("data mapper target type and mapper cannot be nil")
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.mappers[t] = m
	f.settings.log.WithFields(logrus.Fields{
		"type": t.String(),
		"kind": KindOf(m).String(),
	}).Debug("set data mapper")
}

// MapperFor returns the mapper of T.
func MapperFor[T any](f *Factory) (DataMapper, error) {
	return f.GetDataMapper(reflect.TypeFor[T]())
}

// Converters returns the converter registry used by the general mappers
// the factory creates.
func (f *Factory) Converters() *Converters { return f.settings.converters }

// Enums returns the enum registry used by the general mappers the factory creates.
func (f *Factory) Enums() *Enums { return f.settings.enums }

// Kinds returns the built-in kinds currently registered, in kind order.
func (f *Factory) Kinds() []primitive.KindEnum {
	f.mu.RLock()
	defer f.mu.RUnlock()

	var kinds []primitive.KindEnum
	for _, m := range f.mappers {
		if k := KindOf(m); k != primitive.KindGeneral {
			kinds = append(kinds, k)
		}
	}

	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	return kinds
}

// ForKind returns the mapper registered for the Go type of a built-in kind.
// Kinds that are not registered, i.e. images, are created on the fly.
func (f *Factory) ForKind(kind primitive.KindEnum) (DataMapper, error) {
	t := kind.ReflectType()
	if t == nil {
		return nil, ErrUnknownKind
	}

	f.mu.RLock()
	m, ok := f.mappers[t]
	f.mu.RUnlock()

	if ok {
		return m, nil
	}

	return newBuiltin(kind, f.settings)
}
