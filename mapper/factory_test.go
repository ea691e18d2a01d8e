package mapper_test

import (
	"image"
	"reflect"
	"sync"
	"testing"
	"time"

	"datamapper/mapper"
	"datamapper/primitive"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Invoice struct {
	Number int
}

func TestFactoryBuiltins(t *testing.T) {
	t.Parallel()

	f := mapper.NewFactory()

	tests := []struct {
		typ  reflect.Type
		want any
	}{
		{reflect.TypeFor[bool](), &mapper.BoolDataMapper{}},
		{reflect.TypeFor[uuid.UUID](), &mapper.GuidDataMapper{}},
		{reflect.TypeFor[time.Time](), &mapper.DateTimeDataMapper{}},
		{reflect.TypeFor[int](), &mapper.IntDataMapper{}},
		{reflect.TypeFor[int64](), &mapper.LongDataMapper{}},
		{reflect.TypeFor[string](), &mapper.StringDataMapper{}},
		{reflect.TypeFor[time.Duration](), &mapper.TimeSpanDataMapper{}},
		{reflect.TypeFor[[]byte](), &mapper.ByteArrayDataMapper{}},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			m, err := f.GetDataMapper(tt.typ)
			require.NoError(t, err)
			assert.IsType(t, tt.want, m)
		})
	}

	assert.Len(t, f.Kinds(), 8)
	assert.NotContains(t, f.Kinds(), primitive.KindImage)

	m, err := f.GetDataMapper(reflect.TypeFor[image.Image]())
	require.NoError(t, err)
	assert.IsType(t, &mapper.GeneralDataMapper{}, m)
}

func TestFactoryMemoizes(t *testing.T) {
	t.Parallel()

	f := mapper.NewFactory()

	first, err := mapper.MapperFor[Invoice](f)
	require.NoError(t, err)
	second, err := mapper.MapperFor[Invoice](f)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, primitive.KindGeneral, mapper.KindOf(first))

	inv := Invoice{Number: 3}
	got, ok, err := first.TryParsePropValue(inv)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, inv, got)

	b1, _ := mapper.MapperFor[bool](f)
	b2, _ := mapper.MapperFor[bool](f)
	assert.Same(t, b1, b2)
}

func TestFactoryConcurrentMiss(t *testing.T) {
	t.Parallel()

	f := mapper.NewFactory()

	const n = 32
	results := make([]mapper.DataMapper, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = mapper.MapperFor[Invoice](f)
		}(i)
	}
	wg.Wait()

	for _, m := range results {
		assert.Same(t, results[0], m)
	}
}

func TestFactorySetDataMapper(t *testing.T) {
	t.Parallel()

	f := mapper.NewFactory()

	cached, err := mapper.MapperFor[Invoice](f)
	require.NoError(t, err)

	custom := &mapper.StringDataMapper{}
	f.SetDataMapper(reflect.TypeFor[Invoice](), custom)

	got, err := mapper.MapperFor[Invoice](f)
	require.NoError(t, err)
	assert.Same(t, custom, got)
	assert.NotSame(t, cached, got)

	img, err := mapper.NewBuiltin(primitive.KindImage)
	require.NoError(t, err)
	f.SetDataMapper(reflect.TypeFor[bool](), img)

	got, err = mapper.MapperFor[bool](f)
	require.NoError(t, err)
	assert.Same(t, img, got)

	assert.Panics(t, func() { f.SetDataMapper(nil, custom) })
}

func TestFactoryNilType(t *testing.T) {
	t.Parallel()

	_, err := mapper.NewFactory().GetDataMapper(nil)
	assert.ErrorIs(t, err, mapper.ErrNilTargetType)
}

func TestFactoryRegistriesReachGeneralMappers(t *testing.T) {
	t.Parallel()

	f := mapper.NewFactory()
	mapper.RegisterEnum(f.Enums(), map[string]Color{"Red": Red})

	m, err := mapper.MapperFor[Color](f)
	require.NoError(t, err)

	got, ok, err := m.TryParsePropValue("Red")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, Red, got)
}

func TestFactoryForKind(t *testing.T) {
	t.Parallel()

	f := mapper.NewFactory()

	m, err := f.ForKind(primitive.KindImage)
	require.NoError(t, err)
	assert.Equal(t, primitive.KindImage, mapper.KindOf(m))

	m, err = f.ForKind(primitive.KindGuid)
	require.NoError(t, err)
	same, _ := mapper.MapperFor[uuid.UUID](f)
	assert.Same(t, same, m)

	_, err = f.ForKind(primitive.KindGeneral)
	assert.ErrorIs(t, err, mapper.ErrUnknownKind)
}
