package mapper_test

import (
	"bytes"
	"database/sql"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"math"
	"strings"
	"testing"
	"time"

	"datamapper/bo"
	"datamapper/internal/parse"
	"datamapper/internal/serial"
	"datamapper/mapper"
	"datamapper/primitive"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type idObject struct{ id any }

func (o idObject) ID() any { return o.id }

func builtin(t *testing.T, kind primitive.KindEnum) mapper.DataMapper {
	t.Helper()

	opts := parse.DefaultOptions()
	opts.Location = time.UTC

	m, err := mapper.NewBuiltin(kind, mapper.WithParseOptions(opts))
	require.NoError(t, err)

	return m
}

func TestNullInputForEveryBuiltin(t *testing.T) {
	t.Parallel()

	for k := primitive.KindEnum(1); int(k) < primitive.KindTotal; k++ {
		m := builtin(t, k)

		for _, raw := range []any{nil, "", bo.DBNull, sql.NullString{}} {
			v, ok, err := m.TryParsePropValue(raw)
			require.NoError(t, err, k.String())
			assert.True(t, ok, "%s %#v", k, raw)
			assert.Nil(t, v, "%s %#v", k, raw)
		}

		assert.Equal(t, "", m.ConvertValueToString(nil), k.String())
	}
}

type parseCase struct {
	name string
	in   any
	want any
	ok   bool
}

func runParseCases(t *testing.T, m mapper.DataMapper, tests []parseCase) {
	t.Helper()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := m.TryParsePropValue(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBoolDataMapper(t *testing.T) {
	t.Parallel()

	m := builtin(t, primitive.KindBool)

	runParseCases(t, m, []parseCase{
		{"true text", "true", true, true},
		{"false text", "False", false, true},
		{"bool", true, true, true},
		{"yes", "yes", true, true},
		{"integer", 0, false, true},
		{"garbage", "notabool", nil, false},
		{"developer error downgraded", struct{ X int }{1}, nil, false},
		{"slice", []int{1}, nil, false},
		{"sql null bool", sql.NullBool{Bool: true, Valid: true}, true, true},
	})

	assert.Equal(t, "true", m.ConvertValueToString(true))
}

func TestGuidDataMapper(t *testing.T) {
	t.Parallel()

	m := builtin(t, primitive.KindGuid)
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	runParseCases(t, m, []parseCase{
		{"uuid", id, id, true},
		{"nil uuid", uuid.Nil, nil, true},
		{"text", "6ba7b810-9dad-11d1-80b4-00c04fd430c8", id, true},
		{"braced text", "{6BA7B810-9DAD-11D1-80B4-00C04FD430C8}", id, true},
		{"nil text", "00000000-0000-0000-0000-000000000000", nil, true},
		{"identity", idObject{id: id}, id, true},
		{"identity nil id", idObject{id: uuid.Nil}, nil, true},
		{"identity text id", idObject{id: id.String()}, id, true},
		{"bytes", id[:], id, true},
		{"garbage", "not-a-guid", nil, false},
		{"number", 42, nil, false},
	})

	assert.Equal(t, "{6BA7B810-9DAD-11D1-80B4-00C04FD430C8}", m.ConvertValueToString(id))
	assert.Equal(t, "{6BA7B810-9DAD-11D1-80B4-00C04FD430C8}", m.ConvertValueToString(&id))
	assert.Equal(t, "", m.ConvertValueToString(uuid.Nil))
	assert.Equal(t, "", m.ConvertValueToString("garbage"))
}

func TestGuidRoundTrip(t *testing.T) {
	t.Parallel()

	m := builtin(t, primitive.KindGuid)

	for i := 0; i < 20; i++ {
		id := uuid.New()
		s := id.String()

		parsed, ok, err := m.TryParsePropValue(s)
		require.NoError(t, err)
		require.True(t, ok)

		assert.Equal(t, "{"+strings.ToUpper(s)+"}", m.ConvertValueToString(parsed))
		assert.Equal(t, "{"+strings.ToUpper(s)+"}", m.ConvertValueToString(s))
	}
}

func TestDateTimeDataMapper(t *testing.T) {
	t.Parallel()

	m := builtin(t, primitive.KindDateTime)
	tm := time.Date(2023, 7, 4, 9, 5, 1, 120_000_000, time.UTC)

	runParseCases(t, m, []parseCase{
		{"time", tm, tm, true},
		{"standard text", "2023/07/04 09:05:01.120", tm, true},
		{"day first", "04/07/2023", time.Date(2023, 7, 4, 0, 0, 0, 0, time.UTC), true},
		{"sql null time", sql.NullTime{Time: tm, Valid: true}, tm, true},
		{"garbage", "32/13/2023", nil, false},
		{"number", 12, nil, false},
	})

	assert.Equal(t, "2023/07/04 09:05:01.120", m.ConvertValueToString(tm))
	assert.Equal(t, "2023/07/04 00:00:00.000", m.ConvertValueToString("04/07/2023"))
	assert.Equal(t, "", m.ConvertValueToString("garbage"))
}

func TestIntDataMapper(t *testing.T) {
	t.Parallel()

	m := builtin(t, primitive.KindInt)

	runParseCases(t, m, []parseCase{
		{"int", 5, 5, true},
		{"int32", int32(-7), -7, true},
		{"uint8", uint8(200), 200, true},
		{"text", " 42 ", 42, true},
		{"identity", idObject{id: 9}, 9, true},
		{"identity text id", idObject{id: "9"}, nil, false},
		{"float text", "1.5", nil, false},
		{"whole float", 999999.0, 999999, true},
		{"whole float printed with exponent", 1e6, 1000000, true},
		{"large whole float", 2.5e6, 2500000, true},
		{"float32", float32(-8), -8, true},
		{"fractional float", 2.5, nil, false},
		{"nan", math.NaN(), nil, false},
		{"infinity", math.Inf(1), nil, false},
		{"float beyond int64", 1e19, nil, false},
		{"garbage", "abc", nil, false},
		{"huge uint", uint64(math.MaxUint64), nil, false},
		{"sql null int", sql.NullInt64{Int64: 3, Valid: true}, 3, true},
	})

	assert.Equal(t, "-12", m.ConvertValueToString(-12))
	assert.Equal(t, "12", m.ConvertValueToString("12"))
	assert.Equal(t, "", m.ConvertValueToString("x"))
}

func TestLongDataMapper(t *testing.T) {
	t.Parallel()

	m := builtin(t, primitive.KindLong)
	tooBig := decimal.NewFromInt(math.MaxInt64).Add(decimal.NewFromInt(1))
	half := decimal.RequireFromString("2.5")

	runParseCases(t, m, []parseCase{
		{"int64", int64(1) << 40, int64(1) << 40, true},
		{"int", 3, int64(3), true},
		{"decimal", decimal.RequireFromString("150.0"), int64(150), true},
		{"decimal pointer", &half, int64(2), true},
		{"decimal rounds half even", decimal.RequireFromString("3.5"), int64(4), true},
		{"decimal min", decimal.NewFromInt(math.MinInt64), int64(math.MinInt64), true},
		{"decimal too big", tooBig, nil, false},
		{"decimal too small", decimal.NewFromInt(math.MinInt64).Sub(decimal.NewFromInt(1)), nil, false},
		{"text", "9223372036854775807", int64(math.MaxInt64), true},
		{"text overflow", "9223372036854775808", nil, false},
		{"identity", idObject{id: int64(77)}, int64(77), true},
		{"whole float", 1e15, int64(1e15), true},
		{"float 2^63", math.Exp2(63), nil, false},
		{"float -2^63", -math.Exp2(63), int64(math.MinInt64), true},
		{"fractional float", 0.5, nil, false},
		{"garbage", "x1", nil, false},
	})

	assert.Equal(t, "150", m.ConvertValueToString(int64(150)))
	assert.Equal(t, "150", m.ConvertValueToString(decimal.RequireFromString("150.0")))
}

func TestStringDataMapper(t *testing.T) {
	t.Parallel()

	m := builtin(t, primitive.KindString)
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	nilID := uuid.Nil
	tm := time.Date(2023, 7, 4, 9, 5, 1, 0, time.UTC)

	runParseCases(t, m, []parseCase{
		{"string", "abc", "abc", true},
		{"guid", id, "{6BA7B810-9DAD-11D1-80B4-00C04FD430C8}", true},
		{"nil guid", uuid.Nil, nil, true},
		{"guid pointer", &id, "{6BA7B810-9DAD-11D1-80B4-00C04FD430C8}", true},
		{"nil guid pointer", &nilID, nil, true},
		{"time", tm, "2023/07/04 09:05:01.000", true},
		{"int", 12, "12", true},
		{"struct", struct{ A int }{1}, "{1}", true},
	})

	assert.Equal(t, "{6BA7B810-9DAD-11D1-80B4-00C04FD430C8}", m.ConvertValueToString(id))
	assert.Equal(t, "{6BA7B810-9DAD-11D1-80B4-00C04FD430C8}", m.ConvertValueToString(&id))
	assert.Equal(t, "", m.ConvertValueToString(uuid.Nil))
	assert.Equal(t, "2023/07/04 09:05:01.000", m.ConvertValueToString(tm))
	assert.Equal(t, "3.5", m.ConvertValueToString(3.5))
}

func TestTimeSpanDataMapper(t *testing.T) {
	t.Parallel()

	m := builtin(t, primitive.KindTimeSpan)

	runParseCases(t, m, []parseCase{
		{"duration", 90 * time.Minute, 90 * time.Minute, true},
		{"clock", "10:30", 10*time.Hour + 30*time.Minute, true},
		{"clock seconds", "10:30:15", 10*time.Hour + 30*time.Minute + 15*time.Second, true},
		{"date time", time.Date(2020, 1, 1, 8, 0, 0, 0, time.UTC), 8 * time.Hour, true},
		{"garbage", "half past ten", nil, false},
	})

	assert.Equal(t, "1h30m0s", m.ConvertValueToString(90*time.Minute))
}

func TestByteArrayDataMapper(t *testing.T) {
	t.Parallel()

	m := builtin(t, primitive.KindByteArray)
	data := []byte{0, 1, 2, 250, 251, 252}

	s := m.ConvertValueToString(data)
	assert.Equal(t, base64.StdEncoding.EncodeToString(data), s)

	parsed, ok, err := m.TryParsePropValue(s)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, data, parsed)

	runParseCases(t, m, []parseCase{
		{"bytes", data, data, true},
		{"bad base64", "***", nil, false},
		{"number", 5, nil, false},
	})
}

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for x := 0; x < 4; x++ {
		for y := 0; y < 3; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 60), G: uint8(y * 80), B: 90, A: 255})
		}
	}

	return img
}

func TestImageDataMapper(t *testing.T) {
	t.Parallel()

	m := builtin(t, primitive.KindImage)
	img := testImage()

	t.Run("passthrough", func(t *testing.T) {
		got, ok, err := m.TryParsePropValue(img)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Same(t, img, got)
	})

	t.Run("serialized bytes", func(t *testing.T) {
		data, err := serial.ObjectToBytes(img)
		require.NoError(t, err)

		got, ok, err := m.TryParsePropValue(data)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, img.Pix, got.(*image.RGBA).Pix)
	})

	t.Run("encoded bytes", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, png.Encode(&buf, img))

		got, ok, err := m.TryParsePropValue(buf.Bytes())
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, img.Bounds(), got.(image.Image).Bounds())
	})

	t.Run("serialized sub image", func(t *testing.T) {
		sub := img.SubImage(image.Rect(1, 1, 3, 3)).(*image.RGBA)
		data, err := serial.ObjectToBytes(sub)
		require.NoError(t, err)

		got, ok, err := m.TryParsePropValue(data)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, sub.Bounds(), got.(image.Image).Bounds())
		assert.NotEmpty(t, m.ConvertValueToString(got))
	})

	t.Run("base64 round trip", func(t *testing.T) {
		s := m.ConvertValueToString(img)
		require.NotEmpty(t, s)

		got, ok, err := m.TryParsePropValue(s)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, img.Bounds(), got.(image.Image).Bounds())
	})

	t.Run("rejects", func(t *testing.T) {
		short, err := serial.ObjectToBytes(&image.RGBA{Stride: 4, Rect: image.Rect(0, 0, 8, 8)})
		require.NoError(t, err)

		narrow, err := serial.ObjectToBytes(&image.RGBA{Pix: make([]byte, 64), Stride: 4, Rect: image.Rect(0, 0, 8, 2)})
		require.NoError(t, err)

		inverted, err := serial.ObjectToBytes(&image.RGBA{
			Pix: make([]byte, 16), Stride: 8,
			Rect: image.Rectangle{Min: image.Pt(2, 2), Max: image.Pt(0, 0)},
		})
		require.NoError(t, err)

		for _, raw := range []any{"***", []byte("not an image"), 12, short, narrow, inverted} {
			got, ok, err := m.TryParsePropValue(raw)
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Nil(t, got)
		}
	})
}

func TestNewBuiltinUnknownKind(t *testing.T) {
	t.Parallel()

	_, err := mapper.NewBuiltin(primitive.KindGeneral)
	assert.ErrorIs(t, err, mapper.ErrUnknownKind)
}
