package mapper

import (
	"bytes"
	"encoding/base64"
	"image"
	_ "image/gif" // register decoder
	"image/jpeg"
	_ "image/png" // register decoder

	"datamapper/bo"
	"datamapper/internal/serial"
	"datamapper/primitive"
)

// ByteArrayDataMapper maps []byte properties, using base64 as text form.
type ByteArrayDataMapper struct{}

func (*ByteArrayDataMapper) Kind() primitive.KindEnum { return primitive.KindByteArray }

func (*ByteArrayDataMapper) TryParsePropValue(raw any) (any, bool, error) {
	if bo.IsNull(raw) {
		return nil, true, nil
	}

	switch t := raw.(type) {
	case []byte:
		return t, true, nil
	case string:
		data, err := base64.StdEncoding.DecodeString(t)
		if err != nil {
			return nil, false, nil
		}
		return data, true, nil
	}

	return nil, false, nil
}

func (*ByteArrayDataMapper) ConvertValueToString(value any) string {
	if data, ok := value.([]byte); ok {
		return base64.StdEncoding.EncodeToString(data)
	}

	return formatDefault(value)
}

// ImageDataMapper maps image.Image properties. Images are stored as
// serialized *image.RGBA or encoded (PNG, JPEG, GIF) bytes, and shown as
// base64 JPEG text.
type ImageDataMapper struct {
	quality int
}

func (*ImageDataMapper) Kind() primitive.KindEnum { return primitive.KindImage }

func (*ImageDataMapper) TryParsePropValue(raw any) (any, bool, error) {
	if bo.IsNull(raw) {
		return nil, true, nil
	}

	var data []byte
	switch t := raw.(type) {
	case image.Image:
		return t, true, nil
	case []byte:
		data = t
	case string:
		decoded, err := base64.StdEncoding.DecodeString(t)
		if err != nil {
			return nil, false, nil
		}
		data = decoded
	default:
		return nil, false, nil
	}

	img, ok := imageFromBytes(data)
	if !ok {
		return nil, false, nil
	}

	return img, true, nil
}

func (m *ImageDataMapper) ConvertValueToString(value any) string {
	img, ok := value.(image.Image)
	if !ok {
		return formatDefault(value)
	}

	quality := m.quality
	if quality == 0 {
		quality = jpeg.DefaultQuality
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return ""
	}

	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func imageFromBytes(data []byte) (image.Image, bool) {
	var rgba image.RGBA
	if err := serial.BytesToObject(data, &rgba); err == nil && validRGBA(&rgba) {
		return &rgba, true
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, false
	}

	return img, true
}

// validRGBA reports whether Pix covers every pixel of Rect at the given Stride.
func validRGBA(img *image.RGBA) bool {
	r := img.Rect
	if r != r.Canon() || r.Empty() || img.Stride < 4*r.Dx() {
		return false
	}

	return len(img.Pix) >= img.Stride*(r.Dy()-1)+4*r.Dx()
}
