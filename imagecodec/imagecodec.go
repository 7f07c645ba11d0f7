// path: imagecodec/imagecodec.go

// Package imagecodec converts uploaded image bytes to the base64 text stored
// inline with a report, and back again for redisplay. Filenames and content
// types are carried through untouched.
package imagecodec

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/Kausheya2006/RaiseUrVoice/models"
)

// Encode returns the padded standard base64 form of b.
func Encode(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// Decode reverses Encode.
func Decode(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode image data: %w", err)
	}
	return b, nil
}

// New builds a storable image from raw upload bytes.
func New(filename, contentType string, data []byte) models.Image {
	return models.Image{
		Filename:    filename,
		ContentType: contentType,
		Data:        Encode(data),
	}
}

// FromFileHeader buffers a multipart upload in memory and encodes it.
func FromFileHeader(fh *multipart.FileHeader) (models.Image, error) {
	src, err := fh.Open()
	if err != nil {
		return models.Image{}, fmt.Errorf("open upload %q: %w", fh.Filename, err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return models.Image{}, fmt.Errorf("read upload %q: %w", fh.Filename, err)
	}
	return New(fh.Filename, fh.Header.Get("Content-Type"), data), nil
}

// Bytes returns the original bytes of a stored image.
func Bytes(img models.Image) ([]byte, error) {
	return Decode(img.Data)
}

// DataURI renders img for inline use in an <img src>.
func DataURI(img models.Image) string {
	return "data:" + img.ContentType + ";base64," + img.Data
}
