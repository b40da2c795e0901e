package proto

import (
	"image"

	"watermark/pkg/bitmap"
)

// Source decodes a named image into a raster the mixer can read. role names
// the image in user-facing messages, e.g. "image" or "watermark".
type Source interface {
	Load(role, name string) (*bitmap.Raster, error)
}

// Sink encodes a finished image under the given name.
type Sink interface {
	Save(img image.Image, name string) error
}
