package bitmap

import (
	"image"
)

// Encode copies src into a Raster of the given depth. The raster origin is
// always (0, 0) whatever the bounds of src are. For Depth24 the alpha of
// every pixel is forced to opaque.
func Encode(src image.Image, depth Depth) *Raster {
	b := src.Bounds()
	d := NewRaster(b.Dx(), b.Dy(), depth)

	for x := b.Min.X; x < b.Max.X; x++ {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			d.set(x-b.Min.X, y-b.Min.Y, pixelOf(src.At(x, y)))
		}
	}

	return d
}
