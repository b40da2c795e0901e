package bitmap

import (
	"fmt"
	"image"
)

type Depth int

const (
	Depth24 Depth = 24
	Depth32 Depth = 32
)

func (d Depth) String() string {
	return fmt.Sprintf("%d-bit", int(d))
}

func NewRaster(width, height int, depth Depth) *Raster {
	return &Raster{
		pixels: make([]Pixel, width*height),
		width:  width,
		height: height,
		depth:  depth,
	}
}

// Raster is a decoded image held as structured pixels. It is filled once by
// Encode and only read afterwards.
type Raster struct {
	pixels []Pixel
	width  int
	height int
	depth  Depth
}

func (r *Raster) Size() image.Point {
	return image.Pt(r.width, r.height)
}

func (r *Raster) Depth() Depth {
	return r.depth
}

func (r *Raster) HasAlpha() bool {
	return r.depth == Depth32
}

// Pixel returns the pixel at (x, y) with a top-left origin.
func (r *Raster) Pixel(x, y int) Pixel {
	return r.pixels[y*r.width+x]
}

func (r *Raster) set(x, y int, p Pixel) {
	if r.depth != Depth32 {
		p.A = 0xff
	}
	r.pixels[y*r.width+x] = p
}
