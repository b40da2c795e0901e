package mixer

import (
	"fmt"
	"image"
)

// Placement decides where the watermark lands on the base image. The only
// implementations are Single and Tiled.
type Placement interface {
	resolve(size image.Point, x, y int) (image.Point, bool)
	fmt.Stringer
}

// Single puts one copy of the watermark with its top-left corner at Offset.
type Single struct {
	Offset image.Point
}

func (s Single) resolve(size image.Point, x, y int) (image.Point, bool) {
	p := image.Pt(x, y).Sub(s.Offset)
	if p.In(image.Rectangle{Max: size}) {
		return p, true
	}
	return image.Point{}, false
}

func (s Single) String() string {
	return fmt.Sprintf("single(%d,%d)", s.Offset.X, s.Offset.Y)
}

// Tiled repeats the watermark over the whole base image.
type Tiled struct{}

func (Tiled) resolve(size image.Point, x, y int) (image.Point, bool) {
	return image.Pt(x%size.X, y%size.Y), true
}

func (Tiled) String() string {
	return "grid"
}

// Resolve maps a base image coordinate to the watermark pixel covering it.
// It reports false when the watermark does not cover (x, y).
func Resolve(p Placement, size image.Point, x, y int) (image.Point, bool) {
	return p.resolve(size, x, y)
}
