package bitmap

import (
	"image"
	"image/color"
)

func NewRGB(r image.Rectangle) *RGB {
	return &RGB{
		pixels: make([]byte, 3*r.Dx()*r.Dy()),
		stride: 3 * r.Dx(),
		bounds: r,
	}
}

// RGB is a packed 24-bit image without alpha. It implements the draw.Image
// interface and reports itself opaque, so the PNG encoder writes it as
// 8-bit truecolor.
type RGB struct {
	pixels []byte
	stride int
	bounds image.Rectangle
}

// Bounds implements the image.Image (and draw.Image) interface.
func (d *RGB) Bounds() image.Rectangle {
	return d.bounds
}

// ColorModel implements the image.Image (and draw.Image) interface.
func (d *RGB) ColorModel() color.Model {
	return color.RGBAModel
}

// At implements the image.Image (and draw.Image) interface.
func (d *RGB) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(d.bounds)) {
		return color.RGBA{}
	}
	p := d.PixelAt(x, y)
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: 0xff}
}

// Set implements the draw.Image interface. Alpha is dropped, the color is
// stored as it would be seen over black.
func (d *RGB) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(d.bounds)) {
		return
	}
	r, g, b, _ := c.RGBA()
	d.SetPixel(x, y, Opaque(uint8(r>>8), uint8(g>>8), uint8(b>>8)))
}

func (d *RGB) Opaque() bool {
	return true
}

func (d *RGB) PixelAt(x, y int) Pixel {
	i := d.offset(x, y)
	return Opaque(d.pixels[i], d.pixels[i+1], d.pixels[i+2])
}

// SetPixel stores the RGB channels of p; alpha is not kept.
func (d *RGB) SetPixel(x, y int, p Pixel) {
	i := d.offset(x, y)
	d.pixels[i] = p.R
	d.pixels[i+1] = p.G
	d.pixels[i+2] = p.B
}

func (d *RGB) offset(x, y int) int {
	return (y-d.bounds.Min.Y)*d.stride + 3*(x-d.bounds.Min.X)
}
