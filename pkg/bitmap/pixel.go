package bitmap

import "image/color"

// Pixel is one 8-bit sRGB sample. Sources without an alpha channel carry A = 255.
type Pixel struct {
	R, G, B, A uint8
}

func Opaque(r, g, b uint8) Pixel {
	return Pixel{R: r, G: g, B: b, A: 0xff}
}

// SameRGB compares color channels only.
func (p Pixel) SameRGB(o Pixel) bool {
	return p.R == o.R && p.G == o.G && p.B == o.B
}

func (p Pixel) RGB() Pixel {
	return Opaque(p.R, p.G, p.B)
}

// RGBA implements the color.Color interface. The stored channels are not
// premultiplied, so they are scaled by alpha here.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A}.RGBA()
}

func pixelOf(c color.Color) Pixel {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pixel{R: n.R, G: n.G, B: n.B, A: n.A}
}
