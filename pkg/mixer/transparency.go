package mixer

import (
	"fmt"

	"watermark/pkg/bitmap"
)

// Transparency decides whether a watermark pixel contributes to the blend.
// Implementations are AlphaChannel, ColorKey and NoTransparency.
type Transparency interface {
	opaque(px bitmap.Pixel) bool
	fmt.Stringer
}

// AlphaChannel uses the watermark's own alpha. Only fully opaque pixels are
// blended, anything below 255 leaves the base untouched.
type AlphaChannel struct{}

func (AlphaChannel) opaque(px bitmap.Pixel) bool {
	return px.A == 0xff
}

func (AlphaChannel) String() string {
	return "alpha"
}

// ColorKey treats pixels whose RGB equals Key as transparent. Key's alpha is
// ignored.
type ColorKey struct {
	Key bitmap.Pixel
}

func (k ColorKey) opaque(px bitmap.Pixel) bool {
	return !px.SameRGB(k.Key) && px.A == 0xff
}

func (k ColorKey) String() string {
	return fmt.Sprintf("key(%d,%d,%d)", k.Key.R, k.Key.G, k.Key.B)
}

// NoTransparency blends every watermark pixel.
type NoTransparency struct{}

func (NoTransparency) opaque(bitmap.Pixel) bool {
	return true
}

func (NoTransparency) String() string {
	return "none"
}

func IsOpaqueAt(t Transparency, px bitmap.Pixel) bool {
	return t.opaque(px)
}
