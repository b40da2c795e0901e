package mixer

import "watermark/pkg/bitmap"

// Blend mixes the watermark color into the base color with weight percent of
// the watermark, per channel and in integer arithmetic:
//
//	(weight*w + (100-weight)*b) / 100
//
// The result is opaque. weight must already lie in [0, 100].
func Blend(weight int, wm, base bitmap.Pixel) bitmap.Pixel {
	return bitmap.Opaque(
		mix(weight, wm.R, base.R),
		mix(weight, wm.G, base.G),
		mix(weight, wm.B, base.B),
	)
}

func mix(weight int, w, b uint8) uint8 {
	return uint8((weight*int(w) + (100-weight)*int(b)) / 100)
}
