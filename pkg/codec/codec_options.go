package codec

type Option func(c *Codec)

// WithJPEGQuality sets the quality of JPEG output, 1 to 100.
func WithJPEGQuality(q int) Option {
	return func(c *Codec) {
		c.quality = q
	}
}

// WithQRSize sets the edge in pixels of generated QR watermarks.
func WithQRSize(size int) Option {
	return func(c *Codec) {
		c.qrSize = size
	}
}
