package codec

import (
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"watermark/pkg/bitmap"
	"watermark/pkg/proto"
)

func (c *Codec) qr(text string) (*bitmap.Raster, error) {
	if text == "" {
		return nil, proto.Errorf(proto.ErrInvalidParameter, "The QR code text is empty.")
	}

	q, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		return nil, proto.Errorf(proto.ErrInvalidParameter, "The QR code can't be generated: %s", err)
	}

	r := bitmap.Encode(q.Image(c.qrSize), bitmap.Depth24)
	c.logger.With(zap.String("text", text), zap.Int("size", r.Size().X)).Debug("qr generated")

	return r, nil
}
