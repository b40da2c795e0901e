package codec

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"watermark/pkg/bitmap"
	"watermark/pkg/proto"
)

const qrScheme = "qr:"

func New(fs afero.Fs, logger *zap.Logger, opts ...Option) *Codec {
	c := &Codec{
		fs:      fs,
		logger:  logger,
		quality: 95,
		qrSize:  256,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Codec reads and writes image files through an afero filesystem.
type Codec struct {
	fs      afero.Fs
	logger  *zap.Logger
	quality int
	qrSize  int
}

// Load decodes the named file. Names starting with "qr:" are not read from
// disk: the rest of the name is rendered as a QR code instead.
func (c *Codec) Load(role, name string) (*bitmap.Raster, error) {
	if text, ok := strings.CutPrefix(name, qrScheme); ok {
		return c.qr(text)
	}

	bs, err := afero.ReadFile(c.fs, name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, proto.Errorf(proto.ErrImageNotFound, "The file %s doesn't exist.", name)
		}
		return nil, fmt.Errorf("read %s failed: %w", role, err)
	}

	img, err := imaging.Decode(bytes.NewReader(bs))
	if err != nil {
		return nil, proto.Errorf(proto.ErrUnsupportedFormat, "The %s can't be decoded: %s", role, err)
	}

	depth, err := Classify(role, img)
	if err != nil {
		return nil, err
	}

	r := bitmap.Encode(img, depth)
	c.logger.With(
		zap.String("role", role),
		zap.String("name", name),
		zap.Stringer("depth", depth),
		zap.Int("width", r.Size().X),
		zap.Int("height", r.Size().Y),
	).Debug("loaded")

	return r, nil
}

// Classify accepts 8-bit images with three color components, with or without
// alpha, and reports their depth.
func Classify(role string, img image.Image) (bitmap.Depth, error) {
	switch img.(type) {
	case *image.YCbCr, *image.RGBA:
		return bitmap.Depth24, nil
	case *image.NRGBA, *image.NYCbCrA:
		return bitmap.Depth32, nil
	case *image.Gray, *image.Gray16, *image.Alpha, *image.Alpha16, *image.CMYK:
		return 0, proto.Errorf(proto.ErrUnsupportedFormat, "The number of %s color components isn't 3.", role)
	default:
		return 0, proto.Errorf(proto.ErrUnsupportedFormat, "The %s isn't 24 or 32-bit.", role)
	}
}
