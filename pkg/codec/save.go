package codec

import (
	"bytes"
	"fmt"
	"image"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/inhies/go-bytesize"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"watermark/pkg/proto"
)

var outputExts = []string{".jpg", ".png"}

// CheckOutput fails unless name ends with .jpg or .png.
func CheckOutput(name string) error {
	if !lo.Contains(outputExts, filepath.Ext(name)) {
		return proto.Errorf(proto.ErrInvalidParameter, "The output file extension isn't \"jpg\" or \"png\".")
	}
	return nil
}

// Save encodes img by the extension of name. The file is written under a
// temporary name first and renamed once complete.
func (c *Codec) Save(img image.Image, name string) error {
	if err := CheckOutput(name); err != nil {
		return err
	}

	format, err := imaging.FormatFromFilename(name)
	if err != nil {
		return proto.Errorf(proto.ErrInvalidParameter, "The output file extension isn't \"jpg\" or \"png\".")
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format, imaging.JPEGQuality(c.quality)); err != nil {
		return fmt.Errorf("encode %s failed: %w", format, err)
	}

	tmp := tmpName(name)
	if err := afero.WriteFile(c.fs, tmp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write output failed: %w", err)
	}
	if err := c.fs.Rename(tmp, name); err != nil {
		_ = c.fs.Remove(tmp)
		return fmt.Errorf("rename output failed: %w", err)
	}

	c.logger.With(
		zap.String("name", name),
		zap.String("format", format.String()),
		zap.String("size", bytesize.New(float64(buf.Len())).String()),
	).Debug("saved")

	return nil
}
