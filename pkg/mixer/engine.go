package mixer

import (
	"context"
	"image"
	"io"

	"github.com/samber/lo"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"watermark/pkg/bitmap"
)

// Image is the read-only view the engine needs of its inputs.
type Image interface {
	Size() image.Point
	Pixel(x, y int) bitmap.Pixel
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		workers:  1,
		bandRows: 64,
		logger:   zap.NewNop(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

type Engine struct {
	workers  int
	bandRows int
	logger   *zap.Logger
	progress io.Writer
}

// Run blends wm into base and returns a new 24-bit image the size of base.
// Sizes and parameters are checked before any pixel is touched; neither
// input is modified.
func (e *Engine) Run(ctx context.Context, base, wm Image, p Params) (*bitmap.RGB, error) {
	bs, ws := base.Size(), wm.Size()
	if err := CheckSize(bs, ws); err != nil {
		return nil, err
	}
	if err := p.Validate(bs, ws); err != nil {
		return nil, err
	}

	dst := bitmap.NewRGB(image.Rectangle{Max: bs})
	bands := splitRows(bs.Y, e.bandRows)
	workers := lo.Ternary(e.workers < 1, 1, e.workers)

	log := e.logger.With(
		zap.Int("width", bs.X),
		zap.Int("height", bs.Y),
		zap.Stringer("placement", p.Placement),
		zap.Stringer("transparency", p.Transparency),
		zap.Int("weight", p.Weight),
	)
	log.With(zap.Int("bands", len(bands)), zap.Int("workers", workers)).Debug("blending")

	var bar *progressbar.ProgressBar
	if e.progress != nil {
		bar = progressbar.NewOptions(bs.Y,
			progressbar.OptionSetWriter(e.progress),
			progressbar.OptionSetDescription("blending"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, b := range bands {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			blendBand(dst, base, wm, p, b)
			if bar != nil {
				return bar.Add(b.rows())
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.Debug("blended")
	return dst, nil
}

func blendBand(dst *bitmap.RGB, base, wm Image, p Params, b band) {
	width := base.Size().X
	wsize := wm.Size()

	for y := b.y0; y < b.y1; y++ {
		for x := 0; x < width; x++ {
			dst.SetPixel(x, y, blendAt(base, wm, wsize, p, x, y))
		}
	}
}

func blendAt(base, wm Image, wsize image.Point, p Params, x, y int) bitmap.Pixel {
	bp := base.Pixel(x, y).RGB()

	at, ok := Resolve(p.Placement, wsize, x, y)
	if !ok {
		return bp
	}

	wp := wm.Pixel(at.X, at.Y)
	if !IsOpaqueAt(p.Transparency, wp) {
		return bp
	}

	return Blend(p.Weight, wp, bp)
}
