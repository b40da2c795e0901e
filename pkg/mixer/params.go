package mixer

import (
	"image"

	"watermark/pkg/proto"
)

// Params fully determines a blend for a given pair of images.
type Params struct {
	Weight       int
	Placement    Placement
	Transparency Transparency
}

// CheckSize fails with ErrDimensionMismatch when either image is empty or
// the watermark does not fit inside the base image.
func CheckSize(base, wm image.Point) error {
	if base.X < 1 || base.Y < 1 || wm.X < 1 || wm.Y < 1 {
		return proto.Errorf(proto.ErrDimensionMismatch, "The image dimensions must be positive.")
	}
	if base.X < wm.X || base.Y < wm.Y {
		return proto.Errorf(proto.ErrDimensionMismatch, "The watermark's dimensions are larger.")
	}
	return nil
}

// Validate checks p against the sizes of the images it will be applied to.
// All failures are ErrInvalidParameter.
func (p Params) Validate(base, wm image.Point) error {
	if p.Weight < 0 || p.Weight > 100 {
		return proto.Errorf(proto.ErrInvalidParameter, "The transparency percentage is out of range.")
	}

	switch pl := p.Placement.(type) {
	case Single:
		free := base.Sub(wm)
		if pl.Offset.X < 0 || pl.Offset.X > free.X || pl.Offset.Y < 0 || pl.Offset.Y > free.Y {
			return proto.Errorf(proto.ErrInvalidParameter, "The position input is out of range.")
		}
	case Tiled:
	default:
		return proto.Errorf(proto.ErrInvalidParameter, "The position method input is invalid.")
	}

	switch p.Transparency.(type) {
	case AlphaChannel, ColorKey, NoTransparency:
	default:
		return proto.Errorf(proto.ErrInvalidParameter, "The transparency mode is invalid.")
	}

	return nil
}
