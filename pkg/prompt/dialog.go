package prompt

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"watermark/pkg/bitmap"
	"watermark/pkg/codec"
	"watermark/pkg/mixer"
	"watermark/pkg/proto"
)

// Job is everything a blend run needs once the dialog has finished.
type Job struct {
	Base      *bitmap.Raster
	Watermark *bitmap.Raster
	Params    mixer.Params
	Output    string
}

// Gather runs the dialog: load both images, then ask for transparency,
// weight, placement and output name. Every answer is validated as soon as it
// is given and the first invalid one ends the dialog.
func Gather(src proto.Source, a Asker) (*Job, error) {
	base, err := load(src, a, AskImage, "Input the image filename:", "image")
	if err != nil {
		return nil, err
	}

	wm, err := load(src, a, AskWatermark, "Input the watermark image filename:", "watermark")
	if err != nil {
		return nil, err
	}

	if err := mixer.CheckSize(base.Size(), wm.Size()); err != nil {
		return nil, err
	}

	transparency, err := askTransparency(a, wm.HasAlpha())
	if err != nil {
		return nil, err
	}

	weight, err := askWeight(a)
	if err != nil {
		return nil, err
	}

	placement, err := askPlacement(a, base.Size().Sub(wm.Size()))
	if err != nil {
		return nil, err
	}

	output, err := ask(a, AskOutput, "Input the output image filename (jpg or png extension):")
	if err != nil {
		return nil, err
	}
	if err := codec.CheckOutput(output); err != nil {
		return nil, err
	}

	params := mixer.Params{
		Weight:       weight,
		Placement:    placement,
		Transparency: transparency,
	}
	if err := params.Validate(base.Size(), wm.Size()); err != nil {
		return nil, err
	}

	return &Job{Base: base, Watermark: wm, Params: params, Output: output}, nil
}

func ask(a Asker, q Question, text string) (string, error) {
	answer, ok := a.Ask(q, text)
	if !ok {
		return "", proto.Errorf(proto.ErrInvalidParameter, "No answer to %q.", text)
	}
	return answer, nil
}

func load(src proto.Source, a Asker, q Question, text, role string) (*bitmap.Raster, error) {
	name, err := ask(a, q, text)
	if err != nil {
		return nil, err
	}
	return src.Load(role, name)
}

func askTransparency(a Asker, hasAlpha bool) (mixer.Transparency, error) {
	if hasAlpha {
		answer, err := ask(a, AskUseAlpha, "Do you want to use the watermark's Alpha channel?")
		if err != nil {
			return nil, err
		}
		if isYes(answer) {
			return mixer.AlphaChannel{}, nil
		}
		return mixer.NoTransparency{}, nil
	}

	answer, err := ask(a, AskUseKey, "Do you want to set a transparency color?")
	if err != nil {
		return nil, err
	}
	if !isYes(answer) {
		return mixer.NoTransparency{}, nil
	}

	answer, err = ask(a, AskKey, "Input a transparency color ([Red] [Green] [Blue]):")
	if err != nil {
		return nil, err
	}
	key, err := ParseColor(answer)
	if err != nil {
		return nil, err
	}
	return mixer.ColorKey{Key: key}, nil
}

// ParseColor reads "R G B" with each channel in [0, 255].
func ParseColor(s string) (bitmap.Pixel, error) {
	invalid := proto.Errorf(proto.ErrInvalidParameter, "The transparency color input is invalid.")

	fields := strings.Fields(s)
	if len(fields) != 3 {
		return bitmap.Pixel{}, invalid
	}

	var c [3]uint8
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || v < 0 || v > 255 {
			return bitmap.Pixel{}, invalid
		}
		c[i] = uint8(v)
	}

	return bitmap.Opaque(c[0], c[1], c[2]), nil
}

func askWeight(a Asker) (int, error) {
	answer, err := ask(a, AskWeight, "Input the watermark transparency percentage (Integer 0-100):")
	if err != nil {
		return 0, err
	}

	weight, err := strconv.Atoi(answer)
	if err != nil {
		return 0, proto.Errorf(proto.ErrInvalidParameter, "The transparency percentage isn't an integer number.")
	}
	if weight < 0 || weight > 100 {
		return 0, proto.Errorf(proto.ErrInvalidParameter, "The transparency percentage is out of range.")
	}

	return weight, nil
}

// askPlacement offers single or grid placement; free is how far the
// watermark can move inside the base image.
func askPlacement(a Asker, free image.Point) (mixer.Placement, error) {
	answer, err := ask(a, AskMethod, "Choose the position method (single, grid):")
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(answer) {
	case "grid":
		return mixer.Tiled{}, nil
	case "single":
	default:
		return nil, proto.Errorf(proto.ErrInvalidParameter, "The position method input is invalid.")
	}

	answer, err = ask(a, AskPosition, fmt.Sprintf("Input the watermark position ([x 0-%d] [y 0-%d]):", free.X, free.Y))
	if err != nil {
		return nil, err
	}
	at, err := ParsePoint(answer)
	if err != nil {
		return nil, err
	}
	if at.X < 0 || at.X > free.X || at.Y < 0 || at.Y > free.Y {
		return nil, proto.Errorf(proto.ErrInvalidParameter, "The position input is out of range.")
	}

	return mixer.Single{Offset: at}, nil
}

// ParsePoint reads "X Y".
func ParsePoint(s string) (image.Point, error) {
	invalid := proto.Errorf(proto.ErrInvalidParameter, "The position input is invalid.")

	fields := strings.Fields(s)
	if len(fields) != 2 {
		return image.Point{}, invalid
	}

	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return image.Point{}, invalid
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return image.Point{}, invalid
	}

	return image.Pt(x, y), nil
}
