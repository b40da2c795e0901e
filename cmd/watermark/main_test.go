package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"watermark/pkg/bitmap"
	"watermark/pkg/codec"
	"watermark/pkg/codec/virtual"
	"watermark/pkg/mixer"
	"watermark/pkg/prompt"
	"watermark/pkg/proto"
)

func putSolid(t *testing.T, fs afero.Fs, name string, w, h int, c color.RGBA) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, afero.WriteFile(fs, name, buf.Bytes(), 0644))
}

func TestRun(t *testing.T) {
	fs := afero.NewMemMapFs()
	putSolid(t, fs, "/base.png", 4, 4, color.RGBA{R: 255, A: 255})
	putSolid(t, fs, "/logo.png", 2, 2, color.RGBA{B: 255, A: 255})

	c := codec.New(fs, zap.NewNop())
	w, no := 50, false
	rec := prompt.NewRecorder(&prompt.Preset{
		Image:     "/base.png",
		Watermark: "/logo.png",
		UseKey:    &no,
		Weight:    &w,
		Method:    "single",
		Position:  "1 1",
		Output:    "/out.png",
	})

	require.NoError(t, run(zap.NewNop(), fs, c, c, mixer.NewEngine(), rec))

	out, err := c.Load("image", "/out.png")
	require.NoError(t, err)
	assert.Equal(t, bitmap.Depth24, out.Depth())
	assert.Equal(t, bitmap.Opaque(255, 0, 0), out.Pixel(0, 0))
	assert.Equal(t, bitmap.Opaque(127, 0, 127), out.Pixel(1, 1))
	assert.Equal(t, bitmap.Opaque(127, 0, 127), out.Pixel(2, 2))
	assert.Equal(t, bitmap.Opaque(255, 0, 0), out.Pixel(3, 3))
}

func TestRunFailureSavesNothing(t *testing.T) {
	fs := afero.NewMemMapFs()
	putSolid(t, fs, "/base.png", 2, 2, color.RGBA{R: 255, A: 255})
	putSolid(t, fs, "/logo.png", 3, 3, color.RGBA{B: 255, A: 255})

	c := codec.New(fs, zap.NewNop())
	sink := virtual.Mock(zap.NewNop())
	rec := prompt.NewRecorder(&prompt.Preset{Image: "/base.png", Watermark: "/logo.png"})

	err := run(zap.NewNop(), fs, c, sink, mixer.NewEngine(), rec)
	assert.True(t, errors.Is(err, proto.ErrDimensionMismatch))
	assert.Equal(t, "The watermark's dimensions are larger.", message(err))
	assert.Empty(t, sink.(*virtual.Mocker).Saved())
}

func TestMessage(t *testing.T) {
	err := errors.Wrap(proto.Errorf(proto.ErrInvalidParameter, "The position input is invalid."), "invoke")
	assert.Equal(t, "The position input is invalid.", message(err))
	assert.Equal(t, "boom", message(errors.New("boom")))
}

func TestRunSavesPresetToFs(t *testing.T) {
	fs := afero.NewMemMapFs()
	putSolid(t, fs, "/base.png", 4, 4, color.RGBA{R: 255, A: 255})
	putSolid(t, fs, "/logo.png", 2, 2, color.RGBA{B: 255, A: 255})

	*savePreset = "/preset.yaml"
	defer func() { *savePreset = "" }()

	c := codec.New(fs, zap.NewNop())
	sink := virtual.Mock(zap.NewNop())
	w := 20
	rec := prompt.NewRecorder(&prompt.Preset{
		Image:     "/base.png",
		Watermark: "/logo.png",
		Key:       "0 0 0",
		Weight:    &w,
		Method:    "grid",
		Output:    "/out.png",
	})

	require.NoError(t, run(zap.NewNop(), fs, c, sink, mixer.NewEngine(), rec))
	assert.Equal(t, []string{"/out.png"}, sink.(*virtual.Mocker).Saved())

	loaded, err := prompt.ReadPreset(fs, "/preset.yaml")
	require.NoError(t, err)
	require.NotNil(t, loaded.UseKey)
	assert.True(t, *loaded.UseKey)
	assert.Equal(t, "0 0 0", loaded.Key)
	assert.Equal(t, "grid", loaded.Method)
}
