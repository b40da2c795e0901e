package prompt

import (
	"bytes"
	"image"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"watermark/pkg/bitmap"
	"watermark/pkg/mixer"
)

func TestPresetAnswers(t *testing.T) {
	w := 30
	p := &Preset{Image: "base.png", Watermark: "logo.png", Key: "0 0 0", Weight: &w, Method: "grid", Output: "out.png"}

	job, err := Gather(images, p)
	require.NoError(t, err)
	assert.Equal(t, mixer.Params{
		Weight:       30,
		Placement:    mixer.Tiled{},
		Transparency: mixer.ColorKey{Key: bitmap.Opaque(0, 0, 0)},
	}, job.Params)

	_, ok := p.Ask(AskPosition, "")
	assert.False(t, ok)
	_, ok = p.Ask(AskUseAlpha, "")
	assert.False(t, ok)
	answer, ok := p.Ask(AskUseKey, "")
	assert.True(t, ok)
	assert.Equal(t, "yes", answer)
}

func TestPresetYesNo(t *testing.T) {
	yes, no := true, false

	_, ok := (&Preset{}).Ask(AskUseKey, "")
	assert.False(t, ok)

	answer, ok := (&Preset{Alpha: &no}).Ask(AskUseAlpha, "")
	assert.True(t, ok)
	assert.Equal(t, "no", answer)

	answer, ok = (&Preset{UseKey: &no, Key: "1 2 3"}).Ask(AskUseKey, "")
	assert.True(t, ok)
	assert.Equal(t, "no", answer)

	answer, ok = (&Preset{UseKey: &yes}).Ask(AskUseKey, "")
	assert.True(t, ok)
	assert.Equal(t, "yes", answer)
}

func TestChainFallsThrough(t *testing.T) {
	w := 70
	yes := true
	p := &Preset{Image: "base.png", Watermark: "alpha.png", Alpha: &yes, Weight: &w}

	var out bytes.Buffer
	job, err := Gather(images, Chain{p, NewConsole(lines("single", "1 2", "out.jpg"), &out)})
	require.NoError(t, err)
	assert.Equal(t, mixer.Params{
		Weight:       70,
		Placement:    mixer.Single{Offset: image.Pt(1, 2)},
		Transparency: mixer.AlphaChannel{},
	}, job.Params)
	assert.Equal(t, "Choose the position method (single, grid):\n"+
		"Input the watermark position ([x 0-6] [y 0-5]):\n"+
		"Input the output image filename (jpg or png extension):\n", out.String())
}

func TestChainAsksTransparencyOnConsole(t *testing.T) {
	p := &Preset{Image: "base.png"}

	var out bytes.Buffer
	console := NewConsole(lines("logo.png", "yes", "255 255 255", "40", "grid", "out.png"), &out)
	job, err := Gather(images, Chain{p, console})
	require.NoError(t, err)
	assert.Equal(t, mixer.Params{
		Weight:       40,
		Placement:    mixer.Tiled{},
		Transparency: mixer.ColorKey{Key: bitmap.Opaque(255, 255, 255)},
	}, job.Params)
	assert.Contains(t, out.String(), "Do you want to set a transparency color?\n")
}

func TestChainAsksAlphaOnConsole(t *testing.T) {
	w := 10
	p := &Preset{Image: "base.png", Watermark: "alpha.png", Weight: &w, Method: "grid", Output: "out.png"}

	var out bytes.Buffer
	job, err := Gather(images, Chain{p, NewConsole(lines("yes"), &out)})
	require.NoError(t, err)
	assert.Equal(t, mixer.AlphaChannel{}, job.Params.Transparency)
	assert.Equal(t, "Do you want to use the watermark's Alpha channel?\n", out.String())
}

func TestPresetMerge(t *testing.T) {
	w1, w2 := 10, 20
	file := Preset{Image: "a.png", Watermark: "b.png", Weight: &w1, Method: "grid", Output: "o.png"}
	yes, no := true, false
	file.UseKey = &yes
	flags := Preset{Image: "c.png", Weight: &w2, Alpha: &yes, UseKey: &no}

	m := file.Merge(flags)
	assert.Equal(t, "c.png", m.Image)
	assert.Equal(t, "b.png", m.Watermark)
	assert.Equal(t, 20, *m.Weight)
	assert.True(t, *m.Alpha)
	assert.False(t, *m.UseKey)
	assert.Equal(t, "grid", m.Method)
	assert.False(t, m.IsZero())
	assert.True(t, Preset{}.IsZero())
}

func TestRecorderRoundTrip(t *testing.T) {
	rec := NewRecorder(NewConsole(lines("base.png", "logo.png", "yes", "1 2 3", "45", "Single", "2 2", "out.png"), &bytes.Buffer{}))
	first, err := Gather(images, rec)
	require.NoError(t, err)

	preset := rec.Preset()
	require.NotNil(t, preset.UseKey)
	assert.True(t, *preset.UseKey)

	fs := afero.NewMemMapFs()
	require.NoError(t, WritePreset(fs, &preset, "/preset.yaml"))

	loaded, err := ReadPreset(fs, "/preset.yaml")
	require.NoError(t, err)
	assert.Equal(t, preset, *loaded)
	assert.Equal(t, "single", loaded.Method)

	second, err := Gather(images, loaded)
	require.NoError(t, err)
	assert.Equal(t, first.Params, second.Params)
	assert.Equal(t, first.Output, second.Output)
}

func TestReadPresetMissing(t *testing.T) {
	_, err := ReadPreset(afero.NewMemMapFs(), "/none.yaml")
	assert.Error(t, err)
}

func TestRecorderKeepsDeclinedKey(t *testing.T) {
	rec := NewRecorder(NewConsole(lines("base.png", "logo.png", "no", "45", "grid", "out.png"), &bytes.Buffer{}))
	_, err := Gather(images, rec)
	require.NoError(t, err)

	preset := rec.Preset()
	job, err := Gather(images, &preset)
	require.NoError(t, err)
	assert.Equal(t, mixer.NoTransparency{}, job.Params.Transparency)
}
