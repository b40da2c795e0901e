package virtual

import (
	"image"

	"go.uber.org/zap"

	"watermark/pkg/proto"
)

// Mock returns a sink that only logs what it would have written.
func Mock(logger *zap.Logger) proto.Sink {
	return &Mocker{l: logger}
}

type Mocker struct {
	l     *zap.Logger
	saved []string
}

func (m *Mocker) Save(img image.Image, name string) error {
	m.l.With(
		zap.String("name", name),
		zap.Int("w", img.Bounds().Dx()),
		zap.Int("h", img.Bounds().Dy()),
	).Info("save skipped")
	m.saved = append(m.saved, name)
	return nil
}

// Saved lists the names passed to Save, oldest first.
func (m *Mocker) Saved() []string {
	return m.saved
}
