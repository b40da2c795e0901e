package mixer

import (
	"io"

	"go.uber.org/zap"
)

type Option func(e *Engine)

// WithWorkers bounds the number of bands blended at the same time.
// Values below 1 mean sequential.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		e.workers = n
	}
}

// WithBandRows sets how many rows one worker blends per task.
func WithBandRows(n int) Option {
	return func(e *Engine) {
		e.bandRows = n
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithProgress renders a progress bar over the blended rows to w.
func WithProgress(w io.Writer) Option {
	return func(e *Engine) {
		e.progress = w
	}
}
