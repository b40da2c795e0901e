package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"watermark/internal/system"
	"watermark/pkg/codec"
	"watermark/pkg/codec/virtual"
	"watermark/pkg/mixer"
	"watermark/pkg/prompt"
	"watermark/pkg/proto"
)

func newLogger() (*zap.Logger, error) {
	if *debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func newFs() (afero.Fs, error) {
	return codec.NewFs(*dir)
}

func newCodec(fs afero.Fs, logger *zap.Logger) *codec.Codec {
	return codec.New(fs, logger, codec.WithJPEGQuality(*quality), codec.WithQRSize(*qrSize))
}

func newSource(c *codec.Codec) proto.Source {
	return c
}

func newSink(c *codec.Codec, logger *zap.Logger) proto.Sink {
	if *dryRun {
		return virtual.Mock(logger)
	}
	return c
}

func newEngine(logger *zap.Logger) *mixer.Engine {
	n := *workers
	if n < 1 {
		n = system.Workers()
	}

	opts := []mixer.Option{mixer.WithWorkers(n), mixer.WithLogger(logger)}
	if *progress {
		opts = append(opts, mixer.WithProgress(os.Stderr))
	}
	return mixer.NewEngine(opts...)
}

// newAsker answers from the preset file and flags first, flags winning, and
// falls back to asking on the console.
func newAsker(fs afero.Fs) (*prompt.Recorder, error) {
	var preset prompt.Preset
	if *presetFile != "" {
		p, err := prompt.ReadPreset(fs, *presetFile)
		if err != nil {
			return nil, fmt.Errorf("read preset failed: %w", err)
		}
		preset = *p
	}
	preset = preset.Merge(flagPreset())

	console := prompt.NewConsole(os.Stdin, os.Stdout)
	if preset.IsZero() {
		return prompt.NewRecorder(console), nil
	}
	return prompt.NewRecorder(prompt.Chain{&preset, console}), nil
}

func flagPreset() prompt.Preset {
	p := prompt.Preset{
		Image:     *imageName,
		Watermark: *watermarkName,
		Key:       *key,
		Method:    *method,
		Position:  *position,
		Output:    *output,
	}
	if flag.CommandLine.Changed("alpha") {
		p.Alpha = alpha
	}
	if flag.CommandLine.Changed("use-key") {
		p.UseKey = useKey
	}
	if flag.CommandLine.Changed("weight") {
		w := *weight
		p.Weight = &w
	}
	return p
}

func run(logger *zap.Logger, fs afero.Fs, src proto.Source, sink proto.Sink, engine *mixer.Engine, rec *prompt.Recorder) error {
	defer func() {
		_ = logger.Sync()
	}()

	job, err := prompt.Gather(src, rec)
	if err != nil {
		return err
	}

	if *savePreset != "" {
		preset := rec.Preset()
		if err := prompt.WritePreset(fs, &preset, *savePreset); err != nil {
			return fmt.Errorf("save preset failed: %w", err)
		}
		logger.With(zap.String("path", *savePreset)).Debug("preset saved")
	}

	out, err := engine.Run(context.Background(), job.Base, job.Watermark, job.Params)
	if err != nil {
		return err
	}

	if err := sink.Save(out, job.Output); err != nil {
		return err
	}

	fmt.Printf("The watermarked image %s has been created.\n", job.Output)
	return nil
}
