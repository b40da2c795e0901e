package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"
	"go.uber.org/fx"

	"watermark/pkg/proto"
)

var imageName = flag.String("image", "", "base image filename")
var watermarkName = flag.String("watermark", "", "watermark image filename, or qr:<text>")
var alpha = flag.Bool("alpha", false, "use the watermark's alpha channel")
var useKey = flag.Bool("use-key", false, "answer whether to set a transparency color")
var key = flag.String("key", "", "transparency color \"R G B\", implies --use-key")
var weight = flag.Int("weight", 0, "watermark percentage 0-100")
var method = flag.String("method", "", "position method: single, grid")
var position = flag.String("position", "", "watermark position \"X Y\" for single")
var output = flag.String("output", "", "output filename, .jpg or .png")
var presetFile = flag.String("preset", "", "read answers from a yaml preset")
var savePreset = flag.String("save-preset", "", "write the given answers to a yaml preset")
var dir = flag.String("dir", "", "resolve image and preset filenames inside this directory")
var workers = flag.Int("workers", 0, "blend workers, 0 for one per physical core")
var quality = flag.Int("quality", 95, "jpeg quality")
var qrSize = flag.Int("qr-size", 256, "edge in pixels of qr:<text> watermarks")
var progress = flag.Bool("progress", false, "show blend progress")
var dryRun = flag.Bool("dry-run", false, "blend without writing the output")
var debug = flag.Bool("debug", false, "set debug")

func main() {
	flag.Parse()

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			newLogger,
			newFs,
			newCodec,
			newSource,
			newSink,
			newEngine,
			newAsker,
		),
		fx.Invoke(run),
	)

	if err := app.Err(); err != nil {
		fmt.Println(message(err))
		os.Exit(1)
	}
}

// message prefers the user-facing text of a proto.Error anywhere in the chain.
func message(err error) string {
	var perr *proto.Error
	if errors.As(err, &perr) {
		return perr.Msg
	}
	return err.Error()
}
