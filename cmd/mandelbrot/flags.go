package main

import (
	"github.com/spf13/pflag"
	"github.com/willbeason/deep-mandelbrot/pkg/palette"
	"github.com/willbeason/deep-mandelbrot/pkg/render"
	"runtime"
	"strings"
)

// cliFlags are the settings that shape the run rather than the image.
type cliFlags struct {
	output  string
	palette string
	workers int
	meta    string
	quiet   bool
	verbose bool
	agent   bool
}

func addRenderFlags(fs *pflag.FlagSet, o *render.Options) {
	fs.IntVarP(&o.Width, "width", "w", o.Width, "Width of the image")
	fs.IntVarP(&o.Height, "height", "h", o.Height, "Height of the image")
	fs.IntVarP(&o.Precision, "prec", "p", o.Precision, "Precision in bits of the complex values used to calculate")
	fs.StringVarP(&o.Center, "center", "c", o.Center, "Complex number at the center of the image")
	fs.StringVarP(&o.Scale, "scale", "s", o.Scale, "Distance along the real axis between adjacent pixels")
	fs.IntVarP(&o.MaxIter, "max-iter", "n", o.MaxIter, "Max iterations")
}

func addOutputFlags(fs *pflag.FlagSet, f *cliFlags) {
	fs.StringVarP(&f.output, "output", "o", "mandelbrot.png", "Output file of the image (.png, .bmp, .tif)")
	fs.StringVar(&f.palette, "palette", "hsl", "Coloring of escaped points: "+strings.Join(palette.Names(), ", "))
	fs.IntVar(&f.workers, "workers", runtime.NumCPU(), "Columns rendered in parallel")
	fs.StringVar(&f.meta, "meta", "", "Also write render metadata as JSON to this file")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "Hide the progress bar")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "Log debug detail")
	fs.BoolVar(&f.agent, "agent", false, "Start a gops diagnostics agent for the duration of the render")
}
