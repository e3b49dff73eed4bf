package render

import (
	"context"
	"fmt"
	"image/color"
	"runtime"
	"time"

	"github.com/willbeason/deep-mandelbrot/pkg/geometry"
	"github.com/willbeason/deep-mandelbrot/pkg/palette"
	"github.com/willbeason/deep-mandelbrot/pkg/transforms"
	"golang.org/x/sync/errgroup"
)

// An Observer is told each time a batch of pixels is finished. It is called
// concurrently from the rendering goroutines.
type Observer interface {
	PixelsDone(n int)
}

// ObserverFunc adapts a function to an Observer.
type ObserverFunc func(n int)

func (f ObserverFunc) PixelsDone(n int) { f(n) }

// An Option adjusts how Render schedules and paints.
type Option func(*options)

type options struct {
	workers  int
	observer Observer
	interior color.RGBA
}

func defaultOptions() options {
	return options{
		workers:  runtime.NumCPU(),
		interior: palette.Interior,
	}
}

// WithWorkers caps the number of columns rendered at once. Values below 1
// leave the default of one per CPU.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithObserver reports progress to obs.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		o.observer = obs
	}
}

// WithInterior sets the color of points that never escape.
func WithInterior(c color.RGBA) Option {
	return func(o *options) {
		o.interior = c
	}
}

// Render computes the escape time of every pixel of cfg and paints it with
// colorOf, or the interior color if the orbit reached the iteration cap. A nil
// colorOf paints with palette.HSLCycle.
//
// Each column is an independent task owning its cells of the raster, so
// workers never share a cell. The raster is returned only after every task has
// finished. If ctx is cancelled first, Render returns the context's error and
// no raster.
func Render(ctx context.Context, cfg *Config, colorOf palette.Func, opts ...Option) (*Raster, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if colorOf == nil {
		colorOf = palette.HSLCycle
	}

	r := newRaster(cfg.Width(), cfg.Height(), cfg.MaxIter())

	log := Logger()
	log.Info("rendering",
		"width", cfg.Width(),
		"height", cfg.Height(),
		"precision", cfg.Precision(),
		"max_iter", cfg.MaxIter(),
		"workers", o.workers)
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	scheduled := 0
	for px := 0; px < cfg.Width(); px++ {
		if gctx.Err() != nil {
			break
		}
		scheduled++
		px := px
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			r.renderColumn(cfg, px, colorOf, o.interior)
			log.Debug("column rendered", "x", px)
			if o.observer != nil {
				o.observer.PixelsDone(cfg.Height())
			}
			return nil
		})
	}

	// A cancel that lands after every column finished leaves a complete raster.
	err := g.Wait()
	if err == nil && scheduled < cfg.Width() {
		err = ctx.Err()
	}
	if err != nil {
		log.Warn("render aborted", "error", err, "elapsed", time.Since(start))
		return nil, fmt.Errorf("render: %w", err)
	}

	log.Info("rendered", "elapsed", time.Since(start), "interior", r.Interior())
	return r, nil
}

func (r *Raster) renderColumn(cfg *Config, px int, colorOf palette.Func, interior color.RGBA) {
	var e transforms.Evaluator
	plane := cfg.Plane()
	c := geometry.NewComplex(plane.Prec())
	maxIter := cfg.MaxIter()

	for py := 0; py < r.height; py++ {
		x, y := cfg.Offset(px, py)
		n := e.Iterations(plane.PointTo(c, x, y), maxIter)

		col := interior
		if n < maxIter {
			col = colorOf(n)
		}

		r.Iterations[py*r.width+px] = n
		r.Image.SetRGBA(px, py, col)
	}
}
