package main

import (
	"context"
	"fmt"
	"github.com/google/gops/agent"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/willbeason/deep-mandelbrot/pkg/export"
	"github.com/willbeason/deep-mandelbrot/pkg/palette"
	"github.com/willbeason/deep-mandelbrot/pkg/render"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"
)

func mainCmd() *cobra.Command {
	opts := render.DefaultOptions()
	flags := cliFlags{}

	cmd := &cobra.Command{
		Use:   "mandelbrot",
		Short: "Generates an image of the Mandelbrot set at arbitrary precision",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCmd(cmd, opts, flags)
		},
	}

	// -h is taken by height, so help keeps only its long form.
	cmd.Flags().Bool("help", false, "help for mandelbrot")
	addRenderFlags(cmd.Flags(), &opts)
	addOutputFlags(cmd.Flags(), &flags)

	cmd.AddCommand(probeCmd())

	return cmd
}

func runCmd(cmd *cobra.Command, opts render.Options, flags cliFlags) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	logger := newLogger(cmd.ErrOrStderr(), flags.verbose)
	render.SetLogger(logger)
	defer render.SetLogger(nil)

	if flags.agent {
		err := agent.Listen(agent.Options{})
		if err != nil {
			return fmt.Errorf("starting gops agent: %w", err)
		}
		defer agent.Close()
	}

	// Everything that can be rejected is rejected before any work starts.
	cfg, err := render.NewConfig(opts)
	if err != nil {
		return err
	}
	colorOf, err := palette.ByName(flags.palette)
	if err != nil {
		return err
	}
	_, err = export.FormatOf(flags.output)
	if err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	logger.Debug("configuration",
		"center", cfg.Plane().Center().String(),
		"step", cfg.Plane().Step().String(),
		"pixels", p.Sprintf("%d", cfg.Pixels()))

	renderOpts := []render.Option{render.WithWorkers(flags.workers)}
	var bar *progressbar.ProgressBar
	if !flags.quiet {
		bar = newProgressBar(cmd.ErrOrStderr(), cfg.Pixels())
		renderOpts = append(renderOpts, render.WithObserver(render.ObserverFunc(func(n int) {
			_ = bar.Add(n)
		})))
	}

	start := time.Now()
	raster, err := render.Render(cmd.Context(), cfg, colorOf, renderOpts...)
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	logger.Info(p.Sprintf("saving image to %s", flags.output),
		"interior", p.Sprintf("%d", raster.Interior()),
		"elapsed", elapsed.Round(time.Millisecond))

	err = export.Save(flags.output, raster.Image)
	if err != nil {
		return err
	}

	if flags.meta == "" {
		return nil
	}

	return export.WriteMeta(flags.meta, export.Meta{
		Image:     flags.output,
		Width:     cfg.Width(),
		Height:    cfg.Height(),
		Precision: cfg.Precision(),
		Center:    opts.Center,
		Scale:     opts.Scale,
		MaxIter:   cfg.MaxIter(),
		Palette:   flags.palette,
		Workers:   flags.workers,
		Elapsed:   elapsed,
		Interior:  raster.Interior(),
		Histogram: raster.Histogram(),
	})
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newProgressBar(w io.Writer, pixels int) *progressbar.ProgressBar {
	return progressbar.NewOptions64(int64(pixels),
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("rendering"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionFullWidth(),
		progressbar.OptionOnCompletion(func() {
			_, _ = fmt.Fprintln(w)
		}),
	)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := mainCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
