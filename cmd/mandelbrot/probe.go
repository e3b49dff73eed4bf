package main

import (
	"fmt"
	"github.com/spf13/cobra"
	"github.com/willbeason/deep-mandelbrot/pkg/geometry"
	"github.com/willbeason/deep-mandelbrot/pkg/render"
	"github.com/willbeason/deep-mandelbrot/pkg/transforms"
)

func probeCmd() *cobra.Command {
	opts := render.DefaultOptions()
	showOrbit := false

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Reports the escape time of a single point",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			// Validate the same way a render does, on a one-pixel image.
			opts.Width, opts.Height = 1, 1
			cfg, err := render.NewConfig(opts)
			if err != nil {
				return err
			}

			return runProbe(cmd, cfg.Plane().Center(), cfg.MaxIter(), showOrbit)
		},
	}

	cmd.Flags().IntVarP(&opts.Precision, "prec", "p", opts.Precision, "Precision in bits of the complex values used to calculate")
	cmd.Flags().StringVarP(&opts.Center, "center", "c", opts.Center, "Complex number to probe")
	cmd.Flags().IntVarP(&opts.MaxIter, "max-iter", "n", opts.MaxIter, "Max iterations")
	cmd.Flags().BoolVar(&showOrbit, "orbit", false, "Print every point of the orbit")

	return cmd
}

func runProbe(cmd *cobra.Command, c *geometry.Complex, maxIter int, showOrbit bool) error {
	out := cmd.OutOrStdout()

	n := transforms.Iterations(c, maxIter)
	_, err := fmt.Fprintf(out, "c = %s at %d bits\n", c, c.Prec())
	if err != nil {
		return err
	}

	if n == maxIter {
		_, err = fmt.Fprintf(out, "did not escape within %d iterations\n", maxIter)
	} else {
		_, err = fmt.Fprintf(out, "escaped after %d iterations\n", n)
	}
	if err != nil || !showOrbit {
		return err
	}

	for i, z := range transforms.Orbit(c, maxIter) {
		_, err = fmt.Fprintf(out, "z[%d] = %s\n", i, z.Text('g', 20))
		if err != nil {
			return err
		}
	}

	return nil
}
