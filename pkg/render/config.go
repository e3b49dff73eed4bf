package render

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/willbeason/deep-mandelbrot/pkg/geometry"
)

var (
	ErrInvalidDimensions = errors.New("width and height must be positive")
	ErrInvalidPrecision  = errors.New("precision out of range")
	ErrInvalidMaxIter    = errors.New("max iterations must be positive")
	ErrInvalidCenter     = errors.New("center is not a valid complex number")
	ErrInvalidScale      = errors.New("scale is not a valid real number")
)

// Options are the unvalidated inputs of a render, as a user supplies them.
type Options struct {
	Width, Height int
	// Precision is the mantissa size in bits of every coordinate.
	Precision int
	// Center is a complex literal, "(re, im)".
	Center string
	// Scale is the distance along the real axis between horizontally
	// adjacent pixels.
	Scale   string
	MaxIter int
}

// DefaultOptions returns a 1000×1000 view of a filament near the top of the set.
func DefaultOptions() Options {
	return Options{
		Width:     1000,
		Height:    1000,
		Precision: 53,
		Center:    "(-0.235125, 0.827215)",
		Scale:     "4.0e-5",
		MaxIter:   100,
	}
}

// Config is a validated, immutable render description. Construct it with
// NewConfig; it is safe to share between goroutines.
type Config struct {
	width, height int
	maxIter       int
	plane         geometry.Plane
}

// NewConfig validates o and parses its literals at o.Precision bits.
func NewConfig(o Options) (*Config, error) {
	if o.Width <= 0 || o.Height <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrInvalidDimensions, o.Width, o.Height)
	}
	if o.Precision < geometry.MinPrec || uint64(o.Precision) > big.MaxPrec {
		return nil, fmt.Errorf("%w: %d bits, want %d to %d", ErrInvalidPrecision, o.Precision, geometry.MinPrec, uint64(big.MaxPrec))
	}
	if o.MaxIter <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMaxIter, o.MaxIter)
	}

	prec := uint(o.Precision)
	center, err := geometry.ParseComplex(o.Center, prec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCenter, err)
	}
	scale, err := geometry.ParseReal(o.Scale, prec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScale, err)
	}

	step := geometry.NewComplex(prec)
	step.Real().Set(scale)

	return &Config{
		width:   o.Width,
		height:  o.Height,
		maxIter: o.MaxIter,
		plane:   geometry.NewPlane(center, step),
	}, nil
}

// Width is the number of pixel columns.
func (c *Config) Width() int { return c.width }

// Height is the number of pixel rows.
func (c *Config) Height() int { return c.height }

// MaxIter is the iteration cap; an escape time equal to it marks the interior.
func (c *Config) MaxIter() int { return c.maxIter }

// Precision is the mantissa size in bits shared by every coordinate.
func (c *Config) Precision() uint { return c.plane.Prec() }

// Plane returns the mapping from pixel offsets to coordinates.
func (c *Config) Plane() geometry.Plane { return c.plane }

// Offset converts a pixel index to its offset from the image center.
//
// Column px maps to px - Width/2 and row py to py - Height/2, using integer
// division, so odd sizes put offset 0 on the middle pixel and even sizes have
// one more pixel left of (above) the center than right of (below) it.
func (c *Config) Offset(px, py int) (x, y int) {
	return px - c.width/2, py - c.height/2
}

// Coordinate returns the point of the complex plane pixel (px, py) samples.
func (c *Config) Coordinate(px, py int) *geometry.Complex {
	x, y := c.Offset(px, py)
	return c.plane.Point(x, y)
}

// Pixels is the number of pixels in the raster.
func (c *Config) Pixels() int {
	return c.width * c.height
}
