package render

import (
	"image"
)

// A Raster is a finished render: the painted image and the escape time behind
// every pixel.
type Raster struct {
	Image *image.RGBA
	// Iterations holds escape times in row-major order. A value of MaxIter
	// marks a point assumed to be in the set.
	Iterations []int
	MaxIter    int

	width, height int
}

func newRaster(width, height, maxIter int) *Raster {
	return &Raster{
		Image:      image.NewRGBA(image.Rect(0, 0, width, height)),
		Iterations: make([]int, width*height),
		MaxIter:    maxIter,
		width:      width,
		height:     height,
	}
}

// IterationsAt returns the escape time of pixel (x, y).
func (r *Raster) IterationsAt(x, y int) int {
	return r.Iterations[y*r.width+x]
}

// Histogram counts pixels by escape time. Index MaxIter counts interior pixels.
func (r *Raster) Histogram() []int {
	hist := make([]int, r.MaxIter+1)
	for _, n := range r.Iterations {
		hist[n]++
	}
	return hist
}

// Interior is the number of pixels that never escaped.
func (r *Raster) Interior() int {
	interior := 0
	for _, n := range r.Iterations {
		if n == r.MaxIter {
			interior++
		}
	}
	return interior
}
