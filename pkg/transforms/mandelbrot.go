package transforms

import (
	"github.com/willbeason/deep-mandelbrot/pkg/geometry"
)

// Mandelbrot is the quadratic map z ↦ z² + C.
type Mandelbrot struct {
	C *geometry.Complex
}

// Next replaces z with z² + C and returns it. Arithmetic is at z's precision.
func (m Mandelbrot) Next(z *geometry.Complex) *geometry.Complex {
	return z.Square(z).Add(z, m.C)
}

// Orbit returns z₀ = 0, z₁, … up to and including the first point whose
// squared magnitude reaches EscapeRadiusSq, or n+1 points if none does.
func Orbit(c *geometry.Complex, n int) []*geometry.Complex {
	m := Mandelbrot{C: c}
	z := geometry.NewComplex(c.Prec())
	norm := newFloat(c.Prec())

	orbit := []*geometry.Complex{geometry.NewComplex(c.Prec()).Set(z)}
	for i := 0; i < n; i++ {
		if z.NormSq(norm).Cmp(escapeRadiusSq) >= 0 {
			break
		}
		m.Next(z)
		orbit = append(orbit, geometry.NewComplex(c.Prec()).Set(z))
	}

	return orbit
}
