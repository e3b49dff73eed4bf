package geometry

// A Plane places a pixel grid on the complex plane.
//
// Offset (0, 0) lands on the center. Each unit of x moves by the step, and
// each unit of y moves by the step rotated a quarter turn, so the two axes stay
// orthogonal whatever direction the step points. Build one with NewPlane.
type Plane struct {
	center *Complex
	step   *Complex
	vstep  *Complex
}

// NewPlane returns the Plane centered on center whose horizontal pixel step is
// step. Both are copied at center's precision.
func NewPlane(center, step *Complex) Plane {
	prec := center.Prec()
	c := NewComplex(prec).Set(center)
	s := NewComplex(prec).Set(step)
	return Plane{
		center: c,
		step:   s,
		vstep:  NewComplex(prec).MulI(s),
	}
}

// Prec is the precision every Point of the plane is computed at.
func (p Plane) Prec() uint {
	return p.center.Prec()
}

// Center returns the point at offset (0, 0). The result must not be modified.
func (p Plane) Center() *Complex {
	return p.center
}

// Step returns the horizontal step. The result must not be modified.
func (p Plane) Step() *Complex {
	return p.step
}

// VerticalStep returns i·step. The result must not be modified.
func (p Plane) VerticalStep() *Complex {
	return p.vstep
}

// Point returns center + x·step + y·i·step for the pixel offset (x, y).
func (p Plane) Point(x, y int) *Complex {
	return p.PointTo(NewComplex(p.Prec()), x, y)
}

// PointTo is Point writing into dst, which must not alias the plane's values.
func (p Plane) PointTo(dst *Complex, x, y int) *Complex {
	var xoff, yoff Complex
	prec := p.Prec()
	xoff.re.SetPrec(prec)
	xoff.im.SetPrec(prec)
	yoff.re.SetPrec(prec)
	yoff.im.SetPrec(prec)

	xoff.MulInt(p.step, x)
	yoff.MulInt(p.vstep, y)
	return dst.Add(p.center, &xoff).Add(dst, &yoff)
}
