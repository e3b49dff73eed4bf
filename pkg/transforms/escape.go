package transforms

import (
	"math/big"

	"github.com/willbeason/deep-mandelbrot/pkg/geometry"
)

// EscapeRadiusSq is the squared magnitude at which an orbit counts as escaped.
const EscapeRadiusSq = 4.0

var escapeRadiusSq = big.NewFloat(EscapeRadiusSq)

// Iterations returns how many times z ← z² + c is applied, starting from z = 0,
// before |z|² ≥ 4. It returns maxIter if the orbit has not escaped by then.
//
// Arithmetic is carried out at c's precision.
func Iterations(c *geometry.Complex, maxIter int) int {
	var e Evaluator
	return e.Iterations(c, maxIter)
}

// An Evaluator computes escape times while reusing its scratch values between
// calls. The zero value is ready to use. An Evaluator must not be shared by
// goroutines.
type Evaluator struct {
	prec uint

	zr, zi   big.Float
	zr2, zi2 big.Float
	norm     big.Float
	cross    big.Float
}

// Iterations is the package-level Iterations without per-call allocation of
// the orbit state.
func (e *Evaluator) Iterations(c *geometry.Complex, maxIter int) int {
	e.reset(c.Prec())
	cr, ci := c.Real(), c.Imag()

	for i := 0; i < maxIter; i++ {
		e.zr2.Mul(&e.zr, &e.zr)
		e.zi2.Mul(&e.zi, &e.zi)
		if e.norm.Add(&e.zr2, &e.zi2).Cmp(escapeRadiusSq) >= 0 {
			return i
		}

		// z² + c = (zr² - zi² + cr) + (2·zr·zi + ci)i
		e.cross.Mul(&e.zr, &e.zi)
		e.cross.SetMantExp(&e.cross, 1)
		e.zi.Add(&e.cross, ci)
		e.zr.Sub(&e.zr2, &e.zi2)
		e.zr.Add(&e.zr, cr)
	}

	return maxIter
}

func (e *Evaluator) reset(prec uint) {
	if e.prec != prec {
		e.prec = prec
		for _, f := range []*big.Float{&e.zr, &e.zi, &e.zr2, &e.zi2, &e.norm, &e.cross} {
			f.SetPrec(prec)
		}
	}
	e.zr.SetInt64(0)
	e.zi.SetInt64(0)
}

func newFloat(prec uint) *big.Float {
	return new(big.Float).SetPrec(prec)
}
