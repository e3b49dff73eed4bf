package geometry

import (
	"fmt"
	"math/big"
)

// MinPrec is the smallest precision, in mantissa bits, a Complex may carry.
const MinPrec = 1

// A Complex is a point in the complex plane whose real and imaginary parts
// share one precision.
//
// Like big.Float, methods take the receiver as the result and return it, so
// calls may be chained and operands may alias the receiver. A Complex must not
// be copied by value once used.
type Complex struct {
	re, im big.Float
}

// NewComplex returns 0 at the given precision.
func NewComplex(prec uint) *Complex {
	z := new(Complex)
	z.re.SetPrec(prec)
	z.im.SetPrec(prec)
	return z
}

// NewComplexFloat64 returns re+im·i rounded to prec.
func NewComplexFloat64(re, im float64, prec uint) *Complex {
	z := NewComplex(prec)
	z.re.SetFloat64(re)
	z.im.SetFloat64(im)
	return z
}

// Prec returns the precision of z in bits.
func (z *Complex) Prec() uint {
	return z.re.Prec()
}

// Real returns the real part of z. Mutating it mutates z.
func (z *Complex) Real() *big.Float {
	return &z.re
}

// Imag returns the imaginary part of z. Mutating it mutates z.
func (z *Complex) Imag() *big.Float {
	return &z.im
}

// Set sets z to x rounded to z's precision. If z has precision 0 it takes x's.
func (z *Complex) Set(x *Complex) *Complex {
	if z == x {
		return z
	}
	if z.Prec() == 0 {
		z.re.SetPrec(x.Prec())
		z.im.SetPrec(x.Prec())
	}
	z.re.Set(&x.re)
	z.im.Set(&x.im)
	return z
}

// Add sets z to x+y.
func (z *Complex) Add(x, y *Complex) *Complex {
	z.re.Add(&x.re, &y.re)
	z.im.Add(&x.im, &y.im)
	return z
}

// Mul sets z to x·y.
func (z *Complex) Mul(x, y *Complex) *Complex {
	prec := z.Prec()
	var ac, bd, ad, bc big.Float
	ac.SetPrec(prec).Mul(&x.re, &y.re)
	bd.SetPrec(prec).Mul(&x.im, &y.im)
	ad.SetPrec(prec).Mul(&x.re, &y.im)
	bc.SetPrec(prec).Mul(&x.im, &y.re)
	z.re.Sub(&ac, &bd)
	z.im.Add(&ad, &bc)
	return z
}

// MulInt sets z to n·x. The product is rounded once to z's precision.
func (z *Complex) MulInt(x *Complex, n int) *Complex {
	var f big.Float
	f.SetInt64(int64(n))
	z.re.Mul(&x.re, &f)
	z.im.Mul(&x.im, &f)
	return z
}

// MulI sets z to x·i, a quarter turn counter-clockwise.
func (z *Complex) MulI(x *Complex) *Complex {
	var re big.Float
	re.SetPrec(z.Prec()).Neg(&x.im)
	z.im.Set(&x.re)
	z.re.Set(&re)
	return z
}

// Square sets z to x².
func (z *Complex) Square(x *Complex) *Complex {
	prec := z.Prec()
	var a2, b2, ab big.Float
	a2.SetPrec(prec).Mul(&x.re, &x.re)
	b2.SetPrec(prec).Mul(&x.im, &x.im)
	ab.SetPrec(prec).Mul(&x.re, &x.im)
	z.re.Sub(&a2, &b2)
	z.im.SetMantExp(&ab, 1)
	return z
}

// Conj sets z to the complex conjugate of x.
func (z *Complex) Conj(x *Complex) *Complex {
	z.re.Set(&x.re)
	z.im.Neg(&x.im)
	return z
}

// NormSq sets dst to re²+im² at z's precision and returns it.
// A nil dst is allocated.
func (z *Complex) NormSq(dst *big.Float) *big.Float {
	if dst == nil {
		dst = new(big.Float)
	}
	prec := z.Prec()
	var a2, b2 big.Float
	a2.SetPrec(prec).Mul(&z.re, &z.re)
	b2.SetPrec(prec).Mul(&z.im, &z.im)
	return dst.SetPrec(prec).Add(&a2, &b2)
}

// Equal reports whether z and x hold the same value, regardless of precision.
func (z *Complex) Equal(x *Complex) bool {
	return z.re.Cmp(&x.re) == 0 && z.im.Cmp(&x.im) == 0
}

// Float64 returns the nearest complex128 to z.
func (z *Complex) Float64() complex128 {
	re, _ := z.re.Float64()
	im, _ := z.im.Float64()
	return complex(re, im)
}

// Text formats z as "(re, im)" using big.Float's format and digit count.
func (z *Complex) Text(format byte, digits int) string {
	return fmt.Sprintf("(%s, %s)", z.re.Text(format, digits), z.im.Text(format, digits))
}

// String formats z with the shortest decimal digits that round-trip at z's precision.
func (z *Complex) String() string {
	return z.Text('g', -1)
}
