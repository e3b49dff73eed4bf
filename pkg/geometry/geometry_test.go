package geometry

import (
	"errors"
	"math/big"
	"testing"
)

func TestParseComplex(t *testing.T) {
	tests := []struct {
		in     string
		re, im float64
	}{
		{"(-0.235125, 0.827215)", -0.235125, 0.827215},
		{"(-0.235125 0.827215)", -0.235125, 0.827215},
		{"  ( 1.5 ,  -2 ) ", 1.5, -2},
		{"4.0e-5", 4.0e-5, 0},
		{"-2", -2, 0},
	}

	for _, tt := range tests {
		z, err := ParseComplex(tt.in, 53)
		if err != nil {
			t.Errorf("ParseComplex(%q) error = %v", tt.in, err)
			continue
		}
		if got := z.Float64(); got != complex(tt.re, tt.im) {
			t.Errorf("ParseComplex(%q) = %v, want %v", tt.in, got, complex(tt.re, tt.im))
		}
		if z.Prec() != 53 {
			t.Errorf("ParseComplex(%q).Prec() = %d, want 53", tt.in, z.Prec())
		}
	}
}

func TestParseComplexErrors(t *testing.T) {
	tests := []struct {
		in   string
		prec uint
		want error
	}{
		{"", 53, ErrSyntax},
		{"abc", 53, ErrSyntax},
		{"(1, 2", 53, ErrSyntax},
		{"(1, 2, 3)", 53, ErrSyntax},
		{"(1,)", 53, ErrSyntax},
		{"(1)", 53, ErrSyntax},
		{"(1, x)", 53, ErrSyntax},
		{"Inf", 53, ErrNotFinite},
		{"(0, -inf)", 53, ErrNotFinite},
		{"1", 0, ErrPrecision},
	}

	for _, tt := range tests {
		_, err := ParseComplex(tt.in, tt.prec)
		if !errors.Is(err, tt.want) {
			t.Errorf("ParseComplex(%q, %d) error = %v, want %v", tt.in, tt.prec, err, tt.want)
		}
	}
}

func TestParseRealPrecision(t *testing.T) {
	// 0.1 is inexact in binary, so its rounding depends on the precision.
	lo, err := ParseReal("0.1", 24)
	if err != nil {
		t.Fatal(err)
	}
	hi, err := ParseReal("0.1", 200)
	if err != nil {
		t.Fatal(err)
	}

	if lo.Prec() != 24 || hi.Prec() != 200 {
		t.Errorf("precisions = %d, %d, want 24, 200", lo.Prec(), hi.Prec())
	}
	if lo.Cmp(hi) == 0 {
		t.Error("0.1 rounded identically at 24 and 200 bits")
	}
}

func TestComplexArithmetic(t *testing.T) {
	x := NewComplexFloat64(1, 2, 53)
	y := NewComplexFloat64(3, -1, 53)

	tests := []struct {
		name string
		got  *Complex
		want complex128
	}{
		{"Add", NewComplex(53).Add(x, y), 4 + 1i},
		{"Mul", NewComplex(53).Mul(x, y), 5 + 5i},
		{"Square", NewComplex(53).Square(x), -3 + 4i},
		{"MulI", NewComplex(53).MulI(x), -2 + 1i},
		{"MulInt", NewComplex(53).MulInt(x, -3), -3 - 6i},
		{"Conj", NewComplex(53).Conj(x), 1 - 2i},
	}

	for _, tt := range tests {
		if got := tt.got.Float64(); got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestComplexAliasing(t *testing.T) {
	z := NewComplexFloat64(1, 2, 53)
	z.Mul(z, z)
	if got := z.Float64(); got != -3+4i {
		t.Errorf("z.Mul(z, z) = %v, want (-3+4i)", got)
	}

	z = NewComplexFloat64(1, 2, 53)
	z.MulI(z)
	if got := z.Float64(); got != -2+1i {
		t.Errorf("z.MulI(z) = %v, want (-2+1i)", got)
	}

	z = NewComplexFloat64(1, 2, 53)
	z.Square(z)
	if got := z.Float64(); got != -3+4i {
		t.Errorf("z.Square(z) = %v, want (-3+4i)", got)
	}
}

func TestNormSq(t *testing.T) {
	z := NewComplexFloat64(3, 4, 53)
	got := z.NormSq(nil)
	if got.Cmp(big.NewFloat(25)) != 0 {
		t.Errorf("NormSq = %s, want 25", got.Text('g', -1))
	}
	if got.Prec() != 53 {
		t.Errorf("NormSq precision = %d, want 53", got.Prec())
	}
}

func TestComplexString(t *testing.T) {
	z := NewComplexFloat64(-0.5, 0.25, 53)
	if got, want := z.String(), "(-0.5, 0.25)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	back, err := ParseComplex(z.String(), 53)
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(z) {
		t.Errorf("ParseComplex(String()) = %v, want %v", back, z)
	}
}

func TestPlanePoint(t *testing.T) {
	center := NewComplexFloat64(-1, 0.5, 64)
	step := NewComplexFloat64(0.25, 0, 64)
	p := NewPlane(center, step)

	tests := []struct {
		x, y int
		want complex128
	}{
		{0, 0, -1 + 0.5i},
		{1, 0, -0.75 + 0.5i},
		{0, 1, -1 + 0.75i},
		{-2, -2, -1.5 + 0i},
		{3, -1, -0.25 + 0.25i},
	}

	for _, tt := range tests {
		got := p.Point(tt.x, tt.y)
		if got.Float64() != tt.want {
			t.Errorf("Point(%d, %d) = %v, want %v", tt.x, tt.y, got.Float64(), tt.want)
		}
		if got.Prec() != 64 {
			t.Errorf("Point(%d, %d).Prec() = %d, want 64", tt.x, tt.y, got.Prec())
		}
	}
}

func TestPlaneRotatedStep(t *testing.T) {
	// A step pointing along the imaginary axis turns the vertical axis onto
	// the negative real axis.
	p := NewPlane(NewComplex(53), NewComplexFloat64(0, 1, 53))

	if got := p.VerticalStep().Float64(); got != -1 {
		t.Errorf("VerticalStep() = %v, want (-1+0i)", got)
	}
	if got := p.Point(2, 3).Float64(); got != -3+2i {
		t.Errorf("Point(2, 3) = %v, want (-3+2i)", got)
	}
}

func TestPlaneCopiesInputs(t *testing.T) {
	center := NewComplexFloat64(1, 1, 53)
	p := NewPlane(center, NewComplexFloat64(1, 0, 53))

	center.Real().SetFloat64(100)
	if got := p.Point(0, 0).Float64(); got != 1+1i {
		t.Errorf("Point(0, 0) after mutating center = %v, want (1+1i)", got)
	}
}
