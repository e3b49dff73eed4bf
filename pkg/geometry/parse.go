package geometry

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var (
	// ErrSyntax is returned for literals that are not numbers.
	ErrSyntax = errors.New("invalid number literal")
	// ErrNotFinite is returned for literals denoting an infinity.
	ErrNotFinite = errors.New("number is not finite")
	// ErrPrecision is returned when asked to parse at an unusable precision.
	ErrPrecision = errors.New("invalid precision")
)

// ParseReal parses a decimal floating-point literal such as "4.0e-5",
// rounding it to prec bits.
func ParseReal(s string, prec uint) (*big.Float, error) {
	if prec < MinPrec || prec > big.MaxPrec {
		return nil, fmt.Errorf("%w: %d bits", ErrPrecision, prec)
	}

	f, _, err := big.ParseFloat(strings.TrimSpace(s), 10, prec, big.ToNearestEven)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrSyntax, s, err)
	}
	if f.IsInf() {
		return nil, fmt.Errorf("%w: %q", ErrNotFinite, s)
	}

	return f, nil
}

// ParseComplex parses a complex literal at prec bits.
//
// Accepted forms are a lone real "re", and a parenthesised pair separated by a
// comma or whitespace: "(re, im)" or "(re im)".
func ParseComplex(s string, prec uint) (*Complex, error) {
	s = strings.TrimSpace(s)

	reText, imText := s, "0"
	if strings.HasPrefix(s, "(") {
		if !strings.HasSuffix(s, ")") {
			return nil, fmt.Errorf("%w %q: unbalanced parenthesis", ErrSyntax, s)
		}
		parts, err := splitPair(s[1 : len(s)-1])
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrSyntax, s, err)
		}
		reText, imText = parts[0], parts[1]
	}

	re, err := ParseReal(reText, prec)
	if err != nil {
		return nil, fmt.Errorf("real part: %w", err)
	}
	im, err := ParseReal(imText, prec)
	if err != nil {
		return nil, fmt.Errorf("imaginary part: %w", err)
	}

	z := NewComplex(prec)
	z.re.Set(re)
	z.im.Set(im)
	return z, nil
}

func splitPair(inner string) ([2]string, error) {
	var fields []string
	if strings.Contains(inner, ",") {
		fields = strings.Split(inner, ",")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
	} else {
		fields = strings.Fields(inner)
	}

	if len(fields) != 2 || fields[0] == "" || fields[1] == "" {
		return [2]string{}, fmt.Errorf("want two components, got %d", len(fields))
	}
	return [2]string{fields[0], fields[1]}, nil
}
