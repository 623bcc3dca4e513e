package gf256

import (
	"fmt"
	"strings"
)

// Polynomial is an immutable univariate polynomial with coefficients in
// GF(256). Coefficients are stored most-significant-first: coefficients[0]
// is the highest-order term, coefficients[len-1] is the constant term.
// After construction the slice is normalized so either it holds a single
// zero coefficient (the zero polynomial) or its first element is non-zero.
//
// Every operation below returns a fresh Polynomial; none mutate their
// receiver or argument.
type Polynomial struct {
	field        *Field
	coefficients []byte
}

// newPolynomial normalizes coefficients (strips leading zeros, high-first)
// and wraps them in a Polynomial without copying: the result aliases
// coefficients, so callers pass a slice that nothing modifies afterwards.
func newPolynomial(f *Field, coefficients []byte) Polynomial {
	n := 0
	for n < len(coefficients)-1 && coefficients[n] == 0 {
		n++
	}
	if n == 0 {
		return Polynomial{field: f, coefficients: coefficients}
	}
	return Polynomial{field: f, coefficients: coefficients[n:]}
}

// NewPolynomial builds a normalized Polynomial from high-first coefficients.
// coefficients must be non-empty.
func NewPolynomial(f *Field, coefficients []byte) Polynomial {
	cp := make([]byte, len(coefficients))
	copy(cp, coefficients)
	return newPolynomial(f, cp)
}

// Degree returns the polynomial's degree. The zero polynomial is defined to
// have degree 0 (callers must test IsZero before relying on Degree in
// division contexts).
func (p Polynomial) Degree() int {
	return len(p.coefficients) - 1
}

// IsZero reports whether p is the zero polynomial. The zero-valued
// Polynomial{} (no coefficients set) counts as zero too, so debug fields
// left unset by an early decoder return are always safe to print.
func (p Polynomial) IsZero() bool {
	return len(p.coefficients) == 0 || p.coefficients[0] == 0
}

// Coefficient returns the coefficient of x^i. Indices beyond the
// polynomial's degree return 0 rather than erroring.
func (p Polynomial) Coefficient(i int) byte {
	if i < 0 || i > p.Degree() {
		return 0
	}
	return p.coefficients[len(p.coefficients)-1-i]
}

// EvaluateAt evaluates p(x) via Horner's rule. EvaluateAt(0) is the
// constant term; EvaluateAt(1) is the XOR of all coefficients.
func (p Polynomial) EvaluateAt(x byte) byte {
	if x == 0 {
		return p.Coefficient(0)
	}
	if x == 1 {
		var result byte
		for _, c := range p.coefficients {
			result ^= c
		}
		return result
	}
	result := p.coefficients[0]
	for i := 1; i < len(p.coefficients); i++ {
		result = AddOrSubtract(p.field.Multiply(x, result), p.coefficients[i])
	}
	return result
}

// AddOrSubtract returns p + other (equivalently p - other). If either
// operand is zero the other is returned unchanged.
func (p Polynomial) AddOrSubtract(other Polynomial) Polynomial {
	if p.IsZero() {
		return other
	}
	if other.IsZero() {
		return p
	}

	smaller, larger := p.coefficients, other.coefficients
	if len(smaller) > len(larger) {
		smaller, larger = larger, smaller
	}

	sumDiff := make([]byte, len(larger))
	lengthDiff := len(larger) - len(smaller)
	copy(sumDiff, larger[:lengthDiff])

	for i := lengthDiff; i < len(larger); i++ {
		sumDiff[i] = AddOrSubtract(smaller[i-lengthDiff], larger[i])
	}

	return newPolynomial(p.field, sumDiff)
}

// Multiply returns the convolution p * other in GF(256).
func (p Polynomial) Multiply(other Polynomial) Polynomial {
	if p.IsZero() || other.IsZero() {
		return p.field.Zero()
	}
	a, b := p.coefficients, other.coefficients
	product := make([]byte, len(a)+len(b)-1)
	for i, ac := range a {
		if ac == 0 {
			continue
		}
		for j, bc := range b {
			product[i+j] = AddOrSubtract(product[i+j], p.field.Multiply(ac, bc))
		}
	}
	return newPolynomial(p.field, product)
}

// MultiplyScalar scales every coefficient by scalar. A zero scalar yields
// the zero polynomial.
func (p Polynomial) MultiplyScalar(scalar byte) Polynomial {
	if scalar == 0 {
		return p.field.Zero()
	}
	if scalar == 1 {
		return p
	}
	product := make([]byte, len(p.coefficients))
	for i, c := range p.coefficients {
		product[i] = p.field.Multiply(c, scalar)
	}
	return newPolynomial(p.field, product)
}

// MultiplyByMonomial returns p * coefficient * x^degree. Fails with
// InvalidArgument if degree is negative; a zero coefficient or a zero
// receiver yields the zero polynomial.
func (p Polynomial) MultiplyByMonomial(degree int, coefficient byte) (Polynomial, error) {
	if degree < 0 {
		return Polynomial{}, &InvalidArgument{Message: "monomial degree must be non-negative"}
	}
	if coefficient == 0 || p.IsZero() {
		return p.field.Zero(), nil
	}
	product := make([]byte, len(p.coefficients)+degree)
	for i, c := range p.coefficients {
		product[i] = p.field.Multiply(c, coefficient)
	}
	return newPolynomial(p.field, product), nil
}

// String renders p for debugging, e.g. "3x^2 + 1".
func (p Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}
	var b strings.Builder
	for i, c := range p.coefficients {
		if c == 0 {
			continue
		}
		degree := len(p.coefficients) - 1 - i
		if b.Len() > 0 {
			b.WriteString(" + ")
		}
		switch {
		case degree == 0:
			fmt.Fprintf(&b, "%d", c)
		case degree == 1:
			fmt.Fprintf(&b, "%dx", c)
		default:
			fmt.Fprintf(&b, "%dx^%d", c, degree)
		}
	}
	return b.String()
}
