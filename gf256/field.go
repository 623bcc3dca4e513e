// Package gf256 implements arithmetic over the Galois Field GF(256) and the
// Reed-Solomon decoding pipeline built on top of it: syndrome computation,
// the extended Euclidean key-equation solver, Chien search and Forney's
// formula.
package gf256

import "fmt"

// QRPrimitivePoly is the primitive polynomial x^8+x^4+x^3+x^2+1 used by QR
// Code (ISO/IEC 18004).
const QRPrimitivePoly = 0x011D

// DataMatrixPrimitivePoly is the primitive polynomial used by Data Matrix
// (ISO/IEC 16022). Same degree-8 field size, different reduction polynomial.
const DataMatrixPrimitivePoly = 0x012D

// fieldSize is the number of non-zero elements in GF(256): 2^8 - 1.
const fieldSize = 255

// Field is a precomputed instance of GF(256) for a specific primitive
// polynomial and generator. It is built once and is safe to share across
// any number of concurrent decodes: every field access below is a plain
// array read.
type Field struct {
	exp [2 * fieldSize]byte // exp[i] = generator^i, doubled so lookups never wrap
	log [256]byte           // log[v] = i such that generator^i = v; log[0] is unused
}

var qrField *Field
var dataMatrixField *Field

func init() {
	var err error
	qrField, err = NewField(QRPrimitivePoly, 2)
	if err != nil {
		panic(err)
	}
	dataMatrixField, err = NewField(DataMatrixPrimitivePoly, 2)
	if err != nil {
		panic(err)
	}
}

// QRField returns the shared GF(256) field instance used by QR Code.
func QRField() *Field { return qrField }

// DataMatrixField returns the shared GF(256) field instance used by Data
// Matrix.
func DataMatrixField() *Field { return dataMatrixField }

// NewField constructs GF(256) for the given 9-bit primitive polynomial and
// generator element. It fails with InvalidArgument if primitivePoly is not
// a valid degree-8 reduction polynomial (bit 8 must be set, and the
// resulting multiplicative group generated by `generator` must cycle
// through all 255 non-zero elements).
func NewField(primitivePoly, generator int) (*Field, error) {
	if primitivePoly < 0x100 || primitivePoly >= 0x200 {
		return nil, &InvalidArgument{Message: fmt.Sprintf("primitive polynomial %#x must be a 9-bit value with bit 8 set", primitivePoly)}
	}
	if generator <= 0 || generator >= 256 {
		return nil, &InvalidArgument{Message: fmt.Sprintf("generator %d out of range [1,255]", generator)}
	}

	var f Field
	x := 1
	for i := 0; i < fieldSize; i++ {
		if x == 1 && i != 0 {
			return nil, &InvalidArgument{Message: fmt.Sprintf("generator %d does not cycle through all elements of polynomial %#x", generator, primitivePoly)}
		}
		f.exp[i] = byte(x)
		f.exp[i+fieldSize] = byte(x)
		f.log[x] = byte(i)
		x = gfMulRaw(x, generator, primitivePoly)
	}

	for v := 1; v < 256; v++ {
		if f.exp[f.log[v]] != byte(v) {
			return nil, &InvalidArgument{Message: "field table self-check failed: exp(log(v)) != v"}
		}
	}

	return &f, nil
}

// gfMulRaw multiplies two field elements (as plain ints, not yet reduced to
// table lookups) modulo the given primitive polynomial. Used only during
// table construction, before exp/log exist.
func gfMulRaw(x, y, poly int) int {
	z := 0
	for y > 0 {
		if y&1 != 0 {
			z ^= x
		}
		y >>= 1
		x <<= 1
		if x&0x100 != 0 {
			x ^= poly
		}
	}
	return z
}

// Exp returns generator^i. Negative i and i outside [0,254] are reduced
// modulo 255, matching the cyclic nature of the multiplicative group
// (exp(0) == exp(255) == 1).
func (f *Field) Exp(i int) byte {
	i %= fieldSize
	if i < 0 {
		i += fieldSize
	}
	return f.exp[i]
}

// Log returns the discrete log of v: the unique i in [0,254] with
// generator^i == v. Passing 0 is a programming error and the result is
// undefined (log[0] is never written).
func (f *Field) Log(v byte) int {
	return int(f.log[v])
}

// Inverse returns the multiplicative inverse of v. Passing 0 is a
// programming error.
func (f *Field) Inverse(v byte) byte {
	return f.exp[fieldSize-int(f.log[v])]
}

// Multiply returns a*b in GF(256).
func (f *Field) Multiply(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return f.exp[int(f.log[a])+int(f.log[b])]
}

// AddOrSubtract returns a+b (equivalently a-b, characteristic 2).
func AddOrSubtract(a, b byte) byte {
	return a ^ b
}

// Zero returns the additive identity polynomial over f.
func (f *Field) Zero() Polynomial {
	return Polynomial{field: f, coefficients: []byte{0}}
}

// One returns the multiplicative identity polynomial over f.
func (f *Field) One() Polynomial {
	return Polynomial{field: f, coefficients: []byte{1}}
}

// BuildMonomial returns coefficient*x^degree. If coefficient is 0 the
// result is the zero polynomial regardless of degree. Fails with
// InvalidArgument if degree is negative.
func (f *Field) BuildMonomial(degree int, coefficient byte) (Polynomial, error) {
	if degree < 0 {
		return Polynomial{}, &InvalidArgument{Message: "monomial degree must be non-negative"}
	}
	if coefficient == 0 {
		return f.Zero(), nil
	}
	coefficients := make([]byte, degree+1)
	coefficients[0] = coefficient
	return newPolynomial(f, coefficients), nil
}
