package gf256

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func rapidCoefficients(t *rapid.T, label string) []byte {
	n := rapid.IntRange(1, 12).Draw(t, label+"_len")
	coeffs := make([]byte, n)
	for i := range coeffs {
		coeffs[i] = rapid.Byte().Draw(t, label)
	}
	return coeffs
}

// naiveEvaluate cross-checks Horner evaluation against a direct
// sum-of-powers computation.
func naiveEvaluate(f *Field, p Polynomial, x byte) byte {
	var result byte
	power := byte(1)
	for i := 0; i <= p.Degree(); i++ {
		result = AddOrSubtract(result, f.Multiply(p.Coefficient(i), power))
		if x == 0 {
			power = 0
		} else {
			power = f.Multiply(power, x)
		}
	}
	return result
}

func TestEvaluateAtMatchesNaive(t *testing.T) {
	f := QRField()
	rapid.Check(t, func(t *rapid.T) {
		coeffs := rapidCoefficients(t, "coeffs")
		p := NewPolynomial(f, coeffs)
		x := rapid.Byte().Draw(t, "x")
		assert.Equal(t, naiveEvaluate(f, p, x), p.EvaluateAt(x))
	})
}

func TestEvaluateAtZeroIsConstantTerm(t *testing.T) {
	f := QRField()
	p := NewPolynomial(f, []byte{3, 7, 9})
	assert.Equal(t, byte(9), p.EvaluateAt(0))
}

func TestEvaluateAtOneIsXorOfCoefficients(t *testing.T) {
	f := QRField()
	p := NewPolynomial(f, []byte{3, 7, 9})
	assert.Equal(t, byte(3^7^9), p.EvaluateAt(1))
}

func TestAddOrSubtractInvolution(t *testing.T) {
	f := QRField()
	rapid.Check(t, func(t *rapid.T) {
		coeffs := rapidCoefficients(t, "coeffs")
		p := NewPolynomial(f, coeffs)
		assert.True(t, p.AddOrSubtract(p).IsZero())
	})
}

func TestMultiplyIdentityAndZero(t *testing.T) {
	f := QRField()
	rapid.Check(t, func(t *rapid.T) {
		coeffs := rapidCoefficients(t, "coeffs")
		p := NewPolynomial(f, coeffs)
		assert.Equal(t, p.coefficients, p.Multiply(f.One()).coefficients)
		assert.True(t, p.Multiply(f.Zero()).IsZero())
	})
}

func TestDistributivitySpotCheck(t *testing.T) {
	f := QRField()
	rapid.Check(t, func(t *rapid.T) {
		p := NewPolynomial(f, rapidCoefficients(t, "p"))
		q := NewPolynomial(f, rapidCoefficients(t, "q"))
		r := NewPolynomial(f, rapidCoefficients(t, "r"))

		left := p.AddOrSubtract(q).Multiply(r)
		right := p.Multiply(r).AddOrSubtract(q.Multiply(r))
		assert.Equal(t, left.coefficients, right.coefficients)
	})
}

func TestDegreeAndNormalization(t *testing.T) {
	f := QRField()
	p := NewPolynomial(f, []byte{0, 0, 5, 3})
	assert.Equal(t, 1, p.Degree())
	assert.Equal(t, byte(5), p.Coefficient(1))
	assert.Equal(t, byte(3), p.Coefficient(0))
	assert.Equal(t, byte(0), p.Coefficient(99))
}

func TestZeroPolynomialDegreeIsZero(t *testing.T) {
	f := QRField()
	assert.True(t, f.Zero().IsZero())
	assert.Equal(t, 0, f.Zero().Degree())
}

func TestMultiplyByMonomialNegativeDegree(t *testing.T) {
	f := QRField()
	p := NewPolynomial(f, []byte{1, 2})
	_, err := p.MultiplyByMonomial(-1, 1)
	require.Error(t, err)
}

func TestMultiplyByMonomial(t *testing.T) {
	f := QRField()
	p := NewPolynomial(f, []byte{1, 2}) // x + 2
	got, err := p.MultiplyByMonomial(2, 3)
	require.NoError(t, err)
	// 3*(x+2)*x^2 = 3x^3 + 6x^2
	want := NewPolynomial(f, []byte{3, f.Multiply(2, 3), 0, 0})
	assert.Equal(t, want.coefficients, got.coefficients)
}

func TestPolynomialStringRendersNonZeroTerms(t *testing.T) {
	f := QRField()
	p := NewPolynomial(f, []byte{3, 0, 1})
	assert.Equal(t, "3x^2 + 1", p.String())
	assert.Equal(t, "0", f.Zero().String())
}
