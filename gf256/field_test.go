package gf256

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestFieldSelfConsistency(t *testing.T) {
	f := QRField()
	for v := 1; v < 256; v++ {
		assert.Equal(t, byte(v), f.Exp(f.Log(byte(v))), "exp(log(%d)) != %d", v, v)
	}
	for i := 0; i < 255; i++ {
		assert.Equal(t, i, f.Log(f.Exp(i)), "log(exp(%d)) != %d", i, i)
	}
}

func TestFieldMultiplyCommutativeAndInverse(t *testing.T) {
	f := QRField()
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Byte().Draw(t, "a")
		b := rapid.Byte().Draw(t, "b")
		assert.Equal(t, f.Multiply(a, b), f.Multiply(b, a))
		if a != 0 {
			assert.Equal(t, byte(1), f.Multiply(a, f.Inverse(a)))
		}
	})
}

func TestFieldExpWrapsModulo255(t *testing.T) {
	f := QRField()
	assert.Equal(t, f.Exp(0), f.Exp(255))
	assert.Equal(t, byte(1), f.Exp(0))
	assert.Equal(t, f.Exp(1), f.Exp(1-255))
}

func TestQRAndDataMatrixFieldsDiffer(t *testing.T) {
	qr := QRField()
	dm := DataMatrixField()
	// alpha^8 is the first power reduced by the primitive polynomial, so it
	// differs between the two fields (0x1D for QR, 0x2D for Data Matrix).
	assert.NotEqual(t, qr.Exp(8), dm.Exp(8))
}

func TestNewFieldRejectsBadPrimitivePoly(t *testing.T) {
	_, err := NewField(0x0FF, 2)
	require.Error(t, err)
	var invalid *InvalidArgument
	assert.ErrorAs(t, err, &invalid)

	_, err = NewField(0x200, 2)
	require.Error(t, err)
}

func TestNewFieldRejectsNonGeneratingElement(t *testing.T) {
	// 0 and 1 never generate the full multiplicative group.
	_, err := NewField(QRPrimitivePoly, 1)
	require.Error(t, err)
}

func TestBuildMonomialNegativeDegree(t *testing.T) {
	f := QRField()
	_, err := f.BuildMonomial(-1, 1)
	require.Error(t, err)
}

func TestBuildMonomialZeroCoefficientIsZeroPoly(t *testing.T) {
	f := QRField()
	p, err := f.BuildMonomial(5, 0)
	require.NoError(t, err)
	assert.True(t, p.IsZero())
}
