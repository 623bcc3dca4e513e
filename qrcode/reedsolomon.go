package qrcode

import "github.com/qrcodec/rs256/gf256"

// generateECCodewords computes the numEC Reed-Solomon parity codewords for
// data under field, by polynomial long division of data(x)*x^numEC by the
// generator polynomial prod_{i=0}^{numEC-1} (x + alpha^i). This is the
// encoder half of Reed-Solomon (explicitly out of scope for the decoder
// core); it exists here only so this package can produce codewords for
// gf256.Decoder to correct, built from the same gf256.Field/Polynomial
// primitives the decoder uses — the same division-by-leading-term idiom
// the decoder's extended Euclidean step uses.
func generateECCodewords(data []byte, numEC int, field *gf256.Field) ([]byte, error) {
	generator := field.One()
	for i := 0; i < numEC; i++ {
		factor := gf256.NewPolynomial(field, []byte{1, field.Exp(i)})
		generator = generator.Multiply(factor)
	}

	message := make([]byte, len(data)+numEC)
	copy(message, data)
	remainder := gf256.NewPolynomial(field, message)

	for remainder.Degree() >= numEC && !remainder.IsZero() {
		degreeDiff := remainder.Degree() - numEC
		scale := remainder.Coefficient(remainder.Degree())
		scaled, err := generator.MultiplyByMonomial(degreeDiff, scale)
		if err != nil {
			return nil, err
		}
		remainder = remainder.AddOrSubtract(scaled)
	}

	ec := make([]byte, numEC)
	for i := 0; i < numEC; i++ {
		ec[i] = remainder.Coefficient(numEC - 1 - i)
	}
	return ec, nil
}
