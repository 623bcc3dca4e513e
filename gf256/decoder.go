package gf256

// Decoder performs Reed-Solomon error correction over a bound Field. A
// Decoder holds no mutable state beyond the field reference, so one
// instance may be shared by any number of concurrent Decode calls.
type Decoder struct {
	field *Field
}

// NewDecoder binds a Decoder to field.
func NewDecoder(field *Field) *Decoder {
	return &Decoder{field: field}
}

// DecodeDebugInfo holds the intermediate polynomials computed by Decode:
// the syndrome, and the error-locator/error-evaluator pair (sigma, omega)
// solved from it. When the syndromes are all zero (or twoS is 0) Sigma is
// the one polynomial and Omega the zero polynomial. Zero-valued when Decode
// rejected its arguments with InvalidArgument; only Syndrome is set when the
// Euclidean step failed. Diagnostic only, via Polynomial.String() — never
// consulted on the error path.
type DecodeDebugInfo struct {
	Syndrome Polynomial
	Sigma    Polynomial
	Omega    Polynomial
}

// Decode detects and corrects errors in received in place. received is an
// ordered sequence of symbols with the last twoS entries holding parity;
// received[0] is the coefficient of the highest-degree term when the
// codeword is read as a polynomial, received[len-1] the constant term.
//
// On success it returns the number of symbols corrected (0 when the
// codeword already had zero syndromes) and leaves received either
// unchanged or fully corrected. On failure it returns a *DecodeFailure and
// leaves received untouched: all error positions and magnitudes are
// computed before any write is made. A twoS that is negative, odd or
// larger than len(received) yields *InvalidArgument instead.
func (d *Decoder) Decode(received []byte, twoS int) (int, error) {
	corrected, _, err := d.decode(received, twoS)
	return corrected, err
}

// DecodeWithDebug behaves exactly like Decode but additionally returns the
// intermediate polynomials it solved along the way, for tools that print
// them (cmd/qrtool -debug).
func (d *Decoder) DecodeWithDebug(received []byte, twoS int) (int, DecodeDebugInfo, error) {
	return d.decode(received, twoS)
}

func (d *Decoder) decode(received []byte, twoS int) (int, DecodeDebugInfo, error) {
	if twoS < 0 {
		return 0, DecodeDebugInfo{}, &InvalidArgument{Message: "twoS must be non-negative"}
	}
	if twoS > len(received) {
		return 0, DecodeDebugInfo{}, &InvalidArgument{Message: "twoS exceeds codeword length"}
	}
	if twoS%2 != 0 {
		return 0, DecodeDebugInfo{}, &InvalidArgument{Message: "twoS must be even (it names 2*s parity symbols)"}
	}

	f := d.field
	if twoS == 0 {
		return 0, DecodeDebugInfo{Syndrome: f.Zero(), Sigma: f.One(), Omega: f.Zero()}, nil
	}

	receivedPoly := NewPolynomial(f, received)

	syndromeCoefficients := make([]byte, twoS)
	noError := true
	for i := 0; i < twoS; i++ {
		evaluation := receivedPoly.EvaluateAt(f.Exp(i))
		syndromeCoefficients[twoS-1-i] = evaluation
		if evaluation != 0 {
			noError = false
		}
	}
	syndrome := NewPolynomial(f, syndromeCoefficients)
	if noError {
		return 0, DecodeDebugInfo{Syndrome: syndrome, Sigma: f.One(), Omega: f.Zero()}, nil
	}

	monomial, err := f.BuildMonomial(twoS, 1)
	if err != nil {
		return 0, DecodeDebugInfo{Syndrome: syndrome}, err
	}

	sigma, omega, err := d.runEuclideanAlgorithm(monomial, syndrome, twoS)
	if err != nil {
		return 0, DecodeDebugInfo{Syndrome: syndrome}, err
	}
	debug := DecodeDebugInfo{Syndrome: syndrome, Sigma: sigma, Omega: omega}

	errorLocations, err := d.findErrorLocations(sigma)
	if err != nil {
		return 0, debug, err
	}

	errorMagnitudes := d.findErrorMagnitudes(omega, errorLocations)

	positions := make([]int, len(errorLocations))
	for i, location := range errorLocations {
		pos := len(received) - 1 - f.Log(location)
		if pos < 0 || pos >= len(received) {
			return 0, debug, &DecodeFailure{Reason: ErrTooManyErrors}
		}
		positions[i] = pos
	}

	for i, pos := range positions {
		received[pos] = AddOrSubtract(received[pos], errorMagnitudes[i])
	}

	return len(errorLocations), debug, nil
}

// runEuclideanAlgorithm solves sigma(x)*syndrome(x) = omega(x) (mod x^R)
// with deg(omega) < deg(sigma), via the extended Euclidean algorithm
// stopped once 2*deg(r) < R. Returns the canonical (sigma, omega), scaled
// so sigma(0) == 1.
func (d *Decoder) runEuclideanAlgorithm(a, b Polynomial, r int) (sigma, omega Polynomial, err error) {
	f := d.field

	if a.Degree() < b.Degree() {
		a, b = b, a
	}

	rLast := a
	rCur := b
	tLast := f.Zero()
	tCur := f.One()

	for 2*rCur.Degree() >= r {
		rLastLast := rLast
		tLastLast := tLast
		rLast = rCur
		tLast = tCur

		if rLast.IsZero() {
			return Polynomial{}, Polynomial{}, &DecodeFailure{Reason: ErrRPrevZero}
		}

		rCur = rLastLast
		q := f.Zero()
		denominatorLeadingTerm := rLast.Coefficient(rLast.Degree())
		dltInverse := f.Inverse(denominatorLeadingTerm)

		for rCur.Degree() >= rLast.Degree() && !rCur.IsZero() {
			degreeDiff := rCur.Degree() - rLast.Degree()
			scale := f.Multiply(rCur.Coefficient(rCur.Degree()), dltInverse)

			monomial, monErr := f.BuildMonomial(degreeDiff, scale)
			if monErr != nil {
				return Polynomial{}, Polynomial{}, monErr
			}
			q = q.AddOrSubtract(monomial)

			scaled, scaleErr := rLast.MultiplyByMonomial(degreeDiff, scale)
			if scaleErr != nil {
				return Polynomial{}, Polynomial{}, scaleErr
			}
			rCur = rCur.AddOrSubtract(scaled)
		}

		tCur = q.Multiply(tLast).AddOrSubtract(tLastLast)
	}

	sigmaTildeAtZero := tCur.Coefficient(0)
	if sigmaTildeAtZero == 0 {
		return Polynomial{}, Polynomial{}, &DecodeFailure{Reason: ErrSigmaTildeZero}
	}

	inverse := f.Inverse(sigmaTildeAtZero)
	sigma = tCur.MultiplyScalar(inverse)
	omega = rCur.MultiplyScalar(inverse)
	return sigma, omega, nil
}

// findErrorLocations runs Chien search: it evaluates sigma at every
// non-zero field element in canonical order alpha^1..alpha^255 and returns
// the inverse of each root (the error locator values X_k), in that
// deterministic order.
func (d *Decoder) findErrorLocations(sigma Polynomial) ([]byte, error) {
	f := d.field
	numErrors := sigma.Degree()
	if numErrors == 1 {
		return []byte{sigma.Coefficient(1)}, nil
	}

	result := make([]byte, 0, numErrors)
	for i := 1; i < 256 && len(result) < numErrors; i++ {
		if sigma.EvaluateAt(byte(i)) == 0 {
			result = append(result, f.Inverse(byte(i)))
		}
	}
	if len(result) != numErrors {
		return nil, &DecodeFailure{Reason: ErrTooManyErrors}
	}
	return result, nil
}

// findErrorMagnitudes applies Forney's formula to compute the error value
// Y_k at each located error position X_k.
func (d *Decoder) findErrorMagnitudes(omega Polynomial, errorLocations []byte) []byte {
	f := d.field
	s := len(errorLocations)
	if s == 1 {
		return []byte{omega.Coefficient(0)}
	}

	result := make([]byte, s)
	for i := 0; i < s; i++ {
		xiInverse := f.Inverse(errorLocations[i])
		denominator := byte(1)
		for j := 0; j < s; j++ {
			if i == j {
				continue
			}
			term := f.Multiply(errorLocations[j], xiInverse)
			denominator = f.Multiply(denominator, AddOrSubtract(1, term))
		}
		result[i] = f.Multiply(omega.EvaluateAt(xiInverse), f.Inverse(denominator))
	}
	return result
}
