package qrcode

import "github.com/qrcodec/rs256/gf256"

type QRCode struct {
	Version int
	Level   int
	Size    int // Dimension (21 + 4*(V-1))
	Modules [][]bool

	// Codewords is the final data+parity message this code was built from
	// (data codewords followed by ECCount parity codewords), exposed so
	// callers can exercise gf256.Decoder directly against it without
	// re-deriving the bit layout from the rendered matrix.
	Codewords []byte
	ECCount   int
}

// NewQRCode creates a matrix for the given string.
// Currently defaults to Byte Mode. Starts at V1, stepping up to V4 (this
// simplified encoder does not implement multi-block interleaving).
func NewQRCode(content string, level int) (*QRCode, error) {
	data := []byte(content)

	v, vInfo, err := selectVersion(data, level)
	if err != nil {
		return nil, err
	}

	dataCapacityBits := (vInfo.TotalCodewords - vInfo.ECCodewords) * 8
	bitBuffer := buildDataBitStream(data, dataCapacityBits)
	dataCodewords := packBits(bitBuffer.Bits)

	ecCodewords, err := generateECCodewords(dataCodewords, vInfo.ECCodewords, gf256.QRField())
	if err != nil {
		return nil, err
	}
	finalMessage := append(dataCodewords, ecCodewords...)

	qr := &QRCode{
		Version:   v,
		Level:     level,
		Size:      21 + 4*(v-1),
		Codewords: finalMessage,
		ECCount:   vInfo.ECCodewords,
	}
	qr.Modules = make([][]bool, qr.Size)
	for i := range qr.Modules {
		qr.Modules[i] = make([]bool, qr.Size)
	}

	isFunction := make([][]bool, qr.Size)
	for i := range isFunction {
		isFunction[i] = make([]bool, qr.Size)
	}

	addFinderPatterns(qr, isFunction)
	addSeparators(qr, isFunction)
	addAlignmentPatterns(qr, isFunction, v)
	addTimingPatterns(qr, isFunction)
	addDarkModule(qr, isFunction)
	reserveFormatAreas(qr, isFunction)

	// Mask pattern 0 is the only one this encoder evaluates; placeDataBits
	// applies it directly rather than scoring all eight candidates.
	const maskPattern = 0
	placeDataBits(qr, isFunction, finalMessage)
	placeFormatInfo(qr, level, maskPattern)

	return qr, nil
}
