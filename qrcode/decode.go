package qrcode

import "github.com/qrcodec/rs256/gf256"

// CorrectCodewords runs Reed-Solomon error correction against qr.Codewords
// in place, using the shared QR GF(256) field. It returns the number of
// symbols corrected. The decoder's "twoS" parameter is ECCount rounded down
// to an even number, since gf256.Decoder rejects an odd twoS: the codeword
// vanishes at alpha^0..alpha^(ECCount-1), so it also vanishes at the first
// twoS of those powers. It corrects up to ECCount/2 (rounded down) errored
// symbols.
//
// This is the realized caller the decoder core expects: it has already
// assembled one contiguous codeword block (qr.Codewords) and knows twoS.
// Locating, binarizing and bit-extracting a photographed QR symbol remain
// out of scope; this method only ever corrects a codeword this package
// itself produced via NewQRCode.
func (qr *QRCode) CorrectCodewords() (int, error) {
	decoder := gf256.NewDecoder(gf256.QRField())
	return decoder.Decode(qr.Codewords, qr.ECCount&^1)
}

// CorrectCodewordsWithDebug behaves like CorrectCodewords but additionally
// returns the decoder's intermediate syndrome/sigma/omega polynomials, for
// diagnostic printing (cmd/qrtool -debug).
func (qr *QRCode) CorrectCodewordsWithDebug() (int, gf256.DecodeDebugInfo, error) {
	decoder := gf256.NewDecoder(gf256.QRField())
	return decoder.DecodeWithDebug(qr.Codewords, qr.ECCount&^1)
}

// DataCodewords returns the codewords minus the trailing parity region.
func (qr *QRCode) DataCodewords() []byte {
	return qr.Codewords[:len(qr.Codewords)-qr.ECCount]
}
