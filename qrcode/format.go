package qrcode

// calculateBCHFormat computes the 15-bit format-information codeword (5
// data bits: 2 ECC level + 3 mask pattern) via BCH(15,5) encoding, masked
// with the fixed pattern 101010000010010 per ISO/IEC 18004.
func calculateBCHFormat(data int) int {
	d := data << 10
	// Generator 10100110111 (0x537)
	g := 0x537

	for i := 4; i >= 0; i-- {
		if (d>>(i+10))&1 == 1 {
			d ^= g << i
		}
	}

	// Mask string 101010000010010 (0x5412)
	return ((data << 10) | d) ^ 0x5412
}

// formatDataBits maps an ECC level to the 2-bit field BCH format encoding
// expects: L=01, M=00, Q=11, H=10.
func formatDataBits(level int) int {
	switch level {
	case LevelL:
		return 1
	case LevelM:
		return 0
	case LevelQ:
		return 3
	case LevelH:
		return 2
	default:
		return 0
	}
}

// placeFormatInfo writes the 15-bit BCH format codeword for level and
// maskPattern into both copies of the format-information area around the
// top-left finder, plus the single dark module.
//
// Bit 0 is LSB, bit 14 MSB. Standard placement (top-left run):
// (8,0)=14 (8,1)=13 (8,2)=12 (8,3)=11 (8,4)=10 (8,5)=9 (8,7)=8 (skip 6)
// (8,8)=7 (7,8)=6 (5,8)=5 (4,8)=4 (3,8)=3 (2,8)=2 (1,8)=1 (0,8)=0.
// The second copy runs (8,Size-1)=0 .. (8,Size-8)=7, (Size-7,8)=8 ..
// (Size-1,8)=14.
func placeFormatInfo(qr *QRCode, level, maskPattern int) {
	formatData := (formatDataBits(level) << 3) | maskPattern
	formatPoly := calculateBCHFormat(formatData)

	// Top-left run, bit index -> (row, col). Index 6 skips the timing
	// module at (6,8); index 8 skips the timing module at (8,6).
	topLeft := [15][2]int{
		{0, 8}, {1, 8}, {2, 8}, {3, 8}, {4, 8}, {5, 8}, {7, 8}, {8, 8},
		{8, 7}, {8, 5}, {8, 4}, {8, 3}, {8, 2}, {8, 1}, {8, 0},
	}

	for i := 0; i < 15; i++ {
		bit := (formatPoly>>i)&1 == 1

		qr.Modules[topLeft[i][0]][topLeft[i][1]] = bit

		// Copies. Bits 0-7: (8, Size-1) -> bit 0 ... (8, Size-8) -> bit 7.
		// Bits 8-14: (Size-7, 8) -> bit 8 ... (Size-1, 8) -> bit 14.
		if i < 8 {
			qr.Modules[8][qr.Size-1-i] = bit
		} else {
			qr.Modules[qr.Size-7+(i-8)][8] = bit
		}
	}
	// Dark module fixed at [Size-8][8] is set by addDarkModule.
}
