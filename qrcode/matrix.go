package qrcode

// addFinderPatterns draws the three 7x7 finder patterns (top-left,
// top-right, bottom-left) and marks them as function modules.
func addFinderPatterns(qr *QRCode, isFunction [][]bool) {
	add := func(r, c int) {
		for i := 0; i < 7; i++ {
			for j := 0; j < 7; j++ {
				if r+i >= qr.Size || c+j >= qr.Size || r+i < 0 || c+j < 0 {
					continue
				}
				isFunction[r+i][c+j] = true
				if i == 0 || i == 6 || j == 0 || j == 6 || (i >= 2 && i <= 4 && j >= 2 && j <= 4) {
					qr.Modules[r+i][c+j] = true
				} else {
					qr.Modules[r+i][c+j] = false
				}
			}
		}
	}

	add(0, 0)
	add(0, qr.Size-7)
	add(qr.Size-7, 0)
}

// addSeparators draws the one-module-wide white border around each finder
// pattern.
func addSeparators(qr *QRCode, isFunction [][]bool) {
	// Top Left
	for i := 0; i < 8; i++ {
		if i < qr.Size && 7 < qr.Size {
			isFunction[i][7] = true
			qr.Modules[i][7] = false
		}
		if i < qr.Size && 7 < qr.Size {
			isFunction[7][i] = true
			qr.Modules[7][i] = false
		}
	}
	// Top Right
	for i := 0; i < 8; i++ {
		if i < qr.Size && qr.Size-8 >= 0 {
			isFunction[i][qr.Size-8] = true
			qr.Modules[i][qr.Size-8] = false
		}
		if qr.Size-1-i >= 0 && 7 < qr.Size {
			isFunction[7][qr.Size-1-i] = true
			qr.Modules[7][qr.Size-1-i] = false
		}
	}
	// Bottom Left
	for i := 0; i < 8; i++ {
		if qr.Size-1-i >= 0 && 7 < qr.Size {
			isFunction[qr.Size-1-i][7] = true
			qr.Modules[qr.Size-1-i][7] = false
		}
		if i < qr.Size && qr.Size-8 >= 0 {
			isFunction[qr.Size-8][i] = true
			qr.Modules[qr.Size-8][i] = false
		}
	}
}

// addAlignmentPatterns draws the 5x5 alignment patterns required from
// version 2 up, skipping any that would overlap a finder pattern.
func addAlignmentPatterns(qr *QRCode, isFunction [][]bool, v int) {
	if v < 2 {
		return
	}

	var locs []int
	switch v {
	case 2:
		locs = []int{6, 18}
	case 3:
		locs = []int{6, 22}
	case 4:
		locs = []int{6, 26}
	}

	for _, cx := range locs {
		for _, cy := range locs {
			// Finders occupy 0..8 inclusive of separator; skip overlaps.
			if (cx < 9 && cy < 9) || (cx < 9 && cy > qr.Size-9) || (cx > qr.Size-9 && cy < 9) {
				continue
			}

			for i := -2; i <= 2; i++ {
				for j := -2; j <= 2; j++ {
					r, c := cy+i, cx+j
					if !isFunction[r][c] {
						isFunction[r][c] = true
						if i == -2 || i == 2 || j == -2 || j == 2 || (i == 0 && j == 0) {
							qr.Modules[r][c] = true
						} else {
							qr.Modules[r][c] = false
						}
					}
				}
			}
		}
	}
}

// addTimingPatterns draws the alternating-module rows/columns that run
// between the finder patterns.
func addTimingPatterns(qr *QRCode, isFunction [][]bool) {
	for i := 8; i < qr.Size-8; i++ {
		if !isFunction[6][i] {
			isFunction[6][i] = true
			qr.Modules[6][i] = i%2 == 0
		}
		if !isFunction[i][6] {
			isFunction[i][6] = true
			qr.Modules[i][6] = i%2 == 0
		}
	}
}

// addDarkModule sets the single always-dark module fixed relative to the
// bottom-left finder.
func addDarkModule(qr *QRCode, isFunction [][]bool) {
	isFunction[qr.Size-8][8] = true
	qr.Modules[qr.Size-8][8] = true
}

// reserveFormatAreas marks the format-information regions as function
// modules without writing module values (placeFormatInfo fills them in
// afterwards, once the mask pattern and ECC level are known).
func reserveFormatAreas(qr *QRCode, isFunction [][]bool) {
	// Around Top-Left Finder
	for i := 0; i < 9; i++ {
		isFunction[8][i] = true // Horizontal
		isFunction[i][8] = true // Vertical
	}
	// Below Top-Right Finder
	for i := 0; i < 8; i++ {
		isFunction[8][qr.Size-1-i] = true
	}
	// Right of Bottom-Left Finder
	for i := 0; i < 7; i++ {
		isFunction[qr.Size-1-i][8] = true
	}
}

// placeDataBits walks the matrix in the standard zig-zag column order
// (two columns at a time, bottom-to-top then top-to-bottom, skipping the
// vertical timing column) writing message bits into every non-function
// module, XORed with mask pattern 0 ((row+col)%2 == 0).
func placeDataBits(qr *QRCode, isFunction [][]bool, message []byte) {
	idx := 0
	totalBits := len(message) * 8

	getBit := func(k int) bool {
		byteIdx := k / 8
		bitIdx := 7 - (k % 8)
		return (message[byteIdx]>>bitIdx)&1 == 1
	}

	for col := qr.Size - 1; col > 0; col -= 2 {
		if col == 6 {
			col-- // Skip timing pattern
		}

		for rowIter := 0; rowIter < qr.Size; rowIter++ {
			r := rowIter
			if ((col+1)/2)%2 == 0 { // Upwards
				r = qr.Size - 1 - rowIter
			}

			for c := col; c > col-2; c-- {
				if !isFunction[r][c] {
					bit := false
					if idx < totalBits {
						bit = getBit(idx)
						idx++
					}
					// Mask pattern 0: (row + column) % 2 == 0
					if (r+c)%2 == 0 {
						bit = !bit
					}
					qr.Modules[r][c] = bit
				}
			}
		}
	}
}
