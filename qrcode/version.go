package qrcode

import "errors"

// Mode indicators
const (
	ModeNumeric      = 1
	ModeAlphanumeric = 2
	ModeByte         = 4
	ModeKanji        = 8
	ModeECI          = 7
)

// ECC Levels
const (
	LevelL = 1 // 7%
	LevelM = 0 // 15%
	LevelQ = 3 // 25%
	LevelH = 2 // 30%
)

// VersionInfo Version 1-40 info
type VersionInfo struct {
	TotalCodewords int
	ECCodewords    int
	Blocks         int // Number of blocks in group 1
	// Only versions 1-4 are tabulated; selectVersion skips entries with more
	// than one block.
}

// Simplified table for Versions 1-4, Levels L/M/Q/H
// Ref: https://www.thonky.com/qr-code-tutorial/error-correction-table
var versionTable = map[int]map[int]VersionInfo{
	1: {
		LevelL: {TotalCodewords: 26, ECCodewords: 7, Blocks: 1},
		LevelM: {TotalCodewords: 26, ECCodewords: 10, Blocks: 1},
		LevelQ: {TotalCodewords: 26, ECCodewords: 13, Blocks: 1},
		LevelH: {TotalCodewords: 26, ECCodewords: 17, Blocks: 1},
	},
	2: {
		LevelL: {TotalCodewords: 44, ECCodewords: 10, Blocks: 1},
		LevelM: {TotalCodewords: 44, ECCodewords: 16, Blocks: 1},
		LevelQ: {TotalCodewords: 44, ECCodewords: 22, Blocks: 1},
		LevelH: {TotalCodewords: 44, ECCodewords: 28, Blocks: 1},
	},
	3: {
		LevelL: {TotalCodewords: 70, ECCodewords: 15, Blocks: 1},
		LevelM: {TotalCodewords: 70, ECCodewords: 26, Blocks: 1},
		LevelQ: {TotalCodewords: 70, ECCodewords: 36, Blocks: 2}, // split not implemented
		LevelH: {TotalCodewords: 70, ECCodewords: 44, Blocks: 2}, // split not implemented
	},
	4: {
		LevelL: {TotalCodewords: 100, ECCodewords: 20, Blocks: 1},
		LevelM: {TotalCodewords: 100, ECCodewords: 36, Blocks: 2}, // split not implemented
		LevelQ: {TotalCodewords: 100, ECCodewords: 52, Blocks: 2}, // split not implemented
		LevelH: {TotalCodewords: 100, ECCodewords: 64, Blocks: 4}, // split not implemented
	},
	// Add more if needed.
}

// selectVersion picks the smallest non-interleaved version (1-4) at level
// that fits data in byte mode: 4 bits mode + 8 bits count (V1-9) + 8*len.
func selectVersion(data []byte, level int) (int, VersionInfo, error) {
	for ver := 1; ver <= 4; ver++ {
		info := versionTable[ver][level]
		if info.Blocks > 1 {
			// Skip versions requiring interleaving for this simplified implementation
			continue
		}

		totalDataBits := 4 + 8 + len(data)*8
		if totalDataBits <= (info.TotalCodewords-info.ECCodewords)*8 {
			return ver, info, nil
		}
	}
	return 0, VersionInfo{}, errors.New("content too long or requires block interleaving (not implemented)")
}
