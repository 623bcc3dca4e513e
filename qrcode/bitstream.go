package qrcode

// BitBuffer accumulates individual bits in MSB-first Put order, the way the
// QR data-encoding region is built up before being sliced into codewords.
type BitBuffer struct {
	Bits []bool
}

func NewBitBuffer() *BitBuffer {
	return &BitBuffer{Bits: []bool{}}
}

func (b *BitBuffer) Put(num, length int) {
	for i := 0; i < length; i++ {
		b.Bits = append(b.Bits, ((num>>(length-1-i))&1) == 1)
	}
}

func (b *BitBuffer) Len() int {
	return len(b.Bits)
}

// buildDataBitStream encodes data in byte mode (mode indicator, count,
// content), terminates and byte-aligns it, then pads to dataCapacityBits
// with the standard 0xEC/0x11 alternating pad codewords.
func buildDataBitStream(data []byte, dataCapacityBits int) *BitBuffer {
	bitBuffer := NewBitBuffer()
	bitBuffer.Put(ModeByte, 4)
	bitBuffer.Put(len(data), 8) // 8 bits for count in V1-V9
	for _, b := range data {
		bitBuffer.Put(int(b), 8)
	}

	// Terminator (up to 4 zeros)
	if bitBuffer.Len() < dataCapacityBits {
		term := 4
		if bitBuffer.Len()+term > dataCapacityBits {
			term = dataCapacityBits - bitBuffer.Len()
		}
		bitBuffer.Put(0, term)
	}

	// Byte alignment
	if bitBuffer.Len()%8 != 0 {
		bitBuffer.Put(0, 8-(bitBuffer.Len()%8))
	}

	// Pad bytes
	padBytes := []int{0xEC, 0x11}
	padIdx := 0
	for bitBuffer.Len() < dataCapacityBits {
		bitBuffer.Put(padBytes[padIdx], 8)
		padIdx = (padIdx + 1) % 2
	}

	return bitBuffer
}

// packBits converts a Put-order bit slice into MSB-first bytes, padding the
// final byte with trailing false bits (never exercised in practice since
// buildDataBitStream always emits a byte-aligned stream).
func packBits(bits []bool) []byte {
	packed := make([]byte, 0, (len(bits)+7)/8)
	for i := 0; i < len(bits); i += 8 {
		var val byte
		for j := 0; j < 8; j++ {
			if i+j < len(bits) && bits[i+j] {
				val |= 1 << (7 - j)
			}
		}
		packed = append(packed, val)
	}
	return packed
}
