package blake3

import "encoding/binary"

// wordsToBytes unpacks n little-endian 32-bit words into a byte slice of
// length 4*len(words).
func wordsToBytes(words []uint32) []byte {
	out := make([]byte, 4*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint32(out[i*4:], w)
	}
	return out
}

// bytesToBlock packs up to 64 bytes of input into a zero-padded 16-word
// message block, little-endian per word, as BLAKE3 requires for any block
// shorter than a full 64 bytes.
func bytesToBlock(b []byte) (block [16]uint32) {
	var buf [blockSize]byte
	copy(buf[:], b)
	for i := 0; i < 16; i++ {
		block[i] = binary.LittleEndian.Uint32(buf[i*4:])
	}
	return
}

// bytesToKeyWords packs a 32-byte key into its eight little-endian words.
// Callers are responsible for checking len(b) == KeySize first.
func bytesToKeyWords(b []byte) (key [8]uint32) {
	for i := 0; i < 8; i++ {
		key[i] = binary.LittleEndian.Uint32(b[i*4:])
	}
	return
}
