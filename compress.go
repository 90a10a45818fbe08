package blake3

import "math/bits"

// node bundles the inputs to a single compression call: the chaining value
// it starts from, its 16-word message block, the counter and block length
// that vary with position in the tree, and the flag bits selecting domain
// separation. It is the unit passed between chunkState, accumulator, and
// OutputReader.
type node struct {
	cv       [8]uint32
	block    [16]uint32
	counter  uint64
	blockLen uint32
	flags    uint32
}

// parentNode builds the transient node formed by concatenating two child
// chaining values. Its counter is always zero and its block is always full,
// per the BLAKE3 specification's treatment of parent nodes.
func parentNode(left, right [8]uint32, key [8]uint32, flags uint32) node {
	var block [16]uint32
	copy(block[:8], left[:])
	copy(block[8:], right[:])
	return node{
		cv:       key,
		block:    block,
		counter:  0,
		blockLen: blockSize,
		flags:    flags | flagParent,
	}
}

// chainingValue reduces a node's full 16-word compression output to the
// 8-word chaining value consumed by later compressions.
func chainingValue(n node) (cv [8]uint32) {
	out := compress(n.cv, n.block, n.counter, n.blockLen, n.flags)
	copy(cv[:], out[:8])
	return
}

// compress is the BLAKE3 compression function: a fixed seven-round keyed
// permutation over a 16-word state. The 16 live words are kept as local
// variables rather than a backing array, so that a reasonable compiler can
// hold the whole round in registers; this is the same tradeoff the
// reference blake2b compression makes, just without the need to precompute
// index offsets by hand, because BLAKE3's message schedule is unrolled
// directly below instead of looked up from a permutation table per round.
//
// The round-by-round message word assignments below are the schedule
// derived by applying the permutation sigma = [2,6,3,10,7,0,4,13,1,11,12,
// 5,9,14,15,8] to the previous round's order, starting from the identity
// order in round 1.
func compress(cv [8]uint32, block [16]uint32, counter uint64, blockLen uint32, flags uint32) [16]uint32 {
	v0, v1, v2, v3 := cv[0], cv[1], cv[2], cv[3]
	v4, v5, v6, v7 := cv[4], cv[5], cv[6], cv[7]
	v8, v9, v10, v11 := iv[0], iv[1], iv[2], iv[3]
	v12 := uint32(counter)
	v13 := uint32(counter >> 32)
	v14 := blockLen
	v15 := flags

	// round 1
	v0, v4, v8, v12 = g(v0, v4, v8, v12, block[0], block[1])
	v1, v5, v9, v13 = g(v1, v5, v9, v13, block[2], block[3])
	v2, v6, v10, v14 = g(v2, v6, v10, v14, block[4], block[5])
	v3, v7, v11, v15 = g(v3, v7, v11, v15, block[6], block[7])
	v0, v5, v10, v15 = g(v0, v5, v10, v15, block[8], block[9])
	v1, v6, v11, v12 = g(v1, v6, v11, v12, block[10], block[11])
	v2, v7, v8, v13 = g(v2, v7, v8, v13, block[12], block[13])
	v3, v4, v9, v14 = g(v3, v4, v9, v14, block[14], block[15])

	// round 2
	v0, v4, v8, v12 = g(v0, v4, v8, v12, block[2], block[6])
	v1, v5, v9, v13 = g(v1, v5, v9, v13, block[3], block[10])
	v2, v6, v10, v14 = g(v2, v6, v10, v14, block[7], block[0])
	v3, v7, v11, v15 = g(v3, v7, v11, v15, block[4], block[13])
	v0, v5, v10, v15 = g(v0, v5, v10, v15, block[1], block[11])
	v1, v6, v11, v12 = g(v1, v6, v11, v12, block[12], block[5])
	v2, v7, v8, v13 = g(v2, v7, v8, v13, block[9], block[14])
	v3, v4, v9, v14 = g(v3, v4, v9, v14, block[15], block[8])

	// round 3
	v0, v4, v8, v12 = g(v0, v4, v8, v12, block[3], block[4])
	v1, v5, v9, v13 = g(v1, v5, v9, v13, block[10], block[12])
	v2, v6, v10, v14 = g(v2, v6, v10, v14, block[13], block[2])
	v3, v7, v11, v15 = g(v3, v7, v11, v15, block[7], block[14])
	v0, v5, v10, v15 = g(v0, v5, v10, v15, block[6], block[5])
	v1, v6, v11, v12 = g(v1, v6, v11, v12, block[9], block[0])
	v2, v7, v8, v13 = g(v2, v7, v8, v13, block[11], block[15])
	v3, v4, v9, v14 = g(v3, v4, v9, v14, block[8], block[1])

	// round 4
	v0, v4, v8, v12 = g(v0, v4, v8, v12, block[10], block[7])
	v1, v5, v9, v13 = g(v1, v5, v9, v13, block[12], block[9])
	v2, v6, v10, v14 = g(v2, v6, v10, v14, block[14], block[3])
	v3, v7, v11, v15 = g(v3, v7, v11, v15, block[13], block[15])
	v0, v5, v10, v15 = g(v0, v5, v10, v15, block[4], block[0])
	v1, v6, v11, v12 = g(v1, v6, v11, v12, block[11], block[2])
	v2, v7, v8, v13 = g(v2, v7, v8, v13, block[5], block[8])
	v3, v4, v9, v14 = g(v3, v4, v9, v14, block[1], block[6])

	// round 5
	v0, v4, v8, v12 = g(v0, v4, v8, v12, block[12], block[13])
	v1, v5, v9, v13 = g(v1, v5, v9, v13, block[9], block[11])
	v2, v6, v10, v14 = g(v2, v6, v10, v14, block[15], block[10])
	v3, v7, v11, v15 = g(v3, v7, v11, v15, block[14], block[8])
	v0, v5, v10, v15 = g(v0, v5, v10, v15, block[7], block[2])
	v1, v6, v11, v12 = g(v1, v6, v11, v12, block[5], block[3])
	v2, v7, v8, v13 = g(v2, v7, v8, v13, block[0], block[1])
	v3, v4, v9, v14 = g(v3, v4, v9, v14, block[6], block[4])

	// round 6
	v0, v4, v8, v12 = g(v0, v4, v8, v12, block[9], block[14])
	v1, v5, v9, v13 = g(v1, v5, v9, v13, block[11], block[5])
	v2, v6, v10, v14 = g(v2, v6, v10, v14, block[8], block[12])
	v3, v7, v11, v15 = g(v3, v7, v11, v15, block[15], block[1])
	v0, v5, v10, v15 = g(v0, v5, v10, v15, block[13], block[3])
	v1, v6, v11, v12 = g(v1, v6, v11, v12, block[0], block[10])
	v2, v7, v8, v13 = g(v2, v7, v8, v13, block[2], block[6])
	v3, v4, v9, v14 = g(v3, v4, v9, v14, block[4], block[7])

	// round 7
	v0, v4, v8, v12 = g(v0, v4, v8, v12, block[11], block[15])
	v1, v5, v9, v13 = g(v1, v5, v9, v13, block[5], block[0])
	v2, v6, v10, v14 = g(v2, v6, v10, v14, block[1], block[9])
	v3, v7, v11, v15 = g(v3, v7, v11, v15, block[8], block[6])
	v0, v5, v10, v15 = g(v0, v5, v10, v15, block[14], block[10])
	v1, v6, v11, v12 = g(v1, v6, v11, v12, block[2], block[12])
	v2, v7, v8, v13 = g(v2, v7, v8, v13, block[3], block[4])
	v3, v4, v9, v14 = g(v3, v4, v9, v14, block[7], block[13])

	return [16]uint32{
		v0 ^ v8, v1 ^ v9, v2 ^ v10, v3 ^ v11,
		v4 ^ v12, v5 ^ v13, v6 ^ v14, v7 ^ v15,
		v8 ^ cv[0], v9 ^ cv[1], v10 ^ cv[2], v11 ^ cv[3],
		v12 ^ cv[4], v13 ^ cv[5], v14 ^ cv[6], v15 ^ cv[7],
	}
}

// g is the BLAKE3 mixing function, applied eight times per round: four
// times over the state's columns, then four times over its diagonals.
func g(a, b, c, d, mx, my uint32) (uint32, uint32, uint32, uint32) {
	a = a + b + mx
	d = bits.RotateLeft32(d^a, -16)
	c = c + d
	b = bits.RotateLeft32(b^c, -12)
	a = a + b + my
	d = bits.RotateLeft32(d^a, -8)
	c = c + d
	b = bits.RotateLeft32(b^c, -7)
	return a, b, c, d
}
