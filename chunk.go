package blake3

// chunkState accumulates up to chunkSize bytes of input into the sixteen
// 64-byte blocks of a single chunk, compressing each block as soon as a
// later one arrives so the final block's flagChunkEnd can be set without
// ever recompressing work already done. This mirrors blake2b.Digest's
// Write: a block is only ever fed to compress once the state is certain it
// is not the chunk's last one.
type chunkState struct {
	key          [8]uint32
	chainingVal  [8]uint32
	counter      uint64
	block        [blockSize]byte
	blockLen     int
	blocksDone   int
	flags        uint32
}

func newChunkState(key [8]uint32, counter uint64, flags uint32) chunkState {
	return chunkState{key: key, chainingVal: key, counter: counter, flags: flags}
}

// len reports how many bytes of input this chunk has absorbed so far.
func (c *chunkState) len() int {
	return c.blocksDone*blockSize + c.blockLen
}

func (c *chunkState) startFlag() uint32 {
	if c.blocksDone == 0 {
		return flagChunkStart
	}
	return 0
}

// update absorbs input bytes, compressing each completed 64-byte block
// except the chunk's very last one, whose compression is deferred to
// node() so that flagChunkEnd can be set on it.
func (c *chunkState) update(input []byte) {
	for len(input) > 0 {
		if c.blockLen == blockSize {
			block := bytesToBlock(c.block[:])
			c.chainingVal = chainingValue(node{
				cv:       c.chainingVal,
				block:    block,
				counter:  c.counter,
				blockLen: blockSize,
				flags:    c.flags | c.startFlag(),
			})
			c.blocksDone++
			c.blockLen = 0
		}
		n := copy(c.block[c.blockLen:], input)
		c.blockLen += n
		input = input[n:]
	}
}

// node produces the chunk's final node: the last, possibly partial block,
// compressed with flagChunkStart (if this is the chunk's only block) and
// flagChunkEnd both set.
func (c *chunkState) node() node {
	block := bytesToBlock(c.block[:c.blockLen])
	return node{
		cv:       c.chainingVal,
		block:    block,
		counter:  c.counter,
		blockLen: uint32(c.blockLen),
		flags:    c.flags | c.startFlag() | flagChunkEnd,
	}
}
