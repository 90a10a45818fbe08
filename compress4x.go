package blake3

// compressChunks4 hashes four complete, contiguous chunks at once, one per
// lane, returning their four chaining values. It does the same work as
// calling chunkState.update/node four times in a row; the point of
// grouping it this way is structural, not algorithmic, since this package
// has no real SIMD backend. A platform that did add vectorized compress
// calls would slot in here, processing all four lanes' same-numbered block
// together instead of this function's lane-major loop, without changing
// Write's call site at all.
func compressChunks4(key [8]uint32, flags uint32, counterStart uint64, data []byte) [4][8]uint32 {
	var cvs [4][8]uint32
	for lane := 0; lane < 4; lane++ {
		chunk := data[lane*chunkSize : (lane+1)*chunkSize]
		cv := key
		for b := 0; b < blocksPerChunk; b++ {
			block := bytesToBlock(chunk[b*blockSize : (b+1)*blockSize])
			blockFlags := flags
			if b == 0 {
				blockFlags |= flagChunkStart
			}
			if b == blocksPerChunk-1 {
				blockFlags |= flagChunkEnd
			}
			cv = chainingValue(node{
				cv:       cv,
				block:    block,
				counter:  counterStart + uint64(lane),
				blockLen: blockSize,
				flags:    blockFlags,
			})
		}
		cvs[lane] = cv
	}
	return cvs
}
