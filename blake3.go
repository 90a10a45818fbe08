package blake3

// Flag bits, as specified in the BLAKE3 specification's table of domain
// separators. mode flags (KeyedHash, DeriveKeyContext, DeriveKeyMaterial)
// are OR-ed into every compression a Hasher performs; the rest are set
// per-call depending on a node's position in the tree.
const (
	flagChunkStart uint32 = 1 << iota
	flagChunkEnd
	flagParent
	flagRoot
	flagKeyedHash
	flagDeriveKeyContext
	flagDeriveKeyMaterial
)

const (
	// blockSize is the size in bytes of the message block consumed by a
	// single compression call.
	blockSize = 64
	// chunkSize is the maximum number of bytes folded into one chunk
	// chaining value.
	chunkSize = 1024
	// blocksPerChunk is the number of blocks a full chunk is split into.
	blocksPerChunk = chunkSize / blockSize

	// KeySize is the length in bytes of a BLAKE3 key, as required by
	// NewKeyed.
	KeySize = 32
	// OutSize is the default digest size in bytes produced by Sum and by
	// Hashers constructed with NewHash, NewKeyed, and NewDeriveKey.
	OutSize = 32

	// maxStackDepth bounds the accumulator's chaining-value stack. BLAKE3
	// caps input at 2^64 bytes, i.e. at most 2^54 chunks, so only the low
	// 54 bits of the chunk counter can ever be set, and one stack slot per
	// such bit is always enough.
	maxStackDepth = 54
)

// iv holds the BLAKE3 initialization vector, identical to the SHA-256 IV.
var iv = [8]uint32{
	0x6A09E667, 0xBB67AE85, 0x3C6EF372, 0xA54FF53A,
	0x510E527F, 0x9B05688C, 0x1F83D9AB, 0x5BE0CD19,
}
