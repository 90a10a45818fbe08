package blake3

import (
	"errors"
	"hash"
)

var _ hash.Hash = (*Hasher)(nil)

// errInvalidKeyLength is returned by NewKeyed when the supplied key is not
// exactly KeySize bytes long.
var errInvalidKeyLength = errors.New("blake3: key must be 32 bytes")

// Hasher incrementally computes a BLAKE3 digest. The zero value is not
// usable; construct one with NewHash, NewKeyed, or NewDeriveKey. A Hasher
// implements hash.Hash, so it can be used anywhere the standard library
// expects an incremental checksum, but its digest is not fixed at 32 bytes:
// callers who need a longer or streamed output should use XOF instead of
// Sum.
type Hasher struct {
	key   [8]uint32
	flags uint32
	chunk chunkState
	stack accumulator
}

func newHasher(key [8]uint32, flags uint32) *Hasher {
	h := &Hasher{key: key, flags: flags}
	h.Reset()
	return h
}

// NewHash returns a Hasher in plain hashing mode.
func NewHash() *Hasher {
	return newHasher(iv, 0)
}

// NewKeyed returns a Hasher in keyed MAC mode. key must be exactly KeySize
// (32) bytes.
func NewKeyed(key []byte) (*Hasher, error) {
	if len(key) != KeySize {
		return nil, errInvalidKeyLength
	}
	return newHasher(bytesToKeyWords(key), flagKeyedHash), nil
}

// NewDeriveKey returns a Hasher in key derivation mode for the given
// application-specific context string. The context is hashed once, up
// front, under flagDeriveKeyContext to produce a 32-byte context key; the
// returned Hasher then absorbs key material under flagDeriveKeyMaterial
// using that context key in place of the IV. Two calls with the same
// context string always derive from the same context key; the context
// string is meant to be a hardcoded, globally unique identifier for its
// use case, not a secret.
func NewDeriveKey(context string) *Hasher {
	contextHasher := newHasher(iv, flagDeriveKeyContext)
	contextHasher.Write([]byte(context))
	contextKey := contextHasher.Finalize(KeySize)
	return newHasher(bytesToKeyWords(contextKey), flagDeriveKeyMaterial)
}

// Write absorbs p into the hash state. It never returns an error and its
// returned count is always len(p), per hash.Hash's contract.
func (h *Hasher) Write(p []byte) (int, error) {
	total := len(p)
	for len(p) > 0 {
		if h.chunk.len() == chunkSize {
			h.stack.push(chainingValue(h.chunk.node()))
			h.chunk = newChunkState(h.key, h.stack.chunkCount, h.flags)
		}

		// On a chunk boundary with more than four whole chunks of input
		// left, and a CPU wide enough to make the bookkeeping worth it,
		// fold four chunks at a time instead of one. The strict
		// inequality matters: if len(p) == 4*chunkSize exactly, the
		// fourth chunk might be the message's last, and the last chunk
		// must stay unpushed in h.chunk until Finalize knows whether more
		// input is still coming.
		if h.chunk.len() == 0 && wideLanesAvailable && len(p) > 4*chunkSize {
			cvs := compressChunks4(h.key, h.flags, h.stack.chunkCount, p[:4*chunkSize])
			for _, cv := range cvs {
				h.stack.push(cv)
			}
			h.chunk = newChunkState(h.key, h.stack.chunkCount, h.flags)
			p = p[4*chunkSize:]
			continue
		}

		take := chunkSize - h.chunk.len()
		if take > len(p) {
			take = len(p)
		}
		h.chunk.update(p[:take])
		p = p[take:]
	}
	return total, nil
}

// Reset returns the Hasher to the state it had right after construction,
// preserving its key and mode so it can be reused for a new message. This
// departs from blake2b.Digest.Reset, which panics: BLAKE3's key words are
// retained for the Hasher's lifetime rather than consumed into a
// discarded prefix block, so there is nothing Reset would need to recover
// that construction didn't already keep.
func (h *Hasher) Reset() {
	h.chunk = newChunkState(h.key, 0, h.flags)
	h.stack = newAccumulator(h.key, h.flags)
}

// rootNode folds the current chunk and any completed subtrees into the
// root node of the whole message, without mutating the Hasher, so that Sum
// and XOF can both be called on a Hasher that is still being written to.
func (h *Hasher) rootNode() node {
	return h.stack.rootNode(h.chunk.node())
}

// Sum appends the standard 32-byte BLAKE3 digest of the bytes written so
// far to b and returns the extended slice, as hash.Hash requires.
func (h *Hasher) Sum(b []byte) []byte {
	return append(b, h.Finalize(OutSize)...)
}

// Finalize returns the first outLen bytes of output for the bytes written
// so far. It does not consume or otherwise disturb the Hasher's state.
func (h *Hasher) Finalize(outLen int) []byte {
	return finalizeRoot(h.rootNode(), outLen)
}

// FinalizeTo writes outLen bytes of output into out, which must be at
// least that long.
func (h *Hasher) FinalizeTo(out []byte, outLen int) error {
	return finalizeRootTo(h.rootNode(), out, outLen)
}

// XOF returns an OutputReader positioned at the start of the extendable
// output for the bytes written so far. The returned reader is independent
// of the Hasher: further writes to h do not affect bytes already read from
// it, nor does reading from it affect h.
func (h *Hasher) XOF() *OutputReader {
	return &OutputReader{root: h.rootNode()}
}

// Size returns the length in bytes of the digest produced by Sum.
func (h *Hasher) Size() int {
	return OutSize
}

// BlockSize returns the block size, in bytes, that Write processes input
// in multiples of most efficiently. BLAKE3 has no alignment requirement on
// Write, so this is purely advisory.
func (h *Hasher) BlockSize() int {
	return blockSize
}
