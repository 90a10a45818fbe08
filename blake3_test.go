package blake3

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// deterministicBytes returns a pseudo-random, but reproducible across runs,
// byte slice of length n, seeded from seed so that test cases using
// different seeds don't share input.
func deterministicBytes(n int, seed int64) []byte {
	r := rand.New(rand.NewSource(seed))
	b := make([]byte, n)
	r.Read(b)
	return b
}

// TestFinalizeMatchesXOFPrefix checks invariant 1: finalize(N) equals the
// first N bytes of the XOF stream, for a range of N.
func TestFinalizeMatchesXOFPrefix(t *testing.T) {
	input := deterministicBytes(4096, 1)
	h := NewHash()
	h.Write(input)

	for _, n := range []int{1, 2, 31, 32, 33, 64, 1000, 65536} {
		sum := h.Finalize(n)
		xofOut := make([]byte, n)
		_, err := h.XOF().Read(xofOut)
		require.NoError(t, err)
		require.Equal(t, xofOut, sum, "finalize(%d) must match xof prefix", n)
	}
}

// TestWriteIsAssociativeOverConcatenation checks invariant 2: splitting an
// input across any number of Write calls must not change the digest.
func TestWriteIsAssociativeOverConcatenation(t *testing.T) {
	input := deterministicBytes(10000, 2)
	whole := NewHash()
	whole.Write(input)
	want := whole.Finalize(32)

	splitPoints := [][]int{
		{0, 10000},
		{1, 10000},
		{1023, 1024, 1025, 10000},
		{3, 7, 13, 500, 4097, 9999, 10000},
		{5120, 10000},
	}
	for _, points := range splitPoints {
		h := NewHash()
		prev := 0
		for _, p := range points {
			h.Write(input[prev:p])
			prev = p
		}
		require.Equal(t, want, h.Finalize(32), "split at %v must match whole-input digest", points)
	}
}

// TestOutputReaderIsAPureStream checks invariant 3: reading N1+N2 bytes
// from one reader equals concatenating independent reads of N1 and N2
// bytes from readers seeded off the same Hasher state.
func TestOutputReaderIsAPureStream(t *testing.T) {
	input := deterministicBytes(2000, 3)
	h := NewHash()
	h.Write(input)

	n1, n2 := 97, 215
	whole := make([]byte, n1+n2)
	_, err := h.XOF().Read(whole)
	require.NoError(t, err)

	first := make([]byte, n1)
	_, err = h.XOF().Read(first)
	require.NoError(t, err)

	second := make([]byte, n2)
	r := h.XOF()
	// advance r past the first n1 bytes to align it with whole[n1:]
	discard := make([]byte, n1)
	_, err = r.Read(discard)
	require.NoError(t, err)
	_, err = r.Read(second)
	require.NoError(t, err)

	require.Equal(t, whole[:n1], first)
	require.Equal(t, whole[n1:], second)
}

// TestScalarAndBatchedPathsAgree checks invariant 5: the 4-lane batched
// compression path used by Write on wide CPUs must produce byte-identical
// digests to the plain chunk-at-a-time path, regardless of which path the
// host CPU would actually pick.
func TestScalarAndBatchedPathsAgree(t *testing.T) {
	input := deterministicBytes(4*chunkSize+500, 4)

	scalar := NewHash()
	for i := 0; i < len(input); i += 97 {
		end := i + 97
		if end > len(input) {
			end = len(input)
		}
		scalar.Write(input[i:end])
	}

	cvs := compressChunks4(iv, 0, 0, input[:4*chunkSize])
	acc := newAccumulator(iv, 0)
	for _, cv := range cvs {
		acc.push(cv)
	}
	last := newChunkState(iv, acc.chunkCount, 0)
	last.update(input[4*chunkSize:])
	root := acc.rootNode(last.node())
	batched := finalizeRoot(root, 32)

	require.Equal(t, scalar.Finalize(32), batched)
}

// TestResetRecoversInitialState checks that Reset lets a Hasher be reused
// for an unrelated message without carrying over any trace of the first.
func TestResetRecoversInitialState(t *testing.T) {
	h := NewHash()
	h.Write(deterministicBytes(5000, 5))
	h.Reset()
	h.Write([]byte("hello"))

	fresh := NewHash()
	fresh.Write([]byte("hello"))

	require.Equal(t, fresh.Finalize(32), h.Finalize(32))
}

// TestKeyedModeRequiresExactKeyLength checks NewKeyed's length validation.
func TestKeyedModeRequiresExactKeyLength(t *testing.T) {
	_, err := NewKeyed(make([]byte, 31))
	require.Equal(t, errInvalidKeyLength, err)

	_, err = NewKeyed(make([]byte, 33))
	require.Equal(t, errInvalidKeyLength, err)

	h, err := NewKeyed(make([]byte, KeySize))
	require.NoError(t, err)
	require.NotNil(t, h)
}

// TestDeriveKeyIsDeterministicPerContext checks that two Hashers derived
// from the same context string produce identical digests for identical
// input, and that different contexts diverge.
func TestDeriveKeyIsDeterministicPerContext(t *testing.T) {
	input := deterministicBytes(64, 6)

	a := NewDeriveKey("context A")
	a.Write(input)
	b := NewDeriveKey("context A")
	b.Write(input)
	require.Equal(t, a.Finalize(32), b.Finalize(32))

	c := NewDeriveKey("context B")
	c.Write(input)
	require.NotEqual(t, a.Finalize(32), c.Finalize(32))
}

// TestSumImplementsHashHash exercises Hasher through the hash.Hash
// interface it's asserted to satisfy.
func TestSumImplementsHashHash(t *testing.T) {
	h := NewHash()
	n, err := h.Write([]byte("the quick brown fox"))
	require.NoError(t, err)
	require.Equal(t, len("the quick brown fox"), n)
	require.Equal(t, 32, h.Size())
	require.Equal(t, blockSize, h.BlockSize())

	sum := h.Sum(nil)
	require.Len(t, sum, 32)

	prefixed := h.Sum([]byte("prefix:"))
	require.Equal(t, append([]byte("prefix:"), sum...), prefixed)
}
