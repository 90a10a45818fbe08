// Package blake3 implements the BLAKE3 cryptographic hash function: the
// compression function, the chunked Merkle tree that turns arbitrary input
// into a single chaining value, and the extendable-output stream that turns
// that chaining value into a digest of any length. It supports plain
// hashing, keyed MAC, and context-separated key derivation.
package blake3
