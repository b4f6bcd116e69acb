// Package mdhash implements the SHA-1 and SHA-256 hash functions from
// 32-bit word arithmetic, plus HMAC-SHA256 on top of them.
//
// Both digests follow the Merkle-Damgard construction: a fixed register
// set is threaded through 64-byte compression blocks, the message is
// padded with a single 0x80 byte, zeros to 56 mod 64, and the bit length
// as a big-endian 64-bit integer, and the final registers are emitted
// big-endian.
//
// The Digest type supports streaming use via Write followed by Sum;
// Sum1 and Sum256 are one-shot helpers.
package mdhash
