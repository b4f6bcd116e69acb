package cipherstudio

import (
	"github.com/cipherstudio/crypto-go/internal/codec"
	"github.com/cipherstudio/crypto-go/internal/mdhash"
)

// SHA1Hex returns the SHA-1 digest of message as lowercase hex.
func SHA1Hex(message []byte) string {
	sum := mdhash.Sum1(message)
	return codec.ToHex(sum[:])
}

// SHA256Hex returns the SHA-256 digest of message as lowercase hex.
func SHA256Hex(message []byte) string {
	sum := mdhash.Sum256(message)
	return codec.ToHex(sum[:])
}

// HMACSHA256Hex returns the HMAC-SHA256 tag of message under key as
// lowercase hex.
func HMACSHA256Hex(message, key []byte) string {
	sum := mdhash.HMACSHA256(message, key)
	return codec.ToHex(sum[:])
}
