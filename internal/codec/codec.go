// Package codec provides the byte-level encodings shared by every
// cipher engine: standard Base64, lowercase hex, and UTF-8 validation.
package codec

import (
	"encoding/base64"
	"encoding/hex"
	"unicode/utf8"
)

// ToBase64 encodes bytes to standard base64 with padding.
func ToBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// FromBase64 decodes standard base64 (with padding) to bytes.
func FromBase64(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}

// ToHex encodes bytes to lowercase hexadecimal.
func ToHex(data []byte) string {
	return hex.EncodeToString(data)
}

// FromHex decodes a hexadecimal string to bytes.
func FromHex(s string) ([]byte, error) {
	return hex.DecodeString(s)
}

// ValidUTF8 reports whether data is a well-formed UTF-8 byte sequence.
func ValidUTF8(data []byte) bool {
	return utf8.Valid(data)
}
