package cipherstudio

import "github.com/cipherstudio/crypto-go/internal/classical"

// MonoEncrypt applies a monoalphabetic substitution derived from key:
// the key's distinct letters lead the cipher alphabet and the unused
// letters follow in order. Case is preserved; non-letters pass through.
func MonoEncrypt(text, key string) (string, error) {
	out, err := classical.MonoEncrypt(text, key)
	return out, wrapClassicalError(err)
}

// MonoDecrypt reverses MonoEncrypt under the same key.
func MonoDecrypt(text, key string) (string, error) {
	out, err := classical.MonoDecrypt(text, key)
	return out, wrapClassicalError(err)
}

// HillEncrypt applies the 3x3 Hill cipher. The key must be exactly nine
// letters forming a matrix invertible modulo 26; the text is uppercased,
// stripped of non-letters, and padded with X to a multiple of three.
func HillEncrypt(text, key string) (string, error) {
	out, err := classical.HillEncrypt(text, key)
	return out, wrapClassicalError(err)
}

// HillDecrypt reverses HillEncrypt. Padding added during encryption is
// not stripped.
func HillDecrypt(text, key string) (string, error) {
	out, err := classical.HillDecrypt(text, key)
	return out, wrapClassicalError(err)
}

// ColumnarEncrypt applies a columnar transposition keyed by the
// alphabetical order of the key's distinct characters. The text is
// padded with x to fill the final row.
func ColumnarEncrypt(text, key string) (string, error) {
	out, err := classical.ColumnarEncrypt(text, key)
	return out, wrapClassicalError(err)
}

// ColumnarDecrypt reverses ColumnarEncrypt. The ciphertext length must
// be a multiple of the column count.
func ColumnarDecrypt(text, key string) (string, error) {
	out, err := classical.ColumnarDecrypt(text, key)
	return out, wrapClassicalError(err)
}
