package cipherstudio

import (
	"github.com/cipherstudio/crypto-go/internal/codec"
	"github.com/cipherstudio/crypto-go/internal/rc4"
)

// StreamEncrypt encrypts plaintext with RC4 and returns the ciphertext
// as Base64. Any non-empty key is accepted.
func StreamEncrypt(plaintext, key []byte) (string, error) {
	out, err := rc4.Crypt(plaintext, key)
	if err != nil {
		return "", &ValidationError{Field: "key", Message: "must not be empty", Err: ErrInvalidKeyLength}
	}
	return codec.ToBase64(out), nil
}

// StreamDecrypt decrypts Base64 RC4 ciphertext and returns the
// plaintext as a string. The result must be well-formed UTF-8; a wrong
// key usually surfaces here as ErrInvalidUTF8.
func StreamDecrypt(ciphertext string, key []byte) (string, error) {
	raw, err := codec.FromBase64(ciphertext)
	if err != nil {
		return "", &ValidationError{Field: "ciphertext", Message: "not valid Base64", Err: ErrInvalidCiphertext}
	}

	out, err := rc4.Crypt(raw, key)
	if err != nil {
		return "", &ValidationError{Field: "key", Message: "must not be empty", Err: ErrInvalidKeyLength}
	}
	if !codec.ValidUTF8(out) {
		return "", &CryptoError{Op: "stream decrypt", Err: ErrInvalidUTF8}
	}
	return string(out), nil
}
