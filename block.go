package cipherstudio

import (
	"github.com/cipherstudio/crypto-go/internal/aes"
	"github.com/cipherstudio/crypto-go/internal/codec"
)

// BlockMode selects the AES mode of operation.
type BlockMode string

const (
	// ModeCBC chains blocks through the cipher with PKCS#7 padding.
	ModeCBC BlockMode = "cbc"
	// ModeCTR XORs with an encrypted big-endian counter stream.
	ModeCTR BlockMode = "ctr"
	// ModeOFB XORs with the iterated encryption of the IV.
	ModeOFB BlockMode = "ofb"
)

// BlockEncrypt encrypts plaintext with AES under the given mode and
// returns the ciphertext as Base64. The key selects AES-128/192/256 by
// its length (16, 24, or 32 bytes); the IV must be 16 bytes.
func BlockEncrypt(plaintext, key, iv []byte, mode BlockMode) (string, error) {
	var out []byte
	var err error
	switch mode {
	case ModeCBC:
		out, err = aes.EncryptCBC(plaintext, key, iv)
	case ModeCTR:
		out, err = aes.CryptCTR(plaintext, key, iv)
	case ModeOFB:
		out, err = aes.CryptOFB(plaintext, key, iv)
	default:
		return "", &UnsupportedError{Mode: string(mode)}
	}
	if err != nil {
		return "", wrapBlockError(err)
	}
	return codec.ToBase64(out), nil
}

// BlockDecrypt reverses BlockEncrypt. CBC strictly validates the PKCS#7
// padding; CTR and OFB accept any ciphertext length.
func BlockDecrypt(ciphertext string, key, iv []byte, mode BlockMode) ([]byte, error) {
	raw, err := codec.FromBase64(ciphertext)
	if err != nil {
		return nil, &ValidationError{Field: "ciphertext", Message: "not valid Base64", Err: ErrInvalidCiphertext}
	}

	var out []byte
	switch mode {
	case ModeCBC:
		out, err = aes.DecryptCBC(raw, key, iv)
	case ModeCTR:
		out, err = aes.CryptCTR(raw, key, iv)
	case ModeOFB:
		out, err = aes.CryptOFB(raw, key, iv)
	default:
		return nil, &UnsupportedError{Mode: string(mode)}
	}
	if err != nil {
		return nil, wrapBlockError(err)
	}
	return out, nil
}
