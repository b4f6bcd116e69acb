package aes

import "errors"

var (
	// ErrInvalidKeyLength is returned when the key is not 16, 24, or 32 bytes.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrInvalidIVLength is returned when the IV or counter is not 16 bytes.
	ErrInvalidIVLength = errors.New("invalid IV length")

	// ErrInvalidPadding is returned when CBC decryption yields a block whose
	// PKCS#7 padding does not validate.
	ErrInvalidPadding = errors.New("invalid padding")

	// ErrInvalidCiphertext is returned when a CBC ciphertext is empty or not
	// a multiple of the block size.
	ErrInvalidCiphertext = errors.New("invalid ciphertext length")
)
