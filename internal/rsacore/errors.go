package rsacore

import "errors"

var (
	// ErrMessageTooLong is returned when the plaintext exceeds the OAEP
	// capacity k - 2*hashLen - 2 for the key's modulus size.
	ErrMessageTooLong = errors.New("message too long for key size")

	// ErrDecryption is returned for every OAEP decryption failure. The
	// specific failed check is deliberately not disclosed.
	ErrDecryption = errors.New("decryption error")

	// ErrKeyParse is returned when PEM or DER key material is malformed.
	ErrKeyParse = errors.New("malformed key encoding")

	// ErrKeyBits is returned when the requested modulus size is too small
	// to hold an OAEP block.
	ErrKeyBits = errors.New("modulus size too small")
)
