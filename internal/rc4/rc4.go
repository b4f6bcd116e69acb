// Package rc4 implements the RC4 stream cipher: the 256-entry
// key-scheduling algorithm followed by the pseudo-random generation
// algorithm, XOR-ed directly with the input. Encryption and decryption
// are the same operation.
package rc4

import "errors"

// ErrEmptyKey is returned when the key has no bytes.
var ErrEmptyKey = errors.New("key must not be empty")

// Crypt applies the RC4 keystream for key to data and returns the result.
// Calling it again on its own output with the same key restores the input.
func Crypt(data, key []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}

	// KSA: initialize the permutation from the key.
	var s [256]byte
	for i := range s {
		s[i] = byte(i)
	}
	j := 0
	for i := 0; i < 256; i++ {
		j = (j + int(s[i]) + int(key[i%len(key)])) % 256
		s[i], s[j] = s[j], s[i]
	}

	// PRGA: one keystream byte per input byte.
	out := make([]byte, len(data))
	i, j := 0, 0
	for n, b := range data {
		i = (i + 1) % 256
		j = (j + int(s[i])) % 256
		s[i], s[j] = s[j], s[i]
		out[n] = b ^ s[(int(s[i])+int(s[j]))%256]
	}
	return out, nil
}
