package aes

import "fmt"

// EncryptCBC PKCS#7-pads plaintext and chains each block through the
// cipher, XOR-ing with the previous ciphertext block (the IV first).
func EncryptCBC(plaintext, key, iv []byte) ([]byte, error) {
	c, err := New(key)
	if err != nil {
		return nil, err
	}
	if len(iv) != BlockSize {
		return nil, fmt.Errorf("IV length %d: %w", len(iv), ErrInvalidIVLength)
	}

	padded := pkcs7Pad(plaintext, BlockSize)
	out := make([]byte, len(padded))

	prev := make([]byte, BlockSize)
	copy(prev, iv)
	for i := 0; i < len(padded); i += BlockSize {
		var block [BlockSize]byte
		for j := 0; j < BlockSize; j++ {
			block[j] = padded[i+j] ^ prev[j]
		}
		c.EncryptBlock(out[i:i+BlockSize], block[:])
		copy(prev, out[i:i+BlockSize])
	}
	return out, nil
}

// DecryptCBC reverses EncryptCBC and strictly validates the padding.
func DecryptCBC(ciphertext, key, iv []byte) ([]byte, error) {
	c, err := New(key)
	if err != nil {
		return nil, err
	}
	if len(iv) != BlockSize {
		return nil, fmt.Errorf("IV length %d: %w", len(iv), ErrInvalidIVLength)
	}
	if len(ciphertext) == 0 || len(ciphertext)%BlockSize != 0 {
		return nil, fmt.Errorf("ciphertext length %d: %w", len(ciphertext), ErrInvalidCiphertext)
	}

	out := make([]byte, len(ciphertext))
	prev := make([]byte, BlockSize)
	copy(prev, iv)
	for i := 0; i < len(ciphertext); i += BlockSize {
		c.DecryptBlock(out[i:i+BlockSize], ciphertext[i:i+BlockSize])
		for j := 0; j < BlockSize; j++ {
			out[i+j] ^= prev[j]
		}
		copy(prev, ciphertext[i:i+BlockSize])
	}
	return pkcs7Unpad(out, BlockSize)
}

// CryptCTR XORs data with the keystream Encrypt(counter_i), where the
// counter starts at iv and increments as a big-endian 128-bit integer.
// The same routine serves encryption and decryption.
func CryptCTR(data, key, iv []byte) ([]byte, error) {
	c, err := New(key)
	if err != nil {
		return nil, err
	}
	if len(iv) != BlockSize {
		return nil, fmt.Errorf("IV length %d: %w", len(iv), ErrInvalidIVLength)
	}

	counter := make([]byte, BlockSize)
	copy(counter, iv)

	out := make([]byte, len(data))
	var keystream [BlockSize]byte
	for i := 0; i < len(data); i += BlockSize {
		c.EncryptBlock(keystream[:], counter)
		incrementCounter(counter)
		for j := i; j < i+BlockSize && j < len(data); j++ {
			out[j] = data[j] ^ keystream[j-i]
		}
	}
	return out, nil
}

// CryptOFB XORs data with the keystream chain Encrypt(Encrypt(...(IV))).
// The same routine serves encryption and decryption.
func CryptOFB(data, key, iv []byte) ([]byte, error) {
	c, err := New(key)
	if err != nil {
		return nil, err
	}
	if len(iv) != BlockSize {
		return nil, fmt.Errorf("IV length %d: %w", len(iv), ErrInvalidIVLength)
	}

	feedback := make([]byte, BlockSize)
	copy(feedback, iv)

	out := make([]byte, len(data))
	for i := 0; i < len(data); i += BlockSize {
		c.EncryptBlock(feedback, feedback)
		for j := i; j < i+BlockSize && j < len(data); j++ {
			out[j] = data[j] ^ feedback[j-i]
		}
	}
	return out, nil
}

// incrementCounter adds one to a 128-bit big-endian counter, rippling the
// carry from byte 15 toward byte 0.
func incrementCounter(counter []byte) {
	for i := BlockSize - 1; i >= 0; i-- {
		counter[i]++
		if counter[i] != 0 {
			return
		}
	}
}
