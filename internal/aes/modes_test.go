package aes

import (
	"bytes"
	stdaes "crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"testing"
)

func randomBytes(t *testing.T, n int) []byte {
	t.Helper()
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		t.Fatal(err)
	}
	return b
}

func TestModes_RoundTrip(t *testing.T) {
	plaintexts := [][]byte{
		{},
		[]byte("a"),
		[]byte("exactly sixteen!"),
		[]byte("a message spanning multiple AES blocks for mode testing"),
		randomTestData(1000),
	}

	for _, keySize := range []int{KeySize128, KeySize192, KeySize256} {
		key := make([]byte, keySize)
		rand.Read(key)
		iv := make([]byte, BlockSize)
		rand.Read(iv)

		for i, plaintext := range plaintexts {
			ct, err := EncryptCBC(plaintext, key, iv)
			if err != nil {
				t.Fatalf("EncryptCBC() error = %v", err)
			}
			pt, err := DecryptCBC(ct, key, iv)
			if err != nil {
				t.Fatalf("DecryptCBC() error = %v", err)
			}
			if !bytes.Equal(pt, plaintext) {
				t.Errorf("CBC round trip %d failed for key size %d", i, keySize)
			}

			ct, err = CryptCTR(plaintext, key, iv)
			if err != nil {
				t.Fatalf("CryptCTR() error = %v", err)
			}
			pt, err = CryptCTR(ct, key, iv)
			if err != nil {
				t.Fatalf("CryptCTR() error = %v", err)
			}
			if !bytes.Equal(pt, plaintext) {
				t.Errorf("CTR round trip %d failed for key size %d", i, keySize)
			}

			ct, err = CryptOFB(plaintext, key, iv)
			if err != nil {
				t.Fatalf("CryptOFB() error = %v", err)
			}
			pt, err = CryptOFB(ct, key, iv)
			if err != nil {
				t.Fatalf("CryptOFB() error = %v", err)
			}
			if !bytes.Equal(pt, plaintext) {
				t.Errorf("OFB round trip %d failed for key size %d", i, keySize)
			}
		}
	}
}

func randomTestData(n int) []byte {
	b := make([]byte, n)
	rand.Read(b)
	return b
}

func TestModes_AgainstStdlib(t *testing.T) {
	key := randomBytes(t, KeySize256)
	iv := randomBytes(t, BlockSize)
	data := randomBytes(t, 160)

	std, err := stdaes.NewCipher(key)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("CBC", func(t *testing.T) {
		got, err := EncryptCBC(data, key, iv)
		if err != nil {
			t.Fatal(err)
		}
		padded := pkcs7Pad(data, BlockSize)
		want := make([]byte, len(padded))
		cipher.NewCBCEncrypter(std, iv).CryptBlocks(want, padded)
		if !bytes.Equal(got, want) {
			t.Error("CBC ciphertext disagrees with crypto/cipher")
		}
	})

	t.Run("CTR", func(t *testing.T) {
		got, err := CryptCTR(data, key, iv)
		if err != nil {
			t.Fatal(err)
		}
		want := make([]byte, len(data))
		cipher.NewCTR(std, iv).XORKeyStream(want, data)
		if !bytes.Equal(got, want) {
			t.Error("CTR keystream disagrees with crypto/cipher")
		}
	})

	t.Run("OFB", func(t *testing.T) {
		got, err := CryptOFB(data, key, iv)
		if err != nil {
			t.Fatal(err)
		}
		want := make([]byte, len(data))
		cipher.NewOFB(std, iv).XORKeyStream(want, data)
		if !bytes.Equal(got, want) {
			t.Error("OFB keystream disagrees with crypto/cipher")
		}
	})
}

func TestCTROFB_FirstBlockIdentical(t *testing.T) {
	// CTR and OFB share keystream block zero (both encrypt the IV), so
	// ciphertexts match for inputs up to one block and diverge after.
	key := randomBytes(t, KeySize128)
	iv := randomBytes(t, BlockSize)

	short := randomBytes(t, BlockSize)
	ctrOut, err := CryptCTR(short, key, iv)
	if err != nil {
		t.Fatal(err)
	}
	ofbOut, err := CryptOFB(short, key, iv)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(ctrOut, ofbOut) {
		t.Error("CTR and OFB differ within the first block")
	}

	long := randomBytes(t, 2*BlockSize)
	ctrOut, _ = CryptCTR(long, key, iv)
	ofbOut, _ = CryptOFB(long, key, iv)
	if !bytes.Equal(ctrOut[:BlockSize], ofbOut[:BlockSize]) {
		t.Error("CTR and OFB differ within the first block")
	}
	if bytes.Equal(ctrOut[BlockSize:], ofbOut[BlockSize:]) {
		t.Error("CTR and OFB agree beyond the first block")
	}
}

func TestCTR_CounterCarry(t *testing.T) {
	counter := bytes.Repeat([]byte{0xff}, BlockSize)
	incrementCounter(counter)
	if !bytes.Equal(counter, make([]byte, BlockSize)) {
		t.Errorf("counter after full carry = %x, want all zeros", counter)
	}

	counter = append(make([]byte, BlockSize-1), 0xff)
	incrementCounter(counter)
	want := make([]byte, BlockSize)
	want[BlockSize-2] = 0x01
	if !bytes.Equal(counter, want) {
		t.Errorf("counter = %x, want %x", counter, want)
	}
}

func TestDecryptCBC_InvalidPadding(t *testing.T) {
	key := randomBytes(t, KeySize128)
	iv := randomBytes(t, BlockSize)

	ct, err := EncryptCBC([]byte("some plaintext"), key, iv)
	if err != nil {
		t.Fatal(err)
	}

	// Corrupting the last block breaks the padding check.
	ct[len(ct)-1] ^= 0x01
	if _, err := DecryptCBC(ct, key, iv); !errors.Is(err, ErrInvalidPadding) {
		t.Errorf("expected ErrInvalidPadding, got %v", err)
	}
}

func TestDecryptCBC_InvalidCiphertextLength(t *testing.T) {
	key := randomBytes(t, KeySize128)
	iv := randomBytes(t, BlockSize)

	for _, size := range []int{0, 1, 15, 17} {
		if _, err := DecryptCBC(make([]byte, size), key, iv); !errors.Is(err, ErrInvalidCiphertext) {
			t.Errorf("size %d: expected ErrInvalidCiphertext, got %v", size, err)
		}
	}
}

func TestModes_InvalidIVLength(t *testing.T) {
	key := randomBytes(t, KeySize128)
	data := []byte("data")

	for _, size := range []int{0, 8, 15, 17, 32} {
		iv := make([]byte, size)
		if _, err := EncryptCBC(data, key, iv); !errors.Is(err, ErrInvalidIVLength) {
			t.Errorf("CBC iv %d: expected ErrInvalidIVLength, got %v", size, err)
		}
		if _, err := CryptCTR(data, key, iv); !errors.Is(err, ErrInvalidIVLength) {
			t.Errorf("CTR iv %d: expected ErrInvalidIVLength, got %v", size, err)
		}
		if _, err := CryptOFB(data, key, iv); !errors.Is(err, ErrInvalidIVLength) {
			t.Errorf("OFB iv %d: expected ErrInvalidIVLength, got %v", size, err)
		}
	}
}
