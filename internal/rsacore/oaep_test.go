package rsacore

import (
	"bytes"
	"crypto/rand"
	stdrsa "crypto/rsa"
	"crypto/sha256"
	"errors"
	"math/big"
	"testing"
)

// fromStdKey converts a crypto/rsa key so OAEP tests don't pay for a
// fresh prime search on every run.
func fromStdKey(t *testing.T, std *stdrsa.PrivateKey) *PrivateKey {
	t.Helper()
	p, q := std.Primes[0], std.Primes[1]
	pMinus1 := new(big.Int).Sub(p, one)
	qMinus1 := new(big.Int).Sub(q, one)

	return &PrivateKey{
		PublicKey: PublicKey{N: std.N, E: big.NewInt(int64(std.E))},
		D:         std.D,
		P:         p,
		Q:         q,
		DP:        new(big.Int).Mod(std.D, pMinus1),
		DQ:        new(big.Int).Mod(std.D, qMinus1),
		QInv:      ModInverse(q, p),
	}
}

func testKey1024(t *testing.T) *PrivateKey {
	t.Helper()
	std, err := stdrsa.GenerateKey(rand.Reader, 1024)
	if err != nil {
		t.Fatal(err)
	}
	return fromStdKey(t, std)
}

func TestOAEP_RoundTrip(t *testing.T) {
	key := testKey1024(t)
	k := key.Size()

	tests := []struct {
		name string
		msg  []byte
	}{
		{"empty", []byte{}},
		{"short", []byte("hello")},
		{"max length", bytes.Repeat([]byte{0x42}, MaxMessageLen(k))},
		{"binary", []byte{0x00, 0xff, 0x00, 0xff}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ct, err := EncryptOAEP(rand.Reader, &key.PublicKey, tt.msg)
			if err != nil {
				t.Fatalf("EncryptOAEP() error = %v", err)
			}
			if len(ct) != k {
				t.Errorf("ciphertext length = %d, want %d", len(ct), k)
			}

			pt, err := DecryptOAEP(key, ct)
			if err != nil {
				t.Fatalf("DecryptOAEP() error = %v", err)
			}
			if !bytes.Equal(pt, tt.msg) {
				t.Errorf("round trip = %x, want %x", pt, tt.msg)
			}
		})
	}
}

func TestOAEP_EncryptionIsRandomized(t *testing.T) {
	key := testKey1024(t)
	msg := []byte("same message")

	first, err := EncryptOAEP(rand.Reader, &key.PublicKey, msg)
	if err != nil {
		t.Fatal(err)
	}
	second, err := EncryptOAEP(rand.Reader, &key.PublicKey, msg)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(first, second) {
		t.Error("two encryptions of the same message are identical")
	}

	for _, ct := range [][]byte{first, second} {
		pt, err := DecryptOAEP(key, ct)
		if err != nil || !bytes.Equal(pt, msg) {
			t.Errorf("randomized ciphertext failed to decrypt: %v", err)
		}
	}
}

func TestOAEP_DeterministicWithFixedRandomness(t *testing.T) {
	key := testKey1024(t)
	msg := []byte("fixed seed")
	seed := bytes.Repeat([]byte{0x5a}, 64)

	first, err := EncryptOAEP(bytes.NewReader(seed), &key.PublicKey, msg)
	if err != nil {
		t.Fatal(err)
	}
	second, err := EncryptOAEP(bytes.NewReader(seed), &key.PublicKey, msg)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("identical randomness produced different ciphertexts")
	}
}

func TestOAEP_MessageTooLong(t *testing.T) {
	key := testKey1024(t)
	msg := make([]byte, MaxMessageLen(key.Size())+1)

	_, err := EncryptOAEP(rand.Reader, &key.PublicKey, msg)
	if !errors.Is(err, ErrMessageTooLong) {
		t.Errorf("expected ErrMessageTooLong, got %v", err)
	}
}

func TestOAEP_InteropWithStdlib(t *testing.T) {
	std, err := stdrsa.GenerateKey(rand.Reader, 1024)
	if err != nil {
		t.Fatal(err)
	}
	key := fromStdKey(t, std)
	msg := []byte("cross-implementation message")

	t.Run("stdlib decrypts ours", func(t *testing.T) {
		ct, err := EncryptOAEP(rand.Reader, &key.PublicKey, msg)
		if err != nil {
			t.Fatal(err)
		}
		pt, err := stdrsa.DecryptOAEP(sha256.New(), nil, std, ct, nil)
		if err != nil {
			t.Fatalf("crypto/rsa failed to decrypt our ciphertext: %v", err)
		}
		if !bytes.Equal(pt, msg) {
			t.Errorf("plaintext = %x, want %x", pt, msg)
		}
	})

	t.Run("we decrypt stdlib", func(t *testing.T) {
		ct, err := stdrsa.EncryptOAEP(sha256.New(), rand.Reader, &std.PublicKey, msg, nil)
		if err != nil {
			t.Fatal(err)
		}
		pt, err := DecryptOAEP(key, ct)
		if err != nil {
			t.Fatalf("failed to decrypt crypto/rsa ciphertext: %v", err)
		}
		if !bytes.Equal(pt, msg) {
			t.Errorf("plaintext = %x, want %x", pt, msg)
		}
	})
}

func TestOAEP_DecryptionFailuresCollapse(t *testing.T) {
	key := testKey1024(t)
	ct, err := EncryptOAEP(rand.Reader, &key.PublicKey, []byte("target"))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		ciphertext []byte
	}{
		{"wrong length", ct[:len(ct)-1]},
		{"empty", []byte{}},
		{"tampered first byte", tamper(ct, 0)},
		{"tampered last byte", tamper(ct, len(ct)-1)},
		{"ciphertext >= modulus", key.N.Bytes()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecryptOAEP(key, tt.ciphertext)
			if !errors.Is(err, ErrDecryption) {
				t.Errorf("expected ErrDecryption, got %v", err)
			}
			if err != nil && err.Error() != ErrDecryption.Error() {
				t.Errorf("error leaks detail: %q", err)
			}
		})
	}
}

func tamper(ct []byte, i int) []byte {
	out := make([]byte, len(ct))
	copy(out, ct)
	out[i] ^= 0x01
	return out
}

func TestOAEP_KeyTooSmall(t *testing.T) {
	pub := &PublicKey{N: new(big.Int).Lsh(one, 255), E: big.NewInt(65537)}
	if _, err := EncryptOAEP(rand.Reader, pub, []byte("x")); !errors.Is(err, ErrKeyBits) {
		t.Errorf("expected ErrKeyBits, got %v", err)
	}
}
