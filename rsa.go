package cipherstudio

import (
	"context"
	"errors"

	"github.com/cipherstudio/crypto-go/internal/codec"
	"github.com/cipherstudio/crypto-go/internal/rsacore"
)

// KeyPair holds a generated RSA key pair.
type KeyPair struct {
	key *rsacore.PrivateKey
}

// Bits returns the modulus size in bits.
func (kp *KeyPair) Bits() int {
	return kp.key.N.BitLen()
}

// PublicKeyPEM renders the public half as a PKCS#1 PEM block.
func (kp *KeyPair) PublicKeyPEM() string {
	return rsacore.MarshalPublicKeyPEM(&kp.key.PublicKey)
}

// PrivateKeyPEM renders the private half as a PKCS#1 PEM block.
func (kp *KeyPair) PrivateKeyPEM() string {
	return rsacore.MarshalPrivateKeyPEM(kp.key)
}

// GenerateKeyPair produces an RSA key pair (2048-bit modulus, e=65537
// by default). The prime search checks ctx between candidates, so a
// cancelled or expired context aborts generation promptly.
func GenerateKeyPair(ctx context.Context, opts ...KeyGenOption) (*KeyPair, error) {
	cfg := defaultKeygenConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	key, err := rsacore.GenerateKey(ctx, cfg.random, cfg.bits, cfg.millerRabinRounds, cfg.publicExponent)
	if err != nil {
		if errors.Is(err, rsacore.ErrKeyBits) {
			return nil, &ValidationError{Field: "bits", Message: "modulus too small", Err: ErrInvalidKeyLength}
		}
		return nil, err
	}
	return &KeyPair{key: key}, nil
}

// RSAEncrypt encrypts plaintext with RSA-OAEP (SHA-256, MGF1, empty
// label) under the PEM-encoded public key and returns the ciphertext as
// Base64. Encryption is randomized: repeated calls on the same inputs
// yield different ciphertexts. The plaintext must not exceed
// k - 2*32 - 2 bytes for a k-byte modulus.
func RSAEncrypt(plaintext []byte, publicKeyPEM string, opts ...KeyGenOption) (string, error) {
	cfg := defaultKeygenConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	pub, err := rsacore.ParsePublicKeyPEM(publicKeyPEM)
	if err != nil {
		return "", wrapKeyError("public key", err)
	}

	out, err := rsacore.EncryptOAEP(cfg.random, pub, plaintext)
	if err != nil {
		switch {
		case errors.Is(err, rsacore.ErrMessageTooLong):
			return "", &ValidationError{Field: "plaintext", Err: ErrMessageTooLong}
		case errors.Is(err, rsacore.ErrKeyBits):
			return "", &ValidationError{Field: "public key", Message: "modulus too small", Err: ErrInvalidKeyLength}
		}
		return "", err
	}
	return codec.ToBase64(out), nil
}

// RSADecrypt decrypts Base64 RSA-OAEP ciphertext with the PEM-encoded
// private key. Key parse failures report ErrKeyParse; every other
// failure collapses to ErrDecryptionFailed without disclosing which
// check rejected the input.
func RSADecrypt(ciphertext string, privateKeyPEM string) ([]byte, error) {
	priv, err := rsacore.ParsePrivateKeyPEM(privateKeyPEM)
	if err != nil {
		return nil, wrapKeyError("private key", err)
	}

	raw, err := codec.FromBase64(ciphertext)
	if err != nil {
		return nil, &CryptoError{Op: "rsa decrypt", Err: ErrDecryptionFailed}
	}

	out, err := rsacore.DecryptOAEP(priv, raw)
	if err != nil {
		return nil, &CryptoError{Op: "rsa decrypt", Err: ErrDecryptionFailed}
	}
	return out, nil
}
