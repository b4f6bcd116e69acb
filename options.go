package cipherstudio

import (
	"crypto/rand"
	"io"

	"github.com/cipherstudio/crypto-go/internal/rsacore"
)

// keygenConfig holds configuration for RSA key generation and the
// randomness source used by RSA encryption.
type keygenConfig struct {
	random            io.Reader
	bits              int
	millerRabinRounds int
	publicExponent    int64
}

func defaultKeygenConfig() keygenConfig {
	return keygenConfig{
		random:            rand.Reader,
		bits:              rsacore.DefaultBits,
		millerRabinRounds: rsacore.DefaultMillerRabinRounds,
		publicExponent:    rsacore.DefaultPublicExponent,
	}
}

// KeyGenOption configures RSA key generation and encryption.
type KeyGenOption func(*keygenConfig)

// WithRandom sets the randomness source. Default: crypto/rand.Reader.
//
// A deterministic reader makes key generation and OAEP encryption
// reproducible, which is useful in tests.
func WithRandom(r io.Reader) KeyGenOption {
	return func(c *keygenConfig) {
		c.random = r
	}
}

// WithKeyBits sets the RSA modulus size in bits. Default: 2048.
func WithKeyBits(bits int) KeyGenOption {
	return func(c *keygenConfig) {
		c.bits = bits
	}
}

// WithMillerRabinRounds sets the witness count for primality testing.
// Default: 5.
func WithMillerRabinRounds(rounds int) KeyGenOption {
	return func(c *keygenConfig) {
		c.millerRabinRounds = rounds
	}
}

// WithPublicExponent sets the RSA public exponent. Default: 65537.
func WithPublicExponent(e int64) KeyGenOption {
	return func(c *keygenConfig) {
		c.publicExponent = e
	}
}
