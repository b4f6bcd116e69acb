// Package rsacore implements RSA-OAEP from multi-precision arithmetic:
// modular exponentiation, the extended Euclidean algorithm, Miller-Rabin
// primality testing, prime and key generation, OAEP padding with
// MGF1-SHA256, and PKCS#1 DER/PEM key serialization.
//
// Randomness is always taken from an injected io.Reader so tests can
// substitute deterministic byte streams. Key generation is the one
// long-running operation; it checks its context between prime candidates
// so a caller can cancel it.
package rsacore
