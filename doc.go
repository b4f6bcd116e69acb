// Package cipherstudio implements a suite of cryptographic algorithms
// built from primitive arithmetic: AES-128/192/256 in CBC, CTR, and OFB
// modes with PKCS#7 padding, the RC4 stream cipher, SHA-1 and SHA-256
// with HMAC-SHA256, RSA-OAEP with probabilistic key generation and
// PEM/DER key serialization, and three classical pedagogical ciphers
// (monoalphabetic substitution, 3x3 Hill, columnar transposition).
//
// The only platform facility used is a raw randomness source
// (crypto/rand by default, injectable via WithRandom); every cipher,
// hash, padding scheme, and encoding is implemented in this module.
//
// Basic usage:
//
//	key := []byte("0123456789abcdef")
//	iv := []byte("fedcba9876543210")
//
//	ciphertext, err := cipherstudio.BlockEncrypt([]byte("hello"), key, iv, cipherstudio.ModeCBC)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	plaintext, err := cipherstudio.BlockDecrypt(ciphertext, key, iv, cipherstudio.ModeCBC)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(string(plaintext))
//
// RSA key pairs are generated under a context so long prime searches can
// be cancelled:
//
//	pair, err := cipherstudio.GenerateKeyPair(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ct, err := cipherstudio.RSAEncrypt([]byte("secret"), pair.PublicKeyPEM())
package cipherstudio
