package cipherstudio

import (
	"errors"
	"fmt"

	"github.com/cipherstudio/crypto-go/internal/aes"
	"github.com/cipherstudio/crypto-go/internal/classical"
	"github.com/cipherstudio/crypto-go/internal/rsacore"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrInvalidKeyLength is returned when a symmetric or RSA key has an
	// unsupported length.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrInvalidIVLength is returned when the IV or counter is not one block.
	ErrInvalidIVLength = errors.New("invalid IV length")

	// ErrInvalidPadding is returned when CBC decryption yields malformed
	// PKCS#7 padding.
	ErrInvalidPadding = errors.New("invalid padding")

	// ErrUnsupportedMode is returned for an unknown block cipher mode.
	ErrUnsupportedMode = errors.New("unsupported mode of operation")

	// ErrInvalidCiphertext is returned when ciphertext is not valid Base64
	// or has an impossible length for the cipher.
	ErrInvalidCiphertext = errors.New("malformed ciphertext")

	// ErrMessageTooLong is returned when a plaintext exceeds the OAEP
	// capacity of the RSA modulus.
	ErrMessageTooLong = errors.New("message too long for key size")

	// ErrDecryptionFailed is returned when decryption fails. The specific
	// failed check is deliberately not disclosed.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidUTF8 is returned when stream decryption does not produce
	// well-formed UTF-8 text.
	ErrInvalidUTF8 = errors.New("decrypted bytes are not valid UTF-8")

	// ErrInvalidKeyFormat is returned when a classical cipher key does not
	// have the shape the cipher requires.
	ErrInvalidKeyFormat = errors.New("invalid key format")

	// ErrNonInvertibleKey is returned when a Hill key matrix has no
	// inverse modulo 26.
	ErrNonInvertibleKey = errors.New("key matrix is not invertible")

	// ErrInvalidLength is returned when a columnar ciphertext length is
	// not a multiple of the column count.
	ErrInvalidLength = errors.New("invalid ciphertext length")

	// ErrKeyParse is returned when PEM or DER key material is malformed.
	ErrKeyParse = errors.New("malformed key encoding")
)

// CipherStudioError is implemented by all library errors.
type CipherStudioError interface {
	error
	CipherStudioError() // marker method
}

// ValidationError reports rejected input before any cryptographic work.
type ValidationError struct {
	Field   string
	Message string
	Err     error // public sentinel
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

// Unwrap returns the sentinel this validation failure maps to.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// CipherStudioError implements the CipherStudioError interface.
func (e *ValidationError) CipherStudioError() {}

// CryptoError reports a failed decryption.
type CryptoError struct {
	Op  string
	Err error
}

func (e *CryptoError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *CryptoError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *CryptoError) Is(target error) bool {
	return target == ErrDecryptionFailed
}

// CipherStudioError implements the CipherStudioError interface.
func (e *CryptoError) CipherStudioError() {}

// ParseError reports malformed key material.
type ParseError struct {
	What string // "public key", "private key"
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.What, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *ParseError) Is(target error) bool {
	return target == ErrKeyParse
}

// CipherStudioError implements the CipherStudioError interface.
func (e *ParseError) CipherStudioError() {}

// UnsupportedError reports a mode of operation this module does not
// implement.
type UnsupportedError struct {
	Mode string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported mode %q", e.Mode)
}

// Is implements errors.Is for sentinel error matching.
func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupportedMode
}

// CipherStudioError implements the CipherStudioError interface.
func (e *UnsupportedError) CipherStudioError() {}

// wrapBlockError converts internal AES errors to public errors.
// This ensures that errors.Is() checks work with public sentinel errors.
func wrapBlockError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, aes.ErrInvalidKeyLength):
		return &ValidationError{Field: "key", Message: "must be 16, 24, or 32 bytes", Err: ErrInvalidKeyLength}
	case errors.Is(err, aes.ErrInvalidIVLength):
		return &ValidationError{Field: "iv", Message: "must be 16 bytes", Err: ErrInvalidIVLength}
	case errors.Is(err, aes.ErrInvalidCiphertext):
		return &ValidationError{Field: "ciphertext", Message: "length must be a positive multiple of the block size", Err: ErrInvalidCiphertext}
	case errors.Is(err, aes.ErrInvalidPadding):
		return &CryptoError{Op: "block decrypt", Err: ErrInvalidPadding}
	}
	return err
}

// wrapClassicalError converts internal classical cipher errors to
// public errors.
func wrapClassicalError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, classical.ErrInvalidKeyFormat):
		return &ValidationError{Field: "key", Err: ErrInvalidKeyFormat}
	case errors.Is(err, classical.ErrNonInvertibleKey):
		return &ValidationError{Field: "key", Err: ErrNonInvertibleKey}
	case errors.Is(err, classical.ErrInvalidLength):
		return &ValidationError{Field: "ciphertext", Err: ErrInvalidLength}
	}
	return err
}

// wrapKeyError converts internal key encoding errors to public errors.
func wrapKeyError(what string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, rsacore.ErrKeyParse) {
		return &ParseError{What: what, Err: err}
	}
	return err
}
