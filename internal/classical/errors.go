package classical

import "errors"

var (
	// ErrInvalidKeyFormat is returned when a cipher key does not have the
	// shape the cipher requires (wrong length, no usable characters).
	ErrInvalidKeyFormat = errors.New("invalid key format")

	// ErrNonInvertibleKey is returned when a Hill key matrix has a
	// determinant sharing a factor with 26.
	ErrNonInvertibleKey = errors.New("key matrix is not invertible mod 26")

	// ErrInvalidLength is returned when a columnar ciphertext length is not
	// a multiple of the column count.
	ErrInvalidLength = errors.New("ciphertext length is not a multiple of the column count")
)
