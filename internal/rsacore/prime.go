package rsacore

import (
	"context"
	"io"
	"math/big"
)

// GeneratePrime draws random odd candidates of exactly bits bits until one
// passes the primality test. The top two bits are forced so that the
// product of two such primes reaches the full target modulus size.
//
// The context is checked before every candidate; this is the cooperative
// suspension point that keeps a long prime search cancellable.
func GeneratePrime(ctx context.Context, random io.Reader, bits, mrRounds int) (*big.Int, error) {
	if bits < 8 {
		return nil, ErrKeyBits
	}
	buf := make([]byte, (bits+7)/8)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if _, err := io.ReadFull(random, buf); err != nil {
			return nil, err
		}

		candidate := new(big.Int).SetBytes(buf)
		// Trim to the exact bit length, then pin the two highest bits and
		// force the candidate odd.
		for candidate.BitLen() > bits {
			candidate.Rsh(candidate, 1)
		}
		candidate.SetBit(candidate, bits-1, 1)
		candidate.SetBit(candidate, bits-2, 1)
		candidate.SetBit(candidate, 0, 1)

		if IsProbablyPrime(candidate, mrRounds, random) {
			return candidate, nil
		}
	}
}
