package rsacore

import (
	"context"
	"io"
	"math/big"
)

// DefaultBits is the target modulus size in bits.
const DefaultBits = 2048

// DefaultMillerRabinRounds is the witness count for primality testing.
const DefaultMillerRabinRounds = 5

// DefaultPublicExponent is the fixed RSA public exponent.
const DefaultPublicExponent = 65537

// PublicKey is the public half (n, e) of an RSA key pair.
type PublicKey struct {
	N *big.Int
	E *big.Int
}

// PrivateKey is the private half, carrying the CRT parameters alongside
// the textbook (n, e, d, p, q) components.
type PrivateKey struct {
	PublicKey
	D    *big.Int
	P    *big.Int
	Q    *big.Int
	DP   *big.Int // d mod (p-1)
	DQ   *big.Int // d mod (q-1)
	QInv *big.Int // q^-1 mod p
}

// Size returns the modulus length in bytes.
func (pub *PublicKey) Size() int {
	return (pub.N.BitLen() + 7) / 8
}

// GenerateKey produces an RSA key pair with a modulus of the given bit
// length. Primes are re-drawn on primality failure, on p == q, and when
// the prime gap is too narrow to resist Fermat factoring.
func GenerateKey(ctx context.Context, random io.Reader, bits, mrRounds int, e int64) (*PrivateKey, error) {
	if bits < 128 {
		return nil, ErrKeyBits
	}
	primeBits := bits / 2
	pubExp := big.NewInt(e)

	// |p - q| below this bound makes n trivially factorable around sqrt(n).
	minGap := new(big.Int).Lsh(one, uint(primeBits/2))

	for {
		p, err := GeneratePrime(ctx, random, primeBits, mrRounds)
		if err != nil {
			return nil, err
		}
		q, err := GeneratePrime(ctx, random, primeBits, mrRounds)
		if err != nil {
			return nil, err
		}

		if p.Cmp(q) == 0 {
			continue
		}
		gap := new(big.Int).Sub(p, q)
		if gap.Abs(gap).Cmp(minGap) < 0 {
			continue
		}

		pMinus1 := new(big.Int).Sub(p, one)
		qMinus1 := new(big.Int).Sub(q, one)
		phi := new(big.Int).Mul(pMinus1, qMinus1)

		d := ModInverse(pubExp, phi)
		if d == nil {
			continue // e shares a factor with phi; redraw
		}

		key := &PrivateKey{
			PublicKey: PublicKey{
				N: new(big.Int).Mul(p, q),
				E: pubExp,
			},
			D:    d,
			P:    p,
			Q:    q,
			DP:   new(big.Int).Mod(d, pMinus1),
			DQ:   new(big.Int).Mod(d, qMinus1),
			QInv: ModInverse(q, p),
		}
		return key, nil
	}
}
