package rsacore

import (
	"crypto/rand"
	"io"
	"math/big"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// smallPrimes is the trial-division filter applied before Miller-Rabin.
var smallPrimes = []int64{3, 5, 7}

// ModPow computes base^exp mod m by square-and-multiply.
func ModPow(base, exp, m *big.Int) *big.Int {
	result := big.NewInt(1)
	b := new(big.Int).Mod(base, m)

	for i := exp.BitLen() - 1; i >= 0; i-- {
		result.Mul(result, result)
		result.Mod(result, m)
		if exp.Bit(i) == 1 {
			result.Mul(result, b)
			result.Mod(result, m)
		}
	}
	return result
}

// ExtendedGCD returns (g, x, y) with a*x + b*y = g = gcd(a, b).
func ExtendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	oldR, r := new(big.Int).Set(a), new(big.Int).Set(b)
	oldS, s := big.NewInt(1), big.NewInt(0)
	oldT, t := big.NewInt(0), big.NewInt(1)

	for r.Sign() != 0 {
		q := new(big.Int).Div(oldR, r)
		oldR, r = r, new(big.Int).Sub(oldR, new(big.Int).Mul(q, r))
		oldS, s = s, new(big.Int).Sub(oldS, new(big.Int).Mul(q, s))
		oldT, t = t, new(big.Int).Sub(oldT, new(big.Int).Mul(q, t))
	}
	return oldR, oldS, oldT
}

// ModInverse returns a^-1 mod m, or nil when gcd(a, m) != 1.
func ModInverse(a, m *big.Int) *big.Int {
	g, x, _ := ExtendedGCD(new(big.Int).Mod(a, m), m)
	if g.Cmp(one) != 0 {
		return nil
	}
	x.Mod(x, m)
	if x.Sign() < 0 {
		x.Add(x, m)
	}
	return x
}

// IsProbablyPrime runs a trial-division filter followed by rounds of
// Miller-Rabin with witnesses drawn from random.
func IsProbablyPrime(n *big.Int, rounds int, random io.Reader) bool {
	if n.Cmp(two) < 0 {
		return false
	}
	if n.Cmp(two) == 0 {
		return true
	}
	if n.Bit(0) == 0 {
		return false
	}
	for _, p := range smallPrimes {
		sp := big.NewInt(p)
		if n.Cmp(sp) == 0 {
			return true
		}
		if new(big.Int).Mod(n, sp).Sign() == 0 {
			return false
		}
	}

	// Decompose n-1 as d * 2^s with d odd.
	nMinus1 := new(big.Int).Sub(n, one)
	d := new(big.Int).Set(nMinus1)
	s := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		s++
	}

	for i := 0; i < rounds; i++ {
		a, err := rand.Int(random, new(big.Int).Sub(n, big.NewInt(3)))
		if err != nil {
			return false
		}
		a.Add(a, two) // witness in [2, n-2]

		x := ModPow(a, d, n)
		if x.Cmp(one) == 0 || x.Cmp(nMinus1) == 0 {
			continue
		}

		composite := true
		for r := 0; r < s-1; r++ {
			x = ModPow(x, two, n)
			if x.Cmp(nMinus1) == 0 {
				composite = false
				break
			}
		}
		if composite {
			return false
		}
	}
	return true
}
