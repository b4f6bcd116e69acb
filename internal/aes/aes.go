// Package aes implements the AES-128/192/256 block cipher from byte-level
// arithmetic, together with the CBC, CTR, and OFB modes of operation and
// PKCS#7 padding.
package aes

import "fmt"

// BlockSize is the AES block length in bytes.
const BlockSize = 16

// Accepted key lengths in bytes, selecting AES-128/192/256.
const (
	KeySize128 = 16
	KeySize192 = 24
	KeySize256 = 32
)

// sbox and invSbox are the fixed 256-entry substitution tables, built once
// from the GF(2^8) inverse followed by the Rijndael affine transform.
var sbox, invSbox [256]byte

func init() {
	for i := 0; i < 256; i++ {
		v := byte(i)
		if v != 0 {
			v = gfInverse(v)
		}
		sbox[i] = affine(v)
		invSbox[sbox[i]] = byte(i)
	}
}

// affine applies the Rijndael affine transformation over GF(2).
func affine(b byte) byte {
	var out byte
	for i := 0; i < 8; i++ {
		bit := (b >> i) & 1
		bit ^= (b >> ((i + 4) % 8)) & 1
		bit ^= (b >> ((i + 5) % 8)) & 1
		bit ^= (b >> ((i + 6) % 8)) & 1
		bit ^= (b >> ((i + 7) % 8)) & 1
		out |= bit << i
	}
	return out ^ 0x63
}

// gfMul multiplies two elements of GF(2^8) modulo the AES reduction
// polynomial x^8 + x^4 + x^3 + x + 1 (0x1B).
func gfMul(a, b byte) byte {
	var result byte
	for i := 0; i < 8; i++ {
		if b&1 == 1 {
			result ^= a
		}
		highBit := a & 0x80
		a <<= 1
		if highBit != 0 {
			a ^= 0x1b
		}
		b >>= 1
	}
	return result
}

// gfInverse computes the multiplicative inverse in GF(2^8) as a^254.
func gfInverse(a byte) byte {
	result := byte(1)
	base := a
	// 254 = 0b11111110
	for exp := 254; exp > 0; exp >>= 1 {
		if exp&1 == 1 {
			result = gfMul(result, base)
		}
		base = gfMul(base, base)
	}
	return result
}

// Cipher is an AES block cipher keyed by an expanded key schedule.
type Cipher struct {
	rounds    int
	roundKeys [][BlockSize]byte
}

// New expands key into a cipher. The key must be 16, 24, or 32 bytes.
func New(key []byte) (*Cipher, error) {
	var rounds int
	switch len(key) {
	case KeySize128:
		rounds = 10
	case KeySize192:
		rounds = 12
	case KeySize256:
		rounds = 14
	default:
		return nil, fmt.Errorf("invalid key length %d: %w", len(key), ErrInvalidKeyLength)
	}

	c := &Cipher{rounds: rounds}
	c.expandKey(key)
	return c, nil
}

// expandKey runs the Rijndael key schedule, producing 4*(rounds+1) words
// regrouped into per-round 16-byte keys.
func (c *Cipher) expandKey(key []byte) {
	nk := len(key) / 4
	totalWords := 4 * (c.rounds + 1)

	w := make([][4]byte, totalWords)
	for i := 0; i < nk; i++ {
		copy(w[i][:], key[i*4:(i+1)*4])
	}

	rcon := byte(1)
	for i := nk; i < totalWords; i++ {
		temp := w[i-1]
		if i%nk == 0 {
			temp = [4]byte{temp[1], temp[2], temp[3], temp[0]}
			for j := range temp {
				temp[j] = sbox[temp[j]]
			}
			temp[0] ^= rcon
			rcon = gfMul(rcon, 0x02)
		} else if nk > 6 && i%nk == 4 {
			for j := range temp {
				temp[j] = sbox[temp[j]]
			}
		}
		for j := 0; j < 4; j++ {
			w[i][j] = w[i-nk][j] ^ temp[j]
		}
	}

	c.roundKeys = make([][BlockSize]byte, c.rounds+1)
	for round := 0; round <= c.rounds; round++ {
		for col := 0; col < 4; col++ {
			copy(c.roundKeys[round][col*4:], w[round*4+col][:])
		}
	}
}

// EncryptBlock transforms a single 16-byte block in place from src to dst.
// dst and src may overlap.
func (c *Cipher) EncryptBlock(dst, src []byte) {
	var state [BlockSize]byte
	copy(state[:], src[:BlockSize])

	addRoundKey(&state, &c.roundKeys[0])
	for round := 1; round < c.rounds; round++ {
		subBytes(&state)
		shiftRows(&state)
		mixColumns(&state)
		addRoundKey(&state, &c.roundKeys[round])
	}
	subBytes(&state)
	shiftRows(&state)
	addRoundKey(&state, &c.roundKeys[c.rounds])

	copy(dst, state[:])
}

// DecryptBlock inverts EncryptBlock for a single 16-byte block.
func (c *Cipher) DecryptBlock(dst, src []byte) {
	var state [BlockSize]byte
	copy(state[:], src[:BlockSize])

	addRoundKey(&state, &c.roundKeys[c.rounds])
	for round := c.rounds - 1; round > 0; round-- {
		invShiftRows(&state)
		invSubBytes(&state)
		addRoundKey(&state, &c.roundKeys[round])
		invMixColumns(&state)
	}
	invShiftRows(&state)
	invSubBytes(&state)
	addRoundKey(&state, &c.roundKeys[0])

	copy(dst, state[:])
}

// The state is column-major: byte (row, col) lives at index row + 4*col.

func addRoundKey(state, key *[BlockSize]byte) {
	for i := range state {
		state[i] ^= key[i]
	}
}

func subBytes(state *[BlockSize]byte) {
	for i := range state {
		state[i] = sbox[state[i]]
	}
}

func invSubBytes(state *[BlockSize]byte) {
	for i := range state {
		state[i] = invSbox[state[i]]
	}
}

func shiftRows(state *[BlockSize]byte) {
	for row := 1; row < 4; row++ {
		var tmp [4]byte
		for col := 0; col < 4; col++ {
			tmp[col] = state[row+4*((col+row)%4)]
		}
		for col := 0; col < 4; col++ {
			state[row+4*col] = tmp[col]
		}
	}
}

func invShiftRows(state *[BlockSize]byte) {
	for row := 1; row < 4; row++ {
		var tmp [4]byte
		for col := 0; col < 4; col++ {
			tmp[(col+row)%4] = state[row+4*col]
		}
		for col := 0; col < 4; col++ {
			state[row+4*col] = tmp[col]
		}
	}
}

func mixColumns(state *[BlockSize]byte) {
	for col := 0; col < 4; col++ {
		a0, a1, a2, a3 := state[4*col], state[4*col+1], state[4*col+2], state[4*col+3]
		state[4*col] = gfMul(0x02, a0) ^ gfMul(0x03, a1) ^ a2 ^ a3
		state[4*col+1] = a0 ^ gfMul(0x02, a1) ^ gfMul(0x03, a2) ^ a3
		state[4*col+2] = a0 ^ a1 ^ gfMul(0x02, a2) ^ gfMul(0x03, a3)
		state[4*col+3] = gfMul(0x03, a0) ^ a1 ^ a2 ^ gfMul(0x02, a3)
	}
}

func invMixColumns(state *[BlockSize]byte) {
	for col := 0; col < 4; col++ {
		a0, a1, a2, a3 := state[4*col], state[4*col+1], state[4*col+2], state[4*col+3]
		state[4*col] = gfMul(0x0e, a0) ^ gfMul(0x0b, a1) ^ gfMul(0x0d, a2) ^ gfMul(0x09, a3)
		state[4*col+1] = gfMul(0x09, a0) ^ gfMul(0x0e, a1) ^ gfMul(0x0b, a2) ^ gfMul(0x0d, a3)
		state[4*col+2] = gfMul(0x0d, a0) ^ gfMul(0x09, a1) ^ gfMul(0x0e, a2) ^ gfMul(0x0b, a3)
		state[4*col+3] = gfMul(0x0b, a0) ^ gfMul(0x0d, a1) ^ gfMul(0x09, a2) ^ gfMul(0x0e, a3)
	}
}
