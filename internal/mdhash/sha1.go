package mdhash

import (
	"encoding/binary"
	"math/bits"
)

// Size1 is the SHA-1 digest length in bytes.
const Size1 = 20

// Digest1 holds the running SHA-1 state: five 32-bit registers, a partial
// block buffer, and the accumulated message length.
type Digest1 struct {
	h      [5]uint32
	buf    [BlockSize]byte
	bufLen int
	msgLen uint64
}

// New1 returns a SHA-1 digest in its initial state.
func New1() *Digest1 {
	d := &Digest1{}
	d.h = [5]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476, 0xc3d2e1f0}
	return d
}

// Write absorbs p into the digest state.
func (d *Digest1) Write(p []byte) (int, error) {
	n := len(p)
	d.msgLen += uint64(n)

	if d.bufLen > 0 {
		c := copy(d.buf[d.bufLen:], p)
		d.bufLen += c
		p = p[c:]
		if d.bufLen == BlockSize {
			d.compress(d.buf[:])
			d.bufLen = 0
		}
	}
	for len(p) >= BlockSize {
		d.compress(p[:BlockSize])
		p = p[BlockSize:]
	}
	d.bufLen += copy(d.buf[d.bufLen:], p)
	return n, nil
}

// Sum appends the final padding to a copy of the state and returns the
// 20-byte digest. The receiver remains usable for further writes.
func (d *Digest1) Sum() [Size1]byte {
	final := *d
	final.pad()

	var out [Size1]byte
	for i, w := range final.h {
		binary.BigEndian.PutUint32(out[i*4:], w)
	}
	return out
}

func (d *Digest1) pad() {
	bitLen := d.msgLen * 8
	d.Write([]byte{0x80})
	for d.bufLen != 56 {
		d.Write([]byte{0x00})
	}
	var lenBytes [8]byte
	binary.BigEndian.PutUint64(lenBytes[:], bitLen)
	d.Write(lenBytes[:])
}

func (d *Digest1) compress(block []byte) {
	var w [80]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(block[i*4:])
	}
	for i := 16; i < 80; i++ {
		w[i] = bits.RotateLeft32(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
	}

	a, b, c, dd, e := d.h[0], d.h[1], d.h[2], d.h[3], d.h[4]

	for i := 0; i < 80; i++ {
		var f, k uint32
		switch {
		case i < 20:
			f = (b & c) | (^b & dd)
			k = 0x5a827999
		case i < 40:
			f = b ^ c ^ dd
			k = 0x6ed9eba1
		case i < 60:
			f = (b & c) | (b & dd) | (c & dd)
			k = 0x8f1bbcdc
		default:
			f = b ^ c ^ dd
			k = 0xca62c1d6
		}

		t := bits.RotateLeft32(a, 5) + f + e + k + w[i]
		e = dd
		dd = c
		c = bits.RotateLeft32(b, 30)
		b = a
		a = t
	}

	d.h[0] += a
	d.h[1] += b
	d.h[2] += c
	d.h[3] += dd
	d.h[4] += e
}

// Sum1 computes the SHA-1 digest of data in one shot.
func Sum1(data []byte) [Size1]byte {
	d := New1()
	d.Write(data)
	return d.Sum()
}
