package rsacore

import (
	"encoding/binary"
	"io"
	"math/big"

	"github.com/cipherstudio/crypto-go/internal/mdhash"
)

// hashLen is the OAEP hash output size (SHA-256).
const hashLen = mdhash.Size256

// MaxMessageLen returns the OAEP plaintext capacity for a modulus of k bytes.
func MaxMessageLen(k int) int {
	return k - 2*hashLen - 2
}

// mgf1 derives length bytes of mask material by hashing seed with an
// incrementing 4-byte big-endian counter.
func mgf1(seed []byte, length int) []byte {
	out := make([]byte, 0, length+hashLen)
	var counter [4]byte
	for i := uint32(0); len(out) < length; i++ {
		binary.BigEndian.PutUint32(counter[:], i)
		d := mdhash.New256()
		d.Write(seed)
		d.Write(counter[:])
		sum := d.Sum()
		out = append(out, sum[:]...)
	}
	return out[:length]
}

// EncryptOAEP pads msg with OAEP (empty label, SHA-256, random seed from
// random) and applies the raw RSA public operation, returning the
// ciphertext as k fixed-width big-endian bytes.
func EncryptOAEP(random io.Reader, pub *PublicKey, msg []byte) ([]byte, error) {
	k := pub.Size()
	if MaxMessageLen(k) < 0 {
		return nil, ErrKeyBits
	}
	if len(msg) > MaxMessageLen(k) {
		return nil, ErrMessageTooLong
	}

	lHash := mdhash.Sum256(nil)

	// DB = lHash || zero padding || 0x01 || msg
	db := make([]byte, k-hashLen-1)
	copy(db, lHash[:])
	db[len(db)-len(msg)-1] = 0x01
	copy(db[len(db)-len(msg):], msg)

	seed := make([]byte, hashLen)
	if _, err := io.ReadFull(random, seed); err != nil {
		return nil, err
	}

	dbMask := mgf1(seed, len(db))
	for i := range db {
		db[i] ^= dbMask[i]
	}
	seedMask := mgf1(db, hashLen)
	for i := range seed {
		seed[i] ^= seedMask[i]
	}

	em := make([]byte, k)
	copy(em[1:], seed)
	copy(em[1+hashLen:], db)

	m := new(big.Int).SetBytes(em)
	c := ModPow(m, pub.E, pub.N)

	out := make([]byte, k)
	c.FillBytes(out)
	return out, nil
}

// DecryptOAEP applies the raw RSA private operation and strips the OAEP
// padding. Every failed check collapses to ErrDecryption so the error
// channel does not reveal which stage rejected the input.
func DecryptOAEP(priv *PrivateKey, ciphertext []byte) ([]byte, error) {
	k := priv.Size()
	if len(ciphertext) != k || MaxMessageLen(k) < 0 {
		return nil, ErrDecryption
	}

	c := new(big.Int).SetBytes(ciphertext)
	if c.Cmp(priv.N) >= 0 {
		return nil, ErrDecryption
	}

	m := ModPow(c, priv.D, priv.N)
	em := make([]byte, k)
	m.FillBytes(em)

	if em[0] != 0x00 {
		return nil, ErrDecryption
	}

	seed := em[1 : 1+hashLen]
	db := em[1+hashLen:]

	seedMask := mgf1(db, hashLen)
	for i := range seed {
		seed[i] ^= seedMask[i]
	}
	dbMask := mgf1(seed, len(db))
	for i := range db {
		db[i] ^= dbMask[i]
	}

	lHash := mdhash.Sum256(nil)
	for i := 0; i < hashLen; i++ {
		if db[i] != lHash[i] {
			return nil, ErrDecryption
		}
	}

	// Scan past the zero padding for the 0x01 separator.
	rest := db[hashLen:]
	sep := -1
	for i, b := range rest {
		if b == 0x01 {
			sep = i
			break
		}
		if b != 0x00 {
			return nil, ErrDecryption
		}
	}
	if sep < 0 {
		return nil, ErrDecryption
	}
	return rest[sep+1:], nil
}
