package mdhash

// HMACSHA256 computes HMAC-SHA256 over message with the given key.
//
// Keys longer than the 64-byte block size are replaced by their SHA-256
// digest; shorter keys are zero-padded to the block size.
func HMACSHA256(message, key []byte) [Size256]byte {
	var block [BlockSize]byte
	if len(key) > BlockSize {
		digest := Sum256(key)
		copy(block[:], digest[:])
	} else {
		copy(block[:], key)
	}

	var ipad, opad [BlockSize]byte
	for i := 0; i < BlockSize; i++ {
		ipad[i] = block[i] ^ 0x36
		opad[i] = block[i] ^ 0x5c
	}

	inner := New256()
	inner.Write(ipad[:])
	inner.Write(message)
	innerSum := inner.Sum()

	outer := New256()
	outer.Write(opad[:])
	outer.Write(innerSum[:])
	return outer.Sum()
}
