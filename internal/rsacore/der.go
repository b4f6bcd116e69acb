package rsacore

import (
	"fmt"
	"math/big"
)

// ASN.1 tags used by the RSA key encodings.
const (
	tagInteger     = 0x02
	tagBitString   = 0x03
	tagOctetString = 0x04
	tagSequence    = 0x30
)

// encodeLength emits a DER length: short form below 128, long form above.
func encodeLength(n int) []byte {
	if n < 0x80 {
		return []byte{byte(n)}
	}
	var body []byte
	for v := n; v > 0; v >>= 8 {
		body = append([]byte{byte(v)}, body...)
	}
	return append([]byte{0x80 | byte(len(body))}, body...)
}

// encodeInteger emits a DER INTEGER with minimal big-endian content,
// prepending 0x00 when the high bit of the first byte is set.
func encodeInteger(v *big.Int) []byte {
	content := v.Bytes()
	if len(content) == 0 {
		content = []byte{0x00}
	} else if content[0]&0x80 != 0 {
		content = append([]byte{0x00}, content...)
	}
	out := []byte{tagInteger}
	out = append(out, encodeLength(len(content))...)
	return append(out, content...)
}

// encodeSequence wraps the concatenated children in a SEQUENCE.
func encodeSequence(children ...[]byte) []byte {
	var body []byte
	for _, c := range children {
		body = append(body, c...)
	}
	out := []byte{tagSequence}
	out = append(out, encodeLength(len(body))...)
	return append(out, body...)
}

// MarshalPublicKey encodes pub as a PKCS#1 RSAPublicKey: SEQUENCE (n, e).
func MarshalPublicKey(pub *PublicKey) []byte {
	return encodeSequence(encodeInteger(pub.N), encodeInteger(pub.E))
}

// MarshalPrivateKey encodes priv as a PKCS#1 RSAPrivateKey:
// SEQUENCE (version=0, n, e, d, p, q, dP, dQ, qInv).
func MarshalPrivateKey(priv *PrivateKey) []byte {
	return encodeSequence(
		encodeInteger(big.NewInt(0)),
		encodeInteger(priv.N),
		encodeInteger(priv.E),
		encodeInteger(priv.D),
		encodeInteger(priv.P),
		encodeInteger(priv.Q),
		encodeInteger(priv.DP),
		encodeInteger(priv.DQ),
		encodeInteger(priv.QInv),
	)
}

// readTLV decodes one tag-length-value element and returns the tag, its
// content, and the remaining bytes. Indefinite lengths are rejected.
func readTLV(data []byte) (tag byte, content, rest []byte, err error) {
	if len(data) < 2 {
		return 0, nil, nil, fmt.Errorf("truncated element: %w", ErrKeyParse)
	}
	tag = data[0]
	data = data[1:]

	length := int(data[0])
	data = data[1:]
	if length&0x80 != 0 {
		numBytes := length & 0x7f
		if numBytes == 0 || numBytes > 4 || len(data) < numBytes {
			return 0, nil, nil, fmt.Errorf("bad length encoding: %w", ErrKeyParse)
		}
		length = 0
		for i := 0; i < numBytes; i++ {
			length = length<<8 | int(data[i])
		}
		data = data[numBytes:]
	}

	if length > len(data) {
		return 0, nil, nil, fmt.Errorf("element overruns input: %w", ErrKeyParse)
	}
	return tag, data[:length], data[length:], nil
}

// readInteger reads a DER INTEGER and returns its non-negative value.
func readInteger(data []byte) (*big.Int, []byte, error) {
	tag, content, rest, err := readTLV(data)
	if err != nil {
		return nil, nil, err
	}
	if tag != tagInteger || len(content) == 0 {
		return nil, nil, fmt.Errorf("expected INTEGER: %w", ErrKeyParse)
	}
	if content[0]&0x80 != 0 {
		return nil, nil, fmt.Errorf("negative INTEGER: %w", ErrKeyParse)
	}
	return new(big.Int).SetBytes(content), rest, nil
}

// ParsePublicKey decodes a DER public key. Both the direct PKCS#1 form
// (SEQUENCE of n, e) and the SubjectPublicKeyInfo wrapping (an
// AlgorithmIdentifier sequence followed by a BIT STRING holding the
// PKCS#1 structure) are accepted. Each wrapper layer is decoded
// explicitly rather than scanned for.
func ParsePublicKey(der []byte) (*PublicKey, error) {
	tag, body, rest, err := readTLV(der)
	if err != nil {
		return nil, err
	}
	if tag != tagSequence || len(rest) != 0 {
		return nil, fmt.Errorf("expected top-level SEQUENCE: %w", ErrKeyParse)
	}

	// SubjectPublicKeyInfo opens with a nested AlgorithmIdentifier SEQUENCE.
	if len(body) > 0 && body[0] == tagSequence {
		_, _, afterAlg, err := readTLV(body)
		if err != nil {
			return nil, err
		}
		tag, bits, trailing, err := readTLV(afterAlg)
		if err != nil {
			return nil, err
		}
		if tag != tagBitString || len(trailing) != 0 {
			return nil, fmt.Errorf("expected BIT STRING: %w", ErrKeyParse)
		}
		if len(bits) == 0 || bits[0] != 0x00 {
			return nil, fmt.Errorf("unsupported BIT STRING padding: %w", ErrKeyParse)
		}
		return ParsePublicKey(bits[1:])
	}

	n, body, err := readInteger(body)
	if err != nil {
		return nil, err
	}
	e, body, err := readInteger(body)
	if err != nil {
		return nil, err
	}
	if len(body) != 0 {
		return nil, fmt.Errorf("trailing data in public key: %w", ErrKeyParse)
	}
	return &PublicKey{N: n, E: e}, nil
}

// ParsePrivateKey decodes a DER private key. Both the direct PKCS#1 form
// (SEQUENCE of version, n, e, d, p, q, dP, dQ, qInv) and the PKCS#8
// wrapping (version, AlgorithmIdentifier, OCTET STRING holding the
// PKCS#1 structure) are accepted.
func ParsePrivateKey(der []byte) (*PrivateKey, error) {
	tag, body, rest, err := readTLV(der)
	if err != nil {
		return nil, err
	}
	if tag != tagSequence || len(rest) != 0 {
		return nil, fmt.Errorf("expected top-level SEQUENCE: %w", ErrKeyParse)
	}

	version, body, err := readInteger(body)
	if err != nil {
		return nil, err
	}
	if version.Sign() != 0 {
		return nil, fmt.Errorf("unsupported key version %v: %w", version, ErrKeyParse)
	}

	// PKCS#8 follows the version with an AlgorithmIdentifier SEQUENCE and
	// an OCTET STRING carrying the PKCS#1 structure.
	if len(body) > 0 && body[0] == tagSequence {
		_, _, afterAlg, err := readTLV(body)
		if err != nil {
			return nil, err
		}
		tag, inner, trailing, err := readTLV(afterAlg)
		if err != nil {
			return nil, err
		}
		if tag != tagOctetString || len(trailing) != 0 {
			return nil, fmt.Errorf("expected OCTET STRING: %w", ErrKeyParse)
		}
		return ParsePrivateKey(inner)
	}

	fields := make([]*big.Int, 8)
	for i := range fields {
		fields[i], body, err = readInteger(body)
		if err != nil {
			return nil, err
		}
	}
	if len(body) != 0 {
		return nil, fmt.Errorf("trailing data in private key: %w", ErrKeyParse)
	}

	return &PrivateKey{
		PublicKey: PublicKey{N: fields[0], E: fields[1]},
		D:         fields[2],
		P:         fields[3],
		Q:         fields[4],
		DP:        fields[5],
		DQ:        fields[6],
		QInv:      fields[7],
	}, nil
}
