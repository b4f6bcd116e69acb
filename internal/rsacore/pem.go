package rsacore

import (
	"fmt"
	"strings"

	"github.com/cipherstudio/crypto-go/internal/codec"
)

// PEM labels emitted for the two key halves (PKCS#1 conventions).
const (
	PublicKeyLabel  = "RSA PUBLIC KEY"
	PrivateKeyLabel = "RSA PRIVATE KEY"
)

const pemLineLength = 64

// EncodePEM wraps DER bytes in a labeled PEM envelope with the Base64
// body broken at 64 columns.
func EncodePEM(label string, der []byte) string {
	body := codec.ToBase64(der)

	var b strings.Builder
	fmt.Fprintf(&b, "-----BEGIN %s-----\n", label)
	for len(body) > pemLineLength {
		b.WriteString(body[:pemLineLength])
		b.WriteByte('\n')
		body = body[pemLineLength:]
	}
	b.WriteString(body)
	b.WriteByte('\n')
	fmt.Fprintf(&b, "-----END %s-----\n", label)
	return b.String()
}

// DecodePEM extracts the label and DER bytes from a PEM envelope.
func DecodePEM(pemText string) (label string, der []byte, err error) {
	text := strings.TrimSpace(pemText)

	const beginPrefix = "-----BEGIN "
	const markerSuffix = "-----"
	if !strings.HasPrefix(text, beginPrefix) {
		return "", nil, fmt.Errorf("missing BEGIN marker: %w", ErrKeyParse)
	}
	headerEnd := strings.Index(text, "\n")
	if headerEnd < 0 {
		return "", nil, fmt.Errorf("missing PEM body: %w", ErrKeyParse)
	}
	header := strings.TrimSpace(text[:headerEnd])
	if !strings.HasSuffix(header, markerSuffix) {
		return "", nil, fmt.Errorf("malformed BEGIN marker: %w", ErrKeyParse)
	}
	label = header[len(beginPrefix) : len(header)-len(markerSuffix)]

	footer := fmt.Sprintf("-----END %s-----", label)
	footerStart := strings.Index(text, footer)
	if footerStart < 0 {
		return "", nil, fmt.Errorf("missing END marker for %q: %w", label, ErrKeyParse)
	}

	body := text[headerEnd:footerStart]
	body = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, body)

	der, decodeErr := codec.FromBase64(body)
	if decodeErr != nil {
		return "", nil, fmt.Errorf("bad PEM body: %w", ErrKeyParse)
	}
	return label, der, nil
}

// MarshalPublicKeyPEM renders pub as a PKCS#1 PEM block.
func MarshalPublicKeyPEM(pub *PublicKey) string {
	return EncodePEM(PublicKeyLabel, MarshalPublicKey(pub))
}

// MarshalPrivateKeyPEM renders priv as a PKCS#1 PEM block.
func MarshalPrivateKeyPEM(priv *PrivateKey) string {
	return EncodePEM(PrivateKeyLabel, MarshalPrivateKey(priv))
}

// ParsePublicKeyPEM decodes a PEM public key in either PKCS#1
// ("RSA PUBLIC KEY") or SubjectPublicKeyInfo ("PUBLIC KEY") form.
func ParsePublicKeyPEM(pemText string) (*PublicKey, error) {
	label, der, err := DecodePEM(pemText)
	if err != nil {
		return nil, err
	}
	switch label {
	case PublicKeyLabel, "PUBLIC KEY":
		return ParsePublicKey(der)
	default:
		return nil, fmt.Errorf("unexpected PEM label %q: %w", label, ErrKeyParse)
	}
}

// ParsePrivateKeyPEM decodes a PEM private key in either PKCS#1
// ("RSA PRIVATE KEY") or PKCS#8 ("PRIVATE KEY") form.
func ParsePrivateKeyPEM(pemText string) (*PrivateKey, error) {
	label, der, err := DecodePEM(pemText)
	if err != nil {
		return nil, err
	}
	switch label {
	case PrivateKeyLabel, "PRIVATE KEY":
		return ParsePrivateKey(der)
	default:
		return nil, fmt.Errorf("unexpected PEM label %q: %w", label, ErrKeyParse)
	}
}
