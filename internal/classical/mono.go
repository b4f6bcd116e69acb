// Package classical implements the pre-modern ciphers: monoalphabetic
// substitution, the 3x3 Hill matrix cipher, and columnar transposition.
// All three operate on the 26-letter Latin alphabet with plain integer
// and character arithmetic.
package classical

// substitutionAlphabet builds the 26-letter substitution alphabet for a
// monoalphabetic key: the key's letters uppercased and deduplicated in
// first-seen order, followed by the remaining letters A-Z in order.
func substitutionAlphabet(key string) ([26]byte, error) {
	var alphabet [26]byte
	var seen [26]bool
	n := 0

	for i := 0; i < len(key); i++ {
		c := upperLetter(key[i])
		if c == 0 || seen[c-'A'] {
			continue
		}
		seen[c-'A'] = true
		alphabet[n] = c
		n++
	}
	if n == 0 {
		return alphabet, ErrInvalidKeyFormat
	}

	for c := byte('A'); c <= 'Z'; c++ {
		if !seen[c-'A'] {
			alphabet[n] = c
			n++
		}
	}
	return alphabet, nil
}

// upperLetter returns the uppercase form of an ASCII letter, or 0 for
// any other byte.
func upperLetter(c byte) byte {
	switch {
	case c >= 'A' && c <= 'Z':
		return c
	case c >= 'a' && c <= 'z':
		return c - 'a' + 'A'
	default:
		return 0
	}
}

// MonoEncrypt encrypts text with a monoalphabetic substitution keyed by
// key. Case is preserved and non-letter characters pass through unchanged.
func MonoEncrypt(text, key string) (string, error) {
	alphabet, err := substitutionAlphabet(key)
	if err != nil {
		return "", err
	}

	out := []byte(text)
	for i := 0; i < len(out); i++ {
		c := out[i]
		switch {
		case c >= 'A' && c <= 'Z':
			out[i] = alphabet[c-'A']
		case c >= 'a' && c <= 'z':
			out[i] = alphabet[c-'a'] - 'A' + 'a'
		}
	}
	return string(out), nil
}

// MonoDecrypt inverts MonoEncrypt with the same key.
func MonoDecrypt(text, key string) (string, error) {
	alphabet, err := substitutionAlphabet(key)
	if err != nil {
		return "", err
	}

	var inverse [26]byte
	for i, c := range alphabet {
		inverse[c-'A'] = byte('A' + i)
	}

	out := []byte(text)
	for i := 0; i < len(out); i++ {
		c := out[i]
		switch {
		case c >= 'A' && c <= 'Z':
			out[i] = inverse[c-'A']
		case c >= 'a' && c <= 'z':
			out[i] = inverse[c-'a'] - 'A' + 'a'
		}
	}
	return string(out), nil
}
