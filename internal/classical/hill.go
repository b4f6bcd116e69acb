package classical

// hillKeyMatrix parses a 9-letter key into a row-major 3x3 matrix of
// values 0-25 and verifies it is invertible mod 26.
func hillKeyMatrix(key string) ([3][3]int, error) {
	var m [3][3]int
	if len(key) != 9 {
		return m, ErrInvalidKeyFormat
	}
	for i := 0; i < 9; i++ {
		c := upperLetter(key[i])
		if c == 0 {
			return m, ErrInvalidKeyFormat
		}
		m[i/3][i%3] = int(c - 'A')
	}

	det := mod26(determinant3(m))
	if gcd(det, 26) != 1 {
		return m, ErrNonInvertibleKey
	}
	return m, nil
}

func determinant3(m [3][3]int) int {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// inverseMatrix3 computes the modular inverse of m via the adjugate times
// the modular inverse of the determinant, all mod 26. The caller has
// already verified invertibility.
func inverseMatrix3(m [3][3]int) [3][3]int {
	detInv := modInverse26(mod26(determinant3(m)))

	var inv [3][3]int
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			// Cofactor of m[j][i] (adjugate transposes).
			cofactor := m[(j+1)%3][(i+1)%3]*m[(j+2)%3][(i+2)%3] -
				m[(j+1)%3][(i+2)%3]*m[(j+2)%3][(i+1)%3]
			inv[i][j] = mod26(cofactor * detInv)
		}
	}
	return inv
}

func mod26(x int) int {
	x %= 26
	if x < 0 {
		x += 26
	}
	return x
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// modInverse26 finds x with a*x = 1 (mod 26) by exhaustive search over
// the 26 residues. Only called for invertible a.
func modInverse26(a int) int {
	for x := 1; x < 26; x++ {
		if a*x%26 == 1 {
			return x
		}
	}
	return 0
}

// hillPrepare uppercases text, strips non-letters, and pads with 'X' to a
// multiple of 3.
func hillPrepare(text string) []byte {
	out := make([]byte, 0, len(text))
	for i := 0; i < len(text); i++ {
		if c := upperLetter(text[i]); c != 0 {
			out = append(out, c)
		}
	}
	for len(out)%3 != 0 {
		out = append(out, 'X')
	}
	return out
}

// hillApply multiplies each 3-letter block, taken as a column vector, by
// the matrix mod 26.
func hillApply(m [3][3]int, blocks []byte) []byte {
	out := make([]byte, len(blocks))
	for i := 0; i < len(blocks); i += 3 {
		for row := 0; row < 3; row++ {
			sum := 0
			for col := 0; col < 3; col++ {
				sum += m[row][col] * int(blocks[i+col]-'A')
			}
			out[i+row] = byte(mod26(sum)) + 'A'
		}
	}
	return out
}

// HillEncrypt encrypts text with a 3x3 Hill cipher keyed by a 9-letter key.
func HillEncrypt(text, key string) (string, error) {
	m, err := hillKeyMatrix(key)
	if err != nil {
		return "", err
	}
	return string(hillApply(m, hillPrepare(text))), nil
}

// HillDecrypt decrypts Hill ciphertext by applying the inverse key matrix.
// Padding introduced during encryption is not removed.
func HillDecrypt(text, key string) (string, error) {
	m, err := hillKeyMatrix(key)
	if err != nil {
		return "", err
	}
	return string(hillApply(inverseMatrix3(m), hillPrepare(text))), nil
}
