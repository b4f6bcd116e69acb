package classical

import "sort"

// columnarOrder deduplicates the key (first occurrence kept) and returns
// the column read order: column indices sorted by key character, ties
// broken by original column index.
func columnarOrder(key string) ([]int, int, error) {
	var dedup []byte
	seen := make(map[byte]bool)
	for i := 0; i < len(key); i++ {
		c := key[i]
		if seen[c] {
			continue
		}
		seen[c] = true
		dedup = append(dedup, c)
	}
	if len(dedup) == 0 {
		return nil, 0, ErrInvalidKeyFormat
	}

	order := make([]int, len(dedup))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return dedup[order[a]] < dedup[order[b]]
	})
	return order, len(dedup), nil
}

// ColumnarEncrypt lays text into rows of width equal to the deduplicated
// key length, padding with 'x', and reads the columns in sorted-key order.
func ColumnarEncrypt(text, key string) (string, error) {
	order, cols, err := columnarOrder(key)
	if err != nil {
		return "", err
	}

	grid := []byte(text)
	for len(grid)%cols != 0 {
		grid = append(grid, 'x')
	}
	rows := len(grid) / cols

	out := make([]byte, 0, len(grid))
	for _, col := range order {
		for row := 0; row < rows; row++ {
			out = append(out, grid[row*cols+col])
		}
	}
	return string(out), nil
}

// ColumnarDecrypt inverts the column permutation. The ciphertext length
// must be an exact multiple of the deduplicated key length.
func ColumnarDecrypt(text, key string) (string, error) {
	order, cols, err := columnarOrder(key)
	if err != nil {
		return "", err
	}
	if len(text)%cols != 0 {
		return "", ErrInvalidLength
	}
	rows := len(text) / cols

	grid := make([]byte, len(text))
	pos := 0
	for _, col := range order {
		for row := 0; row < rows; row++ {
			grid[row*cols+col] = text[pos]
			pos++
		}
	}
	return string(grid), nil
}
