package classical

import (
	"errors"
	"strings"
	"testing"
)

func TestColumnar_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		key  string
		text string
	}{
		{"simple", "zebra", "wearediscovered"},
		{"key with repeats", "balloon", "flee at once"},
		{"single column", "a", "everything stays"},
		{"already aligned", "key", "abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ciphertext, err := ColumnarEncrypt(tt.text, tt.key)
			if err != nil {
				t.Fatalf("ColumnarEncrypt() error = %v", err)
			}
			back, err := ColumnarDecrypt(ciphertext, tt.key)
			if err != nil {
				t.Fatalf("ColumnarDecrypt() error = %v", err)
			}
			if !strings.HasPrefix(back, tt.text) {
				t.Errorf("round trip = %q, want prefix %q", back, tt.text)
			}
			for _, c := range back[len(tt.text):] {
				if c != 'x' {
					t.Errorf("padding byte = %q, want 'x'", c)
				}
			}
		})
	}
}

func TestColumnarEncrypt_ColumnOrder(t *testing.T) {
	// Key "cab" reads columns in order b(2), a(1), c(0).
	got, err := ColumnarEncrypt("123456", "cab")
	if err != nil {
		t.Fatalf("ColumnarEncrypt() error = %v", err)
	}
	if got != "253614" {
		t.Errorf("ColumnarEncrypt() = %q, want %q", got, "253614")
	}
}

func TestColumnarEncrypt_DuplicateTieBreak(t *testing.T) {
	// "abab" deduplicates to "ab"; ties never arise after dedup but the
	// column count must be 2, not 4.
	got, err := ColumnarEncrypt("1234", "abab")
	if err != nil {
		t.Fatalf("ColumnarEncrypt() error = %v", err)
	}
	if got != "1324" {
		t.Errorf("ColumnarEncrypt() = %q, want %q", got, "1324")
	}
}

func TestColumnarDecrypt_InvalidLength(t *testing.T) {
	_, err := ColumnarDecrypt("12345", "ab")
	if !errors.Is(err, ErrInvalidLength) {
		t.Errorf("expected ErrInvalidLength, got %v", err)
	}
}

func TestColumnar_EmptyKey(t *testing.T) {
	if _, err := ColumnarEncrypt("text", ""); !errors.Is(err, ErrInvalidKeyFormat) {
		t.Errorf("expected ErrInvalidKeyFormat, got %v", err)
	}
}
