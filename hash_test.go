package cipherstudio

import (
	"bytes"
	"testing"
)

func TestSHA256Hex(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"empty", "", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"abc", "abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SHA256Hex([]byte(tt.message)); got != tt.want {
				t.Errorf("SHA256Hex(%q) = %s, want %s", tt.message, got, tt.want)
			}
		})
	}
}

func TestSHA1Hex(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"empty", "", "da39a3ee5e6b4b0d3255bfef95601890afd80709"},
		{"abc", "abc", "a9993e364706816aba3e25717850c26c9cd0d89d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SHA1Hex([]byte(tt.message)); got != tt.want {
				t.Errorf("SHA1Hex(%q) = %s, want %s", tt.message, got, tt.want)
			}
		})
	}
}

func TestHMACSHA256Hex(t *testing.T) {
	// RFC 4231 test cases 1 and 2.
	tests := []struct {
		name    string
		message []byte
		key     []byte
		want    string
	}{
		{
			name:    "hi there",
			message: []byte("Hi There"),
			key:     bytes.Repeat([]byte{0x0b}, 20),
			want:    "b0344c61d8db38535ca8afceaf0bf12b881dc200c9833da726e9376c2e32cff7",
		},
		{
			name:    "jefe",
			message: []byte("what do ya want for nothing?"),
			key:     []byte("Jefe"),
			want:    "5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HMACSHA256Hex(tt.message, tt.key); got != tt.want {
				t.Errorf("HMACSHA256Hex() = %s, want %s", got, tt.want)
			}
		})
	}
}
