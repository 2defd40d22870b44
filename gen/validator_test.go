package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidBin(t *testing.T) {
	tests := []struct {
		bin   string
		valid bool
	}{
		{"", false},
		{"1", false},
		{"12", false},
		{"123", true},
		{"1234", true},
		{"12345", false},
		{"123456", true},
		{"1234567", false},
		{"12a4", false},
		{"12345a", false},
		{"4111", true},
		{"000", true},
		{" 123", false},
		{"12.4", false},
		{"-123", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.valid, IsValidBin(tt.bin), "bin %q", tt.bin)
	}
}

func TestIsValidBinIdempotent(t *testing.T) {
	for _, bin := range []string{"123", "12345", "abc", "411111"} {
		first := IsValidBin(bin)
		assert.Equal(t, first, IsValidBin(bin), "bin %q", bin)
	}
}
