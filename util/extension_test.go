package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinaryExt(t *testing.T) {
	tests := []struct {
		ext  string
		want bool
	}{
		{"", false},
		{".txt", false},
		{".ops", false},
		{".zip", true},
		{".ZIP", true},
		{".exe", true},
		{"png", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, BinaryExt(tt.ext), "extension %q", tt.ext)
	}
}
