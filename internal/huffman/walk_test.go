package huffman

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayLen(t *testing.T) {
	assert.Equal(t, 2, ArrayLen(0))
	assert.Equal(t, 4, ArrayLen(1))
	assert.Equal(t, 512, ArrayLen(255))
}

func TestWalk_Stats(t *testing.T) {
	st, err := Walk([]byte{0x03, 0x80, 0x00, 0xC0, 0x01, 0x02, 0x00, 0x00}, Width4)
	require.NoError(t, err)
	assert.Equal(t, Stats{Leaves: 3, Internal: 2, MaxDepth: 2}, st)
}

func TestWalk_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		arr   []byte
		width uint8
		want  error
	}{
		{"empty", nil, Width8, ErrShortArray},
		{"size byte only", []byte{0x00}, Width8, ErrShortArray},
		{"shorter than size byte", []byte{0x03, 0xC0, 0x00, 0x01}, Width8, ErrShortArray},
		{"root links past end", []byte{0x01, 0xC1, 0x00, 0x01}, Width8, ErrChildOutOfRange},
		{"inner record links past end", []byte{0x01, 0x80, 0x00, 0x3F}, Width8, ErrChildOutOfRange},
		{"4-bit leaf too wide", []byte{0x01, 0xC0, 0x00, 0x10}, Width4, ErrSymbolOutOfRange},
		{"pair linked twice", []byte{0x03, 0x00, 0x00, 0x00, 0xC0, 0xC0, 0x00, 0x00}, Width8, ErrSharedRecord},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Walk(tt.arr, tt.width)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v, want %v", err, tt.want)
		})
	}
}
