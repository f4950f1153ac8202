package nitrohuff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspect(t *testing.T) {
	tests := []struct {
		width BitWidth
		want  Info
	}{
		{Width8, Info{Width: Width8, Size: 11, NodeArrayLen: 12, LeafCount: 5, InternalCount: 4, MaxCodeLen: 3, StreamWords: 1}},
		{Width4, Info{Width: Width4, Size: 11, NodeArrayLen: 12, LeafCount: 5, InternalCount: 4, MaxCodeLen: 4, StreamWords: 2}},
	}

	for _, tt := range tests {
		comp, err := Compress([]byte("ABRACADABRA"), tt.width)
		require.NoError(t, err)

		info, err := Inspect(comp)
		require.NoError(t, err)
		assert.Equal(t, tt.want, info)
	}
}

func TestInspect_LargeTree(t *testing.T) {
	comp, err := Compress(linearData(), Width8)
	require.NoError(t, err)

	info, err := Inspect(comp)
	require.NoError(t, err)
	assert.Equal(t, 256, info.LeafCount)
	assert.Equal(t, 255, info.InternalCount)
	assert.Equal(t, 512, info.NodeArrayLen)
	assert.Zero(t, info.TrailingBytes)
	assert.Contains(t, info.String(), "huff8 size=32896")
}

func TestInspect_Errors(t *testing.T) {
	_, err := Inspect([]byte{0x28, 0, 0})
	assert.ErrorIs(t, err, ErrTruncatedHeader)

	_, err = Inspect([]byte{0x28, 1, 0, 0})
	assert.ErrorIs(t, err, ErrEmptyNodeArray)

	_, err = Inspect([]byte{0x28, 1, 0, 0, 0x03, 0xC0})
	assert.ErrorIs(t, err, ErrTruncatedNodeArray)

	_, err = Inspect([]byte{0x24, 1, 0, 0, 0x01, 0xC0, 0x00, 0x11})
	assert.ErrorIs(t, err, ErrSymbolOutOfRange)
}
