package huffman

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidWidth(t *testing.T) {
	for w := 0; w < 16; w++ {
		want := w == 4 || w == 8
		assert.Equal(t, want, ValidWidth(uint8(w)), "width %d", w)
	}
}

func TestFrequencies(t *testing.T) {
	tests := []struct {
		name  string
		data  []byte
		width uint8
		want  map[int]int
	}{
		{
			name:  "8-bit counts whole bytes",
			data:  []byte{0, 0, 0, 1},
			width: Width8,
			want:  map[int]int{0: 3, 1: 1},
		},
		{
			name:  "4-bit counts both nibbles",
			data:  []byte{0x12, 0x34, 0x12},
			width: Width4,
			want:  map[int]int{1: 2, 2: 2, 3: 1, 4: 1},
		},
		{
			name:  "empty input",
			data:  nil,
			width: Width4,
			want:  map[int]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			freqs := Frequencies(tt.data, tt.width)
			require.Len(t, freqs, SymbolCount(tt.width))
			for sym, n := range freqs {
				assert.Equal(t, tt.want[sym], n, "symbol %d", sym)
			}
		})
	}
}

func TestForEachSymbol_LowSubfieldFirst(t *testing.T) {
	var got []uint8
	ForEachSymbol([]byte{0x12, 0xAB}, Width4, func(sym uint8) {
		got = append(got, sym)
	})
	require.Equal(t, []uint8{0x2, 0x1, 0xB, 0xA}, got)

	got = got[:0]
	ForEachSymbol([]byte{0x12, 0xAB}, Width8, func(sym uint8) {
		got = append(got, sym)
	})
	require.Equal(t, []uint8{0x12, 0xAB}, got)
}

func TestForEachSymbol_MatchesFrequencies(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	for _, w := range []uint8{Width4, Width8} {
		counts := make([]int, SymbolCount(w))
		ForEachSymbol(data, w, func(sym uint8) { counts[sym]++ })
		assert.Equal(t, Frequencies(data, w), counts, "width %d", w)
	}
}
