// Package huffman builds the Huffman tree of the compressed format and lays
// it out as the flat node array read by the decoder.
//
// The tree shape is part of the wire format: leaves are created in
// ascending symbol order and merged by a plain linear scan whose tie-break
// order must not change. Everything here is scratch state owned by a single
// encode call.
package huffman

// Symbol widths supported by the format.
const (
	Width4 = 4
	Width8 = 8
)

// ValidWidth reports whether width is a supported symbol width.
func ValidWidth(width uint8) bool {
	return width == Width4 || width == Width8
}

// SymbolCount returns the alphabet size for width.
func SymbolCount(width uint8) int {
	return 1 << width
}

// Frequencies counts every width-bit sub-field of data. Sub-fields are
// taken from the most significant end of each byte down.
func Frequencies(data []byte, width uint8) []int {
	freqs := make([]int, SymbolCount(width))
	for _, b := range data {
		for shift := 8 - int(width); shift >= 0; shift -= int(width) {
			freqs[(b>>uint(shift))&byte(len(freqs)-1)]++
		}
	}
	return freqs
}

// ForEachSymbol calls fn for every width-bit sub-field of data in stream
// order: the least significant sub-field of a byte comes first, matching
// the order in which the decoder fills each output byte.
func ForEachSymbol(data []byte, width uint8, fn func(sym uint8)) {
	mask := byte(SymbolCount(width) - 1)
	for _, b := range data {
		for n := 0; n < 8; n += int(width) {
			fn(b & mask)
			b >>= width
		}
	}
}
