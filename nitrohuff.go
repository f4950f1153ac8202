package nitrohuff

import "github.com/llehouerou/go-nitrohuff/internal/huffman"

// BitWidth is the size in bits of one Huffman symbol.
type BitWidth uint8

// Supported symbol widths.
const (
	Width4 BitWidth = huffman.Width4 // Each byte is coded as two nibbles, low nibble first
	Width8 BitWidth = huffman.Width8 // Each byte is one symbol
)

// Valid reports whether w is a supported symbol width.
func (w BitWidth) Valid() bool {
	return huffman.ValidWidth(uint8(w))
}

// Flag returns the header flag for w. It returns 0 for unsupported widths.
func (w BitWidth) Flag() Flag {
	switch w {
	case Width4:
		return Flag4Bit
	case Width8:
		return Flag8Bit
	default:
		return 0
	}
}

// Flag is the compression type byte that opens a compressed stream.
type Flag uint8

// Huffman compression flags.
const (
	Flag4Bit Flag = 0x24
	Flag8Bit Flag = 0x28
)

// Width returns the symbol width announced by f, or 0 if f is not a
// Huffman flag.
func (f Flag) Width() BitWidth {
	switch f {
	case Flag4Bit:
		return Width4
	case Flag8Bit:
		return Width8
	default:
		return 0
	}
}

// Stream layout limits.
const (
	HeaderSize          = 4        // Flag byte + 24-bit size
	MaxDecompressedSize = 0xFFFFFF // Largest size the header can carry
)

// Config contains decoding options.
type Config struct {
	// Strict validates the whole node array before decoding and reports a
	// bitstream that ends early as ErrTruncatedBitstream. By default a
	// short bitstream silently yields a shorter output, as on hardware.
	Strict bool
}
