package nitrohuff

import (
	"fmt"

	"github.com/llehouerou/go-nitrohuff/internal/bits"
	"github.com/llehouerou/go-nitrohuff/internal/huffman"
)

// Compress compresses data into a complete stream: the 4-byte header
// followed by the body produced by CompressRaw.
//
// It fails with ErrInvalidBitWidth for widths other than 4 and 8, and with
// ErrInputTooLarge when len(data) does not fit the 24-bit size field.
func Compress(data []byte, width BitWidth) ([]byte, error) {
	if !width.Valid() {
		return nil, ErrInvalidBitWidth
	}
	if len(data) > MaxDecompressedSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrInputTooLarge, len(data))
	}
	h := Header{Flag: width.Flag(), Size: uint32(len(data))}
	return compressRaw(h.AppendTo(nil), data, width)
}

// Compress4Bit compresses data with 4-bit symbols.
func Compress4Bit(data []byte) ([]byte, error) {
	return Compress(data, Width4)
}

// Compress8Bit compresses data with 8-bit symbols.
func Compress8Bit(data []byte) ([]byte, error) {
	return Compress(data, Width8)
}

// CompressRaw compresses data without a header, for containers that store
// the type and size elsewhere. The body is the node array (size byte
// first) followed by the bitstream words.
//
// The output is a pure function of data and width.
func CompressRaw(data []byte, width BitWidth) ([]byte, error) {
	if !width.Valid() {
		return nil, ErrInvalidBitWidth
	}
	return compressRaw(nil, data, width)
}

// compressRaw appends the compressed body of data to dst.
func compressRaw(dst, data []byte, width BitWidth) ([]byte, error) {
	w := uint8(width)

	tree := huffman.Build(huffman.Frequencies(data, w))
	nodes, err := huffman.Serialize(tree)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNodeOffsetOverflow, err)
	}
	codes := tree.Codes(huffman.SymbolCount(w))

	bw := bits.NewWriter(append(dst, nodes...))
	huffman.ForEachSymbol(data, w, func(sym uint8) {
		c := &codes[sym]
		bw.WriteCode(c.Bits, c.Len)
	})
	return bw.Flush(), nil
}
