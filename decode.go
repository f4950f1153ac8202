package nitrohuff

import (
	"errors"
	"fmt"

	"github.com/llehouerou/go-nitrohuff/internal/bits"
	"github.com/llehouerou/go-nitrohuff/internal/huffman"
)

// Decompress decodes a complete stream whose header carries either
// Huffman flag.
func Decompress(data []byte) ([]byte, error) {
	return DecompressWithConfig(data, Config{})
}

// DecompressWithConfig is Decompress with decoding options.
func DecompressWithConfig(data []byte, cfg Config) ([]byte, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}
	return decompressRaw(data[HeaderSize:], int(h.Size), h.Width(), cfg)
}

// Decompress4Bit decodes a complete stream that must carry the 4-bit flag.
func Decompress4Bit(data []byte) ([]byte, error) {
	h, err := parseHeaderFor(data, Width4)
	if err != nil {
		return nil, err
	}
	return decompressRaw(data[HeaderSize:], int(h.Size), Width4, Config{})
}

// Decompress8Bit decodes a complete stream that must carry the 8-bit flag.
func Decompress8Bit(data []byte) ([]byte, error) {
	h, err := parseHeaderFor(data, Width8)
	if err != nil {
		return nil, err
	}
	return decompressRaw(data[HeaderSize:], int(h.Size), Width8, Config{})
}

// DecompressRaw decodes a header-less body into size bytes.
//
// A bitstream that ends before size bytes are produced is not an error:
// decoding stops at the last complete word and the bytes decoded so far are
// returned, so the result may be shorter than size. Node links that leave
// the node array fail with ErrNodeOutOfRange.
func DecompressRaw(body []byte, size int, width BitWidth) ([]byte, error) {
	return DecompressRawWithConfig(body, size, width, Config{})
}

// DecompressRawWithConfig is DecompressRaw with decoding options. In strict
// mode a short bitstream returns the decoded prefix together with
// ErrTruncatedBitstream.
func DecompressRawWithConfig(body []byte, size int, width BitWidth, cfg Config) ([]byte, error) {
	if !width.Valid() {
		return nil, ErrInvalidBitWidth
	}
	if size < 0 {
		return nil, ErrNegativeSize
	}
	return decompressRaw(body, size, width, cfg)
}

func decompressRaw(body []byte, size int, width BitWidth, cfg Config) ([]byte, error) {
	if len(body) == 0 {
		return nil, ErrEmptyNodeArray
	}
	end := huffman.ArrayLen(body[0])
	if len(body) < end {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrTruncatedNodeArray, end, len(body))
	}
	if cfg.Strict {
		if _, err := huffman.Walk(body[:end], uint8(width)); err != nil {
			return nil, nodeArrayError(err)
		}
	}

	out := make([]byte, size)
	r := bits.NewReader(body[end:])
	w := uint(width)
	var (
		pos   = 1 // Root record
		n     int
		shift uint
	)
	for n < size {
		bit, ok := r.ReadBit()
		if !ok {
			break
		}

		rec := body[pos]
		next := huffman.ChildPair(pos, rec)
		leaf := rec & huffman.LeftLeaf
		if bit != 0 {
			next++
			leaf = rec & huffman.RightLeaf
		}
		if next >= end {
			return nil, fmt.Errorf("%w: record %d links to %d", ErrNodeOutOfRange, pos, next)
		}

		if leaf == 0 {
			pos = next
			continue
		}
		out[n] |= body[next] << shift
		shift = (shift + w) & 7
		if shift == 0 {
			n++
		}
		pos = 1
	}

	if n < size {
		if cfg.Strict {
			return out[:n], fmt.Errorf("%w: decoded %d of %d bytes", ErrTruncatedBitstream, n, size)
		}
		return out[:n], nil
	}
	return out, nil
}

// nodeArrayError maps a node array validation failure onto an error code.
func nodeArrayError(err error) error {
	var code Error
	switch {
	case errors.Is(err, huffman.ErrShortArray):
		code = ErrTruncatedNodeArray
	case errors.Is(err, huffman.ErrChildOutOfRange):
		code = ErrNodeOutOfRange
	case errors.Is(err, huffman.ErrSymbolOutOfRange):
		code = ErrSymbolOutOfRange
	case errors.Is(err, huffman.ErrSharedRecord):
		code = ErrSharedNode
	case errors.Is(err, huffman.ErrOffsetOverflow):
		code = ErrNodeOffsetOverflow
	default:
		return err
	}
	return fmt.Errorf("%w: %v", code, err)
}
