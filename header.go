package nitrohuff

import (
	"encoding/binary"
	"fmt"
)

// Header is the 4-byte little-endian word in front of a compressed body:
// the flag in the low byte and the decompressed size in the upper 24 bits.
type Header struct {
	Flag Flag
	Size uint32
}

// Width returns the symbol width announced by the header.
func (h Header) Width() BitWidth {
	return h.Flag.Width()
}

// AppendTo appends the encoded header to dst.
func (h Header) AppendTo(dst []byte) []byte {
	return binary.LittleEndian.AppendUint32(dst, h.Size<<8|uint32(h.Flag))
}

// ParseHeader decodes the header at the start of data. It fails with
// ErrTruncatedHeader on short input and ErrInvalidFlag when the flag is not
// a Huffman flag.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, ErrTruncatedHeader
	}
	info := binary.LittleEndian.Uint32(data)
	h := Header{
		Flag: Flag(info & 0xFF),
		Size: info >> 8,
	}
	if !h.Width().Valid() {
		return Header{}, fmt.Errorf("%w: expected 0x%02x or 0x%02x, got 0x%02x",
			ErrInvalidFlag, uint8(Flag4Bit), uint8(Flag8Bit), uint8(h.Flag))
	}
	return h, nil
}

// parseHeaderFor is ParseHeader restricted to the flag of width.
func parseHeaderFor(data []byte, width BitWidth) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, ErrTruncatedHeader
	}
	h, err := ParseHeader(data)
	if err != nil || h.Flag != width.Flag() {
		return Header{}, fmt.Errorf("%w: expected 0x%02x, got 0x%02x",
			ErrInvalidFlag, uint8(width.Flag()), data[0])
	}
	return h, nil
}
