package bits

import "encoding/binary"

// Writer packs bits MSB-first into little-endian 32-bit words.
//
// Words are emitted lazily: a filled word is only appended when the next
// bit needs room, and Flush always appends the word in progress. A stream
// that received no bits at all still flushes as a single zero word, since
// a decoder always consumes whole words.
type Writer struct {
	out     []byte
	word    uint32
	mask    uint32
	started bool
	nbits   int
}

// NewWriter creates a Writer that appends words to dst.
func NewWriter(dst []byte) *Writer {
	return &Writer{out: dst}
}

// WriteBit appends a single bit. Any non-zero value writes a 1.
func (w *Writer) WriteBit(bit uint8) {
	w.mask >>= 1
	if w.mask == 0 {
		if w.started {
			w.out = binary.LittleEndian.AppendUint32(w.out, w.word)
		}
		w.started = true
		w.word = 0
		w.mask = 0x80000000
	}
	if bit != 0 {
		w.word |= w.mask
	}
	w.nbits++
}

// WriteCode appends the first n bits of code, which holds the bits
// MSB-first starting at code[0].
func (w *Writer) WriteCode(code []byte, n int) {
	for i := 0; i < n; i++ {
		w.WriteBit(code[i>>3] >> (7 - uint(i&7)) & 1)
	}
}

// BitsWritten returns the number of bits appended so far.
func (w *Writer) BitsWritten() int {
	return w.nbits
}

// Flush appends the word in progress, zero-padded, and returns the
// complete output. The Writer must not be used afterwards.
func (w *Writer) Flush() []byte {
	w.out = binary.LittleEndian.AppendUint32(w.out, w.word)
	w.word = 0
	w.mask = 0
	w.started = false
	return w.out
}
