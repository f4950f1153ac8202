// Package bits reads and writes the word-packed bitstream used by the
// compressed payload.
//
// Bits are ordered MSB-first inside 32-bit words and the words are stored
// little-endian, so the first bit of a stream is bit 31 of the first word.
package bits

import "encoding/binary"

// WordSize is the number of bytes in one bitstream word.
const WordSize = 4

// Reader reads bits from a sequence of little-endian 32-bit words.
//
// It keeps one word loaded and walks a single-bit mask from bit 31 down to
// bit 0. The next word is only fetched once the mask runs out, so the reader
// never looks further ahead than the word currently being consumed.
//
// A trailing fragment shorter than a word is never read: the stream simply
// ends there and Exhausted reports true.
type Reader struct {
	buffer    []byte // Bitstream bytes
	pos       int    // Byte position of the next word to load
	word      uint32 // Current word
	mask      uint32 // Bit of word returned by the next read, 0 forces a load
	words     int    // Words loaded so far
	exhausted bool   // A load was attempted past the last full word
}

// NewReader creates a Reader over data. No word is loaded until the first
// call to ReadBit.
func NewReader(data []byte) *Reader {
	return &Reader{buffer: data}
}

// load fetches the next word. It returns false when fewer than WordSize
// bytes remain.
func (r *Reader) load() bool {
	if len(r.buffer)-r.pos < WordSize {
		r.exhausted = true
		return false
	}
	r.word = binary.LittleEndian.Uint32(r.buffer[r.pos:])
	r.pos += WordSize
	r.words++
	r.mask = 0x80000000
	return true
}

// ReadBit returns the next bit of the stream. The second result is false
// once the stream is exhausted, in which case the bit is 0.
func (r *Reader) ReadBit() (uint8, bool) {
	if r.exhausted {
		return 0, false
	}
	r.mask >>= 1
	if r.mask == 0 && !r.load() {
		return 0, false
	}
	if r.word&r.mask != 0 {
		return 1, true
	}
	return 0, true
}

// Exhausted reports whether a read ran past the last complete word.
func (r *Reader) Exhausted() bool {
	return r.exhausted
}

// WordsRead returns the number of words loaded so far.
func (r *Reader) WordsRead() int {
	return r.words
}

// Pos returns the byte offset of the next word to load.
func (r *Reader) Pos() int {
	return r.pos
}
