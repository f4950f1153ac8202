// Package nitrohuff provides a pure Go Huffman codec compatible with the
// Nintendo DS/GBA BIOS decompressor.
//
// Streams start with a 4-byte header holding the compression flag (0x24 for
// 4-bit symbols, 0x28 for 8-bit symbols) and the 24-bit decompressed size,
// followed by the tree node array and the bitstream in little-endian 32-bit
// words.
//
// # Basic Usage
//
// To compress and decompress a buffer:
//
//	comp, err := nitrohuff.Compress(data, nitrohuff.Width8)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	out, err := nitrohuff.Decompress(comp)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Raw Bodies
//
// Some containers store the decompressed size and width out of band.
// CompressRaw and DecompressRaw work on the body without the header.
//
// # Strict Mode
//
// Decompression is lenient by default: a truncated bitstream yields the bytes
// decoded so far. With Config.Strict the node array is validated before
// decoding and truncation is reported as ErrTruncatedBitstream alongside the
// decoded prefix.
//
// # Errors
//
// All errors wrap an Error code. Use IsFormatError and IsInvalidArgument to
// classify them, or errors.Is against a specific code.
//
// # Thread Safety
//
// All functions are safe for concurrent use. They share no state between
// calls.
package nitrohuff
