package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/klauspost/compress/huff0"

	"github.com/llehouerou/go-nitrohuff"
	"github.com/llehouerou/go-nitrohuff/internal/huffman"
)

const compressedExt = ".huff"

type options struct {
	width  nitrohuff.BitWidth
	config nitrohuff.Config
	output string
}

type command func(log logger.Logger, opts options, filename string) error

var commands = map[string]command{
	"compress":   compressFile,
	"decompress": decompressFile,
	"info":       infoFile,
	"stats":      statsFile,
}

func newOptions(w int, strict bool, output string, inputs int) (options, error) {
	bw := nitrohuff.BitWidth(w)
	if w < 0 || w > 0xFF || !bw.Valid() {
		return options{}, fmt.Errorf("%w: %d", nitrohuff.ErrInvalidBitWidth, w)
	}
	if output != "" && inputs > 1 {
		return options{}, errors.New("--output requires a single input file")
	}
	return options{
		width:  bw,
		config: nitrohuff.Config{Strict: strict},
		output: output,
	}, nil
}

func readInput(filename string) ([]byte, error) {
	if filename == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	return os.ReadFile(filename)
}

func writeOutput(filename string, data []byte) error {
	if filename == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(filename, data, 0o644)
}

// outputName picks the destination for a compress or decompress run.
func outputName(opts options, filename string, compress bool) string {
	switch {
	case opts.output != "":
		return opts.output
	case filename == "-":
		return "-"
	case compress:
		return filename + compressedExt
	case strings.HasSuffix(filename, compressedExt) && len(filename) > len(compressedExt):
		return strings.TrimSuffix(filename, compressedExt)
	default:
		return filename + ".out"
	}
}

func compressFile(log logger.Logger, opts options, filename string) error {
	data, err := readInput(filename)
	if err != nil {
		return err
	}
	comp, err := nitrohuff.Compress(data, opts.width)
	if err != nil {
		return err
	}
	dst := outputName(opts, filename, true)
	if err := writeOutput(dst, comp); err != nil {
		return err
	}
	log.Infof("%s: %d -> %d bytes (huff%d) %s", filename, len(data), len(comp), opts.width, dst)
	return nil
}

func decompressFile(log logger.Logger, opts options, filename string) error {
	data, err := readInput(filename)
	if err != nil {
		return err
	}
	out, err := nitrohuff.DecompressWithConfig(data, opts.config)
	if err != nil {
		return err
	}
	dst := outputName(opts, filename, false)
	if err := writeOutput(dst, out); err != nil {
		return err
	}
	log.Infof("%s: %d -> %d bytes %s", filename, len(data), len(out), dst)
	return nil
}

func infoFile(log logger.Logger, _ options, filename string) error {
	data, err := readInput(filename)
	if err != nil {
		return err
	}
	info, err := nitrohuff.Inspect(data)
	if err != nil {
		return err
	}
	fmt.Printf("File: %s\n", filename)
	printInfo(os.Stdout, info)
	if info.TrailingBytes != 0 {
		log.Infof("%s: %d bytes after the last bitstream word", filename, info.TrailingBytes)
	}
	return nil
}

func printInfo(w io.Writer, info nitrohuff.Info) {
	fmt.Fprintf(w, "  Width: %d-bit (flag 0x%02x)\n", info.Width, info.Width.Flag())
	fmt.Fprintf(w, "  Decompressed size: %d\n", info.Size)
	fmt.Fprintf(w, "  Node array: %d bytes\n", info.NodeArrayLen)
	fmt.Fprintf(w, "  Leaves: %d\n", info.LeafCount)
	fmt.Fprintf(w, "  Internal nodes: %d\n", info.InternalCount)
	fmt.Fprintf(w, "  Longest code: %d bits\n", info.MaxCodeLen)
	fmt.Fprintf(w, "  Bitstream: %d words\n", info.StreamWords)
	if info.TrailingBytes != 0 {
		fmt.Fprintf(w, "  Trailing bytes: %d\n", info.TrailingBytes)
	}
}

func statsFile(log logger.Logger, opts options, filename string) error {
	data, err := readInput(filename)
	if err != nil {
		return err
	}
	st, err := computeStats(data, opts.width)
	if err != nil {
		return err
	}
	logger.Sugar.Debugf("%s: frequencies %v", filename, st.Frequencies)
	fmt.Printf("File: %s\n", filename)
	printStats(os.Stdout, st)
	log.Infof("%s: ratio %.3f", filename, st.Ratio())
	return nil
}

type stats struct {
	Width       nitrohuff.BitWidth
	Size        int
	Symbols     int // Distinct symbols present
	Frequencies []int
	Compressed  int
	Reference   int // huff0 order-0 size, -1 when huff0 declined every block
}

// Ratio returns the compressed size over the input size.
func (s stats) Ratio() float64 {
	if s.Size == 0 {
		return 0
	}
	return float64(s.Compressed) / float64(s.Size)
}

func computeStats(data []byte, w nitrohuff.BitWidth) (stats, error) {
	comp, err := nitrohuff.Compress(data, w)
	if err != nil {
		return stats{}, err
	}
	freqs := huffman.Frequencies(data, uint8(w))
	used := 0
	for _, f := range freqs {
		if f > 0 {
			used++
		}
	}
	ref, err := referenceSize(data)
	if err != nil {
		return stats{}, err
	}
	return stats{
		Width:       w,
		Size:        len(data),
		Symbols:     used,
		Frequencies: freqs,
		Compressed:  len(comp),
		Reference:   ref,
	}, nil
}

// referenceSize compresses data block by block with huff0. Blocks huff0
// refuses to code are counted at their raw size.
func referenceSize(data []byte) (int, error) {
	if len(data) == 0 {
		return -1, nil
	}
	total := 0
	coded := false
	for start := 0; start < len(data); start += huff0.BlockSizeMax - 1 {
		end := min(start+huff0.BlockSizeMax-1, len(data))
		block := data[start:end]
		out, _, err := huff0.Compress1X(block, &huff0.Scratch{})
		switch {
		case err == nil:
			total += len(out)
			coded = true
		case errors.Is(err, huff0.ErrIncompressible):
			total += len(block)
		case errors.Is(err, huff0.ErrUseRLE):
			total++
			coded = true
		default:
			return 0, fmt.Errorf("huff0: %w", err)
		}
	}
	if !coded {
		return -1, nil
	}
	return total, nil
}

func printStats(w io.Writer, st stats) {
	fmt.Fprintf(w, "  Size: %d bytes\n", st.Size)
	fmt.Fprintf(w, "  Symbols: %d of %d (%d-bit)\n", st.Symbols, len(st.Frequencies), st.Width)
	fmt.Fprintf(w, "  Compressed: %d bytes (%.3f)\n", st.Compressed, st.Ratio())
	if st.Reference < 0 {
		fmt.Fprintf(w, "  huff0 reference: not compressible\n")
	} else {
		fmt.Fprintf(w, "  huff0 reference: %d bytes\n", st.Reference)
	}
}
