// nitrohuff compresses and decompresses files in the Nintendo DS/GBA BIOS
// Huffman format.
//
// Usage:
//
//	nitrohuff [options] <command> <filename> [<filename> ...]
//
// Commands:
//
//	compress    Compress each file (writes <filename>.huff)
//	decompress  Decompress each file (strips .huff, or appends .out)
//	info        Print the header and tree summary of compressed files
//	stats       Print symbol statistics and a reference Huffman size
//
// Use '-' as filename to read from stdin and write to stdout.
//
// Options:
//
//	-w, --width N        Symbol width for compress and stats: 4 or 8 (default 8)
//	-o, --output FILE    Output file (single input only)
//	-s, --strict         Validate the node array and reject truncated streams
//	-v, --verbose        Log debug diagnostics
//	-l, --log-level LVL  Log level (default INFO)
//	-h, -?, --help       Print help message
//	    --version        Print version information
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/datatrails/go-datatrails-common/logger"
)

const version = "1.0.0"

var (
	width    int
	output   string
	strict   bool
	verbose  bool
	logLevel string
	showHelp bool
	showVer  bool
)

func init() {
	flag.IntVar(&width, "w", 8, "symbol width")
	flag.IntVar(&width, "width", 8, "symbol width")
	flag.StringVar(&output, "o", "", "output file")
	flag.StringVar(&output, "output", "", "output file")
	flag.BoolVar(&strict, "s", false, "strict mode")
	flag.BoolVar(&strict, "strict", false, "strict mode")
	flag.BoolVar(&verbose, "v", false, "verbose mode")
	flag.BoolVar(&verbose, "verbose", false, "verbose mode")
	flag.StringVar(&logLevel, "l", "INFO", "log level")
	flag.StringVar(&logLevel, "log-level", "INFO", "log level")
	flag.BoolVar(&showHelp, "h", false, "print help message")
	flag.BoolVar(&showHelp, "help", false, "print help message")
	flag.BoolVar(&showHelp, "?", false, "print help message")
	flag.BoolVar(&showVer, "version", false, "print version information")
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [options] <command> <filename> [<filename> ...]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Compress and decompress Nintendo DS/GBA Huffman streams\n\n")
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  compress    compress each file\n")
	fmt.Fprintf(os.Stderr, "  decompress  decompress each file\n")
	fmt.Fprintf(os.Stderr, "  info        print header and tree summary\n")
	fmt.Fprintf(os.Stderr, "  stats       print symbol statistics\n\n")
	fmt.Fprintf(os.Stderr, "Use '-' as filename to read from stdin.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	fmt.Fprintf(os.Stderr, "  -w, --width N        symbol width, 4 or 8\n")
	fmt.Fprintf(os.Stderr, "  -o, --output FILE    output file\n")
	fmt.Fprintf(os.Stderr, "  -s, --strict         strict mode\n")
	fmt.Fprintf(os.Stderr, "  -v, --verbose        verbose mode\n")
	fmt.Fprintf(os.Stderr, "  -l, --log-level LVL  log level\n")
	fmt.Fprintf(os.Stderr, "  -h, -?, --help       print this message\n")
	fmt.Fprintf(os.Stderr, "      --version        print version information\n")
}

func main() {
	flag.Usage = usage
	flag.Parse()
	os.Exit(run())
}

func run() int {
	if showHelp {
		usage()
		return 0
	}

	if showVer {
		fmt.Printf("nitrohuff (go-nitrohuff) %s\n", version)
		return 0
	}

	args := flag.Args()
	if len(args) < 2 {
		usage()
		return 1
	}

	if verbose {
		logLevel = "DEBUG"
	}
	logger.New(logLevel)
	defer logger.OnExit()
	log := logger.Sugar.WithServiceName("nitrohuff")

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "ERROR: unknown command '%s'\n", args[0])
		usage()
		return 1
	}

	opts, err := newOptions(width, strict, output, len(args)-1)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return 1
	}

	failCount := 0
	for _, filename := range args[1:] {
		if err := cmd(log, opts, filename); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR '%s': %v\n", filename, err)
			failCount++
		}
	}
	return failCount
}
