package nitrohuff

import (
	"fmt"

	"github.com/llehouerou/go-nitrohuff/internal/bits"
	"github.com/llehouerou/go-nitrohuff/internal/huffman"
)

// Info describes a compressed stream without decoding its payload.
type Info struct {
	Width         BitWidth
	Size          int // Decompressed size from the header
	NodeArrayLen  int // Node array bytes, size byte included
	LeafCount     int
	InternalCount int
	MaxCodeLen    int
	StreamWords   int // Complete bitstream words
	TrailingBytes int // Bytes after the last complete word
}

// Inspect reads the header and node array of a complete stream and checks
// the node array the way strict decoding does.
func Inspect(data []byte) (Info, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return Info{}, err
	}
	body := data[HeaderSize:]
	if len(body) == 0 {
		return Info{}, ErrEmptyNodeArray
	}

	st, err := huffman.Walk(body, uint8(h.Width()))
	if err != nil {
		return Info{}, nodeArrayError(err)
	}

	end := huffman.ArrayLen(body[0])
	stream := len(body) - end
	return Info{
		Width:         h.Width(),
		Size:          int(h.Size),
		NodeArrayLen:  end,
		LeafCount:     st.Leaves,
		InternalCount: st.Internal,
		MaxCodeLen:    st.MaxDepth,
		StreamWords:   stream / bits.WordSize,
		TrailingBytes: stream % bits.WordSize,
	}, nil
}

// String formats the info as a one-line summary.
func (i Info) String() string {
	return fmt.Sprintf("huff%d size=%d nodes=%dB leaves=%d internal=%d maxcode=%d words=%d",
		i.Width, i.Size, i.NodeArrayLen, i.LeafCount, i.InternalCount, i.MaxCodeLen, i.StreamWords)
}
