package huffman

import (
	"errors"
	"fmt"
)

var (
	// ErrShortArray indicates a node array too short for its size byte.
	ErrShortArray = errors.New("huffman: node array shorter than its size byte")
	// ErrChildOutOfRange indicates a record linking past the end of the array.
	ErrChildOutOfRange = errors.New("huffman: child record out of range")
	// ErrSymbolOutOfRange indicates a leaf value wider than the symbol width.
	ErrSymbolOutOfRange = errors.New("huffman: leaf symbol out of range")
	// ErrSharedRecord indicates a record reachable through more than one link.
	ErrSharedRecord = errors.New("huffman: record linked twice")
)

// ArrayLen returns the node array length announced by its size byte.
func ArrayLen(size byte) int {
	return (int(size) + 1) * 2
}

// Stats describes the tree encoded by a node array.
type Stats struct {
	Leaves   int
	Internal int
	MaxDepth int
}

// Walk visits every record reachable from the root of a node array and
// checks that each link stays inside the array and each leaf fits width.
// arr must start with the size byte.
func Walk(arr []byte, width uint8) (Stats, error) {
	var st Stats
	if len(arr) < 2 || len(arr) < ArrayLen(arr[0]) {
		return st, ErrShortArray
	}
	end := ArrayLen(arr[0])
	limit := SymbolCount(width)

	seen := make([]bool, end)
	type visit struct{ pos, depth int }
	stack := []visit{{pos: 1, depth: 0}}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		rec := arr[v.pos]
		st.Internal++
		child := ChildPair(v.pos, rec)
		if child+1 >= end {
			return st, fmt.Errorf("%w: record %d links to %d", ErrChildOutOfRange, v.pos, child)
		}

		for side, flag := range [2]byte{LeftLeaf, RightLeaf} {
			c := child + side
			if seen[c] {
				return st, fmt.Errorf("%w: record %d", ErrSharedRecord, c)
			}
			seen[c] = true
			if rec&flag == 0 {
				stack = append(stack, visit{pos: c, depth: v.depth + 1})
				continue
			}
			if int(arr[c]) >= limit {
				return st, fmt.Errorf("%w: record %d holds %d", ErrSymbolOutOfRange, c, arr[c])
			}
			st.Leaves++
			if v.depth+1 > st.MaxDepth {
				st.MaxDepth = v.depth + 1
			}
		}
	}
	return st, nil
}
