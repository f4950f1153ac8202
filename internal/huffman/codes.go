package huffman

// Code is the root-to-leaf bit path of one symbol, packed MSB-first.
type Code struct {
	Len  int
	Bits []byte
}

// Codes derives the code of every leaf of t. The result is indexed by
// symbol and has SymbolCount entries; symbols absent from the tree have a
// zero Code.
func (t *Tree) Codes(symbols int) []Code {
	codes := make([]Code, symbols)
	path := make([]uint8, 0, t.Leaves)

	for id := 0; id < t.Leaves; id++ {
		// Collected leaf-to-root, emitted reversed.
		path = path[:0]
		for n := id; t.Nodes[n].Parent != noNode; n = t.Nodes[n].Parent {
			if t.Nodes[t.Nodes[n].Parent].Left == n {
				path = append(path, 0)
			} else {
				path = append(path, 1)
			}
		}

		packed := make([]byte, (len(path)+7)>>3)
		for i := range path {
			if path[len(path)-1-i] != 0 {
				packed[i>>3] |= 0x80 >> uint(i&7)
			}
		}
		codes[t.Nodes[id].Symbol] = Code{Len: len(path), Bits: packed}
	}

	return codes
}
