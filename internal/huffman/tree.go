package huffman

// noNode marks an absent parent or child link.
const noNode = -1

// Node is one entry of the tree arena. Links are arena indices.
type Node struct {
	Weight int
	Symbol uint8 // Valid for leaves only
	Leaves int   // Leaves in the subtree rooted here
	Parent int
	Left   int
	Right  int
}

// IsLeaf reports whether n holds a symbol.
func (n *Node) IsLeaf() bool {
	return n.Left == noNode
}

// Tree is a Huffman tree stored as an arena. The first Leaves nodes are the
// leaves in ascending symbol order, internal nodes follow in creation order
// and the last node is the root.
type Tree struct {
	Nodes  []Node
	Leaves int
}

// Root returns the arena index of the root node.
func (t *Tree) Root() int {
	return len(t.Nodes) - 1
}

// Build constructs the tree for a frequency table as returned by
// Frequencies.
//
// Every symbol with a non-zero count becomes a leaf. The format needs at
// least one branch, so while fewer than two leaves exist the lowest unused
// symbol is given weight 2. Nodes are then merged pairwise: the lightest
// parentless node becomes the left child and the next lightest the right
// child, ties going to the node created first.
func Build(freqs []int) *Tree {
	weights := make([]int, len(freqs))
	copy(weights, freqs)

	used := 0
	for _, w := range weights {
		if w != 0 {
			used++
		}
	}
	for sym := 0; used < 2 && sym < len(weights); sym++ {
		if weights[sym] == 0 {
			weights[sym] = 2
			used++
		}
	}

	t := &Tree{
		Nodes:  make([]Node, 0, 2*used-1),
		Leaves: used,
	}
	for sym, w := range weights {
		if w == 0 {
			continue
		}
		t.Nodes = append(t.Nodes, Node{
			Weight: w,
			Symbol: uint8(sym),
			Leaves: 1,
			Parent: noNode,
			Left:   noNode,
			Right:  noNode,
		})
	}

	for len(t.Nodes) < 2*used-1 {
		left := t.lightest(noNode)
		right := t.lightest(left)

		id := len(t.Nodes)
		t.Nodes = append(t.Nodes, Node{
			Weight: t.Nodes[left].Weight + t.Nodes[right].Weight,
			Leaves: t.Nodes[left].Leaves + t.Nodes[right].Leaves,
			Parent: noNode,
			Left:   left,
			Right:  right,
		})
		t.Nodes[left].Parent = id
		t.Nodes[right].Parent = id
	}

	return t
}

// lightest returns the first parentless node of minimum weight, ignoring
// skip.
func (t *Tree) lightest(skip int) int {
	best := noNode
	for i := range t.Nodes {
		if i == skip || t.Nodes[i].Parent != noNode {
			continue
		}
		if best == noNode || t.Nodes[i].Weight < t.Nodes[best].Weight {
			best = i
		}
	}
	return best
}
