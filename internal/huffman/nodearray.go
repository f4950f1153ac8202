package huffman

import (
	"errors"
	"fmt"
)

// Node record layout. An internal record stores the distance to its child
// pair in the low six bits and flags the children that are leaves; a leaf
// record stores the symbol itself.
const (
	OffsetMask = 0x3F
	LeftLeaf   = 0x80
	RightLeaf  = 0x40

	// MaxOffset is the largest child-pair distance a record can encode.
	MaxOffset = OffsetMask
)

// leafMark tags leaf records in the layout mask column.
const leafMark = 0xFF

// branchLeaves is the largest subtree placed in a single breadth-first run.
const branchLeaves = MaxOffset + 1

// ErrOffsetOverflow indicates a record whose child pair is out of reach of
// the six-bit offset field.
var ErrOffsetOverflow = errors.New("huffman: node offset exceeds 6 bits")

// ChildPair returns the index of the left child of the record at pos. The
// right child follows it.
func ChildPair(pos int, rec byte) int {
	return (pos &^ 1) + (int(rec&OffsetMask)+1)*2
}

// layout is the node array under construction. value holds offsets and
// symbols unmasked, so offsets can exceed six bits until rebalance has run.
type layout struct {
	tree  *Tree
	value []int
	mask  []uint8
}

// Serialize lays t out as a node array: a size byte followed by the node
// records, root first. The size byte is (len/2)-1.
//
// Subtrees of up to 64 leaves are placed breadth-first. Larger subtrees are
// split at the root, the smaller child going first. The array is then
// rebalanced until every child pair is within reach of its parent.
func Serialize(t *Tree) ([]byte, error) {
	l := newLayout(t)
	l.rebalance()

	out := make([]byte, len(l.value))
	out[0] = byte(l.value[0])
	for i := 1; i < len(out); i++ {
		v := l.value[i]
		if l.internal(i) {
			if v > MaxOffset {
				return nil, fmt.Errorf("%w: record %d offset %d", ErrOffsetOverflow, i, v)
			}
			v |= int(l.mask[i])
		}
		out[i] = byte(v)
	}
	return out, nil
}

// newLayout places t without rebalancing it.
func newLayout(t *Tree) *layout {
	size := (t.Leaves - 1) | 1
	n := (size + 1) * 2

	l := &layout{
		tree:  t,
		value: make([]int, n),
		mask:  make([]uint8, n),
	}
	l.value[0] = size
	l.place(t.Root(), 1, 2)
	return l
}

func (l *layout) internal(i int) bool {
	return l.mask[i] != leafMark
}

// target returns the child-pair index addressed by record i.
func (l *layout) target(i int) int {
	return (i >> 1) + 1 + l.value[i]
}

func (l *layout) childMask(n *Node) uint8 {
	var m uint8
	if l.tree.Nodes[n.Left].IsLeaf() {
		m |= LeftLeaf
	}
	if l.tree.Nodes[n.Right].IsLeaf() {
		m |= RightLeaf
	}
	return m
}

// place writes the subtree rooted at id with its root record at p and the
// remaining records from q on. It returns the subtree's leaf count.
func (l *layout) place(id, p, q int) int {
	node := &l.tree.Nodes[id]
	if node.Leaves <= branchLeaves {
		l.placeBreadthFirst(id, p, q)
		return node.Leaves
	}

	l.value[p] = 0
	l.mask[p] = l.childMask(node)
	left, right := &l.tree.Nodes[node.Left], &l.tree.Nodes[node.Right]
	if left.Leaves <= right.Leaves {
		leaves := l.place(node.Left, q, q+2)
		l.place(node.Right, q+1, q+leaves*2)
		l.value[q+1] = leaves - 1
	} else {
		leaves := l.place(node.Right, q+1, q+2)
		l.place(node.Left, q, q+leaves*2)
		l.value[q] = leaves - 1
	}
	return node.Leaves
}

func (l *layout) placeBreadthFirst(root, p, q int) {
	queue := make([]int, 1, 2*l.tree.Nodes[root].Leaves)
	queue[0] = root

	for s := 0; s < len(queue); s++ {
		node := &l.tree.Nodes[queue[s]]
		slot := p
		if s > 0 {
			slot = q
			q++
		}

		if node.IsLeaf() {
			l.value[slot] = int(node.Symbol)
			l.mask[slot] = leafMark
			continue
		}
		// Children land on the next free pair of the queue.
		l.value[slot] = (len(queue) - s - 1) >> 1
		l.mask[slot] = l.childMask(node)
		queue = append(queue, node.Left, node.Right)
	}
}

// rebalance pulls child pairs towards parents whose offset does not fit in
// six bits.
//
// The offending pair is moved down in front of the pairs between it and
// its new slot, which all shift up by one pair. Records pointing across the
// shifted range are corrected, then scanning resumes at the pair holding
// the fixed record since the move can push a neighbour out of range.
func (l *layout) rebalance() {
	n := len(l.value)
	for i := 1; i < n; i++ {
		if !l.internal(i) || l.value[i] <= MaxOffset {
			continue
		}

		var inc int
		switch {
		case i&1 == 1 && i > 1 && l.internal(i-1) && l.value[i-1] == MaxOffset:
			i--
			inc = 1
		case i&1 == 0 && l.internal(i+1) && l.value[i+1] == MaxOffset:
			i++
			inc = 1
		default:
			inc = l.value[i] - MaxOffset
		}

		n1 := l.target(i)
		n0 := n1 - inc
		l0, l1 := n0*2, n1*2
		l.movePair(l1, l0)

		l.value[i] -= inc
		for j := i + 1; j < l0; j++ {
			if l.internal(j) {
				if k := l.target(j); k >= n0 && k < n1 {
					l.value[j]++
				}
			}
		}
		for j := l0; j < l0+2; j++ {
			if l.internal(j) {
				l.value[j] += inc
			}
		}
		for j := l0 + 2; j < l1+2; j++ {
			if l.internal(j) && l.target(j) > n1 {
				l.value[j]--
			}
		}

		i = (i | 1) - 2
	}
}

// movePair moves the record pair at from down to to, shifting the pairs in
// between up by one pair.
func (l *layout) movePair(from, to int) {
	v0, v1 := l.value[from], l.value[from+1]
	m0, m1 := l.mask[from], l.mask[from+1]
	copy(l.value[to+2:from+2], l.value[to:from])
	copy(l.mask[to+2:from+2], l.mask[to:from])
	l.value[to], l.value[to+1] = v0, v1
	l.mask[to], l.mask[to+1] = m0, m1
}
