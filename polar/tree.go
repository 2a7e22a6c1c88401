package polar

import "math/bits"

// Tree is the decoding tree over the frozen-bit mask: an arena of nodes in
// preorder plus the precomputed left-to-right leaf order and each leaf's
// root-exclusive path. The structure is fully determined by the mask, the
// minimum leaf size and the AF budget, and never changes after construction;
// all per-pass values live in a State.
type Tree struct {
	nodes  []node
	leaves []int
	paths  [][]int

	blockLen int
	depth    int // log2 of blockLen
	minSize  int
	af       int
}

func newTree(mask []uint8, minSize, af int) (*Tree, error) {
	n := len(mask)
	if n == 0 || n&(n-1) != 0 {
		return nil, ErrMaskLength
	}
	for _, b := range mask {
		if b > 1 {
			return nil, ErrMaskValue
		}
	}
	if minSize != 0 && (minSize&(minSize-1) != 0 || minSize > n) {
		return nil, ErrMinSize
	}
	t := &Tree{
		blockLen: n,
		depth:    bits.Len(uint(n)) - 1,
		minSize:  minSize,
		af:       af,
	}
	owned := make([]uint8, n)
	copy(owned, mask)
	t.build(owned, -1, classifier{minSize: minSize, af: af})
	for i := range t.nodes {
		if t.nodes[i].isLeaf() {
			t.leaves = append(t.leaves, i)
		}
	}
	t.paths = make([][]int, len(t.leaves))
	for i, leaf := range t.leaves {
		t.paths[i] = t.pathTo(leaf)
	}
	return t, nil
}

// build appends the node covering mask and recurses into its halves when the
// segment is neither fast-decodable nor at the minimum size floor.
func (t *Tree) build(mask []uint8, parent int, c classifier) int {
	idx := len(t.nodes)
	nd := node{mask: mask, parent: parent, left: -1, right: -1}
	c.classify(&nd)
	t.nodes = append(t.nodes, nd)
	if nd.typ != OtherNode || len(mask) == c.minSize {
		return idx
	}
	half := len(mask) / 2
	left := t.build(mask[:half], idx, c)
	right := t.build(mask[half:], idx, c)
	t.nodes[idx].left = left
	t.nodes[idx].right = right
	return idx
}

// pathTo returns the arena indices from the root (exclusive) down to idx.
func (t *Tree) pathTo(idx int) []int {
	var rev []int
	for j := idx; t.nodes[j].parent >= 0; j = t.nodes[j].parent {
		rev = append(rev, j)
	}
	path := make([]int, len(rev))
	for i, j := range rev {
		path[len(rev)-1-i] = j
	}
	return path
}
