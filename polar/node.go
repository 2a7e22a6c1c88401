// Package polar implements Fast Simplified Successive-Cancellation (Fast SSC)
// decoding of polar codes, including the Generalized Fast SSC extension.
//
// A polar code of length N = 2^n is described by a frozen-bit mask (0 =
// frozen, 1 = information). The decoder classifies contiguous sub-blocks of
// the mask into fast-decodable segment types and builds a binary decoding
// tree whose leaves are decided in closed form, skipping per-bit successive
// cancellation inside them.
package polar

import "errors"

var (
	ErrBlockLength = errors.New("polar: mask length does not match 1<<n")
	ErrMaskLength  = errors.New("polar: mask length must be a power of two")
	ErrMaskValue   = errors.New("polar: mask entries must be 0 or 1")
	ErrMinSize     = errors.New("polar: minimum segment size must be 0 or a power of two not exceeding the block length")
	ErrAF          = errors.New("polar: AF budget must be non-negative")
	ErrLLRLength   = errors.New("polar: wrong size of LLR vector")
	ErrNotLeaf     = errors.New("polar: cannot make a decision in a non-leaf node")
)

// NodeType classifies one contiguous segment of the frozen-bit mask. Any
// type other than Other admits a closed-form decision, so such a segment
// becomes a leaf of the decoding tree.
type NodeType uint8

const (
	ZeroNode NodeType = iota
	OneNode
	SPCNode
	RepetitionNode
	GRepetitionNode
	RGParityNode
	OtherNode
)

func (t NodeType) String() string {
	switch t {
	case ZeroNode:
		return "ZERO"
	case OneNode:
		return "ONE"
	case SPCNode:
		return "SINGLE_PARITY_CHECK"
	case RepetitionNode:
		return "REPETITION"
	case GRepetitionNode:
		return "G-REPETITION"
	case RGParityNode:
		return "RG-PARITY"
	default:
		return "OTHER"
	}
}

// Built-in minimum segment sizes for fast-decodable types. A configured
// minimum leaf size overrides all of them; the zero/one gate otherwise
// defaults to 1. This asymmetry matters for which small blocks short-circuit
// splitting and is kept as is.
const (
	spcMinSize        = 4
	repetitionMinSize = 2
	minChunks         = 2
)

// node is one entry of the tree arena. Parent and children are arena
// indices, -1 when absent; the parent index is used for lookup only, the
// tree owns all nodes.
type node struct {
	mask []uint8 // sub-slice of the root mask, never written after build
	typ  NodeType

	parent int
	left   int
	right  int

	// Classification evidence for the generalized types, consumed by the
	// closed-form decision.
	maskSteps int
	lastChunk uint8 // G-Repetition only: 1 = all-ones last chunk, 0 = SPC
}

func (nd *node) isLeaf() bool { return nd.left < 0 }

func isZero(mask []uint8) bool {
	for _, b := range mask {
		if b != 0 {
			return false
		}
	}
	return true
}

func isOne(mask []uint8) bool {
	for _, b := range mask {
		if b != 1 {
			return false
		}
	}
	return true
}

// isSPC reports whether the segment is a single parity check pattern: one
// frozen bit in front, information elsewhere.
func isSPC(mask []uint8) bool {
	if mask[0] != 0 {
		return false
	}
	sum := 0
	for _, b := range mask {
		sum += int(b)
	}
	return sum == len(mask)-1
}

// isRepetition reports whether the segment carries a single information bit
// in the last position.
func isRepetition(mask []uint8) bool {
	if mask[len(mask)-1] != 1 {
		return false
	}
	sum := 0
	for _, b := range mask {
		sum += int(b)
	}
	return sum == 1
}

// classifier assigns segment types. af < 0 disables the generalized
// branches, which makes the basic decoder the generalized one with those
// branches off.
type classifier struct {
	minSize int
	af      int
}

func (c classifier) gate(builtin int) int {
	if c.minSize > 0 {
		return c.minSize
	}
	return builtin
}

// classify picks the first matching type in priority order and records the
// chunk evidence for the generalized types.
func (c classifier) classify(nd *node) {
	mask := nd.mask
	n := len(mask)
	switch {
	case isZero(mask) && n >= c.gate(1):
		nd.typ = ZeroNode
	case isOne(mask) && n >= c.gate(1):
		nd.typ = OneNode
	case n >= c.gate(spcMinSize) && isSPC(mask):
		nd.typ = SPCNode
	case n >= c.gate(repetitionMinSize) && isRepetition(mask):
		nd.typ = RepetitionNode
	default:
		nd.typ = OtherNode
		if c.af < 0 {
			return
		}
		if steps, last, ok := checkGRepetition(mask); ok {
			nd.typ, nd.maskSteps, nd.lastChunk = GRepetitionNode, steps, last
			return
		}
		if steps, ok := checkRGParity(mask, c.af); ok {
			nd.typ, nd.maskSteps = RGParityNode, steps
		}
	}
}

// checkGRepetition matches a generalized repetition segment: the mask splits
// into T equal chunks, T in {2, 4, ..., N/2}, with every chunk but the last
// all-zero and the last chunk all-ones or an SPC pattern of size >= 2. The
// smallest qualifying T wins.
func checkGRepetition(mask []uint8) (steps int, lastChunk uint8, ok bool) {
	n := len(mask)
	for t := minChunks; t <= n/2; t *= 2 {
		chunk := n / t
		last := mask[n-chunk:]
		switch {
		case isOne(last):
			lastChunk = 1
		case chunk >= repetitionMinSize && isSPC(last):
			lastChunk = 0
		default:
			continue
		}
		if !isZero(mask[:n-chunk]) {
			continue
		}
		return t, lastChunk, true
	}
	return 0, 0, false
}

// checkRGParity matches a relaxed generalized parity segment: the first of T
// equal chunks is all-zero and each remaining chunk is all-ones or an SPC
// pattern of size >= 4, with at most af SPC chunks.
func checkRGParity(mask []uint8, af int) (steps int, ok bool) {
	n := len(mask)
	for t := minChunks; t <= n/2; t *= 2 {
		chunk := n / t
		if !isZero(mask[:chunk]) {
			continue
		}
		ones, spcs := 0, 0
		for off := chunk; off < n; off += chunk {
			c := mask[off : off+chunk]
			if isOne(c) {
				ones++
			} else if chunk >= spcMinSize && isSPC(c) {
				spcs++
			}
		}
		if ones+spcs+1 == t && spcs <= af {
			return t, true
		}
	}
	return 0, false
}
