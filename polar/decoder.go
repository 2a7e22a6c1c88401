package polar

import "time"

// PositionHook is called before each leaf is processed with the offset of
// the leaf's segment within the codeword. Offsets are strictly increasing
// within one pass. The decoder never depends on the hook for its own
// correctness; it exists for upstream extensions such as CRC-aided early
// termination or list pruning.
type PositionHook func(position int)

// State holds the per-pass mutable values of one decoding context: the
// alpha (LLR) and beta (bit) scratch of every tree node, the computed flags,
// the position cursor and the successive-cancellation bookkeeping vectors.
// Buffers are sized at construction and only overwritten afterwards. A State
// serves one pass at a time; independent States may share one Tree.
type State struct {
	alpha    [][]float64
	beta     [][]uint8
	computed []bool

	position int

	// current mirrors the generic SC decoder state consumed by upstream
	// hooks: the binary digits of the position cursor, most significant
	// first. previous holds the value current had before the last leaf.
	current  []uint8
	previous []uint8
}

func newState(t *Tree) *State {
	st := &State{
		alpha:    make([][]float64, len(t.nodes)),
		beta:     make([][]uint8, len(t.nodes)),
		computed: make([]bool, len(t.nodes)),
		current:  make([]uint8, t.depth),
		previous: make([]uint8, t.depth),
	}
	for i := range t.nodes {
		n := len(t.nodes[i].mask)
		st.alpha[i] = make([]float64, n)
		st.beta[i] = make([]uint8, n)
	}
	return st
}

// reset seeds the root LLR vector and clears everything a pass may have
// left behind. Alpha and beta scratch below the root is not cleared: every
// value consulted during a pass is written earlier in the same pass.
func (st *State) reset(t *Tree, llr []float64) error {
	if len(llr) != t.blockLen {
		return ErrLLRLength
	}
	copy(st.alpha[0], llr)
	for i := range st.computed {
		st.computed[i] = false
	}
	st.position = 0
	for i := range st.current {
		st.current[i] = 0
		st.previous[i] = 1
	}
	return nil
}

func (st *State) setDecoderState(position int) {
	copy(st.previous, st.current)
	for i := len(st.current) - 1; i >= 0; i-- {
		st.current[i] = uint8(position & 1)
		position >>= 1
	}
}

// Decoder runs Fast SSC decoding passes over a fixed decoding tree. A
// Decoder owns its tree and default State, so one instance must not run
// concurrent Decode calls; use DecodeBatch or per-goroutine States instead.
type Decoder struct {
	tree       *Tree
	state      *State
	systematic bool
	hook       PositionHook

	stats decodeCounters
}

// NewDecoder builds a Fast SSC decoder for a code of length 1<<n with the
// given frozen-bit mask (0 = frozen, 1 = information). minSize is the
// minimum leaf segment size; 0 keeps the built-in per-type minimums.
func NewDecoder(n int, mask []uint8, systematic bool, minSize int) (*Decoder, error) {
	return newDecoder(n, mask, systematic, minSize, -1)
}

// NewGeneralizedDecoder builds a Generalized Fast SSC decoder, which
// additionally recognizes generalized repetition and relaxed generalized
// parity segments. af bounds the number of single parity check chunks
// allowed inside a relaxed generalized parity segment.
func NewGeneralizedDecoder(n int, mask []uint8, systematic bool, minSize, af int) (*Decoder, error) {
	if af < 0 {
		return nil, ErrAF
	}
	return newDecoder(n, mask, systematic, minSize, af)
}

func newDecoder(n int, mask []uint8, systematic bool, minSize, af int) (*Decoder, error) {
	if n < 0 || n >= 31 || len(mask) != 1<<n {
		return nil, ErrBlockLength
	}
	t, err := newTree(mask, minSize, af)
	if err != nil {
		return nil, err
	}
	return &Decoder{tree: t, state: newState(t), systematic: systematic}, nil
}

// SetPositionHook installs the per-leaf position callback used by Decode.
func (d *Decoder) SetPositionHook(hook PositionHook) { d.hook = hook }

// BlockLength returns the codeword length N.
func (d *Decoder) BlockLength() int { return d.tree.blockLen }

// Systematic reports whether Decode exposes the decoded bits directly.
func (d *Decoder) Systematic() bool { return d.systematic }

// NewState allocates an independent decoding context bound to the decoder's
// tree, for callers running their own concurrency across DecodeWithState.
func (d *Decoder) NewState() *State { return newState(d.tree) }

// Decode runs one decoding pass over the received LLR vector. For a
// systematic code it returns the decoded bit vector of length N; for a
// non-systematic code the result is produced by upstream post-processing
// and Decode returns nil bits.
func (d *Decoder) Decode(llr []float64) ([]uint8, error) {
	return d.decode(d.state, llr, d.hook)
}

// DecodeWithState is Decode over a caller-owned State. The position hook is
// not invoked; hook-driven extensions are a single-context concern.
func (d *Decoder) DecodeWithState(st *State, llr []float64) ([]uint8, error) {
	return d.decode(st, llr, nil)
}

func (d *Decoder) decode(st *State, llr []float64, hook PositionHook) ([]uint8, error) {
	start := time.Now()
	bits, err := d.tree.decode(st, llr, hook)
	if err != nil {
		return nil, err
	}
	d.stats.record(time.Since(start), len(d.tree.leaves))
	if !d.systematic {
		return nil, nil
	}
	return bits, nil
}

// decode performs the depth-first leaf walk: alpha down, leaf decision,
// beta up, in strict left-to-right leaf order.
func (t *Tree) decode(st *State, llr []float64, hook PositionHook) ([]uint8, error) {
	if err := st.reset(t, llr); err != nil {
		return nil, err
	}
	for li, leaf := range t.leaves {
		st.setDecoderState(st.position)
		if hook != nil {
			hook(st.position)
		}
		t.propagateAlpha(st, li)
		if err := t.decideLeaf(st, leaf); err != nil {
			return nil, err
		}
		t.propagateBeta(st, leaf)
		st.position += len(t.nodes[leaf].mask)
	}
	out := make([]uint8, t.blockLen)
	copy(out, st.beta[0])
	return out, nil
}

// propagateAlpha walks the root-exclusive path to leaf li and fills in the
// alpha of every node not yet computed. A right child's alpha depends on its
// left sibling's finished decision, so it is computed once and pinned for
// the rest of the pass.
func (t *Tree) propagateAlpha(st *State, li int) {
	for _, idx := range t.paths[li] {
		if st.computed[idx] {
			continue
		}
		parent := t.nodes[idx].parent
		parentAlpha := st.alpha[parent]
		left := t.nodes[parent].left
		if left == idx {
			checkLLR(st.alpha[idx], parentAlpha)
			continue
		}
		updateLLR(st.alpha[idx], parentAlpha, st.beta[left])
		st.computed[idx] = true
	}
}

// leafDecisions maps a segment type to its closed-form decision. An Other
// leaf only occurs under a minimum-size floor; its segment is emitted as
// all-zero, matching the frozen default.
var leafDecisions = [...]func(nd *node, alpha []float64, beta []uint8){
	ZeroNode: func(_ *node, _ []float64, beta []uint8) {
		for i := range beta {
			beta[i] = 0
		}
	},
	OneNode: func(_ *node, alpha []float64, beta []uint8) {
		hardDecision(beta, alpha)
	},
	SPCNode: func(_ *node, alpha []float64, beta []uint8) {
		singleParityCheck(beta, alpha)
	},
	RepetitionNode: func(_ *node, alpha []float64, beta []uint8) {
		repetition(beta, alpha)
	},
	GRepetitionNode: func(nd *node, alpha []float64, beta []uint8) {
		gRepetition(beta, alpha, nd.maskSteps, nd.lastChunk)
	},
	RGParityNode: func(nd *node, alpha []float64, beta []uint8) {
		rgParity(beta, alpha, nd.maskSteps)
	},
	OtherNode: func(_ *node, _ []float64, beta []uint8) {
		for i := range beta {
			beta[i] = 0
		}
	},
}

func (t *Tree) decideLeaf(st *State, idx int) error {
	nd := &t.nodes[idx]
	if !nd.isLeaf() {
		return ErrNotLeaf
	}
	leafDecisions[nd.typ](nd, st.alpha[idx], st.beta[idx])
	return nil
}

// propagateBeta combines sibling decisions upward while the updated node is
// a right child. A left child stops the walk: its parent cannot combine
// until the right sibling has been visited.
func (t *Tree) propagateBeta(st *State, idx int) {
	for {
		parent := t.nodes[idx].parent
		if parent < 0 {
			return
		}
		left := t.nodes[parent].left
		if left == idx {
			return
		}
		combineBits(st.beta[parent], st.beta[left], st.beta[idx])
		idx = parent
	}
}
