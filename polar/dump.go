package polar

import "github.com/francoispqt/gojay"

// NodeDump is a serializable view of one decoding tree node: its segment
// type, its mask slice and its children.
type NodeDump struct {
	Type  string
	Mask  []uint8
	Left  *NodeDump
	Right *NodeDump
}

// DumpTree returns the decoding tree as a nested NodeDump rooted at the
// tree's root node.
func (d *Decoder) DumpTree() *NodeDump { return d.tree.dump(0) }

func (t *Tree) dump(idx int) *NodeDump {
	nd := &t.nodes[idx]
	out := &NodeDump{Type: nd.typ.String(), Mask: nd.mask}
	if !nd.isLeaf() {
		out.Left = t.dump(nd.left)
		out.Right = t.dump(nd.right)
	}
	return out
}

// JSON encodes the dump, children nested recursively.
func (nd *NodeDump) JSON() ([]byte, error) {
	return gojay.MarshalJSONObject(nd)
}

type maskJSON []uint8

func (m maskJSON) MarshalJSONArray(enc *gojay.Encoder) {
	for _, b := range m {
		enc.Int(int(b))
	}
}

func (m maskJSON) IsNil() bool { return len(m) == 0 }

// MarshalJSONObject implements gojay.MarshalerJSONObject.
func (nd *NodeDump) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("type", nd.Type)
	enc.IntKey("size", len(nd.Mask))
	enc.ArrayKey("mask", maskJSON(nd.Mask))
	enc.ObjectKeyOmitEmpty("left", nd.Left)
	enc.ObjectKeyOmitEmpty("right", nd.Right)
}

// IsNil implements gojay.MarshalerJSONObject.
func (nd *NodeDump) IsNil() bool { return nd == nil }
