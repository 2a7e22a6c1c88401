package polar

import (
	"encoding/json"
	"testing"
)

type dumpJSON struct {
	Type  string    `json:"type"`
	Size  int       `json:"size"`
	Mask  []int     `json:"mask"`
	Left  *dumpJSON `json:"left"`
	Right *dumpJSON `json:"right"`
}

func TestDumpTree(t *testing.T) {
	d := mustDecoder(t, []uint8{0, 0, 0, 1, 1, 1, 1, 1}, 0)
	dump := d.DumpTree()
	if dump.Type != "OTHER" {
		t.Fatalf("root type %q, want OTHER", dump.Type)
	}
	if dump.Left == nil || dump.Left.Type != "REPETITION" {
		t.Fatalf("left child = %+v, want REPETITION", dump.Left)
	}
	if dump.Right == nil || dump.Right.Type != "ONE" {
		t.Fatalf("right child = %+v, want ONE", dump.Right)
	}

	raw, err := dump.JSON()
	if err != nil {
		t.Fatal(err)
	}
	var decoded dumpJSON
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("invalid JSON %s: %v", raw, err)
	}
	if decoded.Type != "OTHER" || decoded.Size != 8 || len(decoded.Mask) != 8 {
		t.Fatalf("unexpected root dump: %+v", decoded)
	}
	if decoded.Left == nil || decoded.Left.Type != "REPETITION" || len(decoded.Left.Mask) != 4 {
		t.Fatalf("unexpected left dump: %+v", decoded.Left)
	}
	if decoded.Right == nil || decoded.Right.Type != "ONE" {
		t.Fatalf("unexpected right dump: %+v", decoded.Right)
	}
	// Leaves omit their children.
	if decoded.Left.Left != nil || decoded.Right.Left != nil {
		t.Fatalf("leaf dumps must not carry children: %s", raw)
	}
}

func TestDumpTreeGeneralized(t *testing.T) {
	d := mustGeneralized(t, []uint8{0, 0, 0, 0, 0, 1, 1, 1}, 0, 1)
	if got := d.DumpTree().Type; got != "G-REPETITION" {
		t.Fatalf("root type %q, want G-REPETITION", got)
	}
}
