package polar

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestDecodeStats(t *testing.T) {
	d := mustDecoder(t, []uint8{0, 1, 0, 1, 0, 1, 1, 1}, 0)
	leaves := len(d.tree.leaves)
	for i := 0; i < 3; i++ {
		if _, err := d.Decode(repeatLLR(5, 8)); err != nil {
			t.Fatal(err)
		}
	}
	s := d.Stats()
	if s.Decodes != 3 {
		t.Fatalf("Decodes = %d, want 3", s.Decodes)
	}
	if s.LeafVisits != int64(3*leaves) {
		t.Fatalf("LeafVisits = %d, want %d", s.LeafVisits, 3*leaves)
	}
	if s.Total < s.Last {
		t.Fatalf("Total %v < Last %v", s.Total, s.Last)
	}

	d.ResetStats()
	if s := d.Stats(); s.Decodes != 0 || s.LeafVisits != 0 || s.Total != 0 {
		t.Fatalf("stats not cleared: %+v", s)
	}
}

func TestDecoderCollector(t *testing.T) {
	d := mustDecoder(t, make([]uint8, 8), 0)
	for i := 0; i < 2; i++ {
		if _, err := d.Decode(repeatLLR(5, 8)); err != nil {
			t.Fatal(err)
		}
	}
	c := NewDecoderCollector(d, "bec")
	if got := testutil.CollectAndCount(c); got != 3 {
		t.Fatalf("collected %d metrics, want 3", got)
	}

	expected := `
# HELP polar_decodes_total Number of completed decode passes.
# TYPE polar_decodes_total counter
polar_decodes_total{decoder="bec"} 2
# HELP polar_leaf_visits_total Number of decoding tree leaves processed.
# TYPE polar_leaf_visits_total counter
polar_leaf_visits_total{decoder="bec"} 2
`
	err := testutil.CollectAndCompare(c, strings.NewReader(expected),
		"polar_decodes_total", "polar_leaf_visits_total")
	if err != nil {
		t.Fatal(err)
	}
}
