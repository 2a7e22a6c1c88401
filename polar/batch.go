package polar

import (
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// DecodeBatch decodes many received LLR vectors against the decoder's tree.
// The tree structure is immutable across passes, so workers share it while
// each borrows its own State from a pool. workers <= 0 selects GOMAXPROCS.
// Results are returned in input order; for a non-systematic decoder every
// entry is nil, as with Decode.
func (d *Decoder) DecodeBatch(llrs [][]float64, workers int) ([][]uint8, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	out := make([][]uint8, len(llrs))
	pool := sync.Pool{New: func() any { return newState(d.tree) }}
	var g errgroup.Group
	g.SetLimit(workers)
	for i := range llrs {
		i := i
		g.Go(func() error {
			st := pool.Get().(*State)
			defer pool.Put(st)
			bits, err := d.decode(st, llrs[i], nil)
			if err != nil {
				return err
			}
			out[i] = bits
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
