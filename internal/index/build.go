// Package index builds and serves the forward-reference array F, the
// hash-filtered shortcut that turns the naive O(L^2) substring search
// into a chain walk. Construction happens in two staged passes,
// narrated through log.Printf the way internals/find_duplicates.go
// narrates its own multi-step duplicate search.
package index

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/meisterluk/simrun-go/internal/token"
)

// Index owns the forward-reference array F[1..L] built over a sealed
// token.Store. F[i] = j means "the next position j > i whose R-token
// window plausibly equals T[i..i+R-1]'s, or 0 if none."
type Index struct {
	store *token.Store
	f     []int32 // F[0..L], F[0] always 0
	r     int
}

// Options configures a Build.
type Options struct {
	// MinRunSize is R, the minimum run length in tokens. Must be > 0.
	MinRunSize int
	// Parallel enables an optional parallel secondary-pass cleanup
	// over disjoint position ranges, each goroutine reading a frozen
	// pre-cleaning snapshot of F and writing only its own range of
	// the result.
	Parallel bool
	// Workers bounds the number of goroutines used when Parallel is
	// set; defaults to 1 (sequential) when <= 0.
	Workers int
	// Verbose enables the staged log.Printf narration.
	Verbose bool
}

// Build constructs the forward-reference index over store, which must
// already be sealed. texts delimits which positions belong to which
// input file, used only to bound window reads at file limits.
func Build(ctx context.Context, store *token.Store, texts []*token.Text, opt Options) (*Index, error) {
	if opt.MinRunSize <= 0 {
		return nil, fmt.Errorf("minimum run size must be positive, got %d", opt.MinRunSize)
	}
	l := store.Len()
	idx := &Index{store: store, f: make([]int32, l+1), r: opt.MinRunSize}

	if err := idx.primaryPass(texts, opt); err != nil {
		return nil, err
	}
	if err := idx.secondaryPass(ctx, opt); err != nil {
		return nil, err
	}
	return idx, nil
}

// primaryPass builds last_index[0..P) and threads F into ascending
// per-bucket chains. last_index degrades to a smaller prime on
// allocation failure, trading index quality for memory headroom; the
// secondary pass compensates for the resulting false positives.
func (idx *Index) primaryPass(texts []*token.Text, opt Options) error {
	l := idx.store.Len()
	sample := hash1SamplePositions(idx.r)

	primeIdx := primeIndexAtLeast(uint64(l))
	lastIndex, err := allocLastIndex(primeIdx)
	if err != nil {
		return err
	}
	p := uint64(len(lastIndex))

	if opt.Verbose {
		log.Printf("Phase 1 of 2: primary pass over %d tokens, bucket table size %d", l, p)
	}

	for _, text := range texts {
		limit := text.Limit
		for i := text.Start; i+idx.r-1 < limit; i++ {
			if !idx.store.At(i).MayStartRun {
				continue
			}
			h := hash1(idx.store, i, sample) % uint32(p)
			if lastIndex[h] != 0 {
				idx.f[lastIndex[h]] = int32(i)
			}
			lastIndex[h] = int32(i)
		}
	}

	if opt.Verbose {
		log.Printf("Phase 1 of 2 finished: chains threaded through %d buckets", p)
	}
	return nil
}

// allocLastIndex allocates the primary pass's bucket table, stepping
// down through primeTable toward smaller sizes if allocation fails.
// Degraded quality at a smaller size is acceptable; the secondary
// pass cleans up whatever false positives result. Only exhausting the
// entire table is fatal.
func allocLastIndex(startIdx int) (table []int32, err error) {
	for i := startIdx; i >= 0; i-- {
		table, ok := tryAlloc(primeTable[i])
		if ok {
			return table, nil
		}
	}
	return nil, fmt.Errorf("out of memory")
}

// tryAlloc allocates a table of size n, recovering from a panic raised
// by make (such as a length out of range) so the caller can step down
// to a smaller prime instead of crashing the process. An out-of-memory
// condition in the Go runtime itself is a fatal error, not a panic,
// and is not recovered here.
func tryAlloc(n uint64) (table []int32, ok bool) {
	defer func() {
		if recover() != nil {
			table, ok = nil, false
		}
	}()
	return make([]int32, n), true
}

// secondaryPass cleans each chain against hash2, the wider unmodded
// comparison key, removing the false positives hash1's 24-sample/
// modular-reduction shortcut necessarily admits.
func (idx *Index) secondaryPass(ctx context.Context, opt Options) error {
	l := idx.store.Len()
	if opt.Verbose {
		log.Printf("Phase 2 of 2: secondary pass cleaning %d chain origins", l-idx.r)
	}

	hi := l - idx.r + 1
	if hi < 1 {
		hi = 1
	}

	// clean reads exclusively from raw and writes exclusively to out.
	// In sequential mode raw and out are the same slice, reproducing
	// the original in-place pass exactly: because forward references
	// only ever point to larger positions, every j a walk starting at
	// i visits is still untouched raw data at the moment i is reached
	// in ascending order.
	clean := func(raw, out []int32, lo, hi int) {
		for i := lo; i < hi; i++ {
			h2 := hash2(idx.store, i, idx.r)
			j := int(raw[i])
			for j != 0 && hash2(idx.store, j, idx.r) != h2 {
				j = int(raw[j])
			}
			out[i] = int32(j)
		}
	}

	if !opt.Parallel || opt.Workers <= 1 {
		clean(idx.f, idx.f, 1, hi)
		if opt.Verbose {
			log.Printf("Phase 2 of 2 finished: chains cleaned")
		}
		return nil
	}

	// Parallel mode cannot reuse that in-place invariant: workers
	// cover disjoint i-ranges but a walk from one range routinely
	// reads F[j] for j in another range, which that range's own
	// worker is concurrently overwriting. Freezing a raw snapshot
	// before any worker starts, and writing cleaned results into a
	// separate slice, keeps every read and every write each worker
	// performs disjoint from every other worker's.
	raw := append([]int32(nil), idx.f...)
	out := append([]int32(nil), idx.f...)

	g, _ := errgroup.WithContext(ctx)
	workers := opt.Workers
	span := (hi - 1 + workers - 1) / workers
	if span < 1 {
		span = 1
	}
	for lo := 1; lo < hi; lo += span {
		lo, segHi := lo, lo+span
		if segHi > hi {
			segHi = hi
		}
		g.Go(func() error {
			clean(raw, out, lo, segHi)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	idx.f = out
	if opt.Verbose {
		log.Printf("Phase 2 of 2 finished: chains cleaned across %d workers", workers)
	}
	return nil
}

// Forward returns F[i], the next candidate right partner for position
// i, or 0 if the chain ends. i must be in [1, L], L being the token
// store's length.
func (idx *Index) Forward(i int) int {
	if i <= 0 || i >= len(idx.f) {
		panic(fmt.Sprintf("internal error, forward-reference lookup out of range: %d", i))
	}
	return int(idx.f[i])
}

// MinRunSize returns R, the window size this index was built for.
func (idx *Index) MinRunSize() int {
	return idx.r
}

// Free releases F. The index must not be used afterward.
func (idx *Index) Free() {
	idx.f = nil
}
