package radixsort

import (
	"sync"

	"github.com/manas95826/radixsort/radixkey"
)

// homogeneityCheckGate below this size, the extra homogeneity check isn't
// worth the branch; small buckets go straight to the tuner.
const homogeneityCheckGate = 30_000

// sorter is the recursive dispatch engine: at each bucket it picks among
// the eight kernel strategies from empirically-tuned thresholds and
// coordinates them across goroutines without redundant recounting.
type sorter[T any] struct {
	oracle         radixkey.Oracle[T]
	tuner          Tuner
	pool           *scratchPool[T]
	multiThreaded  bool
}

func newSorter[T any](oracle radixkey.Oracle[T], tuner Tuner, multiThreaded bool) *sorter[T] {
	return &sorter[T]{
		oracle:        oracle,
		tuner:         tuner,
		pool:          newScratchPool[T](),
		multiThreaded: multiThreaded,
	}
}

// topLevelDirector is the sort entry point's first call: the whole input
// is one bucket at the most significant level.
func (s *sorter[T]) topLevelDirector(bucket []T, threads int) {
	level := s.oracle.Levels() - 1
	s.handleChunk(bucket, level, threads)
}

// handleChunk implements the per-bucket state machine described in
// spec.md §4.9: New -> Counted -> (Homogeneous? -> Recurse) |
// (dispatch a kernel -> Recurse) -> Done.
func (s *sorter[T]) handleChunk(bucket []T, level int, threads int) {
	if len(bucket) <= 1 {
		return
	}
	if len(bucket) <= comparativeSortThreshold {
		comparativeSort(s.oracle, bucket, level)
		return
	}

	tp := TuningParams{
		Threads:     threads,
		Level:       level,
		TotalLevels: s.oracle.Levels(),
		InputLen:    len(bucket),
	}

	// parCounts already falls back to a single serial pass below
	// parCountThreshold, so this one call covers both cases. Every kernel
	// that wants a per-tile breakdown (MtLsb, Recombinating, Regions)
	// computes its own tile histograms internally against its own tile
	// size, so there is nothing for the Director to precompute on their
	// behalf here.
	c, _ := parCounts(s.oracle, bucket, level)

	if len(bucket) >= homogeneityCheckGate && isHomogeneous(&c) {
		if level > 0 {
			s.director(bucket, &c, level-1, threads)
		}
		return
	}

	algorithm := s.tuner.PickAlgorithm(tp, &c)
	if needsRecursion := s.runKernel(bucket, level, threads, &c, algorithm); needsRecursion && level > 0 {
		s.director(bucket, &c, level-1, threads)
	}
}

// runKernel invokes the chosen digit-sort kernel for one bucket at level and
// reports whether the Director still needs to recurse into this bucket's
// sub-buckets afterward. Lsb, LrLsb and MtLsb resolve every remaining level
// down to 0 in one call (spec.md §4.3's "out of place, working from the
// least significant level in the range upward"), so the bucket is already
// its final sorted order and recursing again would just redundantly re-sort
// it. Ska, Scanning, Recombinating and Regions only partition by this one
// level's digit and always need the Director to continue downward.
func (s *sorter[T]) runKernel(bucket []T, level, threads int, c *Counts, algorithm Algorithm) bool {
	switch algorithm {
	case AlgoComparative:
		comparativeSort(s.oracle, bucket, level)
		return false
	case AlgoLsb:
		lsbSort(s.pool, s.oracle, bucket, 0, level)
		return false
	case AlgoLrLsb:
		lrLsbSort(s.pool, s.oracle, bucket, 0, level)
		return false
	case AlgoSka:
		skaSort(s.oracle, bucket, c, level)
		return true
	case AlgoScanning:
		scanningSort(s.oracle, bucket, c, level)
		return true
	case AlgoMtLsb:
		mtLsbSort(s.pool, s.oracle, bucket, 0, level)
		return false
	case AlgoRecombinating:
		recombinatingSort(s.pool, s.oracle, threads, bucket, level)
		return true
	case AlgoRegions:
		regionsSort(s.oracle, threads, bucket, level)
		return true
	default:
		return true
	}
}

// director fans a counted bucket's sub-buckets out at level (level is the
// level to recurse into next, i.e. parentLevel-1). Multi-threaded mode
// spawns one goroutine per non-trivial sub-bucket; the Go scheduler
// work-steals those across GOMAXPROCS OS threads, matching spec.md §5's
// work-stealing recursion requirement without this package managing a
// custom pool.
func (s *sorter[T]) director(bucket []T, counts *Counts, level int, threads int) {
	sizes := make([]int, 256)
	for i := range sizes {
		sizes[i] = counts[i]
	}
	chunks := arbitraryChunks(bucket, sizes)

	if !s.multiThreaded {
		for _, chunk := range chunks {
			s.handleChunk(chunk, level, threads)
		}
		return
	}

	var wg sync.WaitGroup
	for _, chunk := range chunks {
		if len(chunk) == 0 {
			continue
		}
		chunk := chunk
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.handleChunk(chunk, level, threads)
		}()
	}
	wg.Wait()
}
