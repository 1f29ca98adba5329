// Package radixsort implements an in-memory, dispatching hybrid radix
// sort: a generic sort engine over 256-bucket (one byte at a time) digit
// histograms that recursively picks among eight kernel strategies per
// bucket, tuned by empirically-derived size and distribution thresholds.
package radixsort

import (
	"fmt"
	"runtime"

	"github.com/manas95826/radixsort/radixkey"
)

// config holds the resolved settings an Option mutates before Sort runs.
type config struct {
	tuner        Tuner
	tunerSet     bool
	workers      int
	singleThread bool
}

// Option configures a Sort call. The zero-value config runs multi-threaded
// across GOMAXPROCS workers with StandardTuner.
type Option func(*config)

// WithSingleThreading forces every bucket through the single-threaded
// recursion path, using SingleThreadedTuner unless WithTuner overrides it.
func WithSingleThreading() Option {
	return func(c *config) {
		c.singleThread = true
	}
}

// WithTuner overrides the default Tuner. Passing a Tuner together with
// WithSingleThreading is legal: the tuner decides kernels, the threading
// mode decides how sub-buckets recurse.
func WithTuner(t Tuner) Option {
	return func(c *config) {
		c.tuner = t
		c.tunerSet = true
	}
}

// WithWorkers sets the thread count handed to the tuner and used to split
// the Recombinating and Regions kernels into per-worker tiles. Parallel
// counting and the Scanning kernel size themselves from GOMAXPROCS instead,
// and sub-bucket recursion starts one goroutine per sub-bucket regardless.
// It has no effect under WithSingleThreading. n <= 0 is ignored.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}

// Sort sorts data in place by the digit sequence oracle exposes, most
// significant digit first. oracle must report at least one level; Sort
// returns an error rather than panicking on a malformed Oracle, since that
// is a construction-time contract violation, not a runtime data fault.
func Sort[T any](data []T, oracle radixkey.Oracle[T], opts ...Option) error {
	if oracle == nil {
		return fmt.Errorf("radixsort: oracle must not be nil")
	}
	if oracle.Levels() < 1 {
		return fmt.Errorf("radixsort: oracle must report at least one level, got %d", oracle.Levels())
	}
	if len(data) < 2 {
		return nil
	}

	cfg := config{
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if !cfg.tunerSet {
		if cfg.singleThread {
			cfg.tuner = SingleThreadedTuner{}
		} else {
			cfg.tuner = StandardTuner{}
		}
	}

	if cfg.singleThread {
		cfg.workers = 1
	}
	if cfg.workers < 1 {
		cfg.workers = 1
	}

	s := newSorter[T](oracle, cfg.tuner, !cfg.singleThread)
	s.topLevelDirector(data, cfg.workers)
	return nil
}
