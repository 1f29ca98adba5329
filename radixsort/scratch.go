package radixsort

import "sync"

// scratchPool hands out reusable temporary key buffers and 256-entry count
// arrays so that nested recursive calls don't allocate on every level. It
// is the Go equivalent of a thread-local slab: sync.Pool already pools per
// P (roughly per OS thread under GOMAXPROCS), which is the same contract
// spec.md §5 asks for ("one reusable byte buffer and a free-list of
// 256-slot count arrays per worker") without requiring this library to
// manage goroutine-local storage itself.
type scratchPool[T any] struct {
	buffers sync.Pool
	counts  sync.Pool
}

func newScratchPool[T any]() *scratchPool[T] {
	return &scratchPool[T]{
		counts: sync.Pool{
			New: func() any { return new(Counts) },
		},
	}
}

// getBuffer returns a []T of length n. Its contents are whatever was left
// by a previous borrower; every kernel that calls getBuffer writes to
// every position it reads from before the buffer's contents matter.
func (p *scratchPool[T]) getBuffer(n int) []T {
	if v := p.buffers.Get(); v != nil {
		buf := v.([]T)
		if cap(buf) >= n {
			return buf[:n]
		}
	}
	return make([]T, n)
}

func (p *scratchPool[T]) putBuffer(buf []T) {
	p.buffers.Put(buf) //nolint:staticcheck // intentionally retains capacity for reuse
}

func (p *scratchPool[T]) getCounts() *Counts {
	c := p.counts.Get().(*Counts)
	*c = Counts{}
	return c
}

func (p *scratchPool[T]) putCounts(c *Counts) {
	p.counts.Put(c)
}
