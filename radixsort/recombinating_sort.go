package radixsort

import (
	"sync"

	"github.com/manas95826/radixsort/radixkey"
)

// recombinatingSort fans the bucket out into threads-many tiles, sorts
// each tile one level out-of-place independently, then concatenates the
// per-digit ranges of every tile into the final output in parallel. The
// scratch tile buffer is dropped once the gather completes.
func recombinatingSort[T any](pool *scratchPool[T], oracle radixkey.Oracle[T], threads int, bucket []T, level int) {
	n := len(bucket)
	chunkSize := n/threads + 1
	numChunks := cdiv(n, chunkSize)

	tmp := pool.getBuffer(n)
	defer pool.putBuffer(tmp)

	localCounts := make([]Counts, numChunks)
	localSums := make([]PrefixSums, numChunks)

	var wg sync.WaitGroup
	wg.Add(numChunks)
	for i := 0; i < numChunks; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}
		go func(idx, s, e int) {
			defer wg.Done()
			c := pool.getCounts()
			*c, _ = counts(oracle, bucket[s:e], level)
			scatterOutOfPlace(oracle, bucket[s:e], tmp[s:e], c, level)
			localCounts[idx] = *c
			localSums[idx] = prefixSums(c)
			pool.putCounts(c)
		}(i, start, end)
	}
	wg.Wait()

	var global Counts
	for _, c := range localCounts {
		for b := 0; b < 256; b++ {
			global[b] += c[b]
		}
	}

	outChunks := arbitraryChunks(bucket, global[:])

	var gatherWg sync.WaitGroup
	gatherWg.Add(len(outChunks))
	for digit := 0; digit < len(outChunks); digit++ {
		go func(d int) {
			defer gatherWg.Done()
			out := outChunks[d]
			readOffset := 0
			writeOffset := 0
			for c := 0; c < numChunks; c++ {
				readStart := readOffset + localSums[c][d]
				readEnd := readStart + localCounts[c][d]
				segment := tmp[readStart:readEnd]
				copy(out[writeOffset:writeOffset+len(segment)], segment)
				readOffset += chunkSize
				writeOffset += len(segment)
			}
		}(digit)
	}
	gatherWg.Wait()
}
