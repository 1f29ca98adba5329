package radixsort

import (
	"sync"

	"github.com/manas95826/radixsort/radixkey"
)

// regionsSort tile-sorts the bucket in place (one independent Ska pass per
// tile), exactly like the upstream region-swap kernel, but then runs one
// full Scanning pass over the whole bucket as a corrective finishing step
// instead of resolving misplaced tile regions via a weighted-swap graph.
//
// Building that swap graph without ever executing it would leave the
// bucket only tile-locally partitioned, not globally partitioned by this
// level's digit -- violating the kernel's own post-condition. A Scanning
// pass is already proven to produce a correct global partition (see
// scanningSort), so using it here keeps regionsSort's contract intact at
// the cost of doing more work than the tile-swap approach would in the
// best case.
func regionsSort[T any](oracle radixkey.Oracle[T], threads int, bucket []T, level int) {
	n := len(bucket)
	chunkSize := n/threads + 1
	numChunks := cdiv(n, chunkSize)

	var wg sync.WaitGroup
	wg.Add(numChunks)
	for i := 0; i < numChunks; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}
		go func(s, e int) {
			defer wg.Done()
			c, _ := counts(oracle, bucket[s:e], level)
			skaSort(oracle, bucket[s:e], &c, level)
		}(start, end)
	}
	wg.Wait()

	global, _ := counts(oracle, bucket, level)
	scanningSort(oracle, bucket, &global, level)
}
