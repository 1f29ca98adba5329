package radixsort

import "github.com/manas95826/radixsort/radixkey"

// skaSort is the classic American-Flag / Ska-Sort single-threaded in-place
// pass: https://probablydance.com/2016/12/27/i-wrote-a-faster-sorting-algorithm/
// It settles the largest bucket last (marking it finished up front, since
// every other bucket's swaps will naturally leave it correct) and then
// repeatedly swaps each unfinished bucket's out-of-place elements into
// their target slot until every bucket's write cursor has caught up to its
// end offset.
func skaSort[T any](oracle radixkey.Oracle[T], bucket []T, counts *Counts, level int) {
	sums := prefixSums(counts)
	ends := endOffsets(counts, &sums)
	skaSortCore(oracle, bucket, counts, sums, ends, level)
}

// skaSortCore runs the swap loop from already-computed prefix sums and end
// offsets, so a caller that has advanced some digits' sums past data a
// plateau pass already placed (applyPlateaus) can hand those in directly
// instead of this kernel re-deriving (and re-covering) the same ranges from
// raw counts.
func skaSortCore[T any](oracle radixkey.Oracle[T], bucket []T, counts *Counts, sums PrefixSums, ends EndOffsets, level int) {
	largest := 0
	largestIdx := 0
	for i, c := range counts {
		if c > largest {
			largest = c
			largestIdx = i
		}
	}

	var finishedMap [256]bool
	finishedMap[largestIdx] = true
	finished := 1

	for finished != 256 {
		for b := 0; b < 256; b++ {
			if finishedMap[b] {
				continue
			}
			if sums[b] >= ends[b] {
				finishedMap[b] = true
				finished++
				continue
			}

			for i := sums[b]; i < ends[b]; i++ {
				newB := oracle.Digit(bucket[i], level)
				bucket[sums[newB]], bucket[i] = bucket[i], bucket[sums[newB]]
				sums[newB]++
			}
		}
	}
}
