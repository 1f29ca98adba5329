package radixsort

import (
	"runtime"
	"sync"

	"github.com/manas95826/radixsort/radixkey"
)

// Counts is a 256-bucket digit histogram. Sigma(Counts) == len(bucket).
type Counts [256]int

// PrefixSums[i] is the sum of Counts[j] for j < i.
type PrefixSums = Counts

// EndOffsets[i] is PrefixSums[i] + Counts[i] (the start of bucket i+1).
type EndOffsets = Counts

// CountMeta carries the side information a counting pass can report for
// free: the first and last digit observed, and whether the bucket was
// already non-decreasing in this digit.
type CountMeta struct {
	First         byte
	Last          byte
	AlreadySorted bool
}

// parCountThreshold below this size, parallel counting falls back to serial
// counting: the coordination overhead isn't worth it.
const parCountThreshold = 400_000

// counts performs a single-threaded histogram pass over bucket at level,
// using a plain sequential fast path that tracks sortedness and stops the
// moment the bucket proves not to be already sorted, followed by an
// unroll-by-4 scan for everything else, so ordinary callers still pay for
// only one pass.
func counts[T any](oracle radixkey.Oracle[T], bucket []T, level int) (Counts, CountMeta) {
	var c Counts
	var meta CountMeta

	n := len(bucket)
	if n == 0 {
		meta.AlreadySorted = true
		return c, meta
	}
	if n == 1 {
		b := oracle.Digit(bucket[0], level)
		c[b] = 1
		meta.First, meta.Last = b, b
		meta.AlreadySorted = true
		return c, meta
	}

	meta.First = oracle.Digit(bucket[0], level)
	meta.Last = oracle.Digit(bucket[n-1], level)
	meta.AlreadySorted = true

	continueFrom := 0
	prev := byte(0)
	for i, v := range bucket {
		b := oracle.Digit(v, level)
		c[b]++
		continueFrom++
		if b < prev {
			meta.AlreadySorted = false
			_ = i
			break
		}
		prev = b
	}

	if continueFrom == n {
		return c, meta
	}

	rest := bucket[continueFrom:]
	full := len(rest) - len(rest)%4
	for i := 0; i < full; i += 4 {
		c[oracle.Digit(rest[i], level)]++
		c[oracle.Digit(rest[i+1], level)]++
		c[oracle.Digit(rest[i+2], level)]++
		c[oracle.Digit(rest[i+3], level)]++
	}
	for i := full; i < len(rest); i++ {
		c[oracle.Digit(rest[i], level)]++
	}

	return c, meta
}

// parCounts splits bucket into roughly threads*tileDivisor chunks, counts
// each chunk independently, and sums the results. The aggregate is only
// AlreadySorted if every chunk is individually sorted AND each adjacent
// pair of chunks is non-decreasing across the boundary.
func parCounts[T any](oracle radixkey.Oracle[T], bucket []T, level int) (Counts, CountMeta) {
	n := len(bucket)
	if n < parCountThreshold {
		return counts(oracle, bucket, level)
	}

	threads := runtime.GOMAXPROCS(0)
	if threads < 2 {
		return counts(oracle, bucket, level)
	}

	const tileDivisor = 8
	chunkSize := n/(threads*tileDivisor) + 1
	numChunks := cdiv(n, chunkSize)

	chunkCounts := make([]Counts, numChunks)
	chunkMeta := make([]CountMeta, numChunks)

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
			chunkCounts[idx], chunkMeta[idx] = counts(oracle, bucket[s:e], level)
		}(i, start, end)
	}
	wg.Wait()

	var agg Counts
	for i := range chunkCounts {
		for b := 0; b < 256; b++ {
			agg[b] += chunkCounts[i][b]
		}
	}

	meta := CountMeta{
		First:         chunkMeta[0].First,
		Last:          chunkMeta[len(chunkMeta)-1].Last,
		AlreadySorted: true,
	}
	for i := range chunkMeta {
		if !chunkMeta[i].AlreadySorted {
			meta.AlreadySorted = false
			break
		}
		if i > 0 && chunkMeta[i-1].Last > chunkMeta[i].First {
			meta.AlreadySorted = false
			break
		}
	}

	return agg, meta
}

// tileCounts computes one histogram per fixed-size tile of bucket, in
// parallel, for kernels that need a per-tile breakdown (mtLsbSort;
// Recombinating and Regions count their own chunks). allSorted mirrors
// parCounts' combination rule.
func tileCounts[T any](oracle radixkey.Oracle[T], bucket []T, tileSize int, level int) ([]Counts, bool) {
	n := len(bucket)
	numTiles := cdiv(n, tileSize)
	if numTiles == 0 {
		return nil, true
	}

	out := make([]Counts, numTiles)
	metas := make([]CountMeta, numTiles)

	var wg sync.WaitGroup
	wg.Add(numTiles)
	for i := 0; i < numTiles; i++ {
		start := i * tileSize
		end := start + tileSize
		if end > n {
			end = n
		}
		go func(idx, s, e int) {
			defer wg.Done()
			out[idx], metas[idx] = counts(oracle, bucket[s:e], level)
		}(i, start, end)
	}
	wg.Wait()

	allSorted := true
	for i := range metas {
		if !metas[i].AlreadySorted {
			allSorted = false
			break
		}
		if i > 0 && metas[i-1].Last > metas[i].First {
			allSorted = false
			break
		}
	}

	return out, allSorted
}

// aggregateTileCounts element-wise sums a set of per-tile histograms into
// one aggregate Counts.
func aggregateTileCounts(tiles []Counts) Counts {
	var out Counts
	for _, t := range tiles {
		for i := 0; i < 256; i++ {
			out[i] += t[i]
		}
	}
	return out
}

// prefixSums returns the cumulative running total preceding each bucket.
func prefixSums(c *Counts) PrefixSums {
	var sums PrefixSums
	running := 0
	for i := 0; i < 256; i++ {
		sums[i] = running
		running += c[i]
	}
	return sums
}

// endOffsets returns the start of the next bucket for every digit.
func endOffsets(c *Counts, sums *PrefixSums) EndOffsets {
	var end EndOffsets
	copy(end[0:255], sums[1:256])
	end[255] = c[255] + sums[255]
	return end
}

// isHomogeneous reports whether exactly one digit has a nonzero count,
// meaning every element in the bucket agrees at this level.
func isHomogeneous(c *Counts) bool {
	seen := false
	for _, v := range c {
		if v > 0 {
			if seen {
				return false
			}
			seen = true
		}
	}
	return seen
}

func cdiv(a, b int) int {
	return (a + b - 1) / b
}
