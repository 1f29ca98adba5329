package radixsort

import "github.com/manas95826/radixsort/radixkey"

// scatterOutOfPlace distributes src into dst by prefix sums of counts at
// level, advancing from the front of src only, unrolled by 8 to hide
// load-use latency. It does not touch the next level.
func scatterOutOfPlace[T any](oracle radixkey.Oracle[T], src, dst []T, counts *Counts, level int) {
	sums := prefixSums(counts)
	n := len(src)

	full := n - n%8
	for i := 0; i < full; i += 8 {
		for j := 0; j < 8; j++ {
			b := oracle.Digit(src[i+j], level)
			dst[sums[b]] = src[i+j]
			sums[b]++
		}
	}
	for i := full; i < n; i++ {
		b := oracle.Digit(src[i], level)
		dst[sums[b]] = src[i]
		sums[b]++
	}
}

// scatterOutOfPlaceWithCounts is scatterOutOfPlace but additionally
// accumulates the digit histogram for nextLevel as a side effect of the
// same pass, so the caller (lsbSort) doesn't have to recount it.
func scatterOutOfPlaceWithCounts[T any](oracle radixkey.Oracle[T], src, dst []T, counts *Counts, level, nextLevel int) Counts {
	sums := prefixSums(counts)
	var next Counts
	n := len(src)

	for i := 0; i < n; i++ {
		v := src[i]
		b := oracle.Digit(v, level)
		dst[sums[b]] = v
		sums[b]++
		next[oracle.Digit(v, nextLevel)]++
	}

	return next
}

// scatterLeftRight distributes src into dst from both ends simultaneously:
// left advances forward through PrefixSums, right advances backward through
// EndOffsets. Destination writes never collide because each digit owns a
// disjoint target range and both heads only ever move into their own
// digit's range. This halves the effective memory traffic versus a
// single-direction scatter for buckets small enough to fit the working set
// in cache on both ends at once.
func scatterLeftRight[T any](oracle radixkey.Oracle[T], src, dst []T, counts *Counts, level int) {
	sums := prefixSums(counts)
	ends := endOffsets(counts, &sums)
	for i, e := range ends {
		if e > 0 {
			ends[i] = e - 1
		}
	}

	n := len(src)
	if n == 0 {
		return
	}

	left := 0
	right := n - 1
	pre := n % 8

	for k := 0; k < pre && left <= right; k++ {
		b := oracle.Digit(src[right], level)
		dst[ends[b]] = src[right]
		if ends[b] > 0 {
			ends[b]--
		}
		right--
	}

	for left < right {
		for j := 0; j < 4 && left < right; j++ {
			bl := oracle.Digit(src[left], level)
			dst[sums[bl]] = src[left]
			sums[bl]++

			br := oracle.Digit(src[right], level)
			dst[ends[br]] = src[right]
			if ends[br] > 0 {
				ends[br]--
			}

			left++
			right--
		}
	}
}
