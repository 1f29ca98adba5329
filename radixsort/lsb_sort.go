package radixsort

import "github.com/manas95826/radixsort/radixkey"

// lsbSort sorts bucket on digits [startLevel..endLevel] least-significant
// first, out of place, reusing a scratch buffer from pool across levels.
// After digit level l has been processed the bucket is sorted by digits
// [startLevel..l]; processing continues upward.
//
// If the level range has an odd number of levels (endLevel-startLevel is
// even), the final pass would otherwise land the data in scratch, forcing a
// copy back. To avoid that, the very
// first level is instead handled by an in-place Ska pass (after plateau
// detection/relocation), which changes the parity and lets the remaining
// levels finish in the bucket itself.
func lsbSort[T any](pool *scratchPool[T], oracle radixkey.Oracle[T], bucket []T, startLevel, endLevel int) {
	n := len(bucket)
	if n < 2 {
		return
	}

	tmp := pool.getBuffer(n)
	defer pool.putBuffer(tmp)

	nextCounts := pool.getCounts()
	defer pool.putCounts(nextCounts)
	haveCounts := false

	invert := false

	for level := startLevel; level <= endLevel; level++ {
		if !haveCounts {
			c, _ := counts(oracle, bucket, level)
			*nextCounts = c
			haveCounts = true
		}

		skippable := false
		for _, c := range nextCounts {
			if c == n {
				skippable = true
				break
			}
		}
		if skippable {
			haveCounts = false
			continue
		}

		if level == startLevel && (endLevel-startLevel)%2 == 0 {
			plateaus := detectPlateaus(oracle, bucket, level)
			sums, ends := applyPlateaus(bucket, nextCounts, plateaus)
			skaSortCore(oracle, bucket, nextCounts, sums, ends, level)
			haveCounts = false
			continue
		}

		isLast := level == endLevel
		switch {
		case invert && isLast:
			scatterOutOfPlace(oracle, tmp, bucket, nextCounts, level)
		case invert && !isLast:
			*nextCounts = scatterOutOfPlaceWithCounts(oracle, tmp, bucket, nextCounts, level, level+1)
		case !invert && isLast:
			scatterOutOfPlace(oracle, bucket, tmp, nextCounts, level)
		default:
			*nextCounts = scatterOutOfPlaceWithCounts(oracle, bucket, tmp, nextCounts, level, level+1)
		}

		invert = !invert
	}

	if invert {
		copy(bucket, tmp)
	}
}

// lrLsbSort is lsbSort's sibling that scatters each level from both ends of
// the source simultaneously (scatterLeftRight), trading a little more
// per-element bookkeeping for roughly half the memory traffic on small
// buckets. It does not apply the Ska parity trick: spec.md describes that
// optimization only for the plain out-of-place family.
func lrLsbSort[T any](pool *scratchPool[T], oracle radixkey.Oracle[T], bucket []T, startLevel, endLevel int) {
	n := len(bucket)
	if n < 2 {
		return
	}

	tmp := pool.getBuffer(n)
	defer pool.putBuffer(tmp)

	invert := false
	for level := startLevel; level <= endLevel; level++ {
		c, _ := counts(oracle, bucket, level)
		if isHomogeneous(&c) {
			continue
		}

		if invert {
			scatterLeftRight(oracle, tmp, bucket, &c, level)
		} else {
			scatterLeftRight(oracle, bucket, tmp, &c, level)
		}
		invert = !invert
	}

	if invert {
		copy(bucket, tmp)
	}
}
