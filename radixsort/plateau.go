package radixsort

import "github.com/manas95826/radixsort/radixkey"

// plateau is a run [L, R) in a bucket where every element shares one digit.
type plateau struct {
	digit byte
	l, r  int
}

// plateauMinSizeFloor below this size the detection overhead isn't worth
// it relative to any savings from skipping the bulk move.
const plateauMinSizeFloor = 128

// detectPlateaus finds runs of >= len(bucket)/16 (and >= 128) consecutive
// elements sharing one digit, via a two-phase scan: phase 1 samples every
// plateauMinSize-th position to find candidate boundaries, phase 2 expands
// each candidate left/right one element at a time until the digit changes.
// A candidate is recorded only when a later sample shows a different digit,
// so a run that covers the last sampled position is not reported.
func detectPlateaus[T any](oracle radixkey.Oracle[T], bucket []T, level int) []plateau {
	n := len(bucket)
	plateauMinSize := n >> 4
	if plateauMinSize < plateauMinSizeFloor {
		return nil
	}

	type candidate struct {
		digit          byte
		sl, sr, el, er int
	}
	var candidates []candidate
	var plateaus []plateau

	current := byte(0)
	haveStart := false
	start, end := 0, 0

	for i := 0; i < n; i += plateauMinSize {
		b := oracle.Digit(bucket[i], level)
		if haveStart && b == current {
			end = i
		} else {
			if haveStart && start != end {
				candidates = append(candidates, candidate{current, start, start, end, end})
			}
			current = b
			start, end = i, i
			haveStart = true
		}
	}

	for ci := range candidates {
		c := &candidates[ci]
		radix := c.digit

		// 2.1 explore left of the start.
		i := c.sl
		for i > 0 {
			i--
			if oracle.Digit(bucket[i], level) != radix {
				c.sl = i + 1
				break
			}
			if i == 0 {
				c.sl = 0
			}
		}

		// 2.2 explore right of the start.
		i = c.sr
		for i < n-1 {
			i++
			if oracle.Digit(bucket[i], level) != radix {
				c.sr = i
				break
			}
			if i == n-1 {
				c.sr = n - 1
			}
		}

		if c.sr > c.er {
			plateaus = append(plateaus, plateau{radix, c.sl, c.sr})
			continue
		} else if c.sr-c.sl >= plateauMinSize {
			plateaus = append(plateaus, plateau{radix, c.sl, c.sr})
		}

		if c.el-c.sr < plateauMinSize {
			continue
		}

		// 2.4 explore left of the end point.
		i = c.el
		for i > c.sr {
			i--
			if oracle.Digit(bucket[i], level) != radix {
				c.el = i + 1
				break
			}
		}

		// 2.5 explore right of the end point.
		i = c.er
		for i < n-1 {
			i++
			if oracle.Digit(bucket[i], level) != radix {
				c.er = i
				break
			}
			if i == n-1 {
				c.er = n - 1
			}
		}

		if c.er-c.el >= plateauMinSize {
			plateaus = append(plateaus, plateau{radix, c.el, c.er})
		}
	}

	return plateaus
}

// applyPlateaus moves every detected plateau directly to its target range
// (PrefixSums[digit]..+len) and the displaced elements into the plateau's
// former range, handling the three possible overlap shapes. A plateau whose
// recorded range overlaps a target range already filled by an earlier
// plateau no longer holds its run there, so it is skipped and its digit is
// left to the kernel that follows. It returns the
// prefix sums advanced past each applied plateau; end offsets are returned
// unchanged, since only resolving this parallel kernel's job - placing
// entire plateaus - is this function's responsibility.
func applyPlateaus[T any](bucket []T, counts *Counts, plateaus []plateau) (PrefixSums, EndOffsets) {
	sums := prefixSums(counts)
	ends := endOffsets(counts, &sums)

	// filled holds the target ranges already written by earlier plateaus.
	var filled [][2]int
	for _, p := range plateaus {
		stale := false
		for _, f := range filled {
			if p.l < f[1] && f[0] < p.r {
				stale = true
				break
			}
		}
		if stale {
			continue
		}
		length := p.r - p.l
		writeStart := sums[p.digit]
		writeEnd := writeStart + length
		sums[p.digit] += length
		filled = append(filled, [2]int{writeStart, writeEnd})

		switch {
		case p.l == writeStart:
			// Already in place.
		case p.r < writeStart || p.l > writeEnd:
			// Non-overlapping: swap the two ranges via scratch copies.
			tmpPlateau := append([]T(nil), bucket[p.l:p.r]...)
			tmpDest := append([]T(nil), bucket[writeStart:writeEnd]...)
			copy(bucket[writeStart:writeEnd], tmpPlateau)
			copy(bucket[p.l:p.r], tmpDest)
		case p.r < writeEnd:
			// Right side of the plateau overlaps the write area.
			nonOverlap := writeStart - p.l
			tmpPlateau := append([]T(nil), bucket[p.l:writeStart]...)
			tmpDest := append([]T(nil), bucket[p.r:writeEnd]...)
			copy(bucket[p.l:writeStart], tmpDest)
			copy(bucket[p.r:writeEnd], tmpPlateau)
			_ = nonOverlap
		default:
			// Left side of the plateau overlaps the write area.
			nonOverlap := p.r - writeEnd
			tmpPlateau := append([]T(nil), bucket[writeEnd:p.r]...)
			tmpDest := append([]T(nil), bucket[writeStart:p.l]...)
			copy(bucket[writeEnd:p.r], tmpDest)
			copy(bucket[writeStart:p.l], tmpPlateau)
			_ = nonOverlap
		}
	}

	return sums, ends
}
