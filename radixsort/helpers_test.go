package radixsort

import (
	"math/rand"
	"sort"

	"github.com/manas95826/radixsort/radixkey"
)

func isSortedByOracle[T any](oracle radixkey.Oracle[T], bucket []T) bool {
	levels := oracle.Levels()
	return sort.SliceIsSorted(bucket, func(i, j int) bool {
		for l := levels - 1; l >= 0; l-- {
			a := oracle.Digit(bucket[i], l)
			b := oracle.Digit(bucket[j], l)
			if a != b {
				return a < b
			}
		}
		return false
	})
}

func referenceSortUint32(in []uint32) []uint32 {
	out := append([]uint32(nil), in...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func randomUint32Slice(n int, seed int64) []uint32 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]uint32, n)
	for i := range out {
		out[i] = rng.Uint32()
	}
	return out
}

func randomUint8Slice(n int, seed int64) []uint8 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]uint8, n)
	for i := range out {
		out[i] = uint8(rng.Intn(256))
	}
	return out
}

func isPermutationUint32(before, after []uint32) bool {
	if len(before) != len(after) {
		return false
	}
	counts := make(map[uint32]int, len(before))
	for _, v := range before {
		counts[v]++
	}
	for _, v := range after {
		counts[v]--
	}
	for _, c := range counts {
		if c != 0 {
			return false
		}
	}
	return true
}
