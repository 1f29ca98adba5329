package radixsort

import (
	"sort"

	"github.com/manas95826/radixsort/radixkey"
)

// comparativeSortThreshold is the bucket size at or below which a plain
// comparison sort beats the overhead of any counting pass.
const comparativeSortThreshold = 128

// comparativeSort sorts bucket by the ordered tuple of digits
// (Digit(v, level), Digit(v, level-1), ..., Digit(v, 0)), used directly for
// small buckets and as the final-answer sort within that domain.
func comparativeSort[T any](oracle radixkey.Oracle[T], bucket []T, level int) {
	sort.Slice(bucket, func(i, j int) bool {
		for l := level; ; l-- {
			a := oracle.Digit(bucket[i], l)
			b := oracle.Digit(bucket[j], l)
			if a != b {
				return a < b
			}
			if l == 0 {
				return false
			}
		}
	})
}
