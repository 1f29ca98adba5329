package radixsort

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/manas95826/radixsort/radixkey"
)

func TestScanningSortPartitionsOneLevel(t *testing.T) {
	var o radixkey.Uint8
	bucket := randomUint8Slice(10_000, 31)

	c, _ := counts[uint8](o, bucket, 0)
	scanningSort[uint8](o, bucket, &c, 0)

	sums := prefixSums(&c)
	for digit := 0; digit < 256; digit++ {
		start := sums[digit]
		end := start + c[digit]
		for i := start; i < end; i++ {
			require.Equal(t, byte(digit), o.Digit(bucket[i], 0))
		}
	}
}

func TestScannerReadSizeShrinksWithThreads(t *testing.T) {
	require.Greater(t, scannerReadSize(1), scannerReadSize(8))
}

func TestPartitionByDigit(t *testing.T) {
	chunk := []uint8{1, 2, 1, 3, 1}
	n := partitionByDigit[uint8](radixkey.Uint8{}, chunk, 1, 0)
	require.Equal(t, 3, n)
	for i := 0; i < n; i++ {
		require.Equal(t, uint8(1), chunk[i])
	}
}
