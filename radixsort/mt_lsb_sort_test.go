package radixsort

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/manas95826/radixsort/radixkey"
)

func TestMtLsbSortSingleTile(t *testing.T) {
	var o radixkey.Uint32
	bucket := randomUint32Slice(100_000, 21)
	before := append([]uint32(nil), bucket...)

	pool := newScratchPool[uint32]()
	mtLsbSort[uint32](pool, o, bucket, 0, 3)

	require.True(t, isPermutationUint32(before, bucket))
	require.Equal(t, referenceSortUint32(before), bucket)
}

func TestMtLsbSortMultipleTiles(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping multi-tile mt_lsb sweep in -short mode")
	}

	var o radixkey.Uint32
	n := (1 << 20) + (1 << 19) // spans two tiles at tileExponent=20
	bucket := randomUint32Slice(n, 22)
	before := append([]uint32(nil), bucket...)

	pool := newScratchPool[uint32]()
	mtLsbSort[uint32](pool, o, bucket, 0, 3)

	require.True(t, isPermutationUint32(before, bucket))
	require.Equal(t, referenceSortUint32(before), bucket)
}

func TestMinorCountsLayoutIsDigitMajorTileMinor(t *testing.T) {
	tiles := []Counts{{}, {}}
	tiles[0][5] = 3
	tiles[1][5] = 7
	tiles[0][9] = 1

	out := minorCounts(tiles)
	require.Equal(t, 3, out[5*2+0])
	require.Equal(t, 7, out[5*2+1])
	require.Equal(t, 1, out[9*2+0])
	require.Equal(t, 0, out[9*2+1])
}
