package radixsort

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/manas95826/radixsort/radixkey"
)

func TestComparativeSortSortsByFullKey(t *testing.T) {
	var o radixkey.Uint32
	bucket := []uint32{55, 22, 73, 4, 89, 0, 100, 3}
	comparativeSort[uint32](o, bucket, 3)
	require.Equal(t, []uint32{0, 3, 4, 22, 55, 73, 89, 100}, bucket)
}

func TestComparativeSortEmptyAndSingle(t *testing.T) {
	var o radixkey.Uint32
	empty := []uint32{}
	comparativeSort[uint32](o, empty, 3)
	require.Empty(t, empty)

	single := []uint32{42}
	comparativeSort[uint32](o, single, 3)
	require.Equal(t, []uint32{42}, single)
}
