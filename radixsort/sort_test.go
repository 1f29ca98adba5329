package radixsort

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/manas95826/radixsort/radixkey"
)

func TestSortScenario1Uint8(t *testing.T) {
	data := []uint8{55, 22, 73, 4, 89, 0, 100, 3}
	err := Sort[uint8](data, radixkey.Uint8{})
	require.NoError(t, err)
	require.Equal(t, []uint8{0, 3, 4, 22, 55, 73, 89, 100}, data)
}

func TestSortScenario2Uint32(t *testing.T) {
	data := []uint32{4294967295, 4294967294, 543, 544, 0}
	err := Sort[uint32](data, radixkey.Uint32{})
	require.NoError(t, err)
	require.Equal(t, []uint32{0, 543, 544, 4294967294, 4294967295}, data)
}

func TestSortScenario3Uint32Descending(t *testing.T) {
	data := []uint32{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}
	err := Sort[uint32](data, radixkey.Uint32{})
	require.NoError(t, err)
	require.Equal(t, []uint32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, data)
}

func TestSortScenario4HomogeneousUint32(t *testing.T) {
	data := make([]uint32, 128)
	for i := range data {
		data[i] = math.MaxUint32
	}
	before := append([]uint32(nil), data...)

	err := Sort[uint32](data, radixkey.Uint32{})
	require.NoError(t, err)
	require.Equal(t, before, data)
}

func TestSortScenario5BimodalDistributionUint32(t *testing.T) {
	n := 1_000_000
	data := make([]uint32, 0, n)
	rng := randomUint32Slice(n/2, 71)
	for _, v := range rng {
		data = append(data, v>>16)
	}
	rng = randomUint32Slice(n/2, 72)
	for _, v := range rng {
		data = append(data, v<<16)
	}

	want := referenceSortUint32(data)

	err := Sort[uint32](data, radixkey.Uint32{})
	require.NoError(t, err)
	require.Equal(t, want, data)
}

func TestSortProperty2Permutation(t *testing.T) {
	before := randomUint32Slice(10_000, 81)
	data := append([]uint32(nil), before...)

	err := Sort[uint32](data, radixkey.Uint32{})
	require.NoError(t, err)
	require.True(t, isPermutationUint32(before, data))
}

func TestSortProperty3Idempotence(t *testing.T) {
	data := randomUint32Slice(10_000, 82)
	err := Sort[uint32](data, radixkey.Uint32{})
	require.NoError(t, err)
	once := append([]uint32(nil), data...)

	err = Sort[uint32](data, radixkey.Uint32{})
	require.NoError(t, err)
	require.Equal(t, once, data)
}

// forcedTuner always returns one algorithm, used to exercise Property 4
// (algorithm equivalence) for each kernel within its domain bounds.
type forcedTuner struct {
	algo Algorithm
}

func (f forcedTuner) PickAlgorithm(TuningParams, *Counts) Algorithm {
	return f.algo
}

func TestSortProperty4AlgorithmEquivalence(t *testing.T) {
	cases := []struct {
		name string
		algo Algorithm
		n    int
	}{
		{"comparative", AlgoComparative, 100},
		{"lsb", AlgoLsb, 50_000},
		{"lr_lsb", AlgoLrLsb, 50_000},
		{"ska", AlgoSka, 50_000},
		{"scanning", AlgoScanning, 50_000},
		{"mt_lsb", AlgoMtLsb, 300_000},
		{"recombinating", AlgoRecombinating, 300_000},
		{"regions", AlgoRegions, 300_000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data := randomUint32Slice(tc.n, int64(len(tc.name)+tc.n))
			want := referenceSortUint32(data)

			err := Sort[uint32](data, radixkey.Uint32{}, WithTuner(forcedTuner{tc.algo}))
			require.NoError(t, err)
			require.Equal(t, want, data)
		})
	}
}

func TestSortProperty5HomogeneitySkipDoesNotCorrupt(t *testing.T) {
	data := make([]uint32, 40_000)
	for i := range data {
		data[i] = 0xABCDEF00
	}
	before := append([]uint32(nil), data...)

	err := Sort[uint32](data, radixkey.Uint32{})
	require.NoError(t, err)
	require.Equal(t, before, data)
}

func TestSortProperty6PlateauPreservation(t *testing.T) {
	n := 50_000
	data := randomUint32Slice(n, 91)
	// Embed a long run sharing the low byte: n/8 elements, more than the
	// n/16 plateau size at level 0.
	start := n / 4
	for i := start; i < start+n/8; i++ {
		data[i] = (data[i] &^ 0xFF) | 0x42
	}
	want := referenceSortUint32(data)

	err := Sort[uint32](data, radixkey.Uint32{})
	require.NoError(t, err)
	require.Equal(t, want, data)
}

func TestSortProperty7BoundaryEmptyAndSingle(t *testing.T) {
	var empty []uint32
	err := Sort[uint32](empty, radixkey.Uint32{})
	require.NoError(t, err)
	require.Empty(t, empty)

	single := []uint32{42}
	err = Sort[uint32](single, radixkey.Uint32{})
	require.NoError(t, err)
	require.Equal(t, []uint32{42}, single)
}

func TestSortRejectsZeroLevelOracle(t *testing.T) {
	data := []uint8{1, 2, 3}
	err := Sort[uint8](data, zeroLevelOracle{})
	require.Error(t, err)
}

type zeroLevelOracle struct{}

func (zeroLevelOracle) Levels() int                 { return 0 }
func (zeroLevelOracle) Digit(v uint8, level int) byte { return v }

func TestSortSingleThreadedMatchesMultiThreaded(t *testing.T) {
	data := randomUint32Slice(200_000, 101)
	want := referenceSortUint32(data)

	mt := append([]uint32(nil), data...)
	require.NoError(t, Sort[uint32](mt, radixkey.Uint32{}))
	require.Equal(t, want, mt)

	st := append([]uint32(nil), data...)
	require.NoError(t, Sort[uint32](st, radixkey.Uint32{}, WithSingleThreading()))
	require.Equal(t, want, st)
}

func TestSortFloat64PreservesNumericOrder(t *testing.T) {
	data := []float64{3.5, -1.2, 0, math.Copysign(0, -1), 100.25, -100.25, 1e10, -1e10}
	err := Sort[float64](data, radixkey.Float64{})
	require.NoError(t, err)

	for i := 1; i < len(data); i++ {
		require.LessOrEqual(t, data[i-1], data[i])
	}
}

func TestSortInt64PreservesSign(t *testing.T) {
	data := []int64{5, -3, 0, -100, 42, math.MinInt64, math.MaxInt64}
	err := Sort[int64](data, radixkey.Int64{})
	require.NoError(t, err)

	for i := 1; i < len(data); i++ {
		require.LessOrEqual(t, data[i-1], data[i])
	}
}
