package radixsort

import (
	"sync"

	"github.com/manas95826/radixsort/radixkey"
)

// tileExponent fixes the tile size at a power of two so that the tile
// index of any destination position is a plain right shift.
const tileExponent = 20 // 1<<20 = 1,048,576 elements per tile

const tileSizeForMtLsb = 1 << tileExponent

// minorCounts reinterprets a set of per-tile histograms as one contiguous
// sequence of "minor buckets", ordered digit-major then tile-minor: all
// tiles' count for digit 0, then all tiles' count for digit 1, and so on.
// That layout lets the destination be split into 256*numTiles contiguous
// sub-slices with one arbitraryChunks call.
func minorCounts(tiles []Counts) []int {
	out := make([]int, 256*len(tiles))
	i := 0
	for b := 0; b < 256; b++ {
		for t := range tiles {
			out[i] = tiles[t][b]
			i++
		}
	}
	return out
}

// mtLsbSort is the tiled multi-threaded LSB kernel: each level, the source
// is split into fixed-size tiles, and every tile's worker scatters its
// elements directly into its own private (digit, tile) sub-slices of the
// destination, counting the next level's digits as a side effect. Tile
// size is a power of two, so a destination position's tile index is a
// right shift.
func mtLsbSort[T any](pool *scratchPool[T], oracle radixkey.Oracle[T], bucket []T, startLevel, endLevel int) {
	n := len(bucket)
	if n < 2 {
		return
	}

	tmp := pool.getBuffer(n)
	defer pool.putBuffer(tmp)

	numTiles := cdiv(n, tileSizeForMtLsb)
	invert := false
	first := true
	var next []int

	for level := startLevel; level <= endLevel; level++ {
		if first && (endLevel-startLevel)%2 == 0 {
			c := pool.getCounts()
			*c, _ = parCounts(oracle, bucket, level)
			plateaus := detectPlateaus(oracle, bucket, level)
			sums, ends := applyPlateaus(bucket, c, plateaus)
			skaSortCore(oracle, bucket, c, sums, ends, level)
			pool.putCounts(c)
			first = false
			next = nil
			continue
		}

		src, dst := bucket, tmp
		if invert {
			src, dst = tmp, bucket
		}

		if next == nil {
			tiles, _ := tileCounts(oracle, src, tileSizeForMtLsb, level)
			next = minorCounts(tiles)
		}

		dstChunks := arbitraryChunks(dst, next)
		if level == endLevel {
			mtLsbWrite(oracle, src, dstChunks, tileSizeForMtLsb, numTiles, level)
			next = nil
		} else {
			next = mtLsbWriteAndCount(oracle, src, dstChunks, tileSizeForMtLsb, numTiles, level, level+1)
		}

		invert = !invert
		first = false
	}

	if invert {
		copy(bucket, tmp)
	}
}

// mtLsbWrite scatters every tile of src into its private (digit, tile)
// sub-slices of dst, in parallel, without tracking the next level's counts.
func mtLsbWrite[T any](oracle radixkey.Oracle[T], src []T, dstChunks [][]T, tileSize, numTiles int, level int) {
	var wg sync.WaitGroup
	wg.Add(numTiles)

	for t := 0; t < numTiles; t++ {
		start := t * tileSize
		end := start + tileSize
		if end > len(src) {
			end = len(src)
		}

		go func(tileIdx, s, e int) {
			defer wg.Done()
			var offsets [256]int
			for i := s; i < e; i++ {
				v := src[i]
				b := oracle.Digit(v, level)
				dstChunks[int(b)*numTiles+tileIdx][offsets[b]] = v
				offsets[b]++
			}
		}(t, start, end)
	}

	wg.Wait()
}

// mtLsbWriteAndCount is mtLsbWrite plus accumulating the nextLevel digit
// histogram bucketed by *destination* tile (the absolute write position
// divided by tileSize), so the following level doesn't need
// a fresh counting pass.
func mtLsbWriteAndCount[T any](oracle radixkey.Oracle[T], src []T, dstChunks [][]T, tileSize, numTiles int, level, nextLevel int) []int {
	perTile := make([][]Counts, numTiles)
	// chunkBase[i] is the absolute offset of dstChunks[i][0] within the
	// full destination bucket, needed to compute a write position's
	// destination tile. dstChunks is contiguous and in the same order as
	// the minorCounts histogram that produced it.
	chunkBase := make([]int, len(dstChunks))
	base := 0
	for i, c := range dstChunks {
		chunkBase[i] = base
		base += len(c)
	}

	var wg sync.WaitGroup
	wg.Add(numTiles)

	for t := 0; t < numTiles; t++ {
		start := t * tileSize
		end := start + tileSize
		if end > len(src) {
			end = len(src)
		}

		go func(tileIdx, s, e int) {
			defer wg.Done()
			var offsets [256]int
			nextCounts := make([]Counts, numTiles)

			for i := s; i < e; i++ {
				v := src[i]
				b := oracle.Digit(v, level)
				chunkIdx := int(b)*numTiles + tileIdx
				pos := offsets[b]
				dstChunks[chunkIdx][pos] = v
				offsets[b]++

				absolutePos := chunkBase[chunkIdx] + pos
				destTile := absolutePos / tileSize
				nextCounts[destTile][oracle.Digit(v, nextLevel)]++
			}

			perTile[tileIdx] = nextCounts
		}(t, start, end)
	}

	wg.Wait()

	merged := make([]Counts, numTiles)
	for _, sub := range perTile {
		for i, c := range sub {
			for b := 0; b < 256; b++ {
				merged[i][b] += c[b]
			}
		}
	}

	return minorCounts(merged)
}

