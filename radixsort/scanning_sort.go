package radixsort

import (
	"math"
	"runtime"
	"sync"

	"github.com/manas95826/radixsort/radixkey"
)

// scannerBucket is one digit's private sub-slice of the bucket being
// partitioned, guarded by a try-lock so that cooperating goroutines never
// block on each other: a goroutine that can't acquire a bucket simply
// moves on to the next one.
type scannerBucket[T any] struct {
	index int
	len   int

	mu                 sync.Mutex
	writeHead          int
	readHead           int
	chunk              []T
	locallyPartitioned bool
}

func getScannerBuckets[T any](counts *Counts, sums *PrefixSums, bucket []T) []*scannerBucket[T] {
	sizes := make([]int, 256)
	for i := range sizes {
		sizes[i] = counts[i]
	}
	chunks := arbitraryChunks(bucket, sizes)

	running := 0
	out := make([]*scannerBucket[T], 256)
	for i, chunk := range chunks {
		head := sums[i] - running
		running += len(chunk)
		out[i] = &scannerBucket[T]{
			index:     i,
			len:       len(chunk),
			writeHead: head,
			readHead:  head,
			chunk:     chunk,
		}
	}

	// Largest buckets first: a goroutine that locks a large bucket has
	// more work queued up behind it, so visiting them first reduces
	// contention thrash across the rotation.
	sortScannerBucketsByLenDesc(out)

	return out
}

func sortScannerBucketsByLenDesc[T any](buckets []*scannerBucket[T]) {
	for i := 1; i < len(buckets); i++ {
		j := i
		for j > 0 && buckets[j-1].len < buckets[j].len {
			buckets[j-1], buckets[j] = buckets[j], buckets[j-1]
			j--
		}
	}
}

// scannerReadSize mirrors the original tuning: 32KiB worth of elements,
// scaled down as thread count grows so that no one goroutine monopolizes a
// bucket's read head for too long.
func scannerReadSize(threads int) int {
	scaling := 1
	if threads > 1 {
		scaling = int(math.Ceil(math.Log2(float64(threads))))
		if scaling < 1 {
			scaling = 1
		}
	}
	return 32768 / scaling
}

func scannerThread[T any](oracle radixkey.Oracle[T], buckets []*scannerBucket[T], level int, readSize int, uniformThreshold int) {
	stash := make([][]T, 256)
	for i := range stash {
		stash[i] = make([]T, 0, 128)
	}

	finished := make([]bool, 256)
	finishedCount := 0

	// Local pre-pass: for any oversized bucket, partition its own slice
	// in-place ([correct digit | everything else]) before joining the
	// cooperative scan, so less data needs to move through the stash.
	for _, m := range buckets {
		if m.len < uniformThreshold {
			continue
		}
		if !m.mu.TryLock() {
			continue
		}
		if !m.locallyPartitioned {
			m.locallyPartitioned = true
			start := partitionByDigit(oracle, m.chunk, byte(m.index), level)
			m.readHead = start
			m.writeHead = start
		}
		m.mu.Unlock()
	}

outer:
	for {
		for _, m := range buckets {
			if finished[m.index] {
				continue
			}

			if !m.mu.TryLock() {
				continue
			}

			if m.writeHead >= m.len {
				m.mu.Unlock()
				finished[m.index] = true
				finishedCount++
				if finishedCount == len(buckets) {
					break outer
				}
				continue
			}

			toRead := m.len - m.readHead
			if toRead > readSize {
				toRead = readSize
			}
			if toRead > 0 {
				end := m.readHead + toRead
				readData := m.chunk[m.readHead:end]

				full := len(readData) - len(readData)%8
				for i := 0; i < full; i += 8 {
					for j := 0; j < 8; j++ {
						d := oracle.Digit(readData[i+j], level)
						stash[d] = append(stash[d], readData[i+j])
					}
				}
				for i := full; i < len(readData); i++ {
					d := oracle.Digit(readData[i], level)
					stash[d] = append(stash[d], readData[i])
				}

				m.readHead += toRead
			}

			toWrite := len(stash[m.index])
			if room := m.readHead - m.writeHead; room < toWrite {
				toWrite = room
			}

			if toWrite > 0 {
				split := len(stash[m.index]) - toWrite
				moving := stash[m.index][split:]
				copy(m.chunk[m.writeHead:m.writeHead+toWrite], moving)
				stash[m.index] = stash[m.index][:split]
				m.writeHead += toWrite

				if m.writeHead >= m.len {
					m.mu.Unlock()
					finished[m.index] = true
					finishedCount++
					if finishedCount == len(buckets) {
						break outer
					}
					continue
				}
			}

			m.mu.Unlock()
		}
	}
}

// partitionByDigit moves every element whose digit at level equals target
// to the front of chunk and returns the length of that prefix.
func partitionByDigit[T any](oracle radixkey.Oracle[T], chunk []T, target byte, level int) int {
	i := 0
	for j := 0; j < len(chunk); j++ {
		if oracle.Digit(chunk[j], level) == target {
			chunk[i], chunk[j] = chunk[j], chunk[i]
			i++
		}
	}
	return i
}

// scanningSort is the lock-based cooperative in-place parallel MSB
// partitioner. It first relocates any digit-run plateau in bulk, then
// spins up one goroutine per GOMAXPROCS thread (at most 256) that
// cooperatively drain every scannerBucket via try-lock rotation until all
// 256 have filled to their target length.
func scanningSort[T any](oracle radixkey.Oracle[T], bucket []T, counts *Counts, level int) {
	n := len(bucket)
	threads := runtime.GOMAXPROCS(0)
	if threads < 1 {
		threads = 1
	}
	uniformThreshold := int(float64(n/threads) * 1.4)

	plateaus := detectPlateaus(oracle, bucket, level)
	sums, _ := applyPlateaus(bucket, counts, plateaus)

	buckets := getScannerBuckets(counts, &sums, bucket)

	workers := threads
	if workers > len(buckets) {
		workers = len(buckets)
	}
	if workers < 1 {
		workers = 1
	}
	readSize := scannerReadSize(workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			scannerThread(oracle, buckets, level, readSize, uniformThreshold)
		}()
	}
	wg.Wait()
}
