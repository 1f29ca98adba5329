// Command radixsortgen generates a reproducible random dataset, sorts it
// with the radixsort package, and reports how long the sort took. It exists
// to give the library an end-to-end smoke fixture along the lines of the
// upstream crate's own benchmark fixture, without pulling in a benchmarking
// framework for a single-shot run.
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/manas95826/radixsort/radixkey"
	"github.com/manas95826/radixsort/radixsort"
)

func main() {
	n := flag.Int("n", 1_000_000, "number of elements to generate")
	seed := flag.Uint64("seed", 0xC0FFEE, "PRNG seed")
	kind := flag.String("type", "uint64", "element type: uint64, int64, float64")
	singleThreaded := flag.Bool("single-threaded", false, "force the single-threaded recursion path")
	verify := flag.Bool("verify", true, "verify the output is non-decreasing after sorting")
	flag.Parse()

	var opts []radixsort.Option
	if *singleThreaded {
		opts = append(opts, radixsort.WithSingleThreading())
	}

	switch *kind {
	case "uint64":
		data := genUint64(*n, *seed)
		runSort(data, radixkey.Uint64{}, opts, *verify, func(a, b uint64) bool { return a <= b })
	case "int64":
		data := genInt64(*n, *seed)
		runSort(data, radixkey.Int64{}, opts, *verify, func(a, b int64) bool { return a <= b })
	case "float64":
		data := genFloat64(*n, *seed)
		runSort(data, radixkey.Float64{}, opts, *verify, func(a, b float64) bool { return a <= b })
	default:
		log.Fatalf("unknown -type %q: want uint64, int64, or float64", *kind)
	}
}

func runSort[T any](data []T, oracle radixkey.Oracle[T], opts []radixsort.Option, verify bool, lessEq func(a, b T) bool) {
	start := time.Now()
	if err := radixsort.Sort(data, oracle, opts...); err != nil {
		log.Fatalf("radixsort.Sort: %v", err)
	}
	elapsed := time.Since(start)

	if verify {
		for i := 1; i < len(data); i++ {
			if !lessEq(data[i-1], data[i]) {
				fmt.Fprintln(os.Stderr, "verification failed: output is not sorted")
				os.Exit(1)
			}
		}
	}

	fmt.Printf("sorted %d elements in %s\n", len(data), elapsed)
}

// splitmixState is a xxhash-seeded splitmix64-style generator: xxhash gives
// good avalanche from a small integer seed, and the splitmix recurrence
// turns that single digest into an arbitrarily long stream of well-mixed
// 64-bit words without re-hashing on every call.
type splitmixState struct {
	state uint64
}

func newSplitmix(seed uint64) *splitmixState {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], seed)
	return &splitmixState{state: xxhash.Sum64(buf[:])}
}

func (s *splitmixState) next() uint64 {
	s.state += 0x9E3779B97F4A7C15
	z := s.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func genUint64(n int, seed uint64) []uint64 {
	r := newSplitmix(seed)
	out := make([]uint64, n)
	for i := range out {
		out[i] = r.next()
	}
	return out
}

func genInt64(n int, seed uint64) []int64 {
	r := newSplitmix(seed)
	out := make([]int64, n)
	for i := range out {
		out[i] = int64(r.next())
	}
	return out
}

// float64ExpMask isolates the 11-bit exponent field of an IEEE-754 double.
const float64ExpMask = 0x7FF << 52

func genFloat64(n int, seed uint64) []float64 {
	r := newSplitmix(seed)
	out := make([]float64, n)
	for i := range out {
		bits := r.next()
		if bits&float64ExpMask == float64ExpMask {
			// Would decode to Inf/NaN; fold the exponent into the finite
			// range instead of redrawing.
			bits &^= float64ExpMask
			bits |= uint64(0x3FF) << 52
		}
		out[i] = math.Float64frombits(bits)
	}
	return out
}
