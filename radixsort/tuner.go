package radixsort

// Algorithm identifies one of the eight digit-sort kernels (Lsb and LrLsb
// are two adapters over the same out-of-place family).
type Algorithm int

const (
	AlgoComparative Algorithm = iota
	AlgoLsb
	AlgoLrLsb
	AlgoMtLsb
	AlgoSka
	AlgoScanning
	AlgoRecombinating
	AlgoRegions
)

func (a Algorithm) String() string {
	switch a {
	case AlgoComparative:
		return "comparative"
	case AlgoLsb:
		return "lsb"
	case AlgoLrLsb:
		return "lr_lsb"
	case AlgoMtLsb:
		return "mt_lsb"
	case AlgoSka:
		return "ska"
	case AlgoScanning:
		return "scanning"
	case AlgoRecombinating:
		return "recombinating"
	case AlgoRegions:
		return "regions"
	default:
		return "unknown"
	}
}

// TuningParams is the input to a Tuner's algorithm choice at one bucket.
type TuningParams struct {
	Threads     int
	Level       int
	TotalLevels int
	InputLen    int
	ParentLen   int
}

// Depth returns how many levels deep this bucket is from the top-level
// (MSB) partition; depth 0 is the very first partition of the whole input.
func (p TuningParams) Depth() int {
	return p.TotalLevels - p.Level - 1
}

// Tuner picks an Algorithm for a bucket given its tuning parameters and
// digit-count histogram. Implementations must be pure and safe to call
// concurrently from many worker goroutines.
type Tuner interface {
	PickAlgorithm(p TuningParams, counts *Counts) Algorithm
}

// distributionHeavy reports whether some digit's count is large enough,
// relative to the bucket, that an out-of-place distribution pass is
// expected to dominate the cost of sorting this level.
func distributionHeavy(p TuningParams, counts *Counts) bool {
	if p.InputLen < 5_000 {
		return false
	}
	threshold := (p.InputLen / 256) * 2
	for i := 0; i < 256; i++ {
		if counts[i] >= threshold {
			return true
		}
	}
	return false
}
