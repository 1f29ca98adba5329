package radixsort

// LowMemoryTuner trades some throughput for bounded extra allocation: it
// never reaches for MtLsb or Recombinating (both need a full-size tile
// scratch buffer up front) and caps out at Regions, which is in-place
// after its tile pass.
type LowMemoryTuner struct{}

func (LowMemoryTuner) PickAlgorithm(p TuningParams, counts *Counts) Algorithm {
	if p.InputLen <= comparativeSortThreshold {
		return AlgoComparative
	}

	if distributionHeavy(p, counts) {
		switch {
		case p.InputLen <= 50_000:
			return AlgoLrLsb
		case p.InputLen <= 1_000_000:
			return AlgoSka
		default:
			return AlgoRegions
		}
	}

	switch {
	case p.InputLen <= 50_000:
		return AlgoLsb
	case p.InputLen <= 1_000_000:
		return AlgoSka
	default:
		return AlgoRegions
	}
}
