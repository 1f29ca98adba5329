package radixsort

// SingleThreadedTuner only ever picks among the three kernels that make
// sense without a worker pool: Comparative, LrLsb/Lsb, and Ska.
type SingleThreadedTuner struct{}

func (SingleThreadedTuner) PickAlgorithm(p TuningParams, counts *Counts) Algorithm {
	if p.InputLen <= comparativeSortThreshold {
		return AlgoComparative
	}

	if distributionHeavy(p, counts) {
		if p.InputLen <= 50_000 {
			return AlgoLrLsb
		}
		return AlgoSka
	}

	switch {
	case p.InputLen <= 400_000:
		return AlgoLsb
	default:
		return AlgoSka
	}
}
