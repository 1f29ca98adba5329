package radixsort

// StandardTuner is the default multi-threaded tuner, tuned against the
// thresholds in spec.md §4.10: below 5,000 elements or without a
// dominant digit it favors plain Lsb/Ska/Recombinating/Scanning bands by
// size and depth; above that, a distribution-heavy bucket switches to the
// LrLsb/Ska/MtLsb-or-Recombinating/Regions bands, split further by whether
// this is the top-level (depth 0) partition or a deeper one.
type StandardTuner struct{}

func (StandardTuner) PickAlgorithm(p TuningParams, counts *Counts) Algorithm {
	if p.InputLen <= comparativeSortThreshold {
		return AlgoComparative
	}

	depth := p.Depth()

	if distributionHeavy(p, counts) {
		if depth == 0 {
			switch {
			case p.InputLen <= 200_000:
				return AlgoLrLsb
			case p.InputLen <= 350_000:
				return AlgoSka
			case p.InputLen <= 4_000_000:
				return AlgoMtLsb
			default:
				return AlgoRegions
			}
		}
		switch {
		case p.InputLen <= 200_000:
			return AlgoLrLsb
		case p.InputLen <= 800_000:
			return AlgoSka
		case p.InputLen <= 5_000_000:
			return AlgoRecombinating
		default:
			return AlgoRegions
		}
	}

	if depth > 0 {
		switch {
		case p.InputLen <= 200_000:
			return AlgoLsb
		case p.InputLen <= 800_000:
			return AlgoSka
		case p.InputLen <= 50_000_000:
			return AlgoRecombinating
		default:
			return AlgoScanning
		}
	}

	switch {
	case p.InputLen <= 150_000:
		return AlgoLsb
	case p.InputLen <= 260_000:
		return AlgoSka
	case p.InputLen <= 50_000_000:
		return AlgoRecombinating
	default:
		return AlgoScanning
	}
}
