package evaluation

import "errors"

// ErrNoCandidates is returned when every candidate failed to fit.
var ErrNoCandidates = errors.New("no evaluated candidates to select from")

// SelectBest picks the result with the strictly highest F1. Exact ties fall
// to the earliest entry, so selection is reproducible for a fixed bank
// order. Pure function: it knows nothing about the models behind the
// scores.
func SelectBest(results []Result) (Result, error) {
	if len(results) == 0 {
		return Result{}, ErrNoCandidates
	}

	best := results[0]
	for _, res := range results[1:] {
		if res.F1 > best.F1 {
			best = res
		}
	}
	return best, nil
}
