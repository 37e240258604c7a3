package catalog

// WithReciprocals expands a gear-ratio set with the reciprocal of every
// entry: a reduction and its inverse are both candidate mounting
// orientations. Order is preserved (originals first, reciprocals after, in
// input order) and exact duplicates are dropped — first occurrence wins —
// because column ordering downstream must stay stable and duplicate
// columns would only inflate the search space.
//
// Non-positive and non-finite entries are skipped; validation proper
// happens in features.Build.
//
// Complexity: O(n) time, O(n) space.
func WithReciprocals(ratios []float64) []float64 {
	var (
		out  = make([]float64, 0, 2*len(ratios))
		seen = make(map[float64]struct{}, 2*len(ratios))
		r    float64
	)

	appendOnce := func(v float64) {
		if v <= 0 {
			return
		}
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	for _, r = range ratios {
		appendOnce(r)
	}
	for _, r = range ratios {
		if r > 0 {
			appendOnce(1 / r)
		}
	}

	return out
}
