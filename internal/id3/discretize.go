package id3

import "sort"

// DiscretizePolicy selects NUM_DIV (single threshold) or NUM_FULL
// (MDL-driven multi-threshold) discretization.
type DiscretizePolicy int

const (
	// NumDiv keeps the single candidate threshold minimizing post-split
	// entropy.
	NumDiv DiscretizePolicy = iota
	// NumFull iteratively grows NumDiv's threshold with next-best
	// candidates while a size-weighted information objective improves.
	NumFull
)

// epsDiscretize bounds the "no further improvement" stopping condition for
// NUM_FULL's greedy threshold growth.
const epsDiscretize = 0.0

// Discretize turns every numeric attribute's SortIndex (built by
// BuildIndex) into an ordered threshold list, per the policy (spec.md
// §4.4). The transient SortIndex is dropped once an attribute has been
// discretized, matching the design note that it is a phase, not a
// persistent field.
func Discretize(d *Description, set *ExampleSet, policy DiscretizePolicy) error {
	k := len(d.Classes)

	for ai, attr := range d.Attributes {
		if attr.Kind != Numeric {
			continue
		}
		if attr.SortIndex == nil {
			return invalidInputf("discretize", "attribute %q: numeric indexer has not run", attr.Name)
		}

		attr.Thresholds = discretizeAttribute(set, ai, attr.SortIndex, k, policy)
		attr.SortIndex = nil
	}

	return nil
}

func discretizeAttribute(set *ExampleSet, ai int, perm []int, k int, policy DiscretizePolicy) []int {
	n := len(perm)
	if n <= 1 {
		return []int{0}
	}

	candidates := sortedCandidates(set, ai, perm)
	if len(candidates) == 0 {
		return []int{0}
	}

	best := candidates[0]
	bestScore := splitEntropy(set, ai, best, k)
	for _, c := range candidates[1:] {
		score := splitEntropy(set, ai, c, k)
		if score < bestScore {
			bestScore = score
			best = c
		}
	}

	thresholds := []int{best}
	if policy == NumDiv {
		return thresholds
	}

	remaining := make([]int, 0, len(candidates))
	for _, c := range candidates {
		if c != best {
			remaining = append(remaining, c)
		}
	}

	currentP := evalObjective(set, ai, thresholds, k)
	for len(remaining) >= 2 {
		bestIdx, bestTrial, bestP := -1, thresholds, currentP
		for i, c := range remaining {
			trial := insertSorted(thresholds, c)
			p := evalObjective(set, ai, trial, k)
			if bestIdx == -1 || p > bestP {
				bestIdx, bestTrial, bestP = i, trial, p
			}
		}

		if bestP <= currentP+epsDiscretize {
			break
		}

		thresholds = bestTrial
		currentP = bestP
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	return thresholds
}

// sortedCandidates walks the sorted rows and records a threshold at every
// class boundary, collapsing duplicate values.
func sortedCandidates(set *ExampleSet, ai int, perm []int) []int {
	var candidates []int
	seen := map[int]bool{}

	for j := 1; j < len(perm); j++ {
		prev := set.Examples[perm[j-1]]
		cur := set.Examples[perm[j]]
		if cur.Class == prev.Class {
			continue
		}
		v := cur.Attrs[ai]
		if seen[v] {
			continue
		}
		seen[v] = true
		candidates = append(candidates, v)
	}

	return candidates
}

// insertSorted returns a new ascending slice with v inserted in position,
// used to keep NUM_FULL's threshold list ordered as candidates are added.
func insertSorted(thresholds []int, v int) []int {
	out := make([]int, len(thresholds)+1)
	i := sort.SearchInts(thresholds, v)
	copy(out, thresholds[:i])
	out[i] = v
	copy(out[i+1:], thresholds[i:])
	return out
}

// splitEntropy computes the weighted post-split entropy for a single
// candidate threshold splitting the column into a "< theta" and a ">=
// theta" bin.
func splitEntropy(set *ExampleSet, ai, theta, k int) float64 {
	below := make([]int, k)
	above := make([]int, k)
	nBelow, nAbove := 0, 0

	for _, ex := range set.Examples {
		if ex.Attrs[ai] < theta {
			below[ex.Class]++
			nBelow++
		} else {
			above[ex.Class]++
			nAbove++
		}
	}

	total := float64(nBelow + nAbove)
	e := 0.0
	if nBelow > 0 {
		for c := 0; c < k; c++ {
			e += entropy(float64(below[c])/float64(nBelow)) * float64(nBelow) / total
		}
	}
	if nAbove > 0 {
		for c := 0; c < k; c++ {
			e += entropy(float64(above[c])/float64(nAbove)) * float64(nAbove) / total
		}
	}
	return e
}

// evalObjective computes NUM_FULL's global objective P for a candidate
// threshold set: the sum, over bins, of each bin's Shannon information
// times (distinct classes in the bin + bin size). Partitioning uses each
// example's transient Filter tag, set to bin+1 for the duration of the
// trial and cleared immediately after, per spec.md §4.4.
func evalObjective(set *ExampleSet, ai int, thresholds []int, k int) float64 {
	nBins := len(thresholds) + 1
	for _, ex := range set.Examples {
		ex.Filter = binIndexFor(thresholds, ex.Attrs[ai]) + 1
	}

	classCounts := make([][]int, nBins)
	sizes := make([]int, nBins)
	for b := range classCounts {
		classCounts[b] = make([]int, k)
	}
	for _, ex := range set.Examples {
		b := ex.Filter - 1
		classCounts[b][ex.Class]++
		sizes[b]++
	}

	for _, ex := range set.Examples {
		ex.Filter = 0
	}

	p := 0.0
	for b := 0; b < nBins; b++ {
		if sizes[b] == 0 {
			continue
		}
		info, distinct := 0.0, 0
		for c := 0; c < k; c++ {
			if classCounts[b][c] > 0 {
				distinct++
				info += entropy(float64(classCounts[b][c]) / float64(sizes[b]))
			}
		}
		p += info * float64(distinct+sizes[b])
	}
	return p
}
