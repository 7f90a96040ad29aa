package id3

import "sort"

// BuildIndex allocates, for every numeric attribute, a permutation of
// example indices sorted ascending by that attribute's value, and stores it
// in the attribute's SortIndex slot (spec.md §4.3). sort.SliceStable keeps
// tied examples in insertion order, so determinism (P6) does not depend on
// Go's unstable-sort implementation changing between releases.
func BuildIndex(d *Description, set *ExampleSet) {
	for ai, attr := range d.Attributes {
		if attr.Kind != Numeric {
			continue
		}

		perm := make([]int, len(set.Examples))
		for i := range perm {
			perm[i] = i
		}

		sort.SliceStable(perm, func(a, b int) bool {
			return set.Examples[perm[a]].Attrs[ai] < set.Examples[perm[b]].Attrs[ai]
		})

		attr.SortIndex = perm
	}
}
