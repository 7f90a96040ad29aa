package id3

// MissPolicy selects how treat_missing fills in "?"-marked cells. MISS_ID3
// (an unimplemented third policy in some revisions of the original source)
// has no constant here by design — it must be rejected at the CLI boundary
// before Impute is ever called (spec.md §4.2, §9).
type MissPolicy int

const (
	// MissMajority fills with the column mode (discrete) or integer mean
	// (numeric).
	MissMajority MissPolicy = iota
	// MissProbabilistic fills with the class-conditional mode of the
	// raw observed value, for both discrete and numeric attributes
	// (spec.md §9 Open Questions: the numeric variant does not compute a
	// statistical estimate, it reuses an observed integer).
	MissProbabilistic
)

// Impute fills every "?"-marked cell recorded in set.Missing, in place,
// dispatching by attribute variant and policy, and clears the corresponding
// bit of every affected row's Miss mask. After Impute returns, I3 holds:
// every example's Miss is 0.
func Impute(d *Description, set *ExampleSet, policy MissPolicy) error {
	for pos := 0; pos < set.NMissing; pos++ {
		ai := set.Missing[pos]
		if ai < 0 || ai >= len(d.Attributes) {
			return invalidInputf("impute", "missing column attribute index %d out of range", ai)
		}
		attr := d.Attributes[ai]

		switch {
		case attr.Kind == Numeric && policy == MissMajority:
			imputeNumericMajority(set, ai, pos)
		case attr.Kind == Numeric && policy == MissProbabilistic:
			imputeProbabilistic(set, ai, pos, -1)
		case attr.Kind == Discrete && policy == MissMajority:
			imputeDiscreteMajority(set, ai, pos, attr.Domain())
		case attr.Kind == Discrete && policy == MissProbabilistic:
			imputeProbabilistic(set, ai, pos, attr.Domain())
		}

		clearMissingBit(set, pos)
	}
	return nil
}

// imputeNumericMajority fills masked cells with the integer-truncated mean
// of the non-masked cells of this column.
func imputeNumericMajority(set *ExampleSet, ai, pos int) {
	sum, count := 0, 0
	for _, ex := range set.Examples {
		if ex.Miss&(1<<uint(pos)) != 0 {
			continue
		}
		sum += ex.Attrs[ai]
		count++
	}
	if count == 0 {
		return
	}
	mean := sum / count
	for _, ex := range set.Examples {
		if ex.Miss&(1<<uint(pos)) != 0 {
			ex.Attrs[ai] = mean
		}
	}
}

// imputeDiscreteMajority fills masked cells with the mode (lowest category
// index wins ties) of the non-masked cells of this column.
func imputeDiscreteMajority(set *ExampleSet, ai, pos, domain int) {
	counts := make([]int, domain)
	for _, ex := range set.Examples {
		if ex.Miss&(1<<uint(pos)) != 0 {
			continue
		}
		counts[ex.Attrs[ai]]++
	}

	imax, max := 0, counts[0]
	for i := 1; i < domain; i++ {
		if max < counts[i] {
			max = counts[i]
			imax = i
		}
	}

	for _, ex := range set.Examples {
		if ex.Miss&(1<<uint(pos)) != 0 {
			ex.Attrs[ai] = imax
		}
	}
}

// imputeProbabilistic fills masked cells with the class-conditional mode of
// the raw observed value in column ai. domain < 0 means the column is
// numeric, so observed values are tracked dynamically (in order of first
// appearance) rather than indexed directly by a known category range;
// domain >= 0 uses that fixed range directly, matching
// discrete_prb_fill_missing in the original source.
func imputeProbabilistic(set *ExampleSet, ai, pos, domain int) {
	nClasses := 0
	for _, ex := range set.Examples {
		if ex.Class+1 > nClasses {
			nClasses = ex.Class + 1
		}
	}
	if nClasses == 0 {
		return
	}

	var (
		counts    [][]int // counts[class][valueIndex]
		valueOf   []int   // valueIndex -> raw value, only used when domain < 0
		indexOfV  = map[int]int{}
		nDistinct int
	)

	if domain >= 0 {
		counts = make([][]int, nClasses)
		for c := range counts {
			counts[c] = make([]int, domain)
		}
	} else {
		counts = make([][]int, nClasses)
		for c := range counts {
			counts[c] = make([]int, 0, len(set.Examples))
		}
	}

	for _, ex := range set.Examples {
		if ex.Miss&(1<<uint(pos)) != 0 {
			continue
		}
		v := ex.Attrs[ai]
		var idx int
		if domain >= 0 {
			idx = v
		} else {
			var ok bool
			idx, ok = indexOfV[v]
			if !ok {
				idx = nDistinct
				indexOfV[v] = idx
				valueOf = append(valueOf, v)
				nDistinct++
				for c := range counts {
					counts[c] = append(counts[c], 0)
				}
			}
		}
		counts[ex.Class][idx]++
	}

	for _, ex := range set.Examples {
		if ex.Miss&(1<<uint(pos)) == 0 {
			continue
		}
		row := counts[ex.Class]
		if len(row) == 0 {
			continue
		}
		imax, max := 0, row[0]
		for j := 1; j < len(row); j++ {
			if max < row[j] {
				max = row[j]
				imax = j
			}
		}
		if domain >= 0 {
			ex.Attrs[ai] = imax
		} else {
			ex.Attrs[ai] = valueOf[imax]
		}
	}
}

func clearMissingBit(set *ExampleSet, pos int) {
	bit := uint8(1 << uint(pos))
	for _, ex := range set.Examples {
		ex.Miss &^= bit
	}
}
