package id3

// eps is the minimum information gain for a split to be chosen by gain
// (spec.md §4.5). Below it, induction splits on the lowest-index attribute
// that still sends the rows down more than one branch, and returns an
// "unknown" leaf only when no attribute does.
const eps = 1e-4

// tagAllocator hands out the strictly increasing tag sequence induction
// assigns to each node. It replaces the source's process-wide last_tag
// counter with state explicit in the call graph (spec.md §5, §9).
type tagAllocator struct {
	last int
}

func (a *tagAllocator) next() int {
	a.last++
	return a.last
}

// Induce runs recursive greedy induction over set, starting every example's
// Filter at tag 0, and returns the root of the resulting tree (spec.md
// §4.5). It overwrites every example's Filter; callers must not rely on its
// value afterward.
func Induce(d *Description, set *ExampleSet) *Classifier {
	for _, ex := range set.Examples {
		ex.Filter = 0
	}
	alloc := &tagAllocator{}
	return learn(d, set.Examples, alloc, 0)
}

// learn builds the subtree for the rows currently tagged `tag`.
func learn(d *Description, all []*Example, alloc *tagAllocator, tag int) *Classifier {
	subset := subsetFor(all, tag)
	k := len(d.Classes)

	// A subset whose rows all share one class is a leaf for that class.
	pure := len(subset) > 0
	for _, ex := range subset {
		pure = pure && ex.Class == subset[0].Class
	}
	if pure {
		return &Classifier{Tag: tag, ID: subset[0].Class, C: 0}
	}

	idt := infoContent(subset, k)

	bestGain, bestAttr := -1.0, -1
	for ai, attr := range d.Attributes {
		gain := idt - expectedInfo(subset, ai, attr, k)
		if gain > bestGain {
			bestGain, bestAttr = gain, ai
		}
	}

	// No attribute clears eps: fall back to the lowest-index attribute that
	// still separates the rows (e.g. an XOR layout, where every gain is 0).
	if bestGain < eps {
		bestAttr = -1
	search:
		for ai, attr := range d.Attributes {
			for _, ex := range subset {
				if branchIndex(attr, ex.Attrs[ai]) != branchIndex(attr, subset[0].Attrs[ai]) {
					bestAttr = ai
					break search
				}
			}
		}
	}
	if bestAttr == -1 {
		return &Classifier{Tag: tag, ID: UnknownLeaf, C: 0}
	}

	attr := d.Attributes[bestAttr]
	c := attr.Domain()
	node := &Classifier{
		Tag:      tag,
		ID:       bestAttr,
		C:        c,
		Values:   branchValues(attr),
		Children: make([]*Classifier, c),
	}

	for i := 0; i < c; i++ {
		childTag := alloc.next()

		sawClass, pureClass, pure := false, -1, true
		for _, ex := range subset {
			if branchIndex(attr, ex.Attrs[bestAttr]) != i {
				continue
			}
			ex.Filter = childTag
			switch {
			case !sawClass:
				sawClass, pureClass = true, ex.Class
			case ex.Class != pureClass:
				pure = false
			}
		}

		switch {
		case !sawClass:
			node.Children[i] = &Classifier{Tag: childTag, ID: UnknownLeaf, C: 0}
		case pure:
			node.Children[i] = &Classifier{Tag: childTag, ID: pureClass, C: 0}
		default:
			node.Children[i] = learn(d, all, alloc, childTag)
		}
	}

	return node
}

// subsetFor collects, without copying any Example, the rows currently
// routed to tag.
func subsetFor(all []*Example, tag int) []*Example {
	var s []*Example
	for _, ex := range all {
		if ex.Filter == tag {
			s = append(s, ex)
		}
	}
	return s
}

// infoContent is I_DT: the pre-split Shannon information of subset's class
// distribution.
func infoContent(subset []*Example, k int) float64 {
	if len(subset) == 0 {
		return 0
	}
	counts := make([]int, k)
	for _, ex := range subset {
		counts[ex.Class]++
	}
	total := float64(len(subset))
	sum := 0.0
	for _, c := range counts {
		sum += entropy(float64(c) / total)
	}
	return sum
}

// expectedInfo is E_a: the size-weighted post-split information attribute
// ai would yield over subset, empty branches skipped.
func expectedInfo(subset []*Example, ai int, attr *Attribute, k int) float64 {
	bins := make([][]*Example, attr.Domain())
	for _, ex := range subset {
		b := branchIndex(attr, ex.Attrs[ai])
		bins[b] = append(bins[b], ex)
	}

	total := float64(len(subset))
	if total == 0 {
		return 0
	}

	e := 0.0
	for _, bin := range bins {
		if len(bin) == 0 {
			continue
		}
		e += infoContent(bin, k) * float64(len(bin)) / total
	}
	return e
}

// branchIndex returns which of attr's branches value falls into: the
// category index itself for Discrete, binIndexFor's bin for Numeric.
func branchIndex(attr *Attribute, value int) int {
	if attr.Kind == Discrete {
		return value
	}
	return binIndexFor(attr.Thresholds, value)
}

// branchValues builds a node's Values list per spec.md §3: identity for
// Discrete, ascending thresholds plus an unused trailing 0 for Numeric.
func branchValues(attr *Attribute) []int {
	if attr.Kind == Discrete {
		vals := make([]int, len(attr.Categories))
		for i := range vals {
			vals[i] = i
		}
		return vals
	}
	vals := make([]int, len(attr.Thresholds)+1)
	copy(vals, attr.Thresholds)
	return vals
}
