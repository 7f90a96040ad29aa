// Package id3 implements the ID3-style decision tree learning pipeline:
// missing-value imputation, numeric discretization, recursive induction by
// information gain, and the classifier serialization format that binds
// these stages together.
package id3

// AttrKind distinguishes the two attribute variants a problem can declare.
type AttrKind int

const (
	// Discrete attributes carry a fixed ordered list of category labels;
	// values are indices into that list.
	Discrete AttrKind = iota
	// Numeric attributes carry integer values and, after discretization,
	// an ordered list of thresholds.
	Numeric
)

// missCount is the maximum number of distinct missing-value columns a
// learning file may declare (spec I2).
const missCount = 2

// Attribute is a single feature column. Exactly one of Categories or
// Thresholds is meaningful at any point in the attribute's lifecycle,
// selected by Kind: Categories for Discrete, Thresholds (and, transiently
// during indexing, SortIndex) for Numeric. This tagged-variant shape
// replaces the original C code's pointer/int-punned single slot (spec §9).
type Attribute struct {
	Name string
	Kind AttrKind

	// Categories holds the ordered category labels for a Discrete
	// attribute. len(Categories) is that attribute's domain size C.
	Categories []string

	// Thresholds holds the ascending split thresholds for a Numeric
	// attribute once discretized. len(Thresholds) thresholds partition
	// the domain into len(Thresholds)+1 bins.
	Thresholds []int

	// SortIndex is the transient permutation built by the numeric
	// indexer (stage 5) and consumed by the discretizer (stage 6). It is
	// nil outside that window and is not part of the serialized form.
	SortIndex []int
}

// Domain returns the branch count C this attribute contributes to an
// internal classifier node: the category count for Discrete, or
// len(Thresholds)+1 for Numeric.
func (a *Attribute) Domain() int {
	if a.Kind == Discrete {
		return len(a.Categories)
	}
	return len(a.Thresholds) + 1
}

// Description is a problem header: the ordered class labels and ordered
// attributes. Immutable after load except for the numeric-attribute
// index/threshold slot, which the indexer and discretizer fill in.
type Description struct {
	Classes    []string
	Attributes []*Attribute
}

// Example is one labelled or unlabelled row: a class id (meaningless for a
// testing-set row), an attribute-value vector, a missing bitmask (bit i set
// iff ExampleSet.Missing[i] is absent on this row), and a transient Filter
// tag used by induction to partition rows without copying them.
type Example struct {
	Class  int
	Attrs  []int
	Miss   uint8
	Filter int
}

// ExampleSet is N examples plus the (at most two) attribute indices that
// have any missing cell in the set.
type ExampleSet struct {
	Examples []*Example
	Missing  [missCount]int
	NMissing int
}

// Classifier is one node of the induced decision tree. A Leaf (C == 0)
// carries a class id, or -1 for the "unknown" sentinel. An internal node
// carries the split attribute index in ID, C branches, and parallel
// Values/Children slices of length C: for a discrete split, Values[i] == i;
// for a numeric split with t thresholds, C == t+1, Values[0:t] are the
// ascending thresholds and Values[t] is an unused 0 sentinel, branch i<t
// matches attr < Values[i], branch t matches attr >= Values[t-1].
type Classifier struct {
	Tag      int
	ID       int
	C        int
	Values   []int
	Children []*Classifier
}

// IsLeaf reports whether this node is a leaf.
func (c *Classifier) IsLeaf() bool { return c.C == 0 }

// UnknownLeaf is the sentinel class id recorded on a leaf that induction
// could not separate.
const UnknownLeaf = -1

// NewExampleSet allocates an ExampleSet able to hold n examples.
func NewExampleSet(n int) *ExampleSet {
	return &ExampleSet{Examples: make([]*Example, 0, n)}
}
