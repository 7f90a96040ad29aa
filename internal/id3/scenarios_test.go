package id3

import (
	"bytes"
	"testing"
)

func mustDiscreteAttr(name string, cats ...string) *Attribute {
	return &Attribute{Name: name, Kind: Discrete, Categories: cats}
}

func mustNumericAttr(name string) *Attribute {
	return &Attribute{Name: name, Kind: Numeric}
}

func mustExample(class int, attrs ...int) *Example {
	return &Example{Class: class, Attrs: attrs}
}

// xorProblem builds the S2 scenario: two binary discrete attributes, class
// = x XOR y.
func xorProblem() (*Description, *ExampleSet) {
	d := &Description{
		Classes: []string{"0", "1"},
		Attributes: []*Attribute{
			mustDiscreteAttr("x", "0", "1"),
			mustDiscreteAttr("y", "0", "1"),
		},
	}
	set := &ExampleSet{Examples: []*Example{
		mustExample(0, 0, 0),
		mustExample(1, 0, 1),
		mustExample(1, 1, 0),
		mustExample(0, 1, 1),
	}}
	return d, set
}

func TestScenarioPureSingleClass(t *testing.T) {
	d := &Description{
		Classes:    []string{"yes"},
		Attributes: []*Attribute{mustDiscreteAttr("x", "a", "b")},
	}
	set := &ExampleSet{Examples: []*Example{
		mustExample(0, 0),
		mustExample(0, 1),
		mustExample(0, 0),
	}}

	tree := Induce(d, set)

	if !tree.IsLeaf() {
		t.Fatalf("expected a leaf, got internal split on attribute %d", tree.ID)
	}
	if tree.ID != 0 {
		t.Errorf("leaf id = %d, want 0", tree.ID)
	}
}

func TestScenarioDiscreteXOR(t *testing.T) {
	d, set := xorProblem()

	tree := Induce(d, set)

	if tree.IsLeaf() || tree.ID != 0 {
		t.Fatalf("root should split on attribute 0 (x); leaf=%v id=%d", tree.IsLeaf(), tree.ID)
	}
	for i, child := range tree.Children {
		if child.IsLeaf() {
			t.Fatalf("branch %d: expected a split on y, got a leaf", i)
		}
		if child.ID != 1 {
			t.Errorf("branch %d: expected split on attribute 1 (y), got %d", i, child.ID)
		}
		for j, leaf := range child.Children {
			if !leaf.IsLeaf() {
				t.Errorf("branch %d/%d: expected a leaf", i, j)
			}
		}
	}
}

func TestScenarioNumericDiv(t *testing.T) {
	d := &Description{
		Classes:    []string{"A", "B"},
		Attributes: []*Attribute{mustNumericAttr("t")},
	}
	set := &ExampleSet{Examples: []*Example{
		mustExample(0, 1),
		mustExample(0, 2),
		mustExample(1, 5),
		mustExample(1, 8),
	}}

	BuildIndex(d, set)
	if err := Discretize(d, set, NumDiv); err != nil {
		t.Fatalf("Discretize: %v", err)
	}
	if got := d.Attributes[0].Thresholds; len(got) != 1 || got[0] != 5 {
		t.Fatalf("thresholds = %v, want [5]", got)
	}

	tree := Induce(d, set)
	if tree.IsLeaf() {
		t.Fatal("expected an internal node")
	}
	if !tree.Children[0].IsLeaf() || tree.Children[0].ID != 0 {
		t.Errorf("branch <5: want leaf A, got %+v", tree.Children[0])
	}
	if !tree.Children[1].IsLeaf() || tree.Children[1].ID != 1 {
		t.Errorf("branch >=5: want leaf B, got %+v", tree.Children[1])
	}
}

func TestScenarioMissingMajority(t *testing.T) {
	d := &Description{
		Classes:    []string{"a", "b"},
		Attributes: []*Attribute{mustDiscreteAttr("col", "x", "y", "z")},
	}
	set := &ExampleSet{
		Examples: []*Example{
			{Class: 0, Attrs: []int{0}},
			{Class: 0, Attrs: []int{0}},
			{Class: 1, Attrs: []int{1}},
			{Class: 1, Attrs: []int{0}, Miss: 1},
		},
		Missing:  [missCount]int{0, 0},
		NMissing: 1,
	}

	if err := Impute(d, set, MissMajority); err != nil {
		t.Fatalf("Impute: %v", err)
	}

	last := set.Examples[3]
	if last.Miss != 0 {
		t.Errorf("Miss bitmask = %d, want 0", last.Miss)
	}
	if last.Attrs[0] != 0 {
		t.Errorf("imputed value = %d, want 0 (column mode)", last.Attrs[0])
	}
}

func TestScenarioRoundTrip(t *testing.T) {
	d, set := xorProblem()
	tree := Induce(d, set)

	var modelBuf bytes.Buffer
	if err := WriteModel(&modelBuf, d, tree); err != nil {
		t.Fatalf("WriteModel: %v", err)
	}

	var before bytes.Buffer
	if err := RenderASCII(&before, d, tree); err != nil {
		t.Fatalf("RenderASCII before reload: %v", err)
	}

	d2, tree2, err := ReadModel(bytes.NewReader(modelBuf.Bytes()))
	if err != nil {
		t.Fatalf("ReadModel: %v", err)
	}

	var after bytes.Buffer
	if err := RenderASCII(&after, d2, tree2); err != nil {
		t.Fatalf("RenderASCII after reload: %v", err)
	}

	if before.String() != after.String() {
		t.Errorf("round-trip mismatch:\n--- before ---\n%s--- after ---\n%s", before.String(), after.String())
	}
}

// TestScenarioNumericRoundTrip guards against a numeric Description losing
// its thresholds across a ReadModel: unlike TestClassifyNumericBoundaryBranches,
// which hand-builds an Attribute with Thresholds already set, this test only
// ever sees the Attribute that ReadModel itself produces.
func TestScenarioNumericRoundTrip(t *testing.T) {
	d := &Description{
		Classes:    []string{"A", "B"},
		Attributes: []*Attribute{mustNumericAttr("t")},
	}
	set := &ExampleSet{Examples: []*Example{
		mustExample(0, 1),
		mustExample(0, 2),
		mustExample(1, 5),
		mustExample(1, 8),
	}}

	BuildIndex(d, set)
	if err := Discretize(d, set, NumDiv); err != nil {
		t.Fatalf("Discretize: %v", err)
	}
	tree := Induce(d, set)
	if tree.IsLeaf() {
		t.Fatal("expected an internal node")
	}

	var modelBuf bytes.Buffer
	if err := WriteModel(&modelBuf, d, tree); err != nil {
		t.Fatalf("WriteModel: %v", err)
	}

	d2, tree2, err := ReadModel(bytes.NewReader(modelBuf.Bytes()))
	if err != nil {
		t.Fatalf("ReadModel: %v", err)
	}

	for _, ex := range set.Examples {
		want := d.Classes[ex.Class]
		if got := Classify(d2, tree2, ex); got != want {
			t.Errorf("Classify(%v) after reload = %q, want %q", ex.Attrs, got, want)
		}
	}

	var before, after bytes.Buffer
	if err := RenderASCII(&before, d, tree); err != nil {
		t.Fatalf("RenderASCII before reload: %v", err)
	}
	if err := RenderASCII(&after, d2, tree2); err != nil {
		t.Fatalf("RenderASCII after reload: %v", err)
	}
	if before.String() != after.String() {
		t.Errorf("round-trip mismatch:\n--- before ---\n%s--- after ---\n%s", before.String(), after.String())
	}
}

func TestScenarioUnknownCategoryClassify(t *testing.T) {
	d, set := xorProblem()
	tree := Induce(d, set)

	ex := &Example{Attrs: []int{2, 0}}
	if got := Classify(d, tree, ex); got != UnknownLabel {
		t.Errorf("Classify with unseen category = %q, want %q", got, UnknownLabel)
	}
}
