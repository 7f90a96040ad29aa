package id3

import "testing"

func TestDiscretizeNumDivSingleThreshold(t *testing.T) {
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

	attr := d.Attributes[0]
	if attr.SortIndex != nil {
		t.Error("SortIndex should be cleared after discretization")
	}
	if got := attr.Thresholds; len(got) != 1 || got[0] != 5 {
		t.Errorf("Thresholds = %v, want [5]", got)
	}
}

func TestDiscretizeSingleClassColumnBecomesUseless(t *testing.T) {
	d := &Description{
		Classes:    []string{"A"},
		Attributes: []*Attribute{mustNumericAttr("t")},
	}
	set := &ExampleSet{Examples: []*Example{
		mustExample(0, 1),
		mustExample(0, 2),
		mustExample(0, 3),
	}}

	BuildIndex(d, set)
	if err := Discretize(d, set, NumFull); err != nil {
		t.Fatalf("Discretize: %v", err)
	}

	if got := d.Attributes[0].Thresholds; len(got) != 1 || got[0] != 0 {
		t.Errorf("Thresholds = %v, want [0] (no class boundary to split on)", got)
	}
}

func TestDiscretizeSingleExampleSkipsSplitting(t *testing.T) {
	d := &Description{
		Classes:    []string{"A", "B"},
		Attributes: []*Attribute{mustNumericAttr("t")},
	}
	set := &ExampleSet{Examples: []*Example{mustExample(0, 42)}}

	BuildIndex(d, set)
	if err := Discretize(d, set, NumDiv); err != nil {
		t.Fatalf("Discretize: %v", err)
	}

	if got := d.Attributes[0].Thresholds; len(got) != 1 || got[0] != 0 {
		t.Errorf("Thresholds = %v, want [0]", got)
	}
}

func TestDiscretizeNumFullAddsMultipleThresholds(t *testing.T) {
	d := &Description{
		Classes:    []string{"A", "B", "C"},
		Attributes: []*Attribute{mustNumericAttr("t")},
	}
	set := &ExampleSet{Examples: []*Example{
		mustExample(0, 1), mustExample(0, 2),
		mustExample(1, 5), mustExample(1, 6),
		mustExample(2, 10), mustExample(2, 11),
	}}

	BuildIndex(d, set)
	if err := Discretize(d, set, NumFull); err != nil {
		t.Fatalf("Discretize: %v", err)
	}

	got := d.Attributes[0].Thresholds
	for i := 1; i < len(got); i++ {
		if got[i-1] >= got[i] {
			t.Fatalf("thresholds not strictly ascending: %v", got)
		}
	}
	if len(got) < 2 {
		t.Errorf("expected NUM_FULL to separate all three classes, got thresholds %v", got)
	}
}

func TestDiscretizeRejectsMissingIndex(t *testing.T) {
	d := &Description{
		Classes:    []string{"A"},
		Attributes: []*Attribute{mustNumericAttr("t")},
	}
	set := &ExampleSet{Examples: []*Example{mustExample(0, 1)}}

	if err := Discretize(d, set, NumDiv); err == nil {
		t.Fatal("expected an error when BuildIndex has not run")
	}
}
