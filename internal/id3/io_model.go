package id3

import "io"

// ReadModel reads the intermediate "model" file format: a Description
// immediately followed by a Classifier in the same token stream (spec.md
// §4.6 — "readers must consume both in that order"). This is the format
// the learn command's OUT file and the render/classify commands' MODEL
// file share.
func ReadModel(r io.Reader) (*Description, *Classifier, error) {
	t := newTokenizer(r)

	d, err := readDescription(t)
	if err != nil {
		return nil, nil, err
	}

	c, err := readClassifierNode(t)
	if err != nil {
		return nil, nil, err
	}

	restoreNumericThresholds(d, c)

	if err := validateClassifier(d, c); err != nil {
		return nil, nil, err
	}

	return d, c, nil
}

// restoreNumericThresholds repopulates each numeric attribute's Thresholds
// from the first internal node found splitting on it. §4.6 serializes a
// numeric attribute as just "<name> numeric": the thresholds a learn run
// discretized it into live only in the tree's per-node Values, so a
// Description read on its own has no way to report a numeric attribute's
// branch count. Every node that splits on the same attribute shares one
// global discretization, so the first one found is representative.
func restoreNumericThresholds(d *Description, c *Classifier) {
	if c.IsLeaf() {
		return
	}
	if c.ID >= 0 && c.ID < len(d.Attributes) {
		attr := d.Attributes[c.ID]
		if attr.Kind == Numeric && attr.Thresholds == nil {
			attr.Thresholds = append([]int(nil), c.Values[:len(c.Values)-1]...)
		}
	}
	for _, child := range c.Children {
		restoreNumericThresholds(d, child)
	}
}

// WriteModel writes the concatenation <Description><Classifier> that
// ReadModel reads.
func WriteModel(w io.Writer, d *Description, c *Classifier) error {
	if err := WriteDescription(w, d); err != nil {
		return err
	}
	return WriteClassifier(w, c)
}

// validateClassifier checks invariant I5: every internal node's C matches
// the bound Description's attribute domain size.
func validateClassifier(d *Description, c *Classifier) error {
	if c.IsLeaf() {
		if c.ID < 0 {
			return nil
		}
		if c.ID >= len(d.Classes) {
			return invalidInputf(opReadClassifier, "leaf class id %d out of range [0,%d)", c.ID, len(d.Classes))
		}
		return nil
	}
	if c.ID < 0 || c.ID >= len(d.Attributes) {
		return invalidInputf(opReadClassifier, "internal node attribute id %d out of range [0,%d)", c.ID, len(d.Attributes))
	}
	want := d.Attributes[c.ID].Domain()
	if c.C != want {
		return invalidInputf(opReadClassifier,
			"internal node on attribute %q: C=%d does not match attribute domain %d",
			d.Attributes[c.ID].Name, c.C, want)
	}
	for _, child := range c.Children {
		if err := validateClassifier(d, child); err != nil {
			return err
		}
	}
	return nil
}
