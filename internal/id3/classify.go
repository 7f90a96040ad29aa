package id3

// UnknownLabel is what the classify driver and the renderers print for the
// "unknown" sentinel: an induction leaf with ID == UnknownLeaf, or a
// discrete branch that does not match any observed category.
const UnknownLabel = "unknown"

// Classify walks cls from the root for a single example and returns the
// predicted class name, or "unknown" if the tree could not decide (spec.md
// §4.7). d binds attribute and class names to the ids stored in cls.
func Classify(d *Description, cls *Classifier, ex *Example) string {
	for !cls.IsLeaf() {
		attr := d.Attributes[cls.ID]
		next := branchFor(attr, cls, ex.Attrs[cls.ID])
		if next == nil {
			return UnknownLabel
		}
		cls = next
	}
	if cls.ID == UnknownLeaf {
		return UnknownLabel
	}
	return d.Classes[cls.ID]
}

// branchFor selects cls's child matching value, or nil if none does
// (only possible for a Discrete split on a category unseen during
// induction).
func branchFor(attr *Attribute, cls *Classifier, value int) *Classifier {
	if attr.Kind == Numeric {
		// Read the thresholds off the node itself, not the attribute: the
		// description format carries no numeric thresholds (spec.md §4.6),
		// so a Description from ReadDescription has none and ReadModel can
		// only restore them for attributes the tree splits on; the node's
		// Values are always present. Same source splitCondition/lastThreshold
		// use to render a numeric split.
		return cls.Children[binIndexFor(cls.Values[:len(cls.Values)-1], value)]
	}
	for i, v := range cls.Values {
		if v == value {
			return cls.Children[i]
		}
	}
	return nil
}
