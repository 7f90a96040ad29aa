package id3

import "fmt"

// leafName is the text every renderer and the classify driver print for a
// leaf: its class name, or "unknown" for the UnknownLeaf sentinel.
func leafName(d *Description, cls *Classifier) string {
	if cls.ID == UnknownLeaf {
		return UnknownLabel
	}
	return d.Classes[cls.ID]
}

// lastThreshold returns a numeric node's highest threshold, the boundary
// its final ">=" branch tests against. Values has length t+1 with a 0
// sentinel at index t, so the real threshold sits one slot earlier.
func lastThreshold(cls *Classifier) int {
	return cls.Values[len(cls.Values)-2]
}

// splitCondition renders branch i of an internal node as the comparison a
// row must satisfy to take it, independent of target syntax.
func splitCondition(attr *Attribute, cls *Classifier, i int) (op string, operand string) {
	if attr.Kind == Numeric {
		if i < len(cls.Values)-1 {
			return "<", fmt.Sprintf("%d", cls.Values[i])
		}
		return ">=", fmt.Sprintf("%d", lastThreshold(cls))
	}
	return "=", attr.Categories[cls.Values[i]]
}
