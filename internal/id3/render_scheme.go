package id3

import (
	"fmt"
	"io"
)

// RenderScheme writes cls as a nested Scheme cond expression: one clause
// per branch, each a "(test subtree)" pair, leaves quoted symbols
// (spec.md §4.8).
func RenderScheme(w io.Writer, d *Description, cls *Classifier) error {
	bw := newBufWriter(w)
	writeSchemeNode(bw, d, cls)
	fmt.Fprintln(bw)
	return bw.Flush()
}

func writeSchemeNode(w io.Writer, d *Description, cls *Classifier) {
	if cls.IsLeaf() {
		fmt.Fprintf(w, "'%s", leafName(d, cls))
		return
	}

	attr := d.Attributes[cls.ID]
	fmt.Fprint(w, "(cond")
	for i, child := range cls.Children {
		fmt.Fprintf(w, " (%s ", schemeTest(attr, cls, i))
		writeSchemeNode(w, d, child)
		fmt.Fprint(w, ")")
	}
	fmt.Fprint(w, ")")
}

func schemeTest(attr *Attribute, cls *Classifier, i int) string {
	if attr.Kind == Numeric {
		op, operand := splitCondition(attr, cls, i)
		return fmt.Sprintf("%s %s %s", op, attr.Name, operand)
	}
	_, operand := splitCondition(attr, cls, i)
	return fmt.Sprintf("eqv? %s '%s", attr.Name, operand)
}
