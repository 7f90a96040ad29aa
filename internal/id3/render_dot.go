package id3

import (
	"fmt"
	"io"
)

// RenderDot writes cls as a Graphviz "graph { ... }" body: boxed internal
// nodes, round leaves, and edges labelled with the branch condition at
// font size 10 (spec.md §4.8). Node ids are "<name><n>" where n is a
// depth-first visit counter, guaranteeing uniqueness even when two nodes
// share a name.
func RenderDot(w io.Writer, d *Description, cls *Classifier) error {
	bw := newBufWriter(w)
	fmt.Fprintln(bw, "graph {")
	counter := 0
	dotNode(bw, d, cls, &counter)
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

func dotNode(w io.Writer, d *Description, cls *Classifier, counter *int) string {
	id := *counter
	*counter++

	if cls.IsLeaf() {
		name := fmt.Sprintf("%s%d", leafName(d, cls), id)
		fmt.Fprintf(w, "\t%s [label=%q];\n", name, leafName(d, cls))
		return name
	}

	attr := d.Attributes[cls.ID]
	name := fmt.Sprintf("%s%d", attr.Name, id)
	fmt.Fprintf(w, "\t%s [shape=box label=%q];\n", name, attr.Name)

	for i, child := range cls.Children {
		childName := dotNode(w, d, child, counter)
		op, operand := splitCondition(attr, cls, i)
		label := operand
		if op != "=" {
			label = op + operand
		}
		fmt.Fprintf(w, "\t%s -- %s [label=%q fontsize=10];\n", name, childName, label)
	}

	return name
}
