package id3

import (
	"fmt"
	"io"
	"strings"
)

// RenderASCII writes an indented text rendering of cls: 2 spaces per depth
// level, a "name OP value" line per branch, and "==> classname" leaves
// (spec.md §4.8).
func RenderASCII(w io.Writer, d *Description, cls *Classifier) error {
	bw := newBufWriter(w)
	writeASCIINode(bw, d, cls, 0)
	return bw.Flush()
}

func writeASCIINode(w io.Writer, d *Description, cls *Classifier, depth int) {
	indent := strings.Repeat("  ", depth)

	if cls.IsLeaf() {
		fmt.Fprintf(w, "%s==> %s\n", indent, leafName(d, cls))
		return
	}

	attr := d.Attributes[cls.ID]
	for i, child := range cls.Children {
		op, operand := splitCondition(attr, cls, i)
		fmt.Fprintf(w, "%s%s %s %s\n", indent, attr.Name, op, operand)
		writeASCIINode(w, d, child, depth+1)
	}
}
