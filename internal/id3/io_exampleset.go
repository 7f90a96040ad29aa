package id3

import (
	"fmt"
	"io"
	"strconv"
)

const opReadExampleSet = "read example set"
const opWriteExampleSet = "write example set"

// ReadExampleSet reads N rows of M whitespace-separated tokens (numeric int,
// discrete category name, or "?" for missing), followed in a learning file
// by a class name (spec.md §4.6). A set may declare at most missCount
// distinct missing columns (spec I2); exceeding that is a fatal
// InvalidInput error.
func ReadExampleSet(r io.Reader, d *Description, isLearning bool) (*ExampleSet, error) {
	t := newTokenizer(r)

	n, err := t.nextInt(opReadExampleSet)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, invalidInputf(opReadExampleSet, "example count cannot be negative, got %d", n)
	}

	set := NewExampleSet(n)
	bitOf := map[int]int{} // attribute index -> bit position in Miss

	for row := 0; row < n; row++ {
		ex := &Example{Attrs: make([]int, len(d.Attributes))}

		for ai, attr := range d.Attributes {
			tok, err := t.nextString(opReadExampleSet)
			if err != nil {
				return nil, err
			}

			if tok == "?" {
				pos, ok := bitOf[ai]
				if !ok {
					if set.NMissing >= missCount {
						return nil, invalidInputf(opReadExampleSet,
							"more than %d distinct missing columns declared", missCount)
					}
					pos = set.NMissing
					bitOf[ai] = pos
					set.Missing[pos] = ai
					set.NMissing++
				}
				ex.Miss |= 1 << uint(pos)
				continue
			}

			if attr.Kind == Numeric {
				v, err := parseIntToken(opReadExampleSet, tok)
				if err != nil {
					return nil, err
				}
				ex.Attrs[ai] = v
			} else {
				idx := indexOf(attr.Categories, tok)
				if idx < 0 {
					return nil, invalidInputf(opReadExampleSet,
						"attribute %q: unknown category value %q", attr.Name, tok)
				}
				ex.Attrs[ai] = idx
			}
		}

		if isLearning {
			name, err := t.nextString(opReadExampleSet)
			if err != nil {
				return nil, err
			}
			cls := indexOf(d.Classes, name)
			if cls < 0 {
				return nil, invalidInputf(opReadExampleSet, "class label %q not in declared class list", name)
			}
			ex.Class = cls
		}

		set.Examples = append(set.Examples, ex)
	}

	return set, nil
}

// WriteExampleSet writes a row per example in the format ReadExampleSet
// reads. Rows whose bit for an attribute is still set are written as "?".
func WriteExampleSet(w io.Writer, d *Description, set *ExampleSet, isLearning bool) error {
	bw := newBufWriter(w)

	fmt.Fprintf(bw, "%d\n", len(set.Examples))
	for _, ex := range set.Examples {
		for ai, attr := range d.Attributes {
			if isMissingAttr(set, ex, ai) {
				fmt.Fprint(bw, "? ")
				continue
			}
			if attr.Kind == Numeric {
				fmt.Fprintf(bw, "%d ", ex.Attrs[ai])
			} else {
				fmt.Fprintf(bw, "%s ", attr.Categories[ex.Attrs[ai]])
			}
		}
		if isLearning {
			fmt.Fprintf(bw, "%s", d.Classes[ex.Class])
		}
		fmt.Fprint(bw, "\n")
	}

	return bw.Flush()
}

// isMissingAttr reports whether attribute index ai is marked missing on ex,
// according to set's missing-column bookkeeping.
func isMissingAttr(set *ExampleSet, ex *Example, ai int) bool {
	for pos := 0; pos < set.NMissing; pos++ {
		if set.Missing[pos] == ai && ex.Miss&(1<<uint(pos)) != 0 {
			return true
		}
	}
	return false
}

func indexOf(xs []string, v string) int {
	for i, x := range xs {
		if x == v {
			return i
		}
	}
	return -1
}

func parseIntToken(op, tok string) (int, error) {
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, invalidInputf(op, "expected integer, got %q: %w", tok, err)
	}
	return v, nil
}
