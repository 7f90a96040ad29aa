package id3

import (
	"fmt"
	"io"
)

const opReadDescription = "read description"
const opWriteDescription = "write description"

// ReadDescription reads a problem header: K class labels followed by M
// attribute records (spec.md §4.6). Accepts both "numeric"/"discret" and
// the unabbreviated "discrete" spelling on input (7-character prefix
// match), per spec.md §6.
func ReadDescription(r io.Reader) (*Description, error) {
	return readDescription(newTokenizer(r))
}

func readDescription(t *tokenizer) (*Description, error) {
	k, err := t.nextInt(opReadDescription)
	if err != nil {
		return nil, err
	}
	if k <= 0 {
		return nil, invalidInputf(opReadDescription, "class count must be positive, got %d", k)
	}

	classes := make([]string, k)
	for i := 0; i < k; i++ {
		classes[i], err = t.nextString(opReadDescription)
		if err != nil {
			return nil, err
		}
	}

	m, err := t.nextInt(opReadDescription)
	if err != nil {
		return nil, err
	}
	if m < 0 {
		return nil, invalidInputf(opReadDescription, "attribute count cannot be negative, got %d", m)
	}

	attrs := make([]*Attribute, m)
	for i := 0; i < m; i++ {
		name, err := t.nextString(opReadDescription)
		if err != nil {
			return nil, err
		}

		kindTok, err := t.nextString(opReadDescription)
		if err != nil {
			return nil, err
		}

		switch {
		case kindTok == "numeric":
			attrs[i] = &Attribute{Name: name, Kind: Numeric}
		case len(kindTok) >= 7 && kindTok[:7] == "discret":
			c, err := t.nextInt(opReadDescription)
			if err != nil {
				return nil, err
			}
			if c <= 0 {
				return nil, invalidInputf(opReadDescription, "attribute %q: category count must be positive, got %d", name, c)
			}
			cats := make([]string, c)
			for j := 0; j < c; j++ {
				cats[j], err = t.nextString(opReadDescription)
				if err != nil {
					return nil, err
				}
			}
			attrs[i] = &Attribute{Name: name, Kind: Discrete, Categories: cats}
		default:
			return nil, invalidInputf(opReadDescription, "attribute %q: unknown attribute type %q", name, kindTok)
		}
	}

	return &Description{Classes: classes, Attributes: attrs}, nil
}

// WriteDescription writes the problem header in the format ReadDescription
// reads. Always emits the truncated "discret" keyword, never "discrete",
// for byte-level round-trip with legacy files (spec.md §6).
func WriteDescription(w io.Writer, d *Description) error {
	bw := newBufWriter(w)

	fmt.Fprintf(bw, "%d\n", len(d.Classes))
	for _, c := range d.Classes {
		fmt.Fprintf(bw, "%s ", c)
	}
	fmt.Fprint(bw, "\n")

	fmt.Fprintf(bw, "%d\n", len(d.Attributes))
	for _, a := range d.Attributes {
		if a.Kind == Numeric {
			fmt.Fprintf(bw, "%s numeric\n", a.Name)
			continue
		}
		fmt.Fprintf(bw, "%s discret %d", a.Name, len(a.Categories))
		for _, cat := range a.Categories {
			fmt.Fprintf(bw, " %s", cat)
		}
		fmt.Fprint(bw, "\n")
	}

	return bw.Flush()
}
