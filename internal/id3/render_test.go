package id3

import (
	"bytes"
	"strings"
	"testing"
)

func numericTree() (*Description, *Classifier) {
	d := &Description{
		Classes: []string{"lo", "hi"},
		Attributes: []*Attribute{
			{Name: "t", Kind: Numeric, Thresholds: []int{5}},
		},
	}
	tree := &Classifier{
		ID: 0, C: 2, Values: []int{5, 0},
		Children: []*Classifier{
			{ID: 0, C: 0},
			{ID: 1, C: 0},
		},
	}
	return d, tree
}

func TestRenderASCIINumeric(t *testing.T) {
	d, tree := numericTree()

	var buf bytes.Buffer
	if err := RenderASCII(&buf, d, tree); err != nil {
		t.Fatalf("RenderASCII: %v", err)
	}

	got := buf.String()
	if !strings.Contains(got, "t < 5") {
		t.Errorf("missing '<' branch line, got:\n%s", got)
	}
	if !strings.Contains(got, "t >= 5") {
		t.Errorf("missing '>=' branch line, got:\n%s", got)
	}
	if !strings.Contains(got, "==> lo") || !strings.Contains(got, "==> hi") {
		t.Errorf("missing leaf lines, got:\n%s", got)
	}
}

func TestRenderDotStructure(t *testing.T) {
	d, tree := numericTree()

	var buf bytes.Buffer
	if err := RenderDot(&buf, d, tree); err != nil {
		t.Fatalf("RenderDot: %v", err)
	}

	got := buf.String()
	if !strings.HasPrefix(got, "graph {") {
		t.Errorf("expected output to start with 'graph {', got:\n%s", got)
	}
	if !strings.Contains(got, "shape=box") {
		t.Errorf("expected internal node with shape=box, got:\n%s", got)
	}
	if !strings.Contains(got, "fontsize=10") {
		t.Errorf("expected edge labels at fontsize=10, got:\n%s", got)
	}
}

func TestRenderSchemeCond(t *testing.T) {
	d, tree := numericTree()

	var buf bytes.Buffer
	if err := RenderScheme(&buf, d, tree); err != nil {
		t.Fatalf("RenderScheme: %v", err)
	}

	got := buf.String()
	if !strings.Contains(got, "(cond") {
		t.Errorf("expected a cond expression, got:\n%s", got)
	}
	if !strings.Contains(got, "'lo") || !strings.Contains(got, "'hi") {
		t.Errorf("expected quoted leaf symbols, got:\n%s", got)
	}
}

func TestRenderDiscreteUsesEquality(t *testing.T) {
	d := &Description{
		Classes:    []string{"a", "b"},
		Attributes: []*Attribute{mustDiscreteAttr("col", "x", "y")},
	}
	tree := &Classifier{
		ID: 0, C: 2, Values: []int{0, 1},
		Children: []*Classifier{
			{ID: 0, C: 0},
			{ID: 1, C: 0},
		},
	}

	var ascii bytes.Buffer
	if err := RenderASCII(&ascii, d, tree); err != nil {
		t.Fatalf("RenderASCII: %v", err)
	}
	if !strings.Contains(ascii.String(), "col = x") {
		t.Errorf("expected discrete equality branch, got:\n%s", ascii.String())
	}

	var scheme bytes.Buffer
	if err := RenderScheme(&scheme, d, tree); err != nil {
		t.Fatalf("RenderScheme: %v", err)
	}
	if !strings.Contains(scheme.String(), "eqv? col 'x") {
		t.Errorf("expected eqv? test, got:\n%s", scheme.String())
	}
}
