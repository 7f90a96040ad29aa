// Package dataimport implements the `id3 i CSV ATTR LEARN` subcommand (spec
// §4.13): turning a headerful CSV file into a native ATTR/LEARN pair.
//
// Column typing is delegated to golearn rather than hand-rolled: golearn's
// base.ParseCSVToInstances already sniffs each column as numeric or
// categorical, and by convention treats the last column as the class
// attribute, which happens to match this tool's own "last column is the
// class" rule. We let golearn do that classification and just re-emit it in
// this package's Description/ExampleSet text format.
package dataimport

import (
	"io"
	"math"
	"sort"

	"github.com/sjwhitworth/golearn/base"

	"github.com/mihaimaruseac/id3/internal/id3"
)

const opImportCSV = "import csv"

// FromCSV reads the CSV file at csvPath (first row treated as a header),
// infers a Description from golearn's column type sniffing, and writes the
// Description to attrOut and the learning ExampleSet to setOut in this
// tool's native text format. The last CSV column is the class column.
func FromCSV(csvPath string, attrOut, setOut io.Writer) error {
	instances, err := base.ParseCSVToInstances(csvPath, true)
	if err != nil {
		return id3.NewIOError(opImportCSV, err)
	}

	classAttrs := instances.AllClassAttributes()
	if len(classAttrs) != 1 {
		return id3.NewInvalidInputError(opImportCSV, "expected exactly one class column, found %d", len(classAttrs))
	}
	classAttr := classAttrs[0]

	var predictors []base.Attribute
	for _, a := range instances.AllAttributes() {
		if a.Equals(classAttr) {
			continue
		}
		predictors = append(predictors, a)
	}
	if len(predictors) == 0 {
		return id3.NewInvalidInputError(opImportCSV, "csv file has no predictor columns besides the class column")
	}

	predictorSpecs, err := resolveSpecs(instances, predictors)
	if err != nil {
		return err
	}
	classSpecs, err := resolveSpecs(instances, []base.Attribute{classAttr})
	if err != nil {
		return err
	}
	classSpec := classSpecs[0]

	rows, _ := instances.Size()

	classes, classIndex, err := collectClasses(instances, classSpec, classAttr, rows)
	if err != nil {
		return err
	}

	attrs := make([]*id3.Attribute, len(predictors))
	categoryIndex := make([]map[string]int, len(predictors))
	for i, a := range predictors {
		if _, ok := a.(*base.FloatAttribute); ok {
			attrs[i] = &id3.Attribute{Name: a.GetName(), Kind: id3.Numeric}
			continue
		}
		cats, idx := collectCategories(instances, predictorSpecs[i], a, rows)
		attrs[i] = &id3.Attribute{Name: a.GetName(), Kind: id3.Discrete, Categories: cats}
		categoryIndex[i] = idx
	}

	desc := &id3.Description{Classes: classes, Attributes: attrs}
	if err := id3.WriteDescription(attrOut, desc); err != nil {
		return id3.NewIOError(opImportCSV, err)
	}

	set := id3.NewExampleSet(rows)
	for row := 0; row < rows; row++ {
		ex := &id3.Example{Attrs: make([]int, len(predictors))}
		for i, a := range predictors {
			raw := instances.Get(predictorSpecs[i], row)
			if _, ok := a.(*base.FloatAttribute); ok {
				ex.Attrs[i] = int(math.Round(base.UnpackBytesToFloat(raw)))
				continue
			}
			val := a.GetStringFromSysVal(raw)
			ex.Attrs[i] = categoryIndex[i][val]
		}
		ex.Class = classIndex[classAttr.GetStringFromSysVal(instances.Get(classSpec, row))]
		set.Examples = append(set.Examples, ex)
	}

	if err := id3.WriteExampleSet(setOut, desc, set, true); err != nil {
		return id3.NewIOError(opImportCSV, err)
	}
	return nil
}

func resolveSpecs(instances base.FixedDataGrid, attrs []base.Attribute) ([]base.AttributeSpec, error) {
	specs := base.ResolveAttributes(instances, attrs)
	if len(specs) != len(attrs) {
		return nil, id3.NewInvalidInputError(opImportCSV, "could not resolve all csv columns")
	}
	return specs, nil
}

// collectClasses walks every row to build the ordered, deduplicated class
// label list and a label->index lookup, mirroring how ReadDescription
// expects a learning file's class list declared up front.
func collectClasses(instances base.FixedDataGrid, spec base.AttributeSpec, attr base.Attribute, rows int) ([]string, map[string]int, error) {
	seen := map[string]bool{}
	var ordered []string
	for row := 0; row < rows; row++ {
		v := attr.GetStringFromSysVal(instances.Get(spec, row))
		if !seen[v] {
			seen[v] = true
			ordered = append(ordered, v)
		}
	}
	sort.Strings(ordered)
	index := make(map[string]int, len(ordered))
	for i, v := range ordered {
		index[v] = i
	}
	if len(ordered) == 0 {
		return nil, nil, id3.NewInvalidInputError(opImportCSV, "csv file has no rows to infer classes from")
	}
	return ordered, index, nil
}

// collectCategories is collectClasses's analogue for a discrete predictor
// column: golearn's CategoricalAttribute does not expose its observed value
// set directly through the stable API, so we derive it the same way, by a
// single pass over the column.
func collectCategories(instances base.FixedDataGrid, spec base.AttributeSpec, attr base.Attribute, rows int) ([]string, map[string]int) {
	seen := map[string]bool{}
	var ordered []string
	for row := 0; row < rows; row++ {
		v := attr.GetStringFromSysVal(instances.Get(spec, row))
		if !seen[v] {
			seen[v] = true
			ordered = append(ordered, v)
		}
	}
	sort.Strings(ordered)
	index := make(map[string]int, len(ordered))
	for i, v := range ordered {
		index[v] = i
	}
	return ordered, index
}
