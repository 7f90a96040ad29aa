// Package report writes the optional YAML training report a `learn` run
// produces with `-report FILE` (spec §4.12). Field names are internal to
// this tool; there is no round-trip requirement the way the classifier
// model file has one. Grounded on the teacher's direct gopkg.in/yaml.v3
// dependency, playing the role wlattner-rf/model.go's Report/SaveVarImp
// text dump plays for a random forest, but machine-readable.
package report

import (
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// Report summarizes one learn invocation.
type Report struct {
	NumClasses       int            `yaml:"num_classes"`
	NumAttributes    int            `yaml:"num_attributes"`
	NumExamples      int            `yaml:"num_examples"`
	DiscretizePolicy string         `yaml:"discretize_policy"`
	MissingPolicy    string         `yaml:"missing_policy"`
	Thresholds       map[string]int `yaml:"threshold_counts,omitempty"`
	TreeNodes        int            `yaml:"tree_nodes"`
	LeafCount        int            `yaml:"leaf_count"`
	UnknownLeafCount int            `yaml:"unknown_leaf_count"`
	InductionTime    time.Duration  `yaml:"induction_time"`
}

// Write marshals r as YAML to w.
func Write(w io.Writer, r *Report) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(r)
}
