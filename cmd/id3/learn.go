package main

import (
	"flag"
	"os"
	"time"

	"github.com/mihaimaruseac/id3/internal/history"
	"github.com/mihaimaruseac/id3/internal/id3"
	"github.com/mihaimaruseac/id3/internal/id3log"
	"github.com/mihaimaruseac/id3/internal/report"
)

type learnOptions struct {
	ndiv, nfull bool
	mmaj, mprb  bool
	reportFile  string
	historyDB   string
	attrFile    string
	learnFile   string
	outFile     string
}

func parseLearnArgs(args []string) (learnOptions, error) {
	fs := flag.NewFlagSet("id3 l", flag.ContinueOnError)
	var o learnOptions
	fs.BoolVar(&o.ndiv, "ndiv", false, "use NUM_DIV numeric discretization (default)")
	fs.BoolVar(&o.nfull, "nfull", false, "use NUM_FULL numeric discretization")
	fs.BoolVar(&o.mmaj, "mmaj", false, "use majority missing-value imputation (default)")
	fs.BoolVar(&o.mprb, "mprb", false, "use class-conditional probabilistic missing-value imputation")
	fs.StringVar(&o.reportFile, "report", "", "write a YAML training report to FILE")
	fs.StringVar(&o.historyDB, "history", "", "record this run in a SQLite history database")
	if err := fs.Parse(args); err != nil {
		return o, id3.NewUsageError("id3 l", "%v", err)
	}
	if o.ndiv && o.nfull {
		return o, id3.NewUsageError("id3 l", "-ndiv and -nfull are mutually exclusive")
	}
	if o.mmaj && o.mprb {
		return o, id3.NewUsageError("id3 l", "-mmaj and -mprb are mutually exclusive")
	}

	rest := fs.Args()
	if len(rest) != 3 {
		return o, id3.NewUsageError("id3 l", "expected ATTR LEARN OUT, got %d files", len(rest))
	}
	o.attrFile, o.learnFile, o.outFile = rest[0], rest[1], rest[2]
	return o, nil
}

func runLearn(args []string, log *id3log.Logger, runID string) error {
	o, err := parseLearnArgs(args)
	if err != nil {
		return err
	}

	discPolicy := id3.NumDiv
	discName := "num_div"
	if o.nfull {
		discPolicy = id3.NumFull
		discName = "num_full"
	}
	missPolicy := id3.MissMajority
	missName := "mmaj"
	if o.mprb {
		missPolicy = id3.MissProbabilistic
		missName = "mprb"
	}

	attrF, err := os.Open(o.attrFile)
	if err != nil {
		return id3.NewIOError("id3 l", err)
	}
	defer attrF.Close()

	desc, err := id3.ReadDescription(attrF)
	if err != nil {
		return err
	}

	learnF, err := os.Open(o.learnFile)
	if err != nil {
		return id3.NewIOError("id3 l", err)
	}
	defer learnF.Close()

	set, err := id3.ReadExampleSet(learnF, desc, true)
	if err != nil {
		return err
	}

	log.Info("treat_missing", id3log.F("policy", missName), id3log.F("examples", len(set.Examples)))
	if err := id3.Impute(desc, set, missPolicy); err != nil {
		return err
	}

	log.Info("build_index", id3log.F("attributes", len(desc.Attributes)))
	id3.BuildIndex(desc, set)

	log.Info("discretize", id3log.F("policy", discName))
	if err := id3.Discretize(desc, set, discPolicy); err != nil {
		return err
	}

	start := time.Now()
	log.Info("induce", id3log.F("examples", len(set.Examples)))
	tree := id3.Induce(desc, set)
	elapsed := time.Since(start)

	outF, err := os.Create(o.outFile)
	if err != nil {
		return id3.NewIOError("id3 l", err)
	}
	defer outF.Close()

	if err := id3.WriteModel(outF, desc, tree); err != nil {
		return id3.NewIOError("id3 l", err)
	}

	stats := id3.Stats(tree)

	if o.reportFile != "" {
		if err := writeLearnReport(o, desc, set, discName, missName, stats, elapsed); err != nil {
			return err
		}
	}

	if o.historyDB != "" {
		recordLearnHistory(o, runID, log, desc, set, stats, elapsed)
	}

	return nil
}

func writeLearnReport(o learnOptions, desc *id3.Description, set *id3.ExampleSet, discName, missName string, stats id3.TreeStats, elapsed time.Duration) error {
	thresholds := map[string]int{}
	for _, a := range desc.Attributes {
		if a.Kind == id3.Numeric {
			thresholds[a.Name] = len(a.Thresholds)
		}
	}
	rf, err := os.Create(o.reportFile)
	if err != nil {
		return id3.NewIOError("id3 l", err)
	}
	defer rf.Close()

	r := &report.Report{
		NumClasses:       len(desc.Classes),
		NumAttributes:    len(desc.Attributes),
		NumExamples:      len(set.Examples),
		DiscretizePolicy: discName,
		MissingPolicy:    missName,
		Thresholds:       thresholds,
		TreeNodes:        stats.Nodes,
		LeafCount:        stats.Leaves,
		UnknownLeafCount: stats.UnknownLeaves,
		InductionTime:    elapsed,
	}
	return report.Write(rf, r)
}

// recordLearnHistory writes the optional audit row. Per spec, a history
// failure is logged, not surfaced as a command error.
func recordLearnHistory(o learnOptions, runID string, log *id3log.Logger, desc *id3.Description, set *id3.ExampleSet, stats id3.TreeStats, elapsed time.Duration) {
	store, err := history.Open(o.historyDB)
	if err != nil {
		log.Warn("history open failed", id3log.F("error", err.Error()))
		return
	}
	defer store.Close()

	err = store.RecordLearn(history.LearnRun{
		RunID:         runID,
		Files:         o.attrFile + " " + o.learnFile + " " + o.outFile,
		NumExamples:   len(set.Examples),
		NumAttributes: len(desc.Attributes),
		TreeNodes:     stats.Nodes,
		Elapsed:       elapsed,
	})
	if err != nil {
		log.Warn("history record failed", id3log.F("error", err.Error()))
	}
}
