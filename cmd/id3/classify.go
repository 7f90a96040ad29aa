package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/mihaimaruseac/id3/internal/history"
	"github.com/mihaimaruseac/id3/internal/id3"
	"github.com/mihaimaruseac/id3/internal/id3log"
)

type classifyOptions struct {
	historyDB                    string
	modelFile, testFile, outFile string
}

func parseClassifyArgs(args []string) (classifyOptions, error) {
	fs := flag.NewFlagSet("id3 c", flag.ContinueOnError)
	var o classifyOptions
	fs.StringVar(&o.historyDB, "history", "", "record this run in a SQLite history database")
	if err := fs.Parse(args); err != nil {
		return o, id3.NewUsageError("id3 c", "%v", err)
	}

	rest := fs.Args()
	if len(rest) < 2 || len(rest) > 3 {
		return o, id3.NewUsageError("id3 c", "expected MODEL TEST [OUT], got %d files", len(rest))
	}
	o.modelFile, o.testFile = rest[0], rest[1]
	if len(rest) == 3 {
		o.outFile = rest[2]
	}
	return o, nil
}

func runClassify(args []string, log *id3log.Logger, runID string) error {
	o, err := parseClassifyArgs(args)
	if err != nil {
		return err
	}

	modelF, err := os.Open(o.modelFile)
	if err != nil {
		return id3.NewIOError("id3 c", err)
	}
	defer modelF.Close()

	desc, tree, err := id3.ReadModel(modelF)
	if err != nil {
		return err
	}

	testF, err := os.Open(o.testFile)
	if err != nil {
		return id3.NewIOError("id3 c", err)
	}
	defer testF.Close()

	set, err := id3.ReadExampleSet(testF, desc, false)
	if err != nil {
		return err
	}

	out := os.Stdout
	if o.outFile != "" && o.outFile != "-" {
		f, err := os.Create(o.outFile)
		if err != nil {
			return id3.NewIOError("id3 c", err)
		}
		defer f.Close()
		out = f
	}

	start := time.Now()
	log.Info("classify", id3log.F("examples", len(set.Examples)))

	w := bufio.NewWriter(out)
	unknown := 0
	for _, ex := range set.Examples {
		label := id3.Classify(desc, tree, ex)
		if label == id3.UnknownLabel {
			unknown++
		}
		if _, err := fmt.Fprintln(w, label); err != nil {
			return id3.NewIOError("id3 c", err)
		}
	}
	if err := w.Flush(); err != nil {
		return id3.NewIOError("id3 c", err)
	}
	elapsed := time.Since(start)

	if o.historyDB != "" {
		recordClassifyHistory(o, runID, log, desc, set, unknown, elapsed)
	}

	return nil
}

func recordClassifyHistory(o classifyOptions, runID string, log *id3log.Logger, desc *id3.Description, set *id3.ExampleSet, unknown int, elapsed time.Duration) {
	store, err := history.Open(o.historyDB)
	if err != nil {
		log.Warn("history open failed", id3log.F("error", err.Error()))
		return
	}
	defer store.Close()

	err = store.RecordClassify(history.ClassifyRun{
		RunID:         runID,
		Files:         o.modelFile + " " + o.testFile,
		NumExamples:   len(set.Examples),
		NumAttributes: len(desc.Attributes),
		Classified:    len(set.Examples),
		UnknownCount:  unknown,
		Elapsed:       elapsed,
	})
	if err != nil {
		log.Warn("history record failed", id3log.F("error", err.Error()))
	}
}
