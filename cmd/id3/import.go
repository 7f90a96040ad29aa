package main

import (
	"os"

	"github.com/mihaimaruseac/id3/internal/dataimport"
	"github.com/mihaimaruseac/id3/internal/id3"
	"github.com/mihaimaruseac/id3/internal/id3log"
)

func runImport(args []string, log *id3log.Logger) error {
	if len(args) != 3 {
		return id3.NewUsageError("id3 i", "expected CSVFILE ATTR LEARN, got %d files", len(args))
	}
	csvFile, attrFile, learnFile := args[0], args[1], args[2]

	attrF, err := os.Create(attrFile)
	if err != nil {
		return id3.NewIOError("id3 i", err)
	}
	defer attrF.Close()

	learnF, err := os.Create(learnFile)
	if err != nil {
		return id3.NewIOError("id3 i", err)
	}
	defer learnF.Close()

	log.Info("import", id3log.F("csv", csvFile))
	return dataimport.FromCSV(csvFile, attrF, learnF)
}
