// Command id3 is the CLI front end for the id3 decision tree toolkit:
// learn (l), render (g), classify (c), and import (i) subcommands, each
// operating on the whitespace-token file formats described in the
// internal/id3 package.
//
// The flag-handling style follows wlattner-rf/main.go: an explicit options
// struct per command, file handles opened and deferred-closed by the
// handler, and a single fatal exit point. Unlike that flat-flags tool,
// this binary dispatches on a positional subcommand first and parses a
// subcommand-specific flag.FlagSet afterward.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/mihaimaruseac/id3/internal/config"
	"github.com/mihaimaruseac/id3/internal/id3"
	"github.com/mihaimaruseac/id3/internal/id3log"
)

const usage = `Usage:
  id3 l [-ndiv|-nfull] [-mmaj|-mprb] [-report FILE] [-history DB] ATTR LEARN OUT
  id3 g [-gascii|-gdot|-gscheme] MODEL [OUT]
  id3 c [-history DB] MODEL TEST [OUT]
  id3 i CSVFILE ATTR LEARN
`

func main() {
	os.Exit(run(os.Args[1:]))
}

// run dispatches to a subcommand and returns the process exit code. main is
// the only place os.Exit is called, so every code path below is testable by
// calling run directly.
func run(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return 1
	}

	runID := uuid.NewString()
	cfg := config.Load()
	log := id3log.New(os.Stderr, id3log.ParseLevel(cfg.LogLevel), cfg.LogFormat, runID)

	var err error
	switch args[0] {
	case "l":
		err = runLearn(args[1:], log, runID)
	case "g":
		err = runRender(args[1:], log)
	case "c":
		err = runClassify(args[1:], log, runID)
	case "i":
		err = runImport(args[1:], log)
	default:
		fmt.Fprintf(os.Stderr, "id3: unknown command %q\n\n%s", args[0], usage)
		return 1
	}

	if err == nil {
		return 0
	}
	return exitCode(err)
}

// exitCode maps an internal/id3.Error's Kind to the spec's exit codes
// (Usage and IOError both exit 1; InvalidInput exits EINVAL=22). Any other
// error is treated as a usage error.
func exitCode(err error) int {
	var idErr *id3.Error
	if errors.As(err, &idErr) {
		switch idErr.Kind {
		case id3.KindInvalidInput:
			fmt.Fprintf(os.Stderr, "id3: %v\n", err)
			return 22
		case id3.KindIOError:
			fmt.Fprintf(os.Stderr, "id3: %v\n", err)
			return 1
		default:
			fmt.Fprintf(os.Stderr, "id3: %v\n\n%s", err, usage)
			return 1
		}
	}
	fmt.Fprintf(os.Stderr, "id3: %v\n\n%s", err, usage)
	return 1
}
