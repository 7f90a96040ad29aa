package main

import (
	"flag"
	"os"

	"github.com/mihaimaruseac/id3/internal/id3"
	"github.com/mihaimaruseac/id3/internal/id3log"
)

type renderOptions struct {
	gascii, gdot, gscheme bool
	modelFile, outFile    string
}

func parseRenderArgs(args []string) (renderOptions, error) {
	fs := flag.NewFlagSet("id3 g", flag.ContinueOnError)
	var o renderOptions
	fs.BoolVar(&o.gascii, "gascii", false, "render as indented ASCII (default)")
	fs.BoolVar(&o.gdot, "gdot", false, "render as Graphviz dot")
	fs.BoolVar(&o.gscheme, "gscheme", false, "render as a Scheme cond expression")
	if err := fs.Parse(args); err != nil {
		return o, id3.NewUsageError("id3 g", "%v", err)
	}
	if count(o.gascii, o.gdot, o.gscheme) > 1 {
		return o, id3.NewUsageError("id3 g", "-gascii, -gdot, -gscheme are mutually exclusive")
	}

	rest := fs.Args()
	if len(rest) < 1 || len(rest) > 2 {
		return o, id3.NewUsageError("id3 g", "expected MODEL [OUT], got %d files", len(rest))
	}
	o.modelFile = rest[0]
	if len(rest) == 2 {
		o.outFile = rest[1]
	}
	return o, nil
}

func count(bs ...bool) int {
	n := 0
	for _, b := range bs {
		if b {
			n++
		}
	}
	return n
}

func runRender(args []string, log *id3log.Logger) error {
	o, err := parseRenderArgs(args)
	if err != nil {
		return err
	}

	modelF, err := os.Open(o.modelFile)
	if err != nil {
		return id3.NewIOError("id3 g", err)
	}
	defer modelF.Close()

	desc, tree, err := id3.ReadModel(modelF)
	if err != nil {
		return err
	}

	out := os.Stdout
	if o.outFile != "" && o.outFile != "-" {
		f, err := os.Create(o.outFile)
		if err != nil {
			return id3.NewIOError("id3 g", err)
		}
		defer f.Close()
		out = f
	}

	switch {
	case o.gdot:
		log.Info("render", id3log.F("format", "dot"))
		err = id3.RenderDot(out, desc, tree)
	case o.gscheme:
		log.Info("render", id3log.F("format", "scheme"))
		err = id3.RenderScheme(out, desc, tree)
	default:
		log.Info("render", id3log.F("format", "ascii"))
		err = id3.RenderASCII(out, desc, tree)
	}
	if err != nil {
		return id3.NewIOError("id3 g", err)
	}
	return nil
}
