// Command asm assembles one source file into a relocatable object artifact
// (spec.md §6 Assembler CLI).
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wrzlbrmft/cpu/assembler"
	"github.com/wrzlbrmft/cpu/config"
	"github.com/wrzlbrmft/cpu/dumpview"
	"github.com/wrzlbrmft/cpu/objfile"
)

var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "Show version information")
		dump        = flag.Bool("d", false, "Dump the symbol table and relocations before writing the artifact")
		dumpLong    = flag.Bool("dump", false, "Alias of -d")
	)
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: asm <file> [-d|--dump]")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Printf("asm %s (%s)\n", Version, Commit)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) != 1 {
		flag.Usage()
		os.Exit(1)
	}
	inputPath := args[0]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "asm:", err)
		os.Exit(1)
	}

	data, err := os.ReadFile(inputPath) // #nosec G304 -- CLI-supplied input path
	if err != nil {
		fmt.Fprintln(os.Stderr, "asm:", err)
		os.Exit(1)
	}
	lines := strings.Split(string(data), "\n")

	art, errs := assembler.AssembleLines(inputPath, lines)
	if errs.HasErrors() {
		fmt.Fprint(os.Stderr, errs.Error())
		os.Exit(1)
	}

	outPath := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath)) + cfg.Assemble.OutputExt

	if *dump || *dumpLong || cfg.Assemble.Dump {
		dumpview.ShowArtifact(inputPath, art.Table, art.Store, art.LinkBase, dumpview.Options{
			ColorOutput:  cfg.Display.ColorOutput,
			BytesPerLine: cfg.Display.BytesPerLine,
		})
	}

	out := objfile.Encode(&objfile.Artifact{LinkBase: art.LinkBase, Table: art.Table, Store: art.Store})
	if err := os.WriteFile(outPath, out, 0644); err != nil { // #nosec G306 -- artifact is not sensitive
		fmt.Fprintln(os.Stderr, "asm:", err)
		os.Exit(1)
	}
}
