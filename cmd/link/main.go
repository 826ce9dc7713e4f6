// Command link combines one or more object artifacts into a loadable
// image or a new combined library artifact (spec.md §6 Linker CLI).
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wrzlbrmft/cpu/config"
	"github.com/wrzlbrmft/cpu/dumpview"
	"github.com/wrzlbrmft/cpu/linker"
)

var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "Show version information")
		dump        = flag.Bool("dump", false, "Dump the linked symbol table before writing output")
	)
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: link <obj...>")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Printf("link %s (%s)\n", Version, Commit)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "link:", err)
		os.Exit(1)
	}

	ctx := linker.NewContext()
	for _, path := range args {
		data, err := os.ReadFile(path) // #nosec G304 -- CLI-supplied input path
		if err != nil {
			fmt.Fprintln(os.Stderr, "link:", err)
			os.Exit(1)
		}
		ctx.Load(path, data)
	}

	result := ctx.Link()
	if ctx.Errors.HasErrors() {
		fmt.Fprint(os.Stderr, ctx.Errors.Error())
		os.Exit(1)
	}

	if *dump || cfg.Link.Dump {
		dumpview.ShowArtifact("link", result.Table, result.Store, result.LinkBase, dumpview.Options{
			ColorOutput:  cfg.Display.ColorOutput,
			BytesPerLine: cfg.Display.BytesPerLine,
		})
	}

	if result.Mode == linker.ModeImage {
		image, emitErr := linker.EmitImage(result)
		if emitErr != nil {
			fmt.Fprintln(os.Stderr, "link:", emitErr)
			os.Exit(1)
		}
		outPath := strings.TrimSuffix(filepath.Base(result.EntryFile), filepath.Ext(result.EntryFile)) + cfg.Link.ImageExt
		if err := os.WriteFile(outPath, image, 0644); err != nil { // #nosec G306 -- image is not sensitive
			fmt.Fprintln(os.Stderr, "link:", err)
			os.Exit(1)
		}
		return
	}

	lib := linker.EmitLibrary(result)
	if err := os.WriteFile(cfg.Link.LibraryName, lib, 0644); err != nil { // #nosec G306 -- artifact is not sensitive
		fmt.Fprintln(os.Stderr, "link:", err)
		os.Exit(1)
	}
}
