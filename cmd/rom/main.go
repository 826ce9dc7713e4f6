// Command rom turns a CSV truth table into an address-indexed ROM image
// (spec.md §6 ROM generator CLI).
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/wrzlbrmft/cpu/config"
	"github.com/wrzlbrmft/cpu/rom"
)

var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "Show version information")
		output      = flag.String("o", "", "Output file (default derived from csv basename and configured format)")
		extractBits = flag.String("extract-bits", "", "Extract an inclusive bit range FROM[-TO] out of every data value")
		format      = flag.String("format", "", "Output format: raw or bin (default from config)")
	)
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: rom <csv> <addr-config> <data-config> [-o output] [--format raw|bin] [--extract-bits FROM[-TO]]")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Printf("rom %s (%s)\n", Version, Commit)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) != 3 {
		flag.Usage()
		os.Exit(1)
	}
	csvPath, addrSpec, dataSpec := args[0], args[1], args[2]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "rom:", err)
		os.Exit(1)
	}

	addrCfg, err := rom.ParseAddrConfig(addrSpec)
	if err != nil {
		fmt.Fprintln(os.Stderr, "rom:", err)
		os.Exit(1)
	}
	dataCfg, err := rom.ParseDataConfig(dataSpec)
	if err != nil {
		fmt.Fprintln(os.Stderr, "rom:", err)
		os.Exit(1)
	}

	var flags rom.Flags
	if dataCfg.IsFlags {
		flags, err = rom.LoadFlagsFile(dataCfg.FlagsFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "rom:", err)
			os.Exit(1)
		}
	}

	rows, err := rom.ReadCSV(csvPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "rom:", err)
		os.Exit(1)
	}

	data, err := rom.BuildMap(rows, addrCfg, dataCfg, flags)
	if err != nil {
		fmt.Fprintln(os.Stderr, "rom:", err)
		os.Exit(1)
	}

	if *extractBits != "" {
		from, to, err := parseRange(*extractBits)
		if err != nil {
			fmt.Fprintln(os.Stderr, "rom:", err)
			os.Exit(1)
		}
		extracted := make(map[uint64]uint64, len(data))
		for addr, v := range data {
			extracted[addr] = rom.ExtractBits(v, from, to)
		}
		data = extracted
	}

	outFormat := *format
	if outFormat == "" {
		outFormat = cfg.Rom.OutputFormat
	}
	outPath := *output
	if outPath == "" {
		base := strings.TrimSuffix(filepath.Base(csvPath), filepath.Ext(csvPath))
		ext := ".raw"
		if outFormat == "bin" {
			ext = ".bin"
		}
		outPath = base + ext
	} else {
		switch filepath.Ext(outPath) {
		case ".bin":
			outFormat = "bin"
		case ".raw":
			outFormat = "raw"
		}
	}

	if outFormat == "bin" {
		err = rom.WriteBin(outPath, data)
	} else {
		err = rom.WriteRaw(outPath, data, cfg.Rom.ZeroFill)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "rom:", err)
		os.Exit(1)
	}
}

// parseRange accepts spec.md §4.9's FROM[-TO] grammar: a bare FROM extracts
// a single bit (TO defaults to FROM).
func parseRange(s string) (int, int, error) {
	parts := strings.SplitN(s, "-", 2)
	from, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid bit range %q, want FROM[-TO]", s)
	}
	if len(parts) == 1 {
		return from, from, nil
	}
	to, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid bit range %q, want FROM[-TO]", s)
	}
	if from > to {
		return 0, 0, fmt.Errorf("invalid bit range %q: from > to", s)
	}
	return from, to, nil
}
