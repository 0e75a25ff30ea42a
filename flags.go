package main

import (
	"flag"
	"fmt"
	"os"
)

const (
	help = `Summarize the energies, thermochemistry, frontier orbitals, and
frequency status of the Gaussian output files in a directory as one
CSV row per file.

Usage: gsum [flags] [config.toml]

The optional TOML input file may set dir, outfile, and extensions;
flags take precedence over it.
Flags:
`
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	dir        = flag.String("dir", "", "directory to scan for output files")
	outfile    = flag.String("o", "", "write the summary to `file` instead of the dated default")
	verbose    = flag.Bool("v", false, "report the termination status and lowest frequency of each file")
	version    = flag.Bool("version", false, "print the version and exit")
)

// ParseFlags parses command line flags and returns a slice of
// the remaining arguments
func ParseFlags() []string {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), help)
		flag.PrintDefaults()
	}
	flag.Parse()
	if *version {
		fmt.Printf("gsum version: %s\n", VERSION)
		os.Exit(0)
	}
	return flag.Args()
}
