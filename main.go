/*
gsum
----
Summarize a batch of Gaussian output files into a CSV table of their
energies, thermochemistry, frontier orbital eigenvalues, and
vibrational frequency status, one row per file. Every value is kept
exactly as printed in the output file; files missing a section get an
N/A in the corresponding column.
*/

package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/pprof"
	"time"
)

const VERSION = "1.0.0"

// Global variables
var (
	warnings int
)

func main() {
	args := ParseFlags()
	var infile string
	if len(args) >= 1 {
		infile = args[0]
	}
	conf := LoadConfig(infile)
	if *dir != "" {
		conf.Dir = *dir
	}
	if *outfile != "" {
		conf.OutFile = *outfile
	}
	if conf.OutFile == "" {
		conf.OutFile = Outfile(time.Now())
	}
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			panic(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}
	logs, err := FindLogs(conf.Dir, conf.Extensions)
	if err != nil {
		log.Fatalf("main: error %q scanning directory %q\n",
			err, conf.Dir)
	}
	records := make([]Record, 0, len(logs))
	for i, file := range logs {
		lines, err := ReadLines(file)
		if err != nil {
			Warn("skipping %s: %v", file, err)
			continue
		}
		rec := Extract(filepath.Base(file), lines)
		records = append(records, rec)
		fmt.Printf("%5d/%d %-40s %s\n",
			i+1, len(logs), rec.File, rec.Freq)
		if *verbose {
			_, freqs := ReadFrequencies(lines)
			Report(os.Stdout, CheckRun(lines), freqs)
		}
	}
	f, err := os.Create(conf.OutFile)
	if err != nil {
		log.Fatalf("main: error %q creating %q\n", err, conf.OutFile)
	}
	defer f.Close()
	if err := WriteCSV(f, records); err != nil {
		log.Fatalf("main: error %q writing %q\n", err, conf.OutFile)
	}
	fmt.Printf("%d of %d files summarized to %s with %d warnings\n",
		len(records), len(logs), conf.OutFile, warnings)
}
