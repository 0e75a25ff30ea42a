package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"gonum.org/v1/gonum/floats"
)

// csvHeader is the column contract of the summary file
var csvHeader = []string{
	"File", "Frequencies", "SCF", "TD", "E+ZPE", "H", "G",
	"HOMO (alpha)", "LUMO (alpha)", "HOMO (beta)", "LUMO (beta)",
}

// Outfile returns the dated default name of the summary file
func Outfile(now time.Time) string {
	return fmt.Sprintf("results_%s.csv", now.Format("2006-01-02"))
}

// Row flattens r into the columns of the summary file
func (r Record) Row() []string {
	return []string{
		r.File, r.Freq.String(), r.SCF, r.TD, r.ZPE,
		r.Enthalpy, r.Gibbs,
		r.HomoAlpha, r.LumoAlpha, r.HomoBeta, r.LumoBeta,
	}
}

// WriteCSV writes the header and one row per record to w
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, rec := range records {
		if err := cw.Write(rec.Row()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Report prints the verbose per-file summary of info and freqs to w
func Report(w io.Writer, info RunInfo, freqs []float64) {
	switch {
	case info.Errored:
		fmt.Fprint(w, "\ttermination: error\n")
	case info.Terminated:
		fmt.Fprint(w, "\ttermination: normal\n")
	default:
		fmt.Fprint(w, "\ttermination: none\n")
	}
	if info.Elapsed != "" {
		fmt.Fprintf(w, "\telapsed: %s\n", info.Elapsed)
	}
	if len(freqs) > 0 {
		fmt.Fprintf(w, "\tlowest frequency: %.1f\n", floats.Min(freqs))
	}
}
