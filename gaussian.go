package main

import (
	"regexp"
	"strconv"
	"strings"
)

// Section labels the eigenvalue table the scanner is currently
// inside. At most one section is active at a time; a new header or a
// finished optimization leaves the previous one.
type Section int

const (
	None Section = iota
	AlphaOcc
	AlphaVirt
	BetaOcc
	BetaVirt
)

// FreqStatus describes the harmonic frequencies of a calculation.
// The three options are
// 1) the output contains no frequency table
// 2) all of the frequencies are real
// 3) at least one frequency is imaginary
type FreqStatus int

const (
	FreqNone FreqStatus = iota
	FreqOK
	FreqImag
)

func (f FreqStatus) String() string {
	return []string{"not present", "OK", "error"}[f]
}

// NA is the placeholder written for fields never seen in a file
const NA = "N/A"

// Record holds the values extracted from a single output file. The
// numeric fields keep the text exactly as Gaussian printed it, or NA
// if the corresponding line never appeared.
type Record struct {
	File      string
	Freq      FreqStatus
	SCF       string
	TD        string
	ZPE       string
	Enthalpy  string
	Gibbs     string
	HomoAlpha string
	LumoAlpha string
	HomoBeta  string
	LumoBeta  string
}

// afterEq returns the first whitespace-delimited token after the
// first = in line, or an empty string if there is none
func afterEq(line string) string {
	split := strings.SplitN(line, "=", 2)
	if len(split) < 2 {
		return ""
	}
	fields := strings.Fields(split[1])
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// lastField returns the final whitespace-delimited field of line, or
// an empty string if the line is blank
func lastField(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// nthField returns the zero-indexed nth whitespace-delimited field
// of line, or an empty string if the line is too short
func nthField(line string, n int) string {
	fields := strings.Fields(line)
	if len(fields) <= n {
		return ""
	}
	return fields[n]
}

// Extract performs a single pass over the lines of a Gaussian output
// file and gathers its energies and frontier orbital eigenvalues
// into a Record. Scalar energies keep their last occurrence since an
// optimization reruns the same calculation at every step. The HOMO
// is the highest eigenvalue of an occupied table, so it is
// overwritten on every row of the section; the LUMO is the first
// eigenvalue of a virtual table, taken from the first virtual header
// in the file and kept from then on, even across later optimization
// steps.
func Extract(name string, lines []string) Record {
	rec := Record{File: name}
	var sec Section
	for _, line := range lines {
		switch {
		case strings.Contains(line, "SCF Done:  E(") &&
			strings.Contains(line, "= "):
			rec.SCF = afterEq(line)
		case strings.Contains(line, "Total Energy, E(TD-HF/TD-DFT) ="):
			rec.TD = afterEq(line)
		case strings.Contains(line,
			"Sum of electronic and zero-point Energies="):
			rec.ZPE = afterEq(line)
		case strings.Contains(line,
			"Sum of electronic and thermal Enthalpies="):
			rec.Enthalpy = afterEq(line)
		case strings.Contains(line,
			"Sum of electronic and thermal Free Energies="):
			rec.Gibbs = afterEq(line)
		case strings.Contains(line, "Optimization completed."):
			sec = None
		case strings.Contains(line, "Alpha  occ. eigenvalues"):
			sec = AlphaOcc
			rec.HomoAlpha = lastField(line)
		case strings.Contains(line, "Alpha virt. eigenvalues"):
			sec = AlphaVirt
			if rec.LumoAlpha == "" {
				// the header occupies the first four
				// fields, so the first eigenvalue is
				// the fifth
				rec.LumoAlpha = nthField(line, 4)
			}
		case strings.Contains(line, "Beta  occ. eigenvalues"):
			sec = BetaOcc
			rec.HomoBeta = lastField(line)
		case strings.Contains(line, "Beta virt. eigenvalues"):
			sec = BetaVirt
			if rec.LumoBeta == "" {
				rec.LumoBeta = nthField(line, 4)
			}
		case sec == AlphaOcc && strings.TrimSpace(line) != "":
			rec.HomoAlpha = lastField(line)
		case sec == BetaOcc && strings.TrimSpace(line) != "":
			rec.HomoBeta = lastField(line)
		}
	}
	rec.Freq, _ = ReadFrequencies(lines)
	return rec.finish()
}

// finish replaces every field never seen during the scan with the NA
// placeholder
func (r Record) finish() Record {
	for _, field := range []*string{
		&r.SCF, &r.TD, &r.ZPE, &r.Enthalpy, &r.Gibbs,
		&r.HomoAlpha, &r.LumoAlpha, &r.HomoBeta, &r.LumoBeta,
	} {
		if *field == "" {
			*field = NA
		}
	}
	return r
}

// ReadFrequencies scans every harmonic frequency row of lines and
// reports whether the file has frequencies at all and whether any of
// them is imaginary, along with the values themselves. Gaussian
// prints imaginary modes as negative numbers, so a single value
// starting with a minus sign anywhere marks the whole file. Values
// that fail to parse are left out of freqs but do not affect the
// status.
func ReadFrequencies(lines []string) (status FreqStatus, freqs []float64) {
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) < 2 || fields[0] != "Frequencies" ||
			fields[1] != "--" {
			continue
		}
		if status == FreqNone {
			status = FreqOK
		}
		for _, f := range fields[2:] {
			if len(f) > 1 && f[0] == '-' &&
				'0' <= f[1] && f[1] <= '9' {
				status = FreqImag
			}
			if v, err := strconv.ParseFloat(f, 64); err == nil {
				freqs = append(freqs, v)
			}
		}
	}
	return
}

// GaussErrorLine matches the report Gaussian prints before an
// abnormal termination
var GaussErrorLine = regexp.MustCompile(`(?i)error termination`)

// RunInfo holds the bookkeeping parts of a calculation that are
// reported on the console but never written to the summary table
type RunInfo struct {
	Terminated bool
	Errored    bool
	Elapsed    string
}

// CheckRun gathers the termination status and elapsed time of a
// calculation for the verbose report
func CheckRun(lines []string) (info RunInfo) {
	for _, line := range lines {
		switch {
		case strings.Contains(line, "Normal termination of Gaussian"):
			info.Terminated = true
		case GaussErrorLine.MatchString(line):
			info.Errored = true
		case strings.Contains(line, "Elapsed time:"):
			split := strings.SplitN(line, "Elapsed time:", 2)
			info.Elapsed = strings.TrimSpace(split[1])
		}
	}
	return
}
