package main

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		file string
		want Record
	}{
		{
			file: "testfiles/ground.log",
			want: Record{
				File:      "ground.log",
				Freq:      FreqNone,
				SCF:       "-76.0267987534",
				TD:        NA,
				ZPE:       NA,
				Enthalpy:  NA,
				Gibbs:     NA,
				HomoAlpha: "-0.49804",
				LumoAlpha: "0.14723",
				HomoBeta:  NA,
				LumoBeta:  NA,
			},
		},
		{
			file: "testfiles/imag.log",
			want: Record{
				File:      "imag.log",
				Freq:      FreqImag,
				SCF:       "-115.7149483021",
				TD:        NA,
				ZPE:       NA,
				Enthalpy:  NA,
				Gibbs:     NA,
				HomoAlpha: "-0.41255",
				LumoAlpha: "0.05012",
				HomoBeta:  NA,
				LumoBeta:  NA,
			},
		},
		{
			file: "testfiles/opt.log",
			want: Record{
				File:     "opt.log",
				Freq:     FreqOK,
				SCF:      "-157.2241599102",
				TD:       NA,
				ZPE:      "-157.145221",
				Enthalpy: "-157.137762",
				Gibbs:    "-157.170401",
				// last occupied row of the last step
				HomoAlpha: "-0.42276",
				// first virtual row of the first step
				LumoAlpha: "0.04410",
				HomoBeta:  "-0.40393",
				LumoBeta:  "0.05518",
			},
		},
		{
			file: "testfiles/td.log",
			want: Record{
				File:      "td.log",
				Freq:      FreqNone,
				SCF:       "-115.7201455873",
				TD:        "-115.564480662",
				ZPE:       NA,
				Enthalpy:  NA,
				Gibbs:     NA,
				HomoAlpha: "-0.43187",
				LumoAlpha: "0.02133",
				HomoBeta:  NA,
				LumoBeta:  NA,
			},
		},
	}
	for _, test := range tests {
		lines, err := ReadLines(test.file)
		if err != nil {
			t.Fatal(err)
		}
		got := Extract(filepath.Base(test.file), lines)
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("%s: got\n%#v, wanted\n%#v\n",
				test.file, got, test.want)
		}
	}
}

func TestScalarLastWins(t *testing.T) {
	lines := []string{
		" SCF Done:  E(RHF) =  -76.000001     A.U. after    9 cycles",
		" some unrelated line",
		" SCF Done:  E(RHF) =  -76.000002     A.U. after    3 cycles",
	}
	got := Extract("a.log", lines)
	if got.SCF != "-76.000002" {
		t.Errorf("got %v, wanted %v\n", got.SCF, "-76.000002")
	}
}

func TestHomoContinuation(t *testing.T) {
	// a continuation row without the repeated header still belongs
	// to the open occupied section
	lines := []string{
		" Alpha  occ. eigenvalues --   -0.34500",
		"   -0.29000   -0.21000",
	}
	got := Extract("a.log", lines)
	if got.HomoAlpha != "-0.21000" {
		t.Errorf("got %v, wanted %v\n", got.HomoAlpha, "-0.21000")
	}
}

func TestLumoSticky(t *testing.T) {
	lines := []string{
		" Alpha virt. eigenvalues --    0.05000   0.21000",
		" Optimization completed.",
		" Alpha virt. eigenvalues --    0.06000   0.22000",
	}
	got := Extract("a.log", lines)
	if got.LumoAlpha != "0.05000" {
		t.Errorf("got %v, wanted %v\n", got.LumoAlpha, "0.05000")
	}
}

func TestAfterEq(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{
			line: " SCF Done:  E(RHF) =  -76.123456    A.U. after",
			want: "-76.123456",
		},
		{
			line: "Sum of electronic and thermal Enthalpies=   -1.5",
			want: "-1.5",
		},
		{line: "no equals sign here", want: ""},
		{line: "trailing equals = ", want: ""},
	}
	for _, test := range tests {
		got := afterEq(test.line)
		if got != test.want {
			t.Errorf("afterEq(%q): got %q, wanted %q\n",
				test.line, got, test.want)
		}
	}
}

func TestReadFrequencies(t *testing.T) {
	tests := []struct {
		msg    string
		lines  []string
		status FreqStatus
		freqs  []float64
	}{
		{
			msg: "no table",
			lines: []string{
				" SCF Done:  E(RHF) =  -76.0     A.U.",
			},
			status: FreqNone,
			freqs:  nil,
		},
		{
			msg: "all real",
			lines: []string{
				" Frequencies --     88.1002   203.4451",
				" Red. masses --      2.1427     1.0936",
				" Frequencies --    345.9981   477.2218",
			},
			status: FreqOK,
			freqs:  []float64{88.1002, 203.4451, 345.9981, 477.2218},
		},
		{
			msg: "imaginary mode in the first of several rows",
			lines: []string{
				" Frequencies --    -45.2031   102.3410",
				" Frequencies --    350.1123   420.9981",
			},
			status: FreqImag,
			freqs:  []float64{-45.2031, 102.3410, 350.1123, 420.9981},
		},
	}
	for _, test := range tests {
		status, freqs := ReadFrequencies(test.lines)
		if status != test.status {
			t.Errorf("%s: got %v, wanted %v\n",
				test.msg, status, test.status)
		}
		if !reflect.DeepEqual(freqs, test.freqs) {
			t.Errorf("%s: got %v, wanted %v\n",
				test.msg, freqs, test.freqs)
		}
	}
}

func TestCheckRun(t *testing.T) {
	tests := []struct {
		file string
		want RunInfo
	}{
		{
			file: "testfiles/ground.log",
			want: RunInfo{Terminated: true},
		},
		{
			file: "testfiles/imag.log",
			want: RunInfo{Errored: true},
		},
		{
			file: "testfiles/opt.log",
			want: RunInfo{
				Terminated: true,
				Elapsed: "0 days  0 hours  3 minutes" +
					" 12.4 seconds.",
			},
		},
	}
	for _, test := range tests {
		lines, err := ReadLines(test.file)
		if err != nil {
			t.Fatal(err)
		}
		got := CheckRun(lines)
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("%s: got %+v, wanted %+v\n",
				test.file, got, test.want)
		}
	}
}
