package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// ReadLines reads a file and returns a slice of strings of the
// lines, blanks included, so the scan sees the file exactly as
// written.
func ReadLines(filename string) (lines []string, err error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

// FindLogs returns the names of the files in dir with one of the
// extensions in exts, in directory order
func FindLogs(dir string, exts []string) (logs []string, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		for _, want := range exts {
			if ext == want {
				logs = append(logs, filepath.Join(dir, e.Name()))
				break
			}
		}
	}
	return logs, nil
}

// Warn prints a warning message to stderr and increments the global
// warning counter
func Warn(format string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", a...)
	warnings++
}
