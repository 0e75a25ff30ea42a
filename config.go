package main

import (
	"io"
	"log"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the run options that can be set from a TOML input
// file. Flags override whatever is set here.
type Config struct {
	Dir        string
	OutFile    string
	Extensions []string
}

// LoadConfig reads the optional TOML input file on top of the
// defaults. An empty filename returns the defaults untouched, but a
// named file that cannot be read is fatal.
func LoadConfig(filename string) Config {
	conf := Config{
		Dir:        ".",
		Extensions: []string{".log", ".out"},
	}
	if filename == "" {
		return conf
	}
	f, err := os.Open(filename)
	if err != nil {
		log.Fatalf("LoadConfig: error %q opening %q\n", err, filename)
	}
	defer f.Close()
	cont, err := io.ReadAll(f)
	if err != nil {
		log.Fatalf("LoadConfig: error %q reading %q\n", err, filename)
	}
	err = toml.Unmarshal(cont, &conf)
	if err != nil {
		log.Fatalf("LoadConfig: error %q parsing %q\n", err, filename)
	}
	return conf
}
