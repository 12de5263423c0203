// Package main is the entry point for the keytab inspection tool.
//
// It parses keyboard translator files, prints their entries in canonical
// form, and lists the translators available in a directory.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/keytab/internal/keytab"
	"github.com/dshills/keytab/internal/logging"
	"github.com/dshills/keytab/internal/manager"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

type options struct {
	file        string
	dir         string
	configPath  string
	logLevel    string
	showVersion bool
}

// config is the optional TOML configuration file.
type config struct {
	SearchPaths []string `toml:"search_paths"`
	LogLevel    string   `toml:"log_level"`
}

func run() int {
	opts := parseFlags()

	if opts.showVersion {
		fmt.Printf("keytab %s (%s)\n", version, commit)
		return 0
	}

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	level := cfg.LogLevel
	if opts.logLevel != "" {
		level = opts.logLevel
	}
	log := logging.New(logging.Config{
		Level:  logging.ParseLevel(level),
		Output: os.Stderr,
		Prefix: "keytab",
	})

	switch {
	case opts.file != "":
		return dumpFile(opts.file, log)
	case opts.dir != "" || len(cfg.SearchPaths) > 0:
		paths := cfg.SearchPaths
		if opts.dir != "" {
			paths = append([]string{opts.dir}, paths...)
		}
		return listTranslators(paths, log)
	default:
		flag.Usage()
		return 2
	}
}

func parseFlags() options {
	var opts options

	flag.StringVar(&opts.file, "f", "", "Parse a keytab file and print its entries")
	flag.StringVar(&opts.dir, "d", "", "List translators found in a directory")
	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.logLevel, "log", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&opts.showVersion, "version", false, "Print version and exit")
	flag.Parse()

	return opts
}

func loadConfig(path string) (config, error) {
	var cfg config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

func dumpFile(path string, log *logging.Logger) int {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer f.Close()

	t := keytab.Load(path, f, log)
	if t.Description() != "" {
		fmt.Printf("keyboard %q\n", t.Description())
	}
	for _, entry := range t.Entries() {
		fmt.Printf("key %s : %s\n", entry.ConditionString(), entry.ResultString())
	}
	return 0
}

func listTranslators(paths []string, log *logging.Logger) int {
	m := manager.New(log, paths...)
	names := m.TranslatorNames()
	sort.Strings(names)

	for _, name := range names {
		t, err := m.Translator(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		fmt.Printf("%-20s %s (%d entries)\n", name, t.Description(), len(t.Entries()))
	}
	return 0
}
