package main

import (
	"flag"
	"fmt"
	"os"
)

// CLIConfig holds the parsed command-line options.
type CLIConfig struct {
	ConfigPath  string
	LogLevel    string
	LogFormat   string
	Validate    bool
	ShowVersion bool
	ShowHelp    bool
}

// parseFlags defines and parses all command-line flags.
func parseFlags() *CLIConfig {
	cfg := &CLIConfig{}

	flag.StringVar(&cfg.ConfigPath, "config", "", "Path to YAML config file (built-in demo config when empty)")
	flag.StringVar(&cfg.LogLevel, "log-level", "", "Log level override: debug, info, warn, error")
	flag.StringVar(&cfg.LogFormat, "log-format", "", "Log format override: json or text")
	flag.BoolVar(&cfg.Validate, "validate", false, "Validate configuration and exit")
	flag.BoolVar(&cfg.ShowVersion, "version", false, "Show version and exit")
	flag.BoolVar(&cfg.ShowHelp, "help", false, "Show help and exit")

	flag.Parse()
	return cfg
}

// validateFlags rejects unusable flag combinations before any setup runs.
func validateFlags(cfg *CLIConfig) error {
	switch cfg.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", cfg.LogLevel)
	}

	switch cfg.LogFormat {
	case "", "json", "text":
	default:
		return fmt.Errorf("unknown log format %q", cfg.LogFormat)
	}

	if cfg.Validate && cfg.ConfigPath == "" {
		return fmt.Errorf("-validate requires -config")
	}

	return nil
}

func printHelp() {
	fmt.Fprintf(os.Stderr, `%s - warehouse inventory demo driver

Seeds warehouses from configuration, runs scripted and concurrent stock
movements with low-stock alerting, round-trips a warehouse through the
filestore, and prints a central inventory report.

Usage:
  %s [flags]

Flags:
`, appName, appName)
	flag.PrintDefaults()
}
