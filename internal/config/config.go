// Package config resolves runtime settings from command-line arguments and the
// environment.
package config

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	"borrow-trends/internal/logger"

	"github.com/rs/zerolog"
)

const (
	DefaultInputPath  = "loan_dataset_5000.csv"
	DefaultOutputPath = "processed_loan_data.csv"
	DefaultExportDir  = "."

	EnvInput            = "BORROW_TRENDS_INPUT"
	EnvOutput           = "BORROW_TRENDS_OUTPUT"
	EnvExportDir        = "BORROW_TRENDS_EXPORT_DIR"
	EnvStrictCategories = "BORROW_TRENDS_STRICT_CATEGORIES"
	EnvLogLevel         = "LOG_LEVEL"
	EnvDebug            = "DEBUG"
)

type Config struct {
	InputPath        string
	OutputPath       string
	ExportDir        string
	StrictCategories bool
	LogLevel         zerolog.Level
}

// Load builds a Config. Flags win over environment variables, which win over
// defaults. The first positional argument, if any, is the input CSV path.
func Load(args []string, getenv func(string) string) (Config, error) {
	cfg := Config{
		InputPath:  envOr(getenv, EnvInput, DefaultInputPath),
		OutputPath: envOr(getenv, EnvOutput, DefaultOutputPath),
		ExportDir:  envOr(getenv, EnvExportDir, DefaultExportDir),
		LogLevel:   logger.ParseLevel(getenv(EnvLogLevel), getenv(EnvDebug) == "1"),
	}

	if raw := getenv(EnvStrictCategories); raw != "" {
		strict, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s value %q: %w", EnvStrictCategories, raw, err)
		}
		cfg.StrictCategories = strict
	}

	fs := flag.NewFlagSet("borrow-trends", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.OutputPath, "out", cfg.OutputPath, "Processed CSV written when the session ends")
	fs.StringVar(&cfg.ExportDir, "export-dir", cfg.ExportDir, "Directory chart images are saved into")
	fs.BoolVar(&cfg.StrictCategories, "strict", cfg.StrictCategories, "Fail on unrecognized categorical values instead of treating them as missing")
	positional, err := parseInterspersed(fs, args)
	if err != nil {
		return Config{}, fmt.Errorf("parse arguments: %w", err)
	}
	if len(positional) > 1 {
		return Config{}, fmt.Errorf("expected at most one input path, got %q", positional)
	}
	if len(positional) == 1 {
		cfg.InputPath = positional[0]
	}

	return cfg, nil
}

// parseInterspersed parses flags that appear before or after positional
// arguments. flag.FlagSet alone stops at the first positional argument.
// Everything after "--" is positional.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		if len(args) > len(rest) && args[len(args)-len(rest)-1] == "--" {
			return append(positional, rest...), nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

func envOr(getenv func(string) string, key, fallback string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return fallback
}
