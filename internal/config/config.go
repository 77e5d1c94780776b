// Package config loads the application configuration from defaults and
// STMT_* environment variables. Command-line flags override both in main.
package config

import (
	"fmt"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Formats recognized by the -format option
const (
	FormatCSV             = "csv"
	FormatText            = "text"
	FormatJSON            = "json"
	FormatTransactionsCSV = "transactions-csv"
)

// Config holds the application configuration.
type Config struct {
	// PDFPath is the statement file to analyze.
	// Environment variable: STMT_PDF_PATH
	PDFPath string `koanf:"STMT_PDF_PATH"`

	// SearchTerm restricts the analysis to transactions whose description
	// contains the term. Empty analyzes everything.
	// Environment variable: STMT_SEARCH_TERM
	SearchTerm string `koanf:"STMT_SEARCH_TERM"`

	// OutputPath is the report destination; empty writes to stdout.
	// Environment variable: STMT_OUTPUT_PATH
	OutputPath string `koanf:"STMT_OUTPUT_PATH"`

	// Format selects the report format: csv, text, json, transactions-csv.
	// Environment variable: STMT_FORMAT
	Format string `koanf:"STMT_FORMAT"`

	// RulesPath points at a YAML merchant rule table; empty uses the
	// built-in table.
	// Environment variable: STMT_RULES_PATH
	RulesPath string `koanf:"STMT_RULES_PATH"`

	// Consolidate enables the fuzzy merge of near-duplicate merchant keys.
	// Environment variable: STMT_CONSOLIDATE
	Consolidate bool `koanf:"STMT_CONSOLIDATE"`

	// Pretty enables indented JSON output.
	// Environment variable: STMT_PRETTY
	Pretty bool `koanf:"STMT_PRETTY"`

	// LogLevel is the minimum log level: DEBUG, INFO, WARN, ERROR.
	// Environment variable: STMT_LOG_LEVEL
	LogLevel string `koanf:"STMT_LOG_LEVEL"`
}

// Default returns the configuration used when nothing is overridden
func Default() Config {
	return Config{
		Format:   FormatCSV,
		Pretty:   true,
		LogLevel: "INFO",
	}
}

// Load returns the default configuration overridden by STMT_* environment
// variables
func Load() (Config, error) {
	cfg := Default()

	k := koanf.New(".")
	if err := k.Load(env.Provider("STMT_", ".", nil), nil); err != nil {
		return Config{}, fmt.Errorf("loading environment config: %w", err)
	}

	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf", FlatPaths: true}); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is usable
func (c Config) Validate() error {
	if c.PDFPath == "" {
		return fmt.Errorf("statement file path is required")
	}

	switch c.Format {
	case FormatCSV, FormatText, FormatJSON, FormatTransactionsCSV:
	default:
		return fmt.Errorf("unsupported output format: %s", c.Format)
	}

	return nil
}
