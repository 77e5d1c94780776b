package config_test

import (
	"testing"

	"github.com/satrijo/statement-analyzer/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Format != config.FormatCSV {
		t.Errorf("Expected default format 'csv', got '%s'", cfg.Format)
	}

	if cfg.LogLevel != "INFO" {
		t.Errorf("Expected default log level 'INFO', got '%s'", cfg.LogLevel)
	}

	if !cfg.Pretty {
		t.Error("Expected pretty printing on by default")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("STMT_PDF_PATH", "statements/march.pdf")
	t.Setenv("STMT_FORMAT", "text")
	t.Setenv("STMT_SEARCH_TERM", "uber")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.PDFPath != "statements/march.pdf" {
		t.Errorf("Expected PDF path from environment, got '%s'", cfg.PDFPath)
	}

	if cfg.Format != "text" {
		t.Errorf("Expected format 'text', got '%s'", cfg.Format)
	}

	if cfg.SearchTerm != "uber" {
		t.Errorf("Expected search term 'uber', got '%s'", cfg.SearchTerm)
	}
}

func TestValidate(t *testing.T) {
	cfg := config.Default()
	if err := cfg.Validate(); err == nil {
		t.Error("Expected an error when the statement path is missing")
	}

	cfg.PDFPath = "statement.pdf"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected a valid config, got: %v", err)
	}

	cfg.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Error("Expected an error for an unsupported format")
	}
}
