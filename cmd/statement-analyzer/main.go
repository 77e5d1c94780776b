package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/satrijo/statement-analyzer/internal/config"
	"github.com/satrijo/statement-analyzer/internal/extract"
	"github.com/satrijo/statement-analyzer/internal/logging"
	"github.com/satrijo/statement-analyzer/internal/normalizer"
	"github.com/satrijo/statement-analyzer/internal/parser"
	"github.com/satrijo/statement-analyzer/internal/report"
	"github.com/satrijo/statement-analyzer/internal/service"
	"github.com/satrijo/statement-analyzer/pkg/fileutil"
)

func main() {
	// Environment-backed defaults; flags override
	cfg, err := config.Load()
	if err != nil {
		exitWithError(fmt.Sprintf("Loading configuration: %v", err))
	}

	flag.StringVar(&cfg.PDFPath, "pdf", cfg.PDFPath, "Path to the PDF bank statement to analyze")
	flag.StringVar(&cfg.SearchTerm, "search", cfg.SearchTerm, "Only aggregate transactions whose description contains this term")
	flag.StringVar(&cfg.OutputPath, "output", cfg.OutputPath, "Path to output file (if empty, writes to stdout)")
	flag.StringVar(&cfg.Format, "format", cfg.Format, "Output format: csv, text, json, or transactions-csv")
	flag.StringVar(&cfg.RulesPath, "rules", cfg.RulesPath, "Path to a YAML merchant rule table (built-in table if empty)")
	flag.BoolVar(&cfg.Consolidate, "consolidate", cfg.Consolidate, "Merge near-duplicate merchant groups")
	flag.BoolVar(&cfg.Pretty, "pretty", cfg.Pretty, "Pretty print JSON output")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: DEBUG, INFO, WARN, ERROR")

	flag.Parse()

	if err := cfg.Validate(); err != nil {
		exitWithError(err.Error())
	}

	logger := logging.Setup(cfg.LogLevel)

	// Merchant rule table: explicit file or the built-in defaults
	rules := normalizer.DefaultRules()
	if cfg.RulesPath != "" {
		rules, err = normalizer.LoadRules(cfg.RulesPath)
		if err != nil {
			exitWithError(fmt.Sprintf("Loading merchant rules: %v", err))
		}
	}

	source := extract.NewPDFSource(cfg.PDFPath)

	analyzer := service.NewAnalyzer(
		source,
		parser.DefaultFormats(),
		normalizer.New(rules),
		cfg.Consolidate,
		logger,
	)

	result, err := analyzer.Run(cfg.SearchTerm)
	if err != nil {
		exitWithError(fmt.Sprintf("Analysis failed: %v", err))
	}

	if len(result.Transactions) == 0 {
		logger.Warn("statement produced an empty report")
	} else {
		logger.Info("statement analyzed",
			"format", result.Format,
			"transactions", result.Summary.TransactionCount,
			"merchants", len(result.Rows),
			"net", result.Summary.NetAmount.StringFixed(2),
		)
	}

	// Pick the output formatter
	var formatter report.OutputFormatter
	switch cfg.Format {
	case config.FormatCSV:
		formatter = report.NewCSVFormatter()
	case config.FormatText:
		formatter = report.NewTextFormatter()
	case config.FormatJSON:
		formatter = report.NewJSONFormatter(cfg.Pretty)
	case config.FormatTransactionsCSV:
		formatter = report.NewTransactionsCSVFormatter()
	default:
		exitWithError(fmt.Sprintf("Unsupported output format: %s", cfg.Format))
		return
	}

	output, err := formatter.Format(result)
	if err != nil {
		exitWithError(fmt.Sprintf("Failed to format output: %v", err))
	}

	if cfg.OutputPath != "" {
		outputPath := cfg.OutputPath

		// If no extension is provided, add the formatter's default extension
		if !strings.Contains(outputPath, ".") {
			outputPath = fmt.Sprintf("%s.%s", outputPath, formatter.FileExtension())
		}

		if err := fileutil.WriteAtomic(outputPath, output, 0o644); err != nil {
			exitWithError(fmt.Sprintf("Failed to write output file: %v", err))
		}
	} else {
		fmt.Println(string(output))
	}
}

func exitWithError(message string) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	fmt.Fprintf(os.Stderr, "Run with -h flag for usage information.\n")
	os.Exit(1)
}
