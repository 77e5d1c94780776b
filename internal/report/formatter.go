// Package report formats analysis results for output: CSV for the aggregate
// report, a raw transaction export, a plain-text summary table, and JSON.
package report

import (
	"encoding/json"

	"github.com/satrijo/statement-analyzer/internal/domain"
)

// OutputFormatter defines the interface for formatting analysis results
type OutputFormatter interface {
	Format(result domain.AnalysisResult) ([]byte, error)
	FileExtension() string
}

// JSONFormatter formats the full analysis result as JSON
type JSONFormatter struct {
	PrettyPrint bool
}

func NewJSONFormatter(prettyPrint bool) *JSONFormatter {
	return &JSONFormatter{
		PrettyPrint: prettyPrint,
	}
}

// Format implements the OutputFormatter interface for JSON
func (f *JSONFormatter) Format(result domain.AnalysisResult) ([]byte, error) {
	if f.PrettyPrint {
		return json.MarshalIndent(result, "", "  ")
	}
	return json.Marshal(result)
}

func (f *JSONFormatter) FileExtension() string {
	return "json"
}
