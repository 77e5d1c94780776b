package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/satrijo/statement-analyzer/internal/domain"
)

const separatorWidth = 80

// TextFormatter renders the analysis as a human-readable summary table
type TextFormatter struct{}

func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Format implements the OutputFormatter interface for plain text
func (f *TextFormatter) Format(result domain.AnalysisResult) ([]byte, error) {
	var buf bytes.Buffer
	sep := strings.Repeat("-", separatorWidth)

	s := result.Summary
	fmt.Fprintf(&buf, "Statement format: %s\n", result.Format)
	fmt.Fprintf(&buf, "Total transactions: %d\n", s.TransactionCount)
	fmt.Fprintf(&buf, "Debits: %d (%s)\n", s.DebitCount, s.DebitTotal.StringFixed(2))
	fmt.Fprintf(&buf, "Credits: %d (%s)\n", s.CreditCount, s.CreditTotal.StringFixed(2))
	fmt.Fprintf(&buf, "Net amount: %s\n", s.NetAmount.StringFixed(2))

	if result.SkippedLines > 0 {
		fmt.Fprintf(&buf, "Skipped lines: %d\n", result.SkippedLines)
	}

	buf.WriteString("\nBreakdown by merchant:\n")
	buf.WriteString(sep + "\n")
	fmt.Fprintf(&buf, "%-30s %8s %14s %14s\n", "Merchant", "Count", "Total", "Avg/Txn")
	buf.WriteString(sep + "\n")

	for _, row := range result.Rows {
		merchant := row.Key
		if len(merchant) > 30 {
			merchant = merchant[:30]
		}
		fmt.Fprintf(&buf, "%-30s %8d %14s %14s\n",
			merchant, row.Count, row.Total.StringFixed(2), row.Average.StringFixed(2))
	}

	buf.WriteString(sep + "\n")
	fmt.Fprintf(&buf, "%-30s %8d %14s\n", "TOTAL", s.TransactionCount, s.NetAmount.StringFixed(2))

	return buf.Bytes(), nil
}

func (f *TextFormatter) FileExtension() string {
	return "txt"
}
