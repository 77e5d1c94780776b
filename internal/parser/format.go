package parser

import (
	"strings"

	"github.com/satrijo/statement-analyzer/internal/domain"
	"github.com/satrijo/statement-analyzer/internal/extract"
)

// DefaultFormats returns the statement formats in detection priority order.
// The generic format always detects, so it must stay last.
func DefaultFormats() []domain.StatementFormat {
	return []domain.StatementFormat{
		NewSectionedFormat(),
		NewGenericFormat(),
	}
}

// DetectFormat returns the first format whose Detect matches the statement text
func DetectFormat(text string, formats []domain.StatementFormat) (domain.StatementFormat, bool) {
	for _, format := range formats {
		if format.Detect(text) {
			return format, true
		}
	}

	return nil, false
}

// GenericFormat parses the plain row shape `<date> <description...> <amount>`.
// It acts as the fallback when no bank-specific format detects.
type GenericFormat struct{}

// NewGenericFormat creates a new GenericFormat
func NewGenericFormat() *GenericFormat {
	return &GenericFormat{}
}

func (f *GenericFormat) Name() string {
	return "generic"
}

// Detect always succeeds; the generic format matches any statement text
func (f *GenericFormat) Detect(text string) bool {
	return true
}

// Parse converts every matching line into a transaction and skips the rest
func (f *GenericFormat) Parse(lines []string) ([]domain.Transaction, int, error) {
	var txns []domain.Transaction
	skipped := 0

	for _, line := range lines {
		if strings.Contains(line, extract.PageBreakMarker) {
			continue
		}

		txn, ok := ParseLine(line)
		if !ok {
			skipped++
			continue
		}

		txns = append(txns, txn)
	}

	return txns, skipped, nil
}
