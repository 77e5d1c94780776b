// Package service orchestrates the analysis pipeline: extract statement text,
// detect the format, parse transactions, filter, group by merchant, aggregate.
package service

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/satrijo/statement-analyzer/internal/aggregate"
	"github.com/satrijo/statement-analyzer/internal/domain"
	"github.com/satrijo/statement-analyzer/internal/normalizer"
	"github.com/satrijo/statement-analyzer/internal/parser"
)

// Analyzer runs the statement analysis pipeline
type Analyzer struct {
	source      domain.LineSource
	formats     []domain.StatementFormat
	norm        domain.MerchantNormalizer
	consolidate bool
	logger      *slog.Logger
}

// NewAnalyzer creates a new Analyzer. When consolidate is set, near-duplicate
// fallback-derived merchant keys are merged after normalization.
func NewAnalyzer(
	source domain.LineSource,
	formats []domain.StatementFormat,
	norm domain.MerchantNormalizer,
	consolidate bool,
	logger *slog.Logger,
) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}

	return &Analyzer{
		source:      source,
		formats:     formats,
		norm:        norm,
		consolidate: consolidate,
		logger:      logger,
	}
}

// Run executes the pipeline. An empty searchTerm analyzes every transaction;
// otherwise only transactions whose description contains the term are
// aggregated. A statement with no recognizable transactions is a warning,
// not an error: the result simply carries no rows.
func (a *Analyzer) Run(searchTerm string) (domain.AnalysisResult, error) {
	lines, err := a.source.Lines()
	if err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("extracting statement text: %w", err)
	}

	format, ok := parser.DetectFormat(strings.Join(lines, "\n"), a.formats)
	if !ok {
		return domain.AnalysisResult{}, fmt.Errorf("no statement format recognized")
	}
	a.logger.Debug("statement format detected", "format", format.Name())

	txns, skipped, err := format.Parse(lines)
	if err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("parsing statement: %w", err)
	}
	if skipped > 0 {
		a.logger.Debug("skipped unparseable lines", "count", skipped)
	}

	txns = aggregate.Filter(txns, searchTerm)

	if len(txns) == 0 {
		a.logger.Warn("no transactions found", "format", format.Name(), "search", searchTerm)
	}

	result := domain.AnalysisResult{
		Format:       format.Name(),
		Transactions: txns,
		Rows:         aggregate.Aggregate(txns, a.keyFunc(txns)),
		Summary:      aggregate.Summarize(txns),
		SkippedLines: skipped,
	}

	return result, nil
}

// keyFunc returns the grouping key function, optionally wrapped with the
// fuzzy consolidation pass over the fallback-derived keys present in this
// run. Keys produced by the rule table are never consolidation candidates:
// the table's ordering already decides which canonical keys stay distinct.
func (a *Analyzer) keyFunc(txns []domain.Transaction) aggregate.KeyFunc {
	base := func(txn domain.Transaction) string {
		return a.norm.Normalize(txn.Description)
	}

	if !a.consolidate {
		return base
	}

	ruleKeys := make(map[string]bool)
	for _, key := range a.norm.CanonicalKeys() {
		ruleKeys[key] = true
	}

	keys := make([]string, 0, len(txns))
	for _, txn := range txns {
		key := base(txn)
		if ruleKeys[key] {
			continue
		}
		keys = append(keys, key)
	}

	merged := normalizer.ConsolidateKeys(keys, normalizer.DefaultEditDistance)
	if len(merged) == 0 {
		return base
	}
	a.logger.Debug("consolidated merchant keys", "merged", len(merged))

	return func(txn domain.Transaction) string {
		key := base(txn)
		if survivor, ok := merged[key]; ok {
			return survivor
		}
		return key
	}
}
