package domain

import "github.com/shopspring/decimal"

// Summary holds statement-level totals across all parsed transactions
type Summary struct {
	TransactionCount int
	NetAmount        decimal.Decimal
	DebitCount       int
	DebitTotal       decimal.Decimal
	CreditCount      int
	CreditTotal      decimal.Decimal
}

// AnalysisResult contains the result of a single statement analysis run
type AnalysisResult struct {
	Format       string // name of the statement format that matched
	Transactions []Transaction
	Rows         []AggregateRow
	Summary      Summary
	SkippedLines int // lines that did not parse as transactions
}
