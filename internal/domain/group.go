package domain

import "github.com/shopspring/decimal"

// MerchantGroup collects the transactions whose raw descriptions collapse into
// a single canonical merchant key.
type MerchantGroup struct {
	Key          string
	Members      []string // unique raw descriptions, in first-seen order
	Transactions []Transaction
}

// AggregateRow is the per-merchant report row derived from a MerchantGroup.
// Average is Total divided by Count, rounded to 2 fractional digits,
// half away from zero.
type AggregateRow struct {
	Key     string
	Count   int
	Total   decimal.Decimal
	Average decimal.Decimal
}
