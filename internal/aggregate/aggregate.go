// Package aggregate groups transactions by merchant key and computes the
// per-merchant report rows.
package aggregate

import (
	"sort"

	"github.com/satrijo/statement-analyzer/internal/domain"
	"github.com/shopspring/decimal"
)

// currencyPrecision is the number of fractional digits in report amounts
const currencyPrecision = 2

// KeyFunc derives the grouping key for a transaction
type KeyFunc func(domain.Transaction) string

// Group collects transactions into merchant groups using keyFn. Groups keep
// their transactions in input order and track each distinct raw description.
func Group(txns []domain.Transaction, keyFn KeyFunc) []domain.MerchantGroup {
	byKey := make(map[string]*domain.MerchantGroup)
	var order []string

	for _, txn := range txns {
		key := keyFn(txn)

		group, ok := byKey[key]
		if !ok {
			group = &domain.MerchantGroup{Key: key}
			byKey[key] = group
			order = append(order, key)
		}

		if !containsString(group.Members, txn.Description) {
			group.Members = append(group.Members, txn.Description)
		}
		group.Transactions = append(group.Transactions, txn)
	}

	groups := make([]domain.MerchantGroup, 0, len(order))
	for _, key := range order {
		groups = append(groups, *byKey[key])
	}

	return groups
}

// Aggregate groups transactions by keyFn and computes count, total, and
// average per group. Rows are sorted by descending total magnitude, ties
// broken by key ascending, so report output is reproducible.
//
// Averages are rounded to currency precision, half away from zero:
// -50.75 over 3 transactions averages to -16.92.
func Aggregate(txns []domain.Transaction, keyFn KeyFunc) []domain.AggregateRow {
	groups := Group(txns, keyFn)

	rows := make([]domain.AggregateRow, 0, len(groups))
	for _, group := range groups {
		total := decimal.Zero
		for _, txn := range group.Transactions {
			total = total.Add(txn.Amount)
		}

		count := len(group.Transactions)
		average := total.Div(decimal.NewFromInt(int64(count))).Round(currencyPrecision)

		rows = append(rows, domain.AggregateRow{
			Key:     group.Key,
			Count:   count,
			Total:   total,
			Average: average,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		mi, mj := rows[i].Total.Abs(), rows[j].Total.Abs()
		if !mi.Equal(mj) {
			return mi.GreaterThan(mj)
		}
		return rows[i].Key < rows[j].Key
	})

	return rows
}

// Summarize computes statement-level totals with debit/credit splits
func Summarize(txns []domain.Transaction) domain.Summary {
	s := domain.Summary{
		TransactionCount: len(txns),
		NetAmount:        decimal.Zero,
		DebitTotal:       decimal.Zero,
		CreditTotal:      decimal.Zero,
	}

	for _, txn := range txns {
		s.NetAmount = s.NetAmount.Add(txn.Amount)

		if txn.Amount.IsNegative() {
			s.DebitCount++
			s.DebitTotal = s.DebitTotal.Add(txn.Amount)
		} else {
			s.CreditCount++
			s.CreditTotal = s.CreditTotal.Add(txn.Amount)
		}
	}

	return s
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
