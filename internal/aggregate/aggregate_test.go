package aggregate_test

import (
	"testing"
	"time"

	"github.com/satrijo/statement-analyzer/internal/aggregate"
	"github.com/satrijo/statement-analyzer/internal/domain"
	"github.com/satrijo/statement-analyzer/internal/normalizer"
	"github.com/shopspring/decimal"
)

func makeTxn(t *testing.T, date, description, amount string) domain.Transaction {
	t.Helper()

	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		t.Fatalf("bad test date %q: %v", date, err)
	}

	a, err := decimal.NewFromString(amount)
	if err != nil {
		t.Fatalf("bad test amount %q: %v", amount, err)
	}

	return domain.Transaction{Date: d, Description: description, Amount: a}
}

func TestAggregateUberFamily(t *testing.T) {
	n := normalizer.New(normalizer.RuleSet{
		{Pattern: "UBER", Canonical: "Uber"},
	})

	txns := []domain.Transaction{
		makeTxn(t, "2024-01-15", "UBER EATS 8412", "-12.50"),
		makeTxn(t, "2024-01-16", "UBER TRIP 0099", "-30.00"),
		makeTxn(t, "2024-01-17", "UBER   EATS  8412", "-8.25"),
	}

	rows := aggregate.Aggregate(txns, func(txn domain.Transaction) string {
		return n.Normalize(txn.Description)
	})

	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}

	row := rows[0]
	if row.Key != "Uber" {
		t.Errorf("Expected key 'Uber', got '%s'", row.Key)
	}
	if row.Count != 3 {
		t.Errorf("Expected count 3, got %d", row.Count)
	}
	if !row.Total.Equal(decimal.NewFromFloat(-50.75)) {
		t.Errorf("Expected total -50.75, got %s", row.Total)
	}
	// -50.75 / 3 = -16.9166..., rounded half away from zero to -16.92
	if !row.Average.Equal(decimal.NewFromFloat(-16.92)) {
		t.Errorf("Expected average -16.92, got %s", row.Average)
	}
}

func TestAggregateConservesTotalValue(t *testing.T) {
	txns := []domain.Transaction{
		makeTxn(t, "2024-01-01", "UBER EATS 8412", "-12.50"),
		makeTxn(t, "2024-01-02", "GROCERY MART", "-80.00"),
		makeTxn(t, "2024-01-03", "PAYROLL DEPOSIT", "2100.00"),
		makeTxn(t, "2024-01-04", "GROCERY MART", "-41.37"),
		makeTxn(t, "2024-01-05", "CHECK #1024", "-150.00"),
	}

	rows := aggregate.Aggregate(txns, func(txn domain.Transaction) string {
		return txn.Description
	})

	rowTotal := decimal.Zero
	for _, row := range rows {
		rowTotal = rowTotal.Add(row.Total)
	}

	txnTotal := decimal.Zero
	for _, txn := range txns {
		txnTotal = txnTotal.Add(txn.Amount)
	}

	if !rowTotal.Equal(txnTotal) {
		t.Errorf("Aggregation lost value: rows sum to %s, transactions to %s", rowTotal, txnTotal)
	}
}

func TestAggregateOrdering(t *testing.T) {
	txns := []domain.Transaction{
		makeTxn(t, "2024-01-01", "SMALL SPEND", "-10.00"),
		makeTxn(t, "2024-01-02", "BIG SPEND", "-500.00"),
		makeTxn(t, "2024-01-03", "ALPHA TIE", "-25.00"),
		makeTxn(t, "2024-01-04", "BETA TIE", "-25.00"),
	}

	keyFn := func(txn domain.Transaction) string { return txn.Description }

	rows := aggregate.Aggregate(txns, keyFn)

	wantOrder := []string{"BIG SPEND", "ALPHA TIE", "BETA TIE", "SMALL SPEND"}
	for i, want := range wantOrder {
		if rows[i].Key != want {
			t.Errorf("Expected row %d to be '%s', got '%s'", i, want, rows[i].Key)
		}
	}

	// Ordering must be reproducible across runs
	again := aggregate.Aggregate(txns, keyFn)
	for i := range rows {
		if rows[i].Key != again[i].Key {
			t.Errorf("Row order changed between runs at index %d: '%s' vs '%s'",
				i, rows[i].Key, again[i].Key)
		}
	}
}

func TestAggregateAverageEqualsTotalOverCount(t *testing.T) {
	txns := []domain.Transaction{
		makeTxn(t, "2024-01-01", "SHOP", "-10.01"),
		makeTxn(t, "2024-01-02", "SHOP", "-10.00"),
		makeTxn(t, "2024-01-03", "SHOP", "-10.00"),
	}

	rows := aggregate.Aggregate(txns, func(txn domain.Transaction) string {
		return txn.Description
	})

	row := rows[0]
	want := row.Total.Div(decimal.NewFromInt(int64(row.Count))).Round(2)
	if !row.Average.Equal(want) {
		t.Errorf("Expected average %s, got %s", want, row.Average)
	}
}

func TestGroupTracksMemberDescriptions(t *testing.T) {
	n := normalizer.New(normalizer.RuleSet{
		{Pattern: "UBER", Canonical: "Uber"},
	})

	txns := []domain.Transaction{
		makeTxn(t, "2024-01-15", "UBER EATS 8412", "-12.50"),
		makeTxn(t, "2024-01-16", "UBER TRIP 0099", "-30.00"),
		makeTxn(t, "2024-01-17", "UBER EATS 8412", "-8.25"),
	}

	groups := aggregate.Group(txns, func(txn domain.Transaction) string {
		return n.Normalize(txn.Description)
	})

	if len(groups) != 1 {
		t.Fatalf("Expected 1 group, got %d", len(groups))
	}

	group := groups[0]
	if len(group.Transactions) != 3 {
		t.Errorf("Expected 3 transactions in the group, got %d", len(group.Transactions))
	}

	// Duplicate raw descriptions appear once
	if len(group.Members) != 2 {
		t.Errorf("Expected 2 distinct member descriptions, got %d: %v",
			len(group.Members), group.Members)
	}
}

func TestSummarize(t *testing.T) {
	txns := []domain.Transaction{
		makeTxn(t, "2024-01-01", "GROCERY MART", "-80.00"),
		makeTxn(t, "2024-01-02", "PAYROLL DEPOSIT", "2100.00"),
		makeTxn(t, "2024-01-03", "UBER TRIP 0099", "-30.00"),
	}

	s := aggregate.Summarize(txns)

	if s.TransactionCount != 3 {
		t.Errorf("Expected 3 transactions, got %d", s.TransactionCount)
	}
	if s.DebitCount != 2 || s.CreditCount != 1 {
		t.Errorf("Expected 2 debits and 1 credit, got %d and %d", s.DebitCount, s.CreditCount)
	}
	if !s.NetAmount.Equal(decimal.NewFromFloat(1990.00)) {
		t.Errorf("Expected net amount 1990.00, got %s", s.NetAmount)
	}
	if !s.DebitTotal.Equal(decimal.NewFromFloat(-110.00)) {
		t.Errorf("Expected debit total -110.00, got %s", s.DebitTotal)
	}
	if !s.CreditTotal.Equal(decimal.NewFromFloat(2100.00)) {
		t.Errorf("Expected credit total 2100.00, got %s", s.CreditTotal)
	}
}
