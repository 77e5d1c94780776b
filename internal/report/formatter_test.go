package report_test

import (
	"strings"
	"testing"
	"time"

	"github.com/satrijo/statement-analyzer/internal/domain"
	"github.com/satrijo/statement-analyzer/internal/report"
	"github.com/shopspring/decimal"
)

func sampleResult(t *testing.T) domain.AnalysisResult {
	t.Helper()

	date, _ := time.Parse("2006-01-02", "2024-01-15")

	return domain.AnalysisResult{
		Format: "generic",
		Transactions: []domain.Transaction{
			{Date: date, Description: "UBER EATS 8412", Amount: decimal.NewFromFloat(-12.50)},
			{Date: date.AddDate(0, 0, 1), Description: "PAYROLL DEPOSIT", Amount: decimal.NewFromFloat(2100.00)},
		},
		Rows: []domain.AggregateRow{
			{Key: "Payroll Deposit", Count: 1, Total: decimal.NewFromFloat(2100.00), Average: decimal.NewFromFloat(2100.00)},
			{Key: "Uber", Count: 1, Total: decimal.NewFromFloat(-12.50), Average: decimal.NewFromFloat(-12.50)},
		},
		Summary: domain.Summary{
			TransactionCount: 2,
			NetAmount:        decimal.NewFromFloat(2087.50),
			DebitCount:       1,
			DebitTotal:       decimal.NewFromFloat(-12.50),
			CreditCount:      1,
			CreditTotal:      decimal.NewFromFloat(2100.00),
		},
	}
}

func TestCSVFormatter(t *testing.T) {
	out, err := report.NewCSVFormatter().Format(sampleResult(t))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")

	if len(lines) != 3 {
		t.Fatalf("Expected header plus 2 rows, got %d lines:\n%s", len(lines), out)
	}

	if lines[0] != "merchant,count,total,average" {
		t.Errorf("Unexpected header: '%s'", lines[0])
	}

	if lines[1] != "Payroll Deposit,1,2100.00,2100.00" {
		t.Errorf("Unexpected first row: '%s'", lines[1])
	}

	if lines[2] != "Uber,1,-12.50,-12.50" {
		t.Errorf("Unexpected second row: '%s'", lines[2])
	}
}

func TestCSVFormatterEmptyResultKeepsHeader(t *testing.T) {
	out, err := report.NewCSVFormatter().Format(domain.AnalysisResult{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	got := strings.TrimSpace(string(out))
	if got != "merchant,count,total,average" {
		t.Errorf("Expected a header-only CSV, got: '%s'", got)
	}
}

func TestTransactionsCSVFormatter(t *testing.T) {
	out, err := report.NewTransactionsCSVFormatter().Format(sampleResult(t))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")

	if lines[0] != "date,amount,description" {
		t.Errorf("Unexpected header: '%s'", lines[0])
	}

	if lines[1] != "2024-01-15,-12.50,UBER EATS 8412" {
		t.Errorf("Unexpected first row: '%s'", lines[1])
	}
}

func TestTextFormatter(t *testing.T) {
	out, err := report.NewTextFormatter().Format(sampleResult(t))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	text := string(out)

	for _, want := range []string{
		"Total transactions: 2",
		"Net amount: 2087.50",
		"Payroll Deposit",
		"Uber",
		"TOTAL",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected text report to contain '%s', got:\n%s", want, text)
		}
	}
}

func TestJSONFormatter(t *testing.T) {
	out, err := report.NewJSONFormatter(false).Format(sampleResult(t))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !strings.Contains(string(out), `"Key":"Uber"`) {
		t.Errorf("Expected JSON to contain the Uber row, got:\n%s", out)
	}
}

func TestFileExtensions(t *testing.T) {
	if got := report.NewCSVFormatter().FileExtension(); got != "csv" {
		t.Errorf("Expected 'csv', got '%s'", got)
	}
	if got := report.NewTextFormatter().FileExtension(); got != "txt" {
		t.Errorf("Expected 'txt', got '%s'", got)
	}
	if got := report.NewJSONFormatter(true).FileExtension(); got != "json" {
		t.Errorf("Expected 'json', got '%s'", got)
	}
}
