package report

import (
	"github.com/gocarina/gocsv"
	"github.com/satrijo/statement-analyzer/internal/domain"
)

// csvRow is the CSV shape of one aggregate report row. Amounts are formatted
// with exactly two fractional digits and no thousands separators.
type csvRow struct {
	Merchant string `csv:"merchant"`
	Count    int    `csv:"count"`
	Total    string `csv:"total"`
	Average  string `csv:"average"`
}

// CSVFormatter formats the aggregate rows as a CSV report
type CSVFormatter struct{}

func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

// Format implements the OutputFormatter interface for the aggregate CSV.
// An empty result still produces the header row.
func (f *CSVFormatter) Format(result domain.AnalysisResult) ([]byte, error) {
	rows := make([]csvRow, 0, len(result.Rows))
	for _, row := range result.Rows {
		rows = append(rows, csvRow{
			Merchant: row.Key,
			Count:    row.Count,
			Total:    row.Total.StringFixed(2),
			Average:  row.Average.StringFixed(2),
		})
	}

	return gocsv.MarshalBytes(&rows)
}

func (f *CSVFormatter) FileExtension() string {
	return "csv"
}

// transactionRow is the CSV shape of one raw transaction
type transactionRow struct {
	Date        string `csv:"date"`
	Amount      string `csv:"amount"`
	Description string `csv:"description"`
}

// TransactionsCSVFormatter exports the parsed transactions themselves rather
// than the aggregate rows
type TransactionsCSVFormatter struct{}

func NewTransactionsCSVFormatter() *TransactionsCSVFormatter {
	return &TransactionsCSVFormatter{}
}

// Format implements the OutputFormatter interface for the transaction export
func (f *TransactionsCSVFormatter) Format(result domain.AnalysisResult) ([]byte, error) {
	rows := make([]transactionRow, 0, len(result.Transactions))
	for _, txn := range result.Transactions {
		rows = append(rows, transactionRow{
			Date:        txn.Date.Format("2006-01-02"),
			Amount:      txn.Amount.StringFixed(2),
			Description: txn.Description,
		})
	}

	return gocsv.MarshalBytes(&rows)
}

func (f *TransactionsCSVFormatter) FileExtension() string {
	return "csv"
}
