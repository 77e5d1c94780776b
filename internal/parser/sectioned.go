package parser

import (
	"strings"

	"github.com/satrijo/statement-analyzer/internal/domain"
	"github.com/satrijo/statement-analyzer/internal/extract"
)

// section marks which part of a sectioned statement a line belongs to
type section int

const (
	sectionNone section = iota
	sectionCredit
	sectionDebit
)

// SectionedFormat parses statements that list credits and debits under
// separate section headings. Rows carry unsigned amounts; the surrounding
// section determines the sign: debit rows become negative, credit rows
// positive.
type SectionedFormat struct {
	// DetectPhrases must all appear in the statement text for this format
	// to claim it
	DetectPhrases []string

	// CreditHeaders and DebitHeaders open a credit or debit section
	CreditHeaders []string
	DebitHeaders  []string

	// EndHeaders close the current section without opening a new one
	EndHeaders []string
}

// NewSectionedFormat creates a SectionedFormat with the default headings used
// by summary-style statements
func NewSectionedFormat() *SectionedFormat {
	return &SectionedFormat{
		DetectPhrases: []string{"STATEMENT SUMMARY", "DEPOSITS/OTHER CREDITS"},
		CreditHeaders: []string{"DEPOSITS/OTHER CREDITS"},
		DebitHeaders:  []string{"OTHER DEBITS", "ELECTRONIC WITHDRAWALS", "FEES AND SERVICE CHARGES"},
		EndHeaders:    []string{"CHECKS", "SERVICE CHARGE SUMMARY", "LOWEST DAILY BALANCE"},
	}
}

func (f *SectionedFormat) Name() string {
	return "sectioned"
}

// Detect reports whether all detect phrases appear in the statement text
func (f *SectionedFormat) Detect(text string) bool {
	upper := strings.ToUpper(text)
	for _, phrase := range f.DetectPhrases {
		if !strings.Contains(upper, phrase) {
			return false
		}
	}

	return true
}

// Parse walks the statement lines tracking the current section and parses the
// transaction rows inside credit and debit sections
func (f *SectionedFormat) Parse(lines []string) ([]domain.Transaction, int, error) {
	var txns []domain.Transaction
	skipped := 0

	current := sectionNone
	for _, line := range lines {
		upper := strings.ToUpper(line)

		// A page break ends the current section; headings repeat per page
		if strings.Contains(line, extract.PageBreakMarker) {
			current = sectionNone
			continue
		}

		if next, ok := f.sectionFor(upper); ok {
			current = next
			continue
		}

		if current == sectionNone {
			continue
		}

		// Column header rows inside a section carry no data
		if strings.HasPrefix(upper, "DATE ") || upper == "DATE DESCRIPTION AMOUNT" {
			continue
		}

		txn, ok := ParseLine(line)
		if !ok {
			skipped++
			continue
		}

		if current == sectionDebit {
			txn.Amount = txn.Amount.Abs().Neg()
		} else {
			txn.Amount = txn.Amount.Abs()
		}

		txns = append(txns, txn)
	}

	return txns, skipped, nil
}

// sectionFor reports whether the line is a section heading and which section
// it opens
func (f *SectionedFormat) sectionFor(upperLine string) (section, bool) {
	for _, h := range f.CreditHeaders {
		if strings.HasPrefix(upperLine, h) {
			return sectionCredit, true
		}
	}
	for _, h := range f.DebitHeaders {
		if strings.HasPrefix(upperLine, h) {
			return sectionDebit, true
		}
	}
	for _, h := range f.EndHeaders {
		if strings.HasPrefix(upperLine, h) {
			return sectionNone, true
		}
	}

	return sectionNone, false
}
