// Package parser turns raw statement text lines into transactions. A statement
// is parsed by the first registered format whose Detect matches its text.
package parser

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/satrijo/statement-analyzer/internal/domain"
	"github.com/shopspring/decimal"
)

// dateLayouts are the date shapes recognized at the start of a statement row
var dateLayouts = []string{
	"01/02/2006",
	"01/02/06",
	"2006-01-02",
	"Jan 2, 2006",
}

// lineRe captures the fixed row shape: a date token, a free-form description,
// and a trailing monetary amount with an optional debit/credit indicator.
var lineRe = regexp.MustCompile(`^(\d{2}/\d{2}/\d{4}|\d{2}/\d{2}/\d{2}|\d{4}-\d{2}-\d{2}|[A-Z][a-z]{2} \d{1,2}, \d{4})\s+(.*?)\s+\$?(-?\(?\$?[\d,]+\.\d{2}\)?-?)(\s+(CR|DR))?$`)

// ParseLine converts one line of statement text into a transaction.
// It returns false when the line does not match the expected row shape;
// a non-matching line is skipped by callers, never fatal.
func ParseLine(raw string) (domain.Transaction, bool) {
	m := lineRe.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return domain.Transaction{}, false
	}

	date, err := ParseDate(m[1])
	if err != nil {
		return domain.Transaction{}, false
	}

	amount, err := ParseAmount(m[3])
	if err != nil {
		return domain.Transaction{}, false
	}

	// A trailing DR indicator marks a debit regardless of the printed sign
	if m[5] == "DR" {
		amount = amount.Abs().Neg()
	}

	description := strings.TrimSpace(m[2])
	if description == "" {
		return domain.Transaction{}, false
	}

	return domain.Transaction{
		Date:        date,
		Description: description,
		Amount:      amount,
	}, true
}

// ParseDate parses a statement date token against the known layouts
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date format: %q", s)
}

// ParseAmount parses a monetary token into an exact decimal. Thousands
// separators and a currency symbol are stripped; a minus on either side of
// the currency symbol, a trailing minus, or enclosing parentheses mark the
// amount as negative.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	}
	if strings.HasSuffix(s, "-") {
		negative = true
		s = strings.TrimSuffix(s, "-")
	}

	// The sign may precede the currency symbol, as in "-$12.00"
	if strings.HasPrefix(s, "-") {
		negative = true
		s = strings.TrimPrefix(s, "-")
	}

	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing amount %q: %w", s, err)
	}

	if negative {
		amount = amount.Abs().Neg()
	}

	return amount, nil
}
