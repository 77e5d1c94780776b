package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a single line item parsed from a bank statement.
// Amounts carry a signed convention: debits are negative, credits are positive.
// A Transaction is never mutated after parsing.
type Transaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
}
