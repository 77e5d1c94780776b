package aggregate

import (
	"strings"

	"github.com/satrijo/statement-analyzer/internal/domain"
)

// Filter restricts transactions to those whose raw description contains the
// search term, case-insensitively. An empty term is a no-op: the input slice
// is returned unchanged.
func Filter(txns []domain.Transaction, term string) []domain.Transaction {
	if term == "" {
		return txns
	}

	needle := strings.ToLower(term)

	filtered := make([]domain.Transaction, 0)
	for _, txn := range txns {
		if strings.Contains(strings.ToLower(txn.Description), needle) {
			filtered = append(filtered, txn)
		}
	}

	return filtered
}
