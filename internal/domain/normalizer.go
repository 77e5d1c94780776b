package domain

// MerchantNormalizer maps a raw statement description to a canonical merchant key.
// Implementations must be deterministic and total: every description, including
// one no rule recognizes, maps to some non-empty key.
type MerchantNormalizer interface {
	Normalize(description string) string

	// CanonicalKeys returns the distinct keys the rule table can produce.
	// A key outside this set was derived from the description itself.
	CanonicalKeys() []string
}
