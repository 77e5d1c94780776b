package normalizer

import (
	"regexp"
	"strings"

	"github.com/cloudflare/ahocorasick"
)

// trailingRefRe matches reference-number and location-code tails: runs of
// digits, optionally mixed with separators, at the end of a description
var trailingRefRe = regexp.MustCompile(`[\s\-#*/:]*\d[\d\-#*/.]*$`)

// Normalizer derives canonical merchant keys from raw statement descriptions.
// It is pure and deterministic; the rule table is fixed at construction.
type Normalizer struct {
	rules   RuleSet
	matcher *ahocorasick.Matcher
}

// New creates a Normalizer for the given rule table. The table's order is
// preserved: when several patterns match one description, the earliest rule
// wins.
func New(rules RuleSet) *Normalizer {
	n := &Normalizer{rules: rules}

	if len(rules) > 0 {
		patterns := make([][]byte, len(rules))
		for i, r := range rules {
			patterns[i] = []byte(fold(r.Pattern))
		}
		n.matcher = ahocorasick.NewMatcher(patterns)
	}

	return n
}

// Normalize maps a raw description to its canonical merchant key.
// Every input maps to some non-empty key: when no rule matches, the key is
// derived from the description itself with reference tails stripped.
func (n *Normalizer) Normalize(description string) string {
	folded := fold(description)
	if folded == "" {
		return "(unknown)"
	}

	if n.matcher != nil {
		// One pass finds every matching pattern; the lowest rule index
		// preserves the table's first-match-wins order
		hits := n.matcher.Match([]byte(folded))

		best := -1
		for _, idx := range hits {
			if best == -1 || idx < best {
				best = idx
			}
		}

		if best >= 0 {
			return n.rules[best].Canonical
		}
	}

	return fallbackKey(folded)
}

// Rules returns the rule table the normalizer was built with
func (n *Normalizer) Rules() RuleSet {
	return n.rules
}

// CanonicalKeys returns the distinct canonical keys of the rule table, in
// table order
func (n *Normalizer) CanonicalKeys() []string {
	seen := make(map[string]bool, len(n.rules))
	keys := make([]string, 0, len(n.rules))

	for _, r := range n.rules {
		if seen[r.Canonical] {
			continue
		}
		seen[r.Canonical] = true
		keys = append(keys, r.Canonical)
	}

	return keys
}

// fallbackKey derives a key from a description no rule recognized
func fallbackKey(folded string) string {
	key := folded

	// Card processors append "*<reference>" after the merchant name
	if idx := strings.Index(key, "*"); idx >= 0 {
		key = strings.TrimSpace(key[:idx])
	}

	// Strip trailing reference numbers and location codes
	for {
		stripped := trailingRefRe.ReplaceAllString(key, "")
		stripped = strings.TrimRight(stripped, " .-#*/:")
		if stripped == key {
			break
		}
		key = stripped
	}

	if key == "" {
		// Nothing left after stripping; the folded text is the key
		return strings.ToLower(folded)
	}

	return titleCase(key)
}

// fold trims, collapses internal whitespace, and uppercases for matching
func fold(s string) string {
	fields := strings.Fields(s)
	return strings.ToUpper(strings.Join(fields, " "))
}

// titleCase uppercases the first letter of each word and lowercases the rest
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		if r[0] >= 'a' && r[0] <= 'z' {
			r[0] = r[0] - 'a' + 'A'
		}
		words[i] = string(r)
	}

	return strings.Join(words, " ")
}
