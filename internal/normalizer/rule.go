// Package normalizer maps raw merchant descriptions to canonical merchant
// keys using an ordered, data-driven rule table. The first rule whose pattern
// matches a description wins, so more specific patterns must precede more
// general ones.
package normalizer

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Rule groups descriptions containing Pattern (case-insensitive substring,
// matched after whitespace folding) under the Canonical merchant key.
type Rule struct {
	Pattern   string `yaml:"pattern"`
	Canonical string `yaml:"canonical"`
}

// RuleSet is an ordered list of grouping rules. Order is a contract:
// evaluation is first-match-wins.
type RuleSet []Rule

// ruleFile is the YAML shape of an external rule table
type ruleFile struct {
	Rules []Rule `yaml:"rules"`
}

// DefaultRules returns the built-in merchant rule table.
// Specific patterns are listed ahead of the general ones they overlap with.
func DefaultRules() RuleSet {
	return RuleSet{
		{Pattern: "UBER EATS", Canonical: "Uber Eats"},
		{Pattern: "UBER", Canonical: "Uber"},
		{Pattern: "LYFT", Canonical: "Lyft"},
		{Pattern: "AMAZON", Canonical: "Amazon"},
		{Pattern: "QUIKTRIP", Canonical: "QuikTrip"},
		{Pattern: "PAPER DEPOSIT", Canonical: "Paper Deposits"},
		{Pattern: "WEB FUNDS TRANSFER", Canonical: "WebFunds Transfer"},
		{Pattern: "WEBFUNDSTRANSFER", Canonical: "WebFunds Transfer"},
		{Pattern: "WIRE#", Canonical: "Wire Transfer"},
		{Pattern: "ZELLE", Canonical: "Zelle"},
		{Pattern: "CHECK #", Canonical: "Checks"},
		{Pattern: "FEE-", Canonical: "Fees"},
		{Pattern: "SERVICE CHARGE", Canonical: "Fees"},
		{Pattern: "SERVICECHARGE", Canonical: "Fees"},
	}
}

// LoadRules reads a rule table from a YAML file. The file lists rules in
// priority order:
//
//	rules:
//	  - pattern: "UBER EATS"
//	    canonical: "Uber Eats"
//	  - pattern: "UBER"
//	    canonical: "Uber"
func LoadRules(path string) (RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules file: %w", err)
	}

	var f ruleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing rules file: %w", err)
	}

	rules := RuleSet(f.Rules)
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	return rules, nil
}

// Validate checks that every rule has a pattern and a canonical key
func (rs RuleSet) Validate() error {
	for i, r := range rs {
		if strings.TrimSpace(r.Pattern) == "" {
			return fmt.Errorf("rule %d: empty pattern", i)
		}
		if strings.TrimSpace(r.Canonical) == "" {
			return fmt.Errorf("rule %d (%q): empty canonical key", i, r.Pattern)
		}
	}

	return nil
}
