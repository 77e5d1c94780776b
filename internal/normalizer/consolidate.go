package normalizer

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// DefaultEditDistance is the maximum edit distance at which two fallback keys
// are considered the same merchant
const DefaultEditDistance = 2

// minContainmentLen keeps short keys from being swallowed by containment
// (e.g. "A" is contained in almost everything)
const minContainmentLen = 4

// ConsolidateKeys merges near-duplicate merchant keys, as produced by the
// fallback normalization for descriptions that differ only in punctuation or
// truncated tails. It returns a mapping from each merged key to its surviving
// key; keys that stand alone are absent from the map.
//
// The result is deterministic: keys are visited in sorted order and later
// keys merge into earlier ones.
func ConsolidateKeys(keys []string, maxDistance int) map[string]string {
	if maxDistance <= 0 {
		maxDistance = DefaultEditDistance
	}

	unique := uniqueSorted(keys)
	merged := make(map[string]string)
	assigned := make(map[string]bool)

	for i, key := range unique {
		if assigned[key] {
			continue
		}
		assigned[key] = true

		for _, candidate := range unique[i+1:] {
			if assigned[candidate] {
				continue
			}

			if similarKeys(key, candidate, maxDistance) {
				merged[candidate] = key
				assigned[candidate] = true
			}
		}
	}

	return merged
}

// similarKeys reports whether two keys likely name the same merchant
func similarKeys(a, b string, maxDistance int) bool {
	fa, fb := fold(a), fold(b)
	if fa == fb {
		return true
	}

	// Containment catches truncated variants ("Grocery Mart" / "Grocery Mart Inc")
	shorter, longer := fa, fb
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if len(shorter) >= minContainmentLen && strings.Contains(longer, shorter) {
		return true
	}

	return fuzzy.LevenshteinDistance(fa, fb) <= maxDistance
}

func uniqueSorted(keys []string) []string {
	seen := make(map[string]bool, len(keys))
	unique := make([]string, 0, len(keys))

	for _, k := range keys {
		if seen[k] {
			continue
		}
		seen[k] = true
		unique = append(unique, k)
	}

	sort.Strings(unique)
	return unique
}
