package utils

import (
	"sort"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// FuzzyMatch is a scored candidate from a fuzzy comparison.
type FuzzyMatch struct {
	Index int
	Score int
}

// FuzzyScore returns the similarity of two strings on a 0-100 scale.
// Both sides are lowercased and trimmed first so scoring stays deterministic
// regardless of how the user typed the argument.
func FuzzyScore(a, b string) int {
	return fuzzy.Ratio(normalize(a), normalize(b))
}

// BestFuzzyMatch returns the single best-scoring candidate at or above cutoff.
// Ties are broken by iteration order: the first candidate with the top score
// wins. Returns ok=false when nothing clears the cutoff.
func BestFuzzyMatch(query string, candidates []string, cutoff int) (FuzzyMatch, bool) {
	best := FuzzyMatch{Index: -1}
	for i, candidate := range candidates {
		score := FuzzyScore(query, candidate)
		if score < cutoff {
			continue
		}
		if best.Index == -1 || score > best.Score {
			best = FuzzyMatch{Index: i, Score: score}
		}
	}
	return best, best.Index != -1
}

// TopFuzzyMatches returns up to limit candidates scoring at or above cutoff,
// ordered by descending score. Equal scores keep candidate order.
func TopFuzzyMatches(query string, candidates []string, cutoff, limit int) []FuzzyMatch {
	matches := make([]FuzzyMatch, 0, len(candidates))
	for i, candidate := range candidates {
		if score := FuzzyScore(query, candidate); score >= cutoff {
			matches = append(matches, FuzzyMatch{Index: i, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
