package tree

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Predicate decides whether a node matches a search query.
type Predicate func(node Node, query string) bool

// SubstringPredicate matches when the label contains query, ignoring case.
func SubstringPredicate(node Node, query string) bool {
	return strings.Contains(strings.ToLower(node.Label), strings.ToLower(query))
}

// FuzzyPredicate matches when the characters of query appear in order in
// the label, ignoring case ("nrth" matches "North America").
func FuzzyPredicate(node Node, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	return len(fuzzy.Find(query, []string{strings.ToLower(node.Label)})) > 0
}

// PredicateFor returns the built-in predicate for the fuzzy setting.
func PredicateFor(fuzzyMatch bool) Predicate {
	if fuzzyMatch {
		return FuzzyPredicate
	}
	return SubstringPredicate
}
