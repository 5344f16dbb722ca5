// Package moderation screens chat queries against a fixed list of sensitive
// terms before anything else happens to them.
package moderation

import (
	"strings"
)

// Canned refusal messages returned for screened queries.
const (
	RefusalMessage = "Sorry, I cannot assist with inappropriate or harmful content."

	// Returned when the query reads like a question about capital punishment.
	DeathPenaltyRefusal = "As an AI, I am not allowed to make choices about who deserves the death penalty."
)

// screenedTerms short-circuit a query with a refusal. Matching is
// case-insensitive substring matching, same as the language markers.
var screenedTerms = []string{"hate", "kill", "death", "violence"}

// ContentFilter checks queries against the screened term list.
type ContentFilter struct {
	terms []string
}

// New creates a content filter over the fixed screened term list.
func New() *ContentFilter {
	return &ContentFilter{terms: screenedTerms}
}

// Check returns a refusal message and true when the query contains a
// screened term. Callers must return the refusal without touching sessions
// or external services.
func (f *ContentFilter) Check(query string) (string, bool) {
	normalized := strings.ToLower(query)

	matched := false
	for _, term := range f.terms {
		if strings.Contains(normalized, term) {
			matched = true
			break
		}
	}
	if !matched {
		return "", false
	}

	if strings.Contains(normalized, "deserve") && strings.Contains(normalized, "death") {
		return DeathPenaltyRefusal, true
	}
	return RefusalMessage, true
}
