package rag

import "strings"

// tokenize lower-cases a query and splits it on whitespace, dropping empty
// tokens.
func tokenize(query string) []string {
	return strings.Fields(strings.ToLower(query))
}

// matchesKeyword reports whether a single keyword hits the query: either an
// exact whole-word match against a query token, or a substring match for
// keywords longer than two bytes. The whole-word check keeps short keywords
// from matching inside unrelated words ("art" inside "earthquake"); the
// substring check covers multi-word keywords and CJK terms that whitespace
// tokenization cannot split ("地震" is six bytes, so it passes the length
// guard).
func matchesKeyword(queryLower string, queryWords []string, keyword string) bool {
	keywordLower := strings.ToLower(keyword)

	for _, word := range queryWords {
		if word == keywordLower {
			return true
		}
	}

	if len(keywordLower) > 2 && strings.Contains(queryLower, keywordLower) {
		return true
	}

	return false
}

// matchesAny applies matchesKeyword over a keyword family.
func matchesAny(query string, keywords []string) bool {
	queryLower := strings.ToLower(query)
	queryWords := tokenize(query)

	for _, keyword := range keywords {
		if matchesKeyword(queryLower, queryWords, keyword) {
			return true
		}
	}
	return false
}
