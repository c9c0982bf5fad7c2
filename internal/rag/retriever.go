package rag

import (
	"sort"
	"strings"

	"github.com/sandevgo/quakeaid/internal/knowledge"
)

// Score weights. Exact keyword hits dominate, substring keyword hits come
// close, title and content matches only nudge the ranking.
const (
	scoreKeywordExact     = 10
	scoreKeywordSubstring = 8
	scoreTitleSubstring   = 5
	scoreContentSubstring = 1
)

// result pairs an item with its relevance score for the duration of one
// search call.
type result struct {
	item  knowledge.Item
	score int
}

// Retriever ranks knowledge items against free-text queries.
type Retriever struct {
	store *knowledge.Store
}

func NewRetriever(store *knowledge.Store) *Retriever {
	return &Retriever{store: store}
}

// Search scores every item against the query and returns matches ordered by
// descending score, ties broken by ascending item priority. Empty or garbage
// input yields an empty slice, never an error.
func (r *Retriever) Search(query string) []knowledge.Item {
	queryLower := strings.ToLower(query)
	queryWords := tokenize(query)
	if len(queryWords) == 0 {
		return nil
	}

	var results []result
	for _, item := range r.store.Items() {
		score := 0

		for _, keyword := range item.Keywords {
			keywordLower := strings.ToLower(keyword)

			exact := false
			for _, word := range queryWords {
				if word == keywordLower {
					exact = true
					break
				}
			}

			if exact {
				score += scoreKeywordExact
			} else if strings.Contains(queryLower, keywordLower) {
				// Covers multi-word and CJK keywords the whitespace
				// tokenizer cannot isolate.
				score += scoreKeywordSubstring
			}
		}

		if strings.Contains(strings.ToLower(item.Title), queryLower) {
			score += scoreTitleSubstring
		}
		if strings.Contains(strings.ToLower(item.Content), queryLower) {
			score += scoreContentSubstring
		}

		if score > 0 {
			results = append(results, result{item: item, score: score})
		}
	}

	// Stable sort keeps insertion order for items tied on both keys.
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score != results[j].score {
			return results[i].score > results[j].score
		}
		return results[i].item.Priority < results[j].item.Priority
	})

	items := make([]knowledge.Item, 0, len(results))
	for _, res := range results {
		items = append(items, res.item)
	}
	return items
}
