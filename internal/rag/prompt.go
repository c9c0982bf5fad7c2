package rag

import (
	"fmt"
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"
	"github.com/sandevgo/quakeaid/internal/knowledge"
)

var (
	tk     *tiktoken.Tiktoken
	tkOnce sync.Once
)

func getTokenizer() *tiktoken.Tiktoken {
	tkOnce.Do(func() {
		var err error
		tk, err = tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			panic("failed to load tiktoken: " + err.Error())
		}
	})
	return tk
}

func countTokens(text string) int {
	return len(getTokenizer().Encode(text, nil, nil))
}

// Composer builds the constrained prompt handed to the generation
// collaborator.
type Composer struct {
	// tokenBudget caps the composed prompt size; 0 disables trimming.
	tokenBudget int
	// counter is swappable for tests; defaults to tiktoken cl100k_base.
	counter func(string) int
}

func NewComposer(tokenBudget int) *Composer {
	return &Composer{
		tokenBudget: tokenBudget,
		counter:     countTokens,
	}
}

// Compose renders the prompt for a query and its retrieved knowledge. With
// no knowledge it instructs the generator to disclose the gap instead of
// fabricating advice. When a token budget is set, trailing (lowest-ranked)
// knowledge items are trimmed until the prompt fits.
func (c *Composer) Compose(query string, items []knowledge.Item) string {
	if len(items) == 0 {
		return composeNoKnowledge(query)
	}

	prompt := composeWithKnowledge(query, items)
	if c.tokenBudget <= 0 {
		return prompt
	}

	for len(items) > 1 && c.counter(prompt) > c.tokenBudget {
		items = items[:len(items)-1]
		prompt = composeWithKnowledge(query, items)
	}
	return prompt
}

func composeNoKnowledge(query string) string {
	return fmt.Sprintf(`You are an earthquake survival assistant. The user asks: %q.

IMPORTANT: I don't have specific knowledge about this question in my earthquake survival database. I cannot provide accurate information for this query. Please rely on your own judgment and seek help from emergency personnel or official sources if this is an emergency situation.

If you have other earthquake survival questions, I'd be happy to help with those.`, query)
}

func composeWithKnowledge(query string, items []knowledge.Item) string {
	var b strings.Builder

	b.WriteString("You are an earthquake survival assistant. Based on the following earthquake survival knowledge, answer the user's question.\n\n")
	b.WriteString("EARTHQUAKE SURVIVAL KNOWLEDGE:\n")

	for i, item := range items {
		fmt.Fprintf(&b, "%d. %s\n%s\n\n", i+1, item.Title, item.Content)
	}

	fmt.Fprintf(&b, "USER QUESTION: %q\n\n", query)

	b.WriteString(`CRITICAL SAFETY INSTRUCTIONS:
- ONLY use the earthquake survival knowledge provided above
- DO NOT add any information not explicitly stated in the knowledge base
- If the knowledge doesn't directly answer the question, say: "I cannot find specific information about this in my earthquake survival knowledge base"
- NEVER guess, assume, or extrapolate beyond the provided knowledge
- For any medical emergency, always recommend calling emergency services
- If asked about topics outside earthquake survival, redirect to earthquake safety

RESPONSE REQUIREMENTS:
- Be concise but complete
- Focus on actionable advice from the knowledge base only
- If multiple pieces of knowledge are relevant, synthesize them coherently
- Always prioritize safety over convenience
- End with "If this is a life-threatening emergency, call emergency services immediately"

ANSWER:`)

	return b.String()
}
