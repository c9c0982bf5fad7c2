package rag

import (
	"github.com/sandevgo/quakeaid/internal/config"
	"github.com/sandevgo/quakeaid/internal/knowledge"
)

// Context is the per-query bundle consumed by the generation pipeline and
// the transports. It is transient: built per user message, then discarded.
type Context struct {
	Query        string
	Knowledge    []knowledge.Item
	Prompt       string
	Priority     Priority
	QuickActions []string
}

// Service runs the retrieval side of the pipeline. All methods are pure
// functions of (query, knowledge base); concurrent calls need no
// coordination.
type Service struct {
	retriever  *Retriever
	composer   *Composer
	maxResults int
}

func NewService(store *knowledge.Store, cfg *config.RAGConfig) *Service {
	return &Service{
		retriever:  NewRetriever(store),
		composer:   NewComposer(cfg.PromptTokenBudget),
		maxResults: cfg.MaxResults,
	}
}

// ProcessQuery retrieves ranked knowledge, composes the constrained prompt,
// and classifies the query, all before any generation call is issued.
func (s *Service) ProcessQuery(query string) Context {
	items := s.retriever.Search(query)
	if len(items) > s.maxResults {
		items = items[:s.maxResults]
	}

	return Context{
		Query:        query,
		Knowledge:    items,
		Prompt:       s.composer.Compose(query, items),
		Priority:     Classify(query),
		QuickActions: QuickActions(query),
	}
}
