package command

import (
	"context"

	"github.com/sandevgo/quakeaid/internal/knowledge"
)

type SourcesCommand struct {
	store     *knowledge.Store
	formatter *ResponseFormatter
}

func NewSourcesCommand(store *knowledge.Store) *SourcesCommand {
	return &SourcesCommand{
		store:     store,
		formatter: NewResponseFormatter(),
	}
}

func (c *SourcesCommand) Name() string {
	return "sources"
}

func (c *SourcesCommand) Description() string {
	return "List the authorities behind the knowledge base"
}

func (c *SourcesCommand) Execute(_ context.Context, _ string, _ []string) (string, error) {
	return c.formatter.Combine(
		c.formatter.Info("Knowledge Sources"),
		c.formatter.List(c.store.Sources()),
	), nil
}
