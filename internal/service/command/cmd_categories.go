package command

import (
	"context"
	"fmt"
	"sort"

	"github.com/sandevgo/quakeaid/internal/knowledge"
)

type CategoriesCommand struct {
	store     *knowledge.Store
	formatter *ResponseFormatter
}

func NewCategoriesCommand(store *knowledge.Store) *CategoriesCommand {
	return &CategoriesCommand{
		store:     store,
		formatter: NewResponseFormatter(),
	}
}

func (c *CategoriesCommand) Name() string {
	return "categories"
}

func (c *CategoriesCommand) Description() string {
	return "List knowledge categories"
}

func (c *CategoriesCommand) Execute(_ context.Context, _ string, _ []string) (string, error) {
	categories := c.store.Categories()

	ids := make([]string, 0, len(categories))
	for id := range categories {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	lines := make([]string, 0, len(ids))
	for _, id := range ids {
		count := len(c.store.ItemsByCategory(id))
		lines = append(lines, fmt.Sprintf("`%s` — %s (%d)", id, categories[id], count))
	}

	return c.formatter.Combine(
		c.formatter.Info("Knowledge Categories"),
		c.formatter.List(lines),
	), nil
}
