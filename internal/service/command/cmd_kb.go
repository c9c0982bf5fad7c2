package command

import (
	"context"
	"fmt"

	"github.com/sandevgo/quakeaid/internal/knowledge"
)

type KBCommand struct {
	store     *knowledge.Store
	formatter *ResponseFormatter
}

func NewKBCommand(store *knowledge.Store) *KBCommand {
	return &KBCommand{
		store:     store,
		formatter: NewResponseFormatter(),
	}
}

func (c *KBCommand) Name() string {
	return "kb"
}

func (c *KBCommand) Description() string {
	return "Browse the survival knowledge base"
}

func (c *KBCommand) Execute(_ context.Context, _ string, args []string) (string, error) {
	if len(args) == 0 {
		items := c.store.Items()
		lines := make([]string, 0, len(items))
		for _, item := range items {
			lines = append(lines, fmt.Sprintf("`%s` — %s", item.ID, item.Title))
		}
		return c.formatter.Combine(
			c.formatter.Info("Knowledge Base"),
			c.formatter.List(lines),
			c.formatter.Usage("/kb [id]"),
		), nil
	}

	item, ok := c.store.ItemByID(args[0])
	if !ok {
		return "", fmt.Errorf("unknown knowledge id: %s", args[0])
	}

	return c.formatter.Combine(
		c.formatter.Section("📖", item.Title, item.Content),
		c.formatter.Label("Category", item.Category),
		c.formatter.Label("Priority", fmt.Sprintf("%d", item.Priority)),
	), nil
}
