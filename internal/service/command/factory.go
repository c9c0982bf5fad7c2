package command

import (
	"github.com/sandevgo/quakeaid/internal/core"
	"github.com/sandevgo/quakeaid/internal/knowledge"
)

func NewCommands(store *knowledge.Store) []core.Command {
	return []core.Command{
		NewKBCommand(store),
		NewSourcesCommand(store),
		NewCategoriesCommand(store),
	}
}
